//go:build !linux && !darwin && !freebsd

package mmfile

import (
	"errors"
	"os"
)

// Mapping holds a file's contents in memory.
type Mapping struct {
	f        *os.File
	data     []byte
	writable bool
}

// Map reads the entire file when mmap is not available.
func Map(path string) (*Mapping, error) {
	return readFile(path, false)
}

// MapWritable reads the entire file; Flush writes it back.
func MapWritable(path string) (*Mapping, error) {
	return readFile(path, true)
}

func readFile(path string, writable bool) (*Mapping, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Mapping{f: f, data: data, writable: writable}, nil
}

// Flush writes the buffer back to the file.
func (m *Mapping) Flush() error {
	if !m.writable {
		return ErrReadOnly
	}
	if m.f == nil {
		return ErrClosed
	}
	if _, err := m.f.WriteAt(m.data, 0); err != nil {
		return err
	}
	return m.f.Sync()
}

// Close flushes a writable mapping and closes the file. Closing twice is a
// no-op.
func (m *Mapping) Close() error {
	if m.f == nil {
		return nil
	}
	var errs []error
	if m.writable {
		errs = append(errs, m.Flush())
	}
	errs = append(errs, m.f.Close())
	m.f, m.data = nil, nil
	return errors.Join(errs...)
}
