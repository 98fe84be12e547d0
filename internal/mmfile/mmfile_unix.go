//go:build linux || darwin || freebsd

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapping is a file mapped into memory.
type Mapping struct {
	f        *os.File
	data     []byte
	writable bool
	mapped   bool
}

// Map maps the file at path read-only.
func Map(path string) (*Mapping, error) {
	return mapFile(path, false)
}

// MapWritable maps the file at path shared and writable; writes to Bytes
// reach the file on Flush or Close.
func MapWritable(path string) (*Mapping, error) {
	return mapFile(path, true)
}

func mapFile(path string, writable bool) (*Mapping, error) {
	flag, prot := os.O_RDONLY, unix.PROT_READ
	if writable {
		flag, prot = os.O_RDWR, unix.PROT_READ|unix.PROT_WRITE
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapping{f: f, data: []byte{}, writable: writable}, nil
	}
	if size > int64(^uint(0)>>1) {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	return &Mapping{f: f, data: data, writable: writable, mapped: true}, nil
}

// Flush synchronously writes dirty pages back to the file.
func (m *Mapping) Flush() error {
	if !m.writable {
		return ErrReadOnly
	}
	if m.f == nil {
		return ErrClosed
	}
	if !m.mapped {
		return nil
	}
	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close flushes a writable mapping, unmaps it and closes the file. Closing
// twice is a no-op.
func (m *Mapping) Close() error {
	if m.f == nil {
		return nil
	}
	var errs []error
	if m.writable {
		errs = append(errs, m.Flush())
	}
	if m.mapped {
		if err := unix.Munmap(m.data); err != nil && !errors.Is(err, unix.EINVAL) {
			errs = append(errs, err)
		}
	}
	errs = append(errs, m.f.Close())
	m.f, m.data, m.mapped = nil, nil, false
	return errors.Join(errs...)
}
