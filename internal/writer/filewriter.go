// Package writer produces buffers for the cursor and persists them.
package writer

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
)

// Zeroed returns a fresh zero-filled buffer of size bytes.
func Zeroed(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("writer: negative size %d", size)
	}
	return make([]byte, size), nil
}

// Random returns a fresh buffer of size bytes from crypto/rand.
func Random(size int) ([]byte, error) {
	b, err := Zeroed(size)
	if err != nil {
		return nil, err
	}
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("writer: random fill: %w", err)
	}
	return b, nil
}

// FileWriter writes buffers to a filesystem path atomically.
type FileWriter struct {
	Path string
	// Exclusive makes Write fail if Path already exists.
	Exclusive bool
}

// Write writes buf to the configured path atomically via temp file + rename.
func (w *FileWriter) Write(buf []byte) error {
	if w.Exclusive {
		if _, err := os.Stat(w.Path); err == nil {
			return fmt.Errorf("%s: %w", w.Path, os.ErrExist)
		}
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".cursorctl-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
