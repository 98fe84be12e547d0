// Package mmfile maps files into memory so their contents can be handed to a
// cursor as a fixed-length buffer.
//
// On Linux, macOS and FreeBSD the file is mapped with mmap; elsewhere the
// whole file is read into memory and written back on Flush. Either way the
// buffer length equals the file size and never changes.
package mmfile

import "errors"

// ErrReadOnly is returned by Flush on a mapping opened with Map.
var ErrReadOnly = errors.New("mmfile: mapping is read-only")

// ErrClosed is returned when a closed mapping is flushed.
var ErrClosed = errors.New("mmfile: mapping is closed")

// Bytes returns the mapped contents. The slice is only valid until Close.
func (m *Mapping) Bytes() []byte { return m.data }

// Len returns the mapped length.
func (m *Mapping) Len() int { return len(m.data) }

// Writable reports whether writes to Bytes reach the file.
func (m *Mapping) Writable() bool { return m.writable }
