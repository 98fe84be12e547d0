// Package buf adapts a caller-owned byte region into the views the cursor
// reads and writes through.
//
// A View never copies. Its byte view, multi-width integer view and 24-bit
// view all alias the same storage, so a write through one is visible through
// the others and through any slice previously taken from Bytes.
//
// View performs no bounds checks of its own: an offset that does not leave
// room for the requested width panics with the usual slice bounds error.
// Callers are expected to validate ranges first (see End and Slice).
package buf

import "encoding/binary"

// View is a zero-copy window over a fixed-length byte region.
type View struct {
	b []byte
}

// NewView returns a View over b.
func NewView(b []byte) View {
	return View{b: b}
}

// Bytes returns the byte view. The result aliases the underlying storage.
func (v View) Bytes() []byte { return v.b }

// Len returns the length of the region in bytes.
func (v View) Len() int { return len(v.b) }

func order(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Uint8 reads the byte at off.
func (v View) Uint8(off int) uint8 { return v.b[off] }

// PutUint8 writes x at off.
func (v View) PutUint8(off int, x uint8) { v.b[off] = x }

// Uint16 reads a 16-bit integer at off.
func (v View) Uint16(off int, littleEndian bool) uint16 {
	return order(littleEndian).Uint16(v.b[off : off+2])
}

// PutUint16 writes a 16-bit integer at off.
func (v View) PutUint16(off int, x uint16, littleEndian bool) {
	order(littleEndian).PutUint16(v.b[off:off+2], x)
}

// Uint24 reads a 24-bit integer at off as three single-byte reads.
func (v View) Uint24(off int, littleEndian bool) uint32 {
	b := v.b[off : off+3]
	if littleEndian {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// PutUint24 writes the low 24 bits of x at off as three single-byte writes.
// Bits above the 24th are discarded; range validation is the caller's job.
func (v View) PutUint24(off int, x uint32, littleEndian bool) {
	b := v.b[off : off+3]
	if littleEndian {
		b[0] = byte(x)
		b[1] = byte(x >> 8)
		b[2] = byte(x >> 16)
		return
	}
	b[0] = byte(x >> 16)
	b[1] = byte(x >> 8)
	b[2] = byte(x)
}

// Uint32 reads a 32-bit integer at off.
func (v View) Uint32(off int, littleEndian bool) uint32 {
	return order(littleEndian).Uint32(v.b[off : off+4])
}

// PutUint32 writes a 32-bit integer at off.
func (v View) PutUint32(off int, x uint32, littleEndian bool) {
	order(littleEndian).PutUint32(v.b[off:off+4], x)
}

// Uint64 reads a 64-bit integer at off.
func (v View) Uint64(off int, littleEndian bool) uint64 {
	return order(littleEndian).Uint64(v.b[off : off+8])
}

// PutUint64 writes a 64-bit integer at off.
func (v View) PutUint64(off int, x uint64, littleEndian bool) {
	order(littleEndian).PutUint64(v.b[off:off+8], x)
}
