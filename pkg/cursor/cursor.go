package cursor

import (
	"github.com/joshuapare/bytecursor/internal/buf"
)

// Cursor is a read/write head over a caller-owned, fixed-length buffer.
//
// The buffer is borrowed: the cursor never copies, grows or frees it, and
// every window it returns aliases it. A Cursor is not safe for concurrent use.
type Cursor struct {
	view   buf.View
	offset int
}

// New returns a cursor positioned at the start of b.
func New(b []byte) *Cursor {
	return &Cursor{view: buf.NewView(b)}
}

// NewAt returns a cursor over b positioned at offset.
func NewAt(b []byte, offset int) (*Cursor, error) {
	c := New(b)
	if err := c.SetOffset(offset); err != nil {
		return nil, err
	}
	return c, nil
}

// Bytes returns the whole underlying buffer.
func (c *Cursor) Bytes() []byte { return c.view.Bytes() }

// Len returns the fixed buffer length.
func (c *Cursor) Len() int { return c.view.Len() }

// Offset returns the current position.
func (c *Cursor) Offset() int { return c.offset }

// SetOffset moves the cursor to an absolute position in [0, Len()].
func (c *Cursor) SetOffset(offset int) error {
	if offset < 0 || offset > c.Len() {
		return c.fail(ErrKindReadLengthOverflow, "seek", offset-c.offset, ErrInvalidOffset)
	}
	c.offset = offset
	return nil
}

// Remaining returns Len() - Offset().
func (c *Cursor) Remaining() int { return c.Len() - c.offset }

// Before returns the bytes in front of the cursor.
func (c *Cursor) Before() []byte { return c.view.Bytes()[:c.offset] }

// After returns the bytes from the cursor to the end of the buffer.
func (c *Cursor) After() []byte { return c.view.Bytes()[c.offset:] }

// window returns [offset, offset+n) or false if it does not fit.
func (c *Cursor) window(n int) ([]byte, bool) {
	return buf.Slice(c.view.Bytes(), c.offset, n)
}

// has reports whether n bytes remain.
func (c *Cursor) has(n int) bool {
	return buf.Has(c.view.Bytes(), c.offset, n)
}
