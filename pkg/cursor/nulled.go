package cursor

import (
	"bytes"

	"golang.org/x/text/encoding"
)

// NUL-terminated fields: a run of non-zero bytes followed by one zero byte.
// The terminator is never part of the returned payload but is always written
// and consumed.

// GetNull returns the absolute index of the first zero byte at or after the
// cursor.
func (c *Cursor) GetNull() (int, error) {
	i := bytes.IndexByte(c.After(), 0)
	if i < 0 {
		return 0, c.fail(ErrKindReadNullOverflow, "get null", -1, nil)
	}
	return c.offset + i, nil
}

// GetNulled returns the bytes up to the next terminator without moving the
// cursor.
func (c *Cursor) GetNulled() ([]byte, error) {
	null, err := c.GetNull()
	if err != nil {
		return nil, err
	}
	return c.Get(null - c.offset)
}

// ReadNulled returns the bytes up to the next terminator and advances past
// the terminator.
func (c *Cursor) ReadNulled() ([]byte, error) {
	b, err := c.GetNulled()
	if err != nil {
		return nil, err
	}
	c.offset += len(b) + 1
	return b, nil
}

// WriteNulled writes b and a zero byte, then advances past both.
func (c *Cursor) WriteNulled(b []byte) error {
	if !c.has(len(b) + 1) {
		return c.fail(ErrKindWriteLengthOverflow, "write nulled", len(b)+1, nil)
	}
	w := c.After()
	copy(w, b)
	w[len(b)] = 0
	c.offset += len(b) + 1
	return nil
}

// SetNulled writes b and a zero byte, then restores the offset it started
// from whether or not the write succeeded.
func (c *Cursor) SetNulled(b []byte) error {
	start := c.offset
	defer func() { c.offset = start }()
	return c.WriteNulled(b)
}

// GetNulledString decodes the bytes up to the next terminator with enc
// (nil means UTF-8) without moving the cursor.
func (c *Cursor) GetNulledString(enc encoding.Encoding) (string, error) {
	raw, err := c.GetNulled()
	if err != nil {
		return "", err
	}
	s, err := decode(raw, enc)
	if err != nil {
		return "", c.fail(ErrKindReadUnknown, "get nulled string", len(raw), err)
	}
	return s, nil
}

// ReadNulledString is like GetNulledString but advances past the terminator.
func (c *Cursor) ReadNulledString(enc encoding.Encoding) (string, error) {
	raw, err := c.GetNulled()
	if err != nil {
		return "", err
	}
	s, err := decode(raw, enc)
	if err != nil {
		return "", c.fail(ErrKindReadUnknown, "read nulled string", len(raw), err)
	}
	c.offset += len(raw) + 1
	return s, nil
}

// WriteNulledString encodes s with enc (nil means UTF-8), writes it followed
// by a zero byte and advances past both.
func (c *Cursor) WriteNulledString(s string, enc encoding.Encoding) error {
	raw, err := encode(s, enc)
	if err != nil {
		return c.fail(ErrKindWriteUnknown, "write nulled string", len(s), err)
	}
	return c.WriteNulled(raw)
}

// SetNulledString is like WriteNulledString but restores the offset.
func (c *Cursor) SetNulledString(s string, enc encoding.Encoding) error {
	start := c.offset
	defer func() { c.offset = start }()
	return c.WriteNulledString(s, enc)
}

// MustGetNull is like GetNull but panics on failure.
func (c *Cursor) MustGetNull() int { return Must(c.GetNull()) }

// MustGetNulled is like GetNulled but panics on failure.
func (c *Cursor) MustGetNulled() []byte { return Must(c.GetNulled()) }

// MustReadNulled is like ReadNulled but panics on failure.
func (c *Cursor) MustReadNulled() []byte { return Must(c.ReadNulled()) }

// MustSetNulled is like SetNulled but panics on failure.
func (c *Cursor) MustSetNulled(b []byte) { must(c.SetNulled(b)) }

// MustWriteNulled is like WriteNulled but panics on failure.
func (c *Cursor) MustWriteNulled(b []byte) { must(c.WriteNulled(b)) }

// MustGetNulledString is like GetNulledString but panics on failure.
func (c *Cursor) MustGetNulledString(enc encoding.Encoding) string {
	return Must(c.GetNulledString(enc))
}

// MustReadNulledString is like ReadNulledString but panics on failure.
func (c *Cursor) MustReadNulledString(enc encoding.Encoding) string {
	return Must(c.ReadNulledString(enc))
}

// MustSetNulledString is like SetNulledString but panics on failure.
func (c *Cursor) MustSetNulledString(s string, enc encoding.Encoding) {
	must(c.SetNulledString(s, enc))
}

// MustWriteNulledString is like WriteNulledString but panics on failure.
func (c *Cursor) MustWriteNulledString(s string, enc encoding.Encoding) {
	must(c.WriteNulledString(s, enc))
}
