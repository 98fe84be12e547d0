package cursor

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// decode converts raw bytes in enc to a UTF-8 string. A nil enc means UTF-8,
// where invalid sequences become U+FFFD.
func decode(raw []byte, enc encoding.Encoding) (string, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encode converts s to enc. The result is staged outside the buffer so that
// a failed or oversized encode leaves the buffer untouched.
func encode(s string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetUTF8 decodes the next n bytes as UTF-8 without moving the cursor.
// The returned string may hold fewer runes than n bytes.
func (c *Cursor) GetUTF8(n int) (string, error) {
	raw, err := c.Get(n)
	if err != nil {
		return "", err
	}
	s, err := decode(raw, nil)
	if err != nil {
		return "", c.fail(ErrKindReadUnknown, "get utf8", n, err)
	}
	return s, nil
}

// ReadUTF8 decodes the next n bytes as UTF-8 and advances past them.
func (c *Cursor) ReadUTF8(n int) (string, error) {
	s, err := c.GetUTF8(n)
	if err != nil {
		return "", err
	}
	c.offset += n
	return s, nil
}

// SetUTF8 encodes s at the cursor without moving it and returns the number
// of bytes written. If the whole of s does not fit in the remaining space the
// call fails with a WriteUnknown error and nothing is written.
func (c *Cursor) SetUTF8(s string) (int, error) {
	return c.setText("set utf8", s, nil)
}

// WriteUTF8 encodes s at the cursor and advances by the encoded length.
func (c *Cursor) WriteUTF8(s string) (int, error) {
	n, err := c.SetUTF8(s)
	if err != nil {
		return 0, err
	}
	c.offset += n
	return n, nil
}

func (c *Cursor) setText(op, s string, enc encoding.Encoding) (int, error) {
	raw, err := encode(s, enc)
	if err != nil {
		return 0, c.fail(ErrKindWriteUnknown, op, len(s), err)
	}
	if !c.has(len(raw)) {
		return 0, c.fail(ErrKindWriteUnknown, op, len(raw), ErrIncompleteEncode)
	}
	copy(c.After(), raw)
	return len(raw), nil
}

// MustGetUTF8 is like GetUTF8 but panics on failure.
func (c *Cursor) MustGetUTF8(n int) string { return Must(c.GetUTF8(n)) }

// MustReadUTF8 is like ReadUTF8 but panics on failure.
func (c *Cursor) MustReadUTF8(n int) string { return Must(c.ReadUTF8(n)) }

// MustSetUTF8 is like SetUTF8 but panics on failure.
func (c *Cursor) MustSetUTF8(s string) int { return Must(c.SetUTF8(s)) }

// MustWriteUTF8 is like WriteUTF8 but panics on failure.
func (c *Cursor) MustWriteUTF8(s string) int { return Must(c.WriteUTF8(s)) }
