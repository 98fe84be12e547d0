package cursor

// Fill writes value into the next n bytes and advances past them. The bounds
// check happens first, so a failed Fill changes nothing.
func (c *Cursor) Fill(value byte, n int) error {
	w, ok := c.window(n)
	if !ok {
		return c.fail(ErrKindWriteLengthOverflow, "fill", n, nil)
	}
	for i := range w {
		w[i] = value
	}
	c.offset += n
	return nil
}

// MustFill is like Fill but panics on failure.
func (c *Cursor) MustFill(value byte, n int) { must(c.Fill(value, n)) }
