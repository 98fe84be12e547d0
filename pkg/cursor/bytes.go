package cursor

// Get returns the next n bytes without moving the cursor. The window aliases
// the buffer.
func (c *Cursor) Get(n int) ([]byte, error) {
	w, ok := c.window(n)
	if !ok {
		return nil, c.fail(ErrKindReadLengthOverflow, "get", n, nil)
	}
	return w, nil
}

// Read returns the next n bytes and advances past them.
func (c *Cursor) Read(n int) ([]byte, error) {
	w, err := c.Get(n)
	if err != nil {
		return nil, err
	}
	c.offset += n
	return w, nil
}

// Set copies b into the buffer at the cursor without moving it.
func (c *Cursor) Set(b []byte) error {
	w, ok := c.window(len(b))
	if !ok {
		return c.fail(ErrKindWriteLengthOverflow, "set", len(b), nil)
	}
	copy(w, b)
	return nil
}

// Write copies b into the buffer at the cursor and advances past it.
func (c *Cursor) Write(b []byte) error {
	if err := c.Set(b); err != nil {
		return err
	}
	c.offset += len(b)
	return nil
}

// Skip advances the cursor by n bytes without touching them.
func (c *Cursor) Skip(n int) error {
	if !c.has(n) {
		return c.fail(ErrKindReadLengthOverflow, "skip", n, nil)
	}
	c.offset += n
	return nil
}

// MustGet is like Get but panics on failure.
func (c *Cursor) MustGet(n int) []byte { return Must(c.Get(n)) }

// MustRead is like Read but panics on failure.
func (c *Cursor) MustRead(n int) []byte { return Must(c.Read(n)) }

// MustSet is like Set but panics on failure.
func (c *Cursor) MustSet(b []byte) { must(c.Set(b)) }

// MustWrite is like Write but panics on failure.
func (c *Cursor) MustWrite(b []byte) { must(c.Write(b)) }
