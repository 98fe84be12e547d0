package cursor

// Fixed-width unsigned integers.
//
// Every accessor that needs more bytes than remain fails with a ReadUnknown
// or WriteUnknown error whose cause is the matching length overflow, so both
// errors.Is(err, ErrReadUnknown) and errors.Is(err, ErrReadLengthOverflow)
// hold. The littleEndian flag selects byte order per call; false is network
// order.

const maxUint24 = 1<<24 - 1

func (c *Cursor) getCheck(op string, n int) error {
	if c.has(n) {
		return nil
	}
	return c.fail(ErrKindReadUnknown, op, n, c.fail(ErrKindReadLengthOverflow, op, n, nil))
}

func (c *Cursor) setCheck(op string, n int) error {
	if c.has(n) {
		return nil
	}
	return c.fail(ErrKindWriteUnknown, op, n, c.fail(ErrKindWriteLengthOverflow, op, n, nil))
}

// GetUint8 returns the byte at the cursor.
func (c *Cursor) GetUint8() (uint8, error) {
	if err := c.getCheck("get uint8", 1); err != nil {
		return 0, err
	}
	return c.view.Uint8(c.offset), nil
}

// ReadUint8 returns the byte at the cursor and advances by 1.
func (c *Cursor) ReadUint8() (uint8, error) {
	v, err := c.GetUint8()
	if err != nil {
		return 0, err
	}
	c.offset++
	return v, nil
}

// SetUint8 writes v at the cursor.
func (c *Cursor) SetUint8(v uint8) error {
	if err := c.setCheck("set uint8", 1); err != nil {
		return err
	}
	c.view.PutUint8(c.offset, v)
	return nil
}

// WriteUint8 writes v at the cursor and advances by 1.
func (c *Cursor) WriteUint8(v uint8) error {
	if err := c.SetUint8(v); err != nil {
		return err
	}
	c.offset++
	return nil
}

// GetUint16 returns the 16-bit integer at the cursor.
func (c *Cursor) GetUint16(littleEndian bool) (uint16, error) {
	if err := c.getCheck("get uint16", 2); err != nil {
		return 0, err
	}
	return c.view.Uint16(c.offset, littleEndian), nil
}

// ReadUint16 returns the 16-bit integer at the cursor and advances by 2.
func (c *Cursor) ReadUint16(littleEndian bool) (uint16, error) {
	v, err := c.GetUint16(littleEndian)
	if err != nil {
		return 0, err
	}
	c.offset += 2
	return v, nil
}

// SetUint16 writes v at the cursor.
func (c *Cursor) SetUint16(v uint16, littleEndian bool) error {
	if err := c.setCheck("set uint16", 2); err != nil {
		return err
	}
	c.view.PutUint16(c.offset, v, littleEndian)
	return nil
}

// WriteUint16 writes v at the cursor and advances by 2.
func (c *Cursor) WriteUint16(v uint16, littleEndian bool) error {
	if err := c.SetUint16(v, littleEndian); err != nil {
		return err
	}
	c.offset += 2
	return nil
}

// GetUint24 returns the 24-bit integer at the cursor.
func (c *Cursor) GetUint24(littleEndian bool) (uint32, error) {
	if err := c.getCheck("get uint24", 3); err != nil {
		return 0, err
	}
	return c.view.Uint24(c.offset, littleEndian), nil
}

// ReadUint24 returns the 24-bit integer at the cursor and advances by 3.
func (c *Cursor) ReadUint24(littleEndian bool) (uint32, error) {
	v, err := c.GetUint24(littleEndian)
	if err != nil {
		return 0, err
	}
	c.offset += 3
	return v, nil
}

// SetUint24 writes v at the cursor. Values above 2^24-1 are rejected with
// ErrValueOverflow rather than truncated.
func (c *Cursor) SetUint24(v uint32, littleEndian bool) error {
	if v > maxUint24 {
		return c.fail(ErrKindWriteUnknown, "set uint24", 3, ErrValueOverflow)
	}
	if err := c.setCheck("set uint24", 3); err != nil {
		return err
	}
	c.view.PutUint24(c.offset, v, littleEndian)
	return nil
}

// WriteUint24 writes v at the cursor and advances by 3.
func (c *Cursor) WriteUint24(v uint32, littleEndian bool) error {
	if err := c.SetUint24(v, littleEndian); err != nil {
		return err
	}
	c.offset += 3
	return nil
}

// GetUint32 returns the 32-bit integer at the cursor.
func (c *Cursor) GetUint32(littleEndian bool) (uint32, error) {
	if err := c.getCheck("get uint32", 4); err != nil {
		return 0, err
	}
	return c.view.Uint32(c.offset, littleEndian), nil
}

// ReadUint32 returns the 32-bit integer at the cursor and advances by 4.
func (c *Cursor) ReadUint32(littleEndian bool) (uint32, error) {
	v, err := c.GetUint32(littleEndian)
	if err != nil {
		return 0, err
	}
	c.offset += 4
	return v, nil
}

// SetUint32 writes v at the cursor.
func (c *Cursor) SetUint32(v uint32, littleEndian bool) error {
	if err := c.setCheck("set uint32", 4); err != nil {
		return err
	}
	c.view.PutUint32(c.offset, v, littleEndian)
	return nil
}

// WriteUint32 writes v at the cursor and advances by 4.
func (c *Cursor) WriteUint32(v uint32, littleEndian bool) error {
	if err := c.SetUint32(v, littleEndian); err != nil {
		return err
	}
	c.offset += 4
	return nil
}

// GetUint64 returns the 64-bit integer at the cursor.
func (c *Cursor) GetUint64(littleEndian bool) (uint64, error) {
	if err := c.getCheck("get uint64", 8); err != nil {
		return 0, err
	}
	return c.view.Uint64(c.offset, littleEndian), nil
}

// ReadUint64 returns the 64-bit integer at the cursor and advances by 8.
func (c *Cursor) ReadUint64(littleEndian bool) (uint64, error) {
	v, err := c.GetUint64(littleEndian)
	if err != nil {
		return 0, err
	}
	c.offset += 8
	return v, nil
}

// SetUint64 writes v at the cursor.
func (c *Cursor) SetUint64(v uint64, littleEndian bool) error {
	if err := c.setCheck("set uint64", 8); err != nil {
		return err
	}
	c.view.PutUint64(c.offset, v, littleEndian)
	return nil
}

// WriteUint64 writes v at the cursor and advances by 8.
func (c *Cursor) WriteUint64(v uint64, littleEndian bool) error {
	if err := c.SetUint64(v, littleEndian); err != nil {
		return err
	}
	c.offset += 8
	return nil
}

func (c *Cursor) MustGetUint8() uint8 { return Must(c.GetUint8()) }
func (c *Cursor) MustReadUint8() uint8 { return Must(c.ReadUint8()) }
func (c *Cursor) MustSetUint8(v uint8) { must(c.SetUint8(v)) }
func (c *Cursor) MustWriteUint8(v uint8) { must(c.WriteUint8(v)) }
func (c *Cursor) MustGetUint16(le bool) uint16 { return Must(c.GetUint16(le)) }
func (c *Cursor) MustReadUint16(le bool) uint16 { return Must(c.ReadUint16(le)) }
func (c *Cursor) MustSetUint16(v uint16, le bool) { must(c.SetUint16(v, le)) }
func (c *Cursor) MustWriteUint16(v uint16, le bool) { must(c.WriteUint16(v, le)) }
func (c *Cursor) MustGetUint24(le bool) uint32 { return Must(c.GetUint24(le)) }
func (c *Cursor) MustReadUint24(le bool) uint32 { return Must(c.ReadUint24(le)) }
func (c *Cursor) MustSetUint24(v uint32, le bool) { must(c.SetUint24(v, le)) }
func (c *Cursor) MustWriteUint24(v uint32, le bool) { must(c.WriteUint24(v, le)) }
func (c *Cursor) MustGetUint32(le bool) uint32 { return Must(c.GetUint32(le)) }
func (c *Cursor) MustReadUint32(le bool) uint32 { return Must(c.ReadUint32(le)) }
func (c *Cursor) MustSetUint32(v uint32, le bool) { must(c.SetUint32(v, le)) }
func (c *Cursor) MustWriteUint32(v uint32, le bool) { must(c.WriteUint32(v, le)) }
func (c *Cursor) MustGetUint64(le bool) uint64 { return Must(c.GetUint64(le)) }
func (c *Cursor) MustReadUint64(le bool) uint64 { return Must(c.ReadUint64(le)) }
func (c *Cursor) MustSetUint64(v uint64, le bool) { must(c.SetUint64(v, le)) }
func (c *Cursor) MustWriteUint64(v uint64, le bool) { must(c.WriteUint64(v, le)) }
