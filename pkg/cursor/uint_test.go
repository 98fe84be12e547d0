package cursor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// width bundles the accessors for one integer width behind uint64 so the
// round-trip properties can be checked uniformly.
type width struct {
	name  string
	size  int
	max   uint64
	write func(c *Cursor, v uint64, le bool) error
	read  func(c *Cursor, le bool) (uint64, error)
	set   func(c *Cursor, v uint64, le bool) error
	get   func(c *Cursor, le bool) (uint64, error)
}

var widths = []width{
	{
		name: "uint8", size: 1, max: math.MaxUint8,
		write: func(c *Cursor, v uint64, _ bool) error { return c.WriteUint8(uint8(v)) },
		read: func(c *Cursor, _ bool) (uint64, error) {
			v, err := c.ReadUint8()
			return uint64(v), err
		},
		set: func(c *Cursor, v uint64, _ bool) error { return c.SetUint8(uint8(v)) },
		get: func(c *Cursor, _ bool) (uint64, error) {
			v, err := c.GetUint8()
			return uint64(v), err
		},
	},
	{
		name: "uint16", size: 2, max: math.MaxUint16,
		write: func(c *Cursor, v uint64, le bool) error { return c.WriteUint16(uint16(v), le) },
		read: func(c *Cursor, le bool) (uint64, error) {
			v, err := c.ReadUint16(le)
			return uint64(v), err
		},
		set: func(c *Cursor, v uint64, le bool) error { return c.SetUint16(uint16(v), le) },
		get: func(c *Cursor, le bool) (uint64, error) {
			v, err := c.GetUint16(le)
			return uint64(v), err
		},
	},
	{
		name: "uint24", size: 3, max: maxUint24,
		write: func(c *Cursor, v uint64, le bool) error { return c.WriteUint24(uint32(v), le) },
		read: func(c *Cursor, le bool) (uint64, error) {
			v, err := c.ReadUint24(le)
			return uint64(v), err
		},
		set: func(c *Cursor, v uint64, le bool) error { return c.SetUint24(uint32(v), le) },
		get: func(c *Cursor, le bool) (uint64, error) {
			v, err := c.GetUint24(le)
			return uint64(v), err
		},
	},
	{
		name: "uint32", size: 4, max: math.MaxUint32,
		write: func(c *Cursor, v uint64, le bool) error { return c.WriteUint32(uint32(v), le) },
		read: func(c *Cursor, le bool) (uint64, error) {
			v, err := c.ReadUint32(le)
			return uint64(v), err
		},
		set: func(c *Cursor, v uint64, le bool) error { return c.SetUint32(uint32(v), le) },
		get: func(c *Cursor, le bool) (uint64, error) {
			v, err := c.GetUint32(le)
			return uint64(v), err
		},
	},
	{
		name: "uint64", size: 8, max: math.MaxUint64,
		write: func(c *Cursor, v uint64, le bool) error { return c.WriteUint64(v, le) },
		read:  func(c *Cursor, le bool) (uint64, error) { return c.ReadUint64(le) },
		set:   func(c *Cursor, v uint64, le bool) error { return c.SetUint64(v, le) },
		get:   func(c *Cursor, le bool) (uint64, error) { return c.GetUint64(le) },
	},
}

func TestUintRoundTrip(t *testing.T) {
	for _, w := range widths {
		for _, le := range []bool{false, true} {
			for _, v := range []uint64{0, 1, w.max / 3, w.max} {
				c := New(make([]byte, w.size))

				require.NoError(t, w.write(c, v, le), "%s le=%v", w.name, le)
				require.Equal(t, w.size, c.Offset())

				require.NoError(t, c.SetOffset(0))
				got, err := w.read(c, le)
				require.NoError(t, err)
				require.Equal(t, v, got, "%s le=%v", w.name, le)
				require.Equal(t, w.size, c.Offset())
			}
		}
	}
}

func TestUintGetSetDoNotMove(t *testing.T) {
	for _, w := range widths {
		c := New(make([]byte, w.size+1))
		require.NoError(t, c.SetOffset(1))

		require.NoError(t, w.set(c, 1, false))
		require.Equal(t, 1, c.Offset())
		got, err := w.get(c, false)
		require.NoError(t, err)
		require.Equal(t, uint64(1), got)
		require.Equal(t, 1, c.Offset())

		require.NoError(t, c.SetOffset(2))
		require.Error(t, w.set(c, 1, false))
		require.Equal(t, 2, c.Offset(), w.name)
		_, err = w.get(c, false)
		require.Error(t, err)
		require.Equal(t, 2, c.Offset(), w.name)
	}
}

func TestUintShortBufferIsUnknown(t *testing.T) {
	for _, w := range widths {
		if w.size == 1 {
			continue
		}
		c := New(make([]byte, w.size-1))

		_, err := w.read(c, false)
		require.ErrorIs(t, err, ErrReadUnknown, w.name)
		require.ErrorIs(t, err, ErrReadLengthOverflow, w.name)
		require.Equal(t, 0, c.Offset())

		err = w.write(c, 0, true)
		require.ErrorIs(t, err, ErrWriteUnknown, w.name)
		require.ErrorIs(t, err, ErrWriteLengthOverflow, w.name)
		require.NotErrorIs(t, err, ErrReadUnknown)
		require.Equal(t, 0, c.Offset())
	}

	c := New(nil)
	_, err := c.ReadUint8()
	require.ErrorIs(t, err, ErrReadUnknown)
	require.ErrorIs(t, c.WriteUint8(1), ErrWriteUnknown)
}

func TestUintByteOrder(t *testing.T) {
	data := make([]byte, 17)
	c := New(data)

	c.MustWriteUint16(0x0102, false)
	c.MustWriteUint16(0x0102, true)
	c.MustWriteUint24(0x010203, false)
	c.MustWriteUint24(0x010203, true)
	c.MustWriteUint32(0x01020304, true)
	c.MustWriteUint8(0xFF)
	c.MustWriteUint16(0xAABB, false)

	assert.Equal(t, []byte{
		0x01, 0x02,
		0x02, 0x01,
		0x01, 0x02, 0x03,
		0x03, 0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0xFF,
		0xAA, 0xBB,
	}, data)
	assert.Equal(t, 0, c.Remaining())

	c = New([]byte{0, 0, 0, 0, 0, 0, 0, 1, 0x80, 0, 0, 0, 0, 0, 0, 0})
	assert.Equal(t, uint64(1), c.MustReadUint64(false))
	assert.Equal(t, uint64(0x80), c.MustGetUint64(true))
	assert.Equal(t, uint32(0x80), c.MustGetUint32(true))
	assert.Equal(t, uint16(0x8000), c.MustGetUint16(false))
	assert.Equal(t, uint8(0x80), c.MustGetUint8())
	assert.Equal(t, uint32(0x800000), c.MustGetUint24(false))
}

func TestUint24Boundary(t *testing.T) {
	c := New(make([]byte, 3))

	require.NoError(t, c.WriteUint24(1<<24-1, false))
	require.NoError(t, c.SetOffset(0))
	got, err := c.ReadUint24(false)
	require.NoError(t, err)
	require.Equal(t, uint32(1<<24-1), got)

	require.NoError(t, c.SetOffset(0))
	before := append([]byte(nil), c.Bytes()...)

	err = c.WriteUint24(1<<24, false)
	require.ErrorIs(t, err, ErrWriteUnknown)
	require.ErrorIs(t, err, ErrValueOverflow)
	require.Equal(t, 0, c.Offset())
	require.Equal(t, before, c.Bytes(), "rejected value must not be written")

	require.ErrorIs(t, c.SetUint24(math.MaxUint32, true), ErrValueOverflow)
	require.Panics(t, func() { c.MustSetUint24(1<<24, false) })
}
