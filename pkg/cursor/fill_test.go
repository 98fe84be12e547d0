package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	data := make([]byte, 5)
	c := New(data)
	require.NoError(t, c.Skip(2))

	require.NoError(t, c.Fill(1, 2))
	require.Equal(t, []byte{0, 0, 1, 1, 0}, data)
	require.Equal(t, 4, c.Offset())
}

func TestFillOverflowIsNoop(t *testing.T) {
	data := make([]byte, 5)
	c := New(data)
	require.NoError(t, c.SetOffset(3))

	err := c.Fill(0xAA, 3)
	require.ErrorIs(t, err, ErrWriteLengthOverflow)
	require.Equal(t, 3, c.Offset())
	require.Equal(t, make([]byte, 5), data)

	require.Panics(t, func() { c.MustFill(0xAA, 3) })
	c.MustFill(0xAA, 2)
	require.Equal(t, []byte{0, 0, 0, 0xAA, 0xAA}, data)
}
