package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestUTF8RoundTrip(t *testing.T) {
	c := New(make([]byte, 16))

	n, err := c.WriteUTF8("héllo")
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, 6, c.Offset())

	require.NoError(t, c.SetOffset(0))
	s, err := c.GetUTF8(6)
	require.NoError(t, err)
	require.Equal(t, "héllo", s)
	require.Equal(t, 0, c.Offset())

	s, err = c.ReadUTF8(6)
	require.NoError(t, err)
	require.Equal(t, "héllo", s)
	require.Equal(t, 6, c.Offset())
}

func TestUTF8InvalidBytesAreReplaced(t *testing.T) {
	c := New([]byte{'a', 0xff, 'b'})
	s, err := c.ReadUTF8(3)
	require.NoError(t, err)
	require.Equal(t, "a�b", s)
}

func TestUTF8ReadOverflow(t *testing.T) {
	c := New([]byte("abc"))
	_, err := c.ReadUTF8(4)
	require.ErrorIs(t, err, ErrReadLengthOverflow)
	require.Equal(t, 0, c.Offset())
}

func TestUTF8WriteIncompleteIsUnknown(t *testing.T) {
	data := []byte{7, 7, 7}
	c := New(data)

	_, err := c.WriteUTF8("abcd")
	require.ErrorIs(t, err, ErrWriteUnknown)
	require.ErrorIs(t, err, ErrIncompleteEncode)
	require.Equal(t, 0, c.Offset())
	require.Equal(t, []byte{7, 7, 7}, data, "partial encode must not be committed")

	// "é" is two bytes; only one remains at offset 2.
	require.NoError(t, c.SetOffset(2))
	_, err = c.SetUTF8("é")
	require.ErrorIs(t, err, ErrWriteUnknown)
	require.Equal(t, 2, c.Offset())

	n, err := c.SetUTF8("z")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 2, c.Offset())
	require.Equal(t, []byte{7, 7, 'z'}, data)
}

func TestUTF8MustVariants(t *testing.T) {
	c := New(make([]byte, 4))
	require.Equal(t, 2, c.MustWriteUTF8("ok"))
	require.Equal(t, 2, c.MustSetUTF8("go"))
	require.NoError(t, c.SetOffset(0))
	require.Equal(t, "okgo", c.MustGetUTF8(4))
	require.Equal(t, "okgo", c.MustReadUTF8(4))
	require.Panics(t, func() { c.MustWriteUTF8("x") })
}

func TestNulledStringEncodings(t *testing.T) {
	c := New(make([]byte, 8))

	require.NoError(t, c.WriteNulledString("café", charmap.Windows1252))
	require.Equal(t, 5, c.Offset(), "cp1252 encodes é in one byte")
	require.Equal(t, []byte{'c', 'a', 'f', 0xE9, 0}, c.Before())

	require.NoError(t, c.SetOffset(0))
	s, err := c.ReadNulledString(charmap.Windows1252)
	require.NoError(t, err)
	require.Equal(t, "café", s)
	require.Equal(t, 5, c.Offset())

	require.NoError(t, c.SetOffset(0))
	s, err = c.GetNulledString(nil)
	require.NoError(t, err)
	require.Equal(t, "caf�", s, "0xE9 alone is not valid UTF-8")
	require.Equal(t, 0, c.Offset())
}

func TestNulledStringUnencodable(t *testing.T) {
	c := New(make([]byte, 8))
	err := c.WriteNulledString("日本", charmap.ISO8859_1)
	require.ErrorIs(t, err, ErrWriteUnknown)
	require.Equal(t, 0, c.Offset())
}

func TestSetNulledStringRestoresOffset(t *testing.T) {
	c := New(make([]byte, 4))
	require.NoError(t, c.SetNulledString("abc", nil))
	require.Equal(t, 0, c.Offset())
	require.Equal(t, "abc", c.MustGetNulledString(nil))

	err := c.SetNulledString("abcd", nil)
	require.ErrorIs(t, err, ErrWriteLengthOverflow)
	require.Equal(t, 0, c.Offset())
}
