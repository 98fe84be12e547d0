package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMapReadOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	m, err := Map(writeTemp(t, "test.bin", want))
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Close()) }()

	require.False(t, m.Writable())
	require.Equal(t, len(want), m.Len())
	require.Equal(t, want, m.Bytes())
	require.ErrorIs(t, m.Flush(), ErrReadOnly)
}

func TestMapZeroLength(t *testing.T) {
	m, err := Map(writeTemp(t, "empty.bin", nil))
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "double close is a no-op")
}

func TestMapWritablePersists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	path := writeTemp(t, "rw.bin", make([]byte, 4))

	m, err := MapWritable(path)
	require.NoError(t, err)
	require.True(t, m.Writable())
	copy(m.Bytes(), []byte{1, 2, 3, 4})
	require.NoError(t, m.Flush())
	require.NoError(t, m.Close())
	require.ErrorIs(t, m.Flush(), ErrClosed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestMapMissingFile(t *testing.T) {
	_, err := Map(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
