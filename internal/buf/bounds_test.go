package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	require.True(t, ok)
	require.Equal(t, 15, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok, "expected overflow when adding to MaxInt")

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok, "expected underflow when subtracting from MinInt")
}

func TestEnd(t *testing.T) {
	tests := []struct {
		name    string
		bufLen  int
		off, n  int
		wantEnd int
		wantOK  bool
	}{
		{"empty range at start", 0, 0, 0, 0, true},
		{"whole buffer", 5, 0, 5, 5, true},
		{"empty range at end", 5, 5, 0, 5, true},
		{"one past end", 5, 1, 5, 0, false},
		{"offset past end", 5, 6, 0, 0, false},
		{"negative offset", 5, -1, 1, 0, false},
		{"negative length", 5, 1, -1, 0, false},
		{"overflowing length", 5, 1, math.MaxInt, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := End(tt.bufLen, tt.off, tt.n)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}

	got, ok := Slice(data, 1, 3)
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, got)
	require.Equal(t, 3, cap(got), "window must not expose bytes past its end")

	got[0] = 0xAA
	require.Equal(t, byte(0xAA), data[1], "Slice must alias the source")

	_, ok = Slice(data, 4, 2)
	require.False(t, ok, "Slice should fail when extending beyond len")
	require.False(t, Has(data, 2, 4))
	require.True(t, Has(data, 2, 1))

	_, ok = Slice(data, -1, 1)
	require.False(t, ok, "Slice should reject negative offset")
	_, ok = Slice(data, 1, -1)
	require.False(t, ok, "Slice should reject negative length")
}
