package decomp

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestIntRoundTrip(t *testing.T) {
	// Values within float64's exactly-representable integer range; the
	// reconstruction must match the direct conversion bit for bit.
	type TC struct {
		name string
		i    int64
	}

	tcs := []TC{
		{"zero", 0},
		{"+1", 1},
		{"-1", -1},
		{"+63", 63},
		{"-2048", -2048},
		{"+123456789", 123456789},
		{"int32-max", math.MaxInt32},
		{"int32-min", math.MinInt32},
		{"2^53-1", 1<<53 - 1},
		{"2^53", 1 << 53},
		{"-2^53", -(1 << 53)},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x := FromInt(tc.i, 2, MaxDigits)
			got := ToFloat[float64](x)

			require.Equal(t, float64(tc.i), got, "rep: %s", spew.Sdump(x))
		})
	}

	t.Run("zero-is-unsigned", func(t *testing.T) {
		x := FromInt(int64(0), 2, MaxDigits)
		require.True(t, x.IsZero())
		require.False(t, x.Signbit())
	})
}

func TestIntTruncation(t *testing.T) {
	t.Run("beyond-float64-digits", func(t *testing.T) {
		// 2^53+3 needs 54 binary digits. Reconstruction truncates to
		// 53, giving 2^53+2; the direct conversion rounds to nearest,
		// giving 2^53+4. The decomposition must truncate.
		x := FromInt(int64(1<<53+3), 2, MaxDigits)
		got := ToFloat[float64](x)

		require.Equal(t, float64(1<<53+2), got)
		require.NotEqual(t, float64(1<<53+3), got)
	})

	t.Run("beyond-capacity", func(t *testing.T) {
		// 11 is 1011 in binary; two digits keep 10, dropping the low
		// bits: the value becomes 1000 (8). The true exponent is kept.
		x := FromInt(int64(11), 2, 2)

		require.Equal(t, int32(3), x.exp)
		require.Equal(t, 8.0, ToFloat[float64](x))
	})

	t.Run("most-negative", func(t *testing.T) {
		// The most negative value has no positive counterpart in its
		// own type; magnitude extraction must not overflow.
		x := FromInt(int64(math.MinInt64), 2, MaxDigits)

		require.True(t, x.Signbit())
		require.Equal(t, int32(63), x.exp)
		require.Equal(t, -0x1p63, ToFloat[float64](x))
	})
}

func TestCountDigits(t *testing.T) {
	type TC struct {
		name  string
		i     int64
		radix int
		want  int
	}

	tcs := []TC{
		{"zero", 0, 2, 1},
		{"one", 1, 2, 1},
		{"two", 2, 2, 2},
		{"three", 3, 2, 2},
		{"255", 255, 2, 8},
		{"256", 256, 2, 9},
		{"int64-max", math.MaxInt64, 2, 63},
		{"int64-min", math.MinInt64, 2, 64},
		{"minus-one", -1, 2, 1},
		{"zero-base10", 0, 10, 1},
		{"nine-base10", 9, 10, 1},
		{"ten-base10", 10, 10, 2},
		{"minus-123-base10", -123, 10, 3},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CountDigits(tc.i, tc.radix))
		})
	}

	t.Run("uint64-max", func(t *testing.T) {
		require.Equal(t, 64, CountDigits(uint64(math.MaxUint64), 2))
		require.Equal(t, 20, CountDigits(uint64(math.MaxUint64), 10))
	})
}

func TestFromIntBase10(t *testing.T) {
	// The representation is radix-generic even though Go's float types
	// are all binary.
	x := FromInt(int64(-2048), 10, MaxDigits)

	require.True(t, x.Signbit())
	require.Equal(t, int32(3), x.exp)
	require.Equal(t, []uint8{2, 0, 4, 8}, x.digits[:4])
}
