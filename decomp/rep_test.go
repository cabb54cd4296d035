package decomp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLessAgreesWithFloatOrder(t *testing.T) {
	// Strictly increasing, so vals[i] < vals[j] iff i < j. Covers
	// infinities, sign changes, exponent ordering and digit ordering on
	// both sides of zero.
	vals := []float64{
		math.Inf(-1),
		-math.MaxFloat64,
		-2,
		-1.75,
		-1.5,
		-1,
		-0x1p-1022,
		-math.SmallestNonzeroFloat64,
		0,
		math.SmallestNonzeroFloat64,
		0x1p-1022,
		1,
		1.5,
		1.75,
		2,
		math.MaxFloat64,
		math.Inf(1),
	}

	reps := make([]Rep, len(vals))
	for i, v := range vals {
		reps[i] = FromFloat(v, 53)
	}

	for i := range vals {
		for j := range vals {
			require.Equal(t, i < j, reps[i].Less(reps[j]),
				"vals[%d]=%v vals[%d]=%v", i, vals[i], j, vals[j])
		}
	}
}

func TestLessSignedZero(t *testing.T) {
	pz := FromFloat(0.0, 53)
	nz := FromFloat(math.Copysign(0, -1), 53)
	pos := FromFloat(1.0, 53)
	neg := FromFloat(-1.0, 53)

	// The two zeros are equal to each other but ordered against nonzero
	// values.
	require.False(t, pz.Less(nz))
	require.False(t, nz.Less(pz))

	require.True(t, nz.Less(pos))
	require.True(t, neg.Less(nz))
	require.False(t, pos.Less(nz))
	require.False(t, nz.Less(neg))
}

func TestLessNaNUnordered(t *testing.T) {
	nan := FromFloat(math.NaN(), 53)

	others := []Rep{
		FromFloat(math.Inf(-1), 53),
		FromFloat(-1.0, 53),
		FromFloat(0.0, 53),
		FromFloat(1.0, 53),
		FromFloat(math.Inf(1), 53),
		nan,
	}

	for i, o := range others {
		require.False(t, nan.Less(o), "nan < others[%d]", i)
		require.False(t, o.Less(nan), "others[%d] < nan", i)
	}
}

func TestLessMixedSources(t *testing.T) {
	// Integer- and float-sourced decompositions share one order.
	di := FromInt(int32(12345), 2, 53)
	df := FromFloat(12345.5, 53)

	require.True(t, di.Less(df))
	require.False(t, df.Less(di))

	dn := FromInt(int32(-12345), 2, 53)
	dfn := FromFloat(-12345.5, 53)

	require.True(t, dfn.Less(dn))
	require.False(t, dn.Less(dfn))
}
