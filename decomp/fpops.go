//go:build !inrange_purego

package decomp

import (
	"math"
	"unsafe"
)

// The elementary operations behind decomposition: sign test, base-2 exponent
// extraction, base-2 scaling, sign transfer, and the special values. These
// are the accurate implementations on top of the math package and bit-level
// float access; see fpops_pure.go for the arithmetic-only substitutes.
//
// All but signbit operate on the internal float64 canonical form, which
// carries every float32 value exactly.

// signbit reports the raw sign bit of f, including -0 and negative NaNs.
func signbit[F Float](f F) bool {
	if unsafe.Sizeof(f) == 4 {
		return math.Float32bits(*(*float32)(unsafe.Pointer(&f)))>>31 != 0
	}

	return math.Float64bits(*(*float64)(unsafe.Pointer(&f)))>>63 != 0
}

// ilogb returns the base-2 exponent of f: the smallest e such that
// 2^e <= |f| < 2^(e+1). Sentinels follow math.Ilogb: math.MinInt32 for zero,
// math.MaxInt32 for infinities and NaN.
func ilogb(f float64) int {
	return math.Ilogb(f)
}

// scalbn returns f × 2^n. Zero, infinities and NaN pass through unchanged.
func scalbn(f float64, n int) float64 {
	return math.Ldexp(f, n)
}

// copysign returns f with the sign of s.
func copysign(f, s float64) float64 {
	return math.Copysign(f, s)
}

func inf() float64 {
	return math.Inf(1)
}

func nan() float64 {
	return math.NaN()
}
