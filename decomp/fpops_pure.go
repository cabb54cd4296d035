//go:build inrange_purego

package decomp

// Arithmetic-only substitutes for the elementary operations, selected by the
// inrange_purego build tag. They use nothing beyond comparisons,
// multiplication and division, trading speed for portability.
//
// Limitation: signbit cannot see the sign of a NaN without bit access, so
// NaN signs are reported as positive here. Nothing in the range predicates
// depends on NaN sign; the limitation matters only to callers decomposing
// NaNs directly.

const (
	ilogbZero = -1 << 31  // matches math.MinInt32
	ilogbNaN  = 1<<31 - 1 // matches math.MaxInt32, also used for infinities
)

const maxFinite = 0x1.fffffffffffffp+1023

// signbit reports whether f is negative or a negative zero. NaN signs are
// not recoverable in pure arithmetic; signbit(NaN) is always false.
func signbit[F Float](f F) bool {
	if f != f {
		return false
	}

	return f < 0 || (f == 0 && 1/f < 0)
}

func ilogb(f float64) int {
	switch {
	case f == 0:
		return ilogbZero
	case maxFinite >= f && f >= -maxFinite:
		if f < 0 {
			f = -f
		}

		e := 0
		for ; f < 1; f *= 2 {
			e--
		}
		for ; f >= 2; f /= 2 {
			e++
		}

		return e
	default:
		// Infinity or NaN.
		return ilogbNaN
	}
}

func scalbn(f float64, n int) float64 {
	if f == 0 || !(maxFinite >= f && f >= -maxFinite) {
		return f
	}

	for ; n < 0; n++ {
		f /= 2
	}
	for ; n > 0; n-- {
		f *= 2
	}

	return f
}

func copysign(f, s float64) float64 {
	if signbit(f) == signbit(s) {
		return f
	}

	return -f
}

func inf() float64 {
	var zero float64

	return 1 / zero
}

func nan() float64 {
	var zero float64

	return zero / zero
}
