package conv

import (
	"math"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/stravager/inrange"
	"github.com/stravager/inrange/decomp"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("conv")

// Sentinel errors. Returned values are trace-wrapped; match with errors.Is.
var (
	ErrNaN        = Error.New("not a number")
	ErrOutOfRange = Error.New("out of range")
)

// Int converts f to the integer type I, truncating any fractional part
// toward zero. It fails with ErrNaN for NaN and ErrOutOfRange for values
// outside I's range, including infinities.
func Int[I decomp.Integer, F decomp.Float](f F) (I, error) {
	if f != f {
		return 0, oops.Trace(ErrNaN)
	}

	if !inrange.Int[I](f) {
		return 0, oops.Trace(ErrOutOfRange)
	}

	return I(f), nil
}

// Float converts i to the floating-point type F, rounding if i has more
// digits than F's mantissa holds. It fails with ErrOutOfRange when i is
// outside F's finite range, which cannot happen for Go's float types but is
// checked for symmetry with narrower formats.
func Float[F decomp.Float, I decomp.Integer](i I) (F, error) {
	if !inrange.Float[F](i) {
		return 0, oops.Trace(ErrOutOfRange)
	}

	return F(i), nil
}

// FloatToFloat converts f to the floating-point type Dst. NaN and
// infinities are representable in every supported Dst and pass through;
// finite values outside Dst's range fail with ErrOutOfRange.
func FloatToFloat[Dst, Src decomp.Float](f Src) (Dst, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dst(f), nil
	}

	if !inrange.FloatToFloat[Dst](f) {
		return 0, oops.Trace(ErrOutOfRange)
	}

	return Dst(f), nil
}

// ClampInt converts f to the integer type I, saturating to I's extremes
// when f is out of range. NaN clamps to zero.
func ClampInt[I decomp.Integer, F decomp.Float](f F) I {
	if f != f {
		return 0
	}

	lo, hi := inrange.IntBounds[I, F]()
	imin, imax := decomp.IntLimitsOf[I]()

	switch {
	case f < lo:
		// Anything below the lowest I value representable in F is
		// below all of I.
		return imin
	case f > hi:
		return imax
	default:
		return I(f)
	}
}

// ClampFloat converts i to the floating-point type F, saturating to F's
// finite extremes when i is out of range (impossible for Go's float types;
// kept for symmetry with narrower formats).
func ClampFloat[F decomp.Float, I decomp.Integer](i I) F {
	lo, hi := inrange.FloatBounds[F, I]()

	switch {
	case i < lo:
		return F(lo)
	case i > hi:
		return F(hi)
	default:
		return F(i)
	}
}

// ClampFloatToFloat converts f to the floating-point type Dst, saturating
// finite values to Dst's finite extremes. NaN and infinities pass through.
func ClampFloatToFloat[Dst, Src decomp.Float](f Src) Dst {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dst(f)
	}

	lo, hi := inrange.FloatToFloatBounds[Dst, Src]()

	switch {
	case f < lo:
		return Dst(lo)
	case f > hi:
		return Dst(hi)
	default:
		return Dst(f)
	}
}
