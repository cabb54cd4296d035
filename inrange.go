// Package inrange answers exactly whether a numeric value of one type falls
// within the representable range of another, without ever letting a rounding
// conversion decide the answer.
//
// The trap it closes: float32(math.MaxInt32) rounds up to 2^31, one step
// outside int32's range, so the obvious "convert and compare" check accepts
// values that overflow. Each predicate here instead decomposes the two
// types' extremes into exact digit arrays (package decomp), selects the
// tighter pair of bounds by exact comparison, materializes those bounds in
// the query's own type, and reduces the runtime check to two ordinary
// comparisons.
//
// All predicates accept every value of their input type: NaN is simply out
// of range (false), as are infinities. The bound computation is pure and
// allocation-free; the functions are safe for unlimited concurrent use.
package inrange

import (
	"github.com/stravager/inrange/decomp"
)

// Int reports whether the floating-point value f is within the representable
// range of the integer type I.
//
// The answer is about range, not integrality: a fractional value strictly
// between I's bounds is in range.
func Int[I decomp.Integer, F decomp.Float](f F) bool {
	lo, hi := IntBounds[I, F]()

	return lo <= f && f <= hi
}

// IntBounds returns the tightest bounds of integer type I that are
// representable in F: the largest lower and smallest upper bound of the two
// types' ranges, expressed exactly in F. A value of F is in I's range iff it
// lies in [lo, hi].
func IntBounds[I decomp.Integer, F decomp.Float]() (lo, hi F) {
	lim := decomp.LimitsOf[F]()
	imin, imax := decomp.IntLimitsOf[I]()

	// The integer extremes are truncated, when needed, to F's digit
	// budget; truncation toward zero keeps them inside I's range.
	prec := lim.Digits

	dimin := decomp.FromInt(imin, lim.Radix, prec)
	dimax := decomp.FromInt(imax, lim.Radix, prec)
	dfmin := decomp.FromFloat(F(lim.Lowest), prec)
	dfmax := decomp.FromFloat(F(lim.Max), prec)

	lo = decomp.ToFloat[F](maxRep(dfmin, dimin))
	hi = decomp.ToFloat[F](minRep(dfmax, dimax))

	return lo, hi
}

// Float reports whether the integer value i is within the finite range of
// the floating-point type F.
func Float[F decomp.Float, I decomp.Integer](i I) bool {
	lo, hi := FloatBounds[F, I]()

	return lo <= i && i <= hi
}

// FloatBounds returns the tightest bounds of floating-point type F's finite
// range expressed in the integer type I, clamped to I's own extremes when
// F's range is the larger (the common case). A value of I is in F's finite
// range iff it lies in [lo, hi].
func FloatBounds[F decomp.Float, I decomp.Integer]() (lo, hi I) {
	lim := decomp.LimitsOf[F]()
	imin, imax := decomp.IntLimitsOf[I]()

	// Enough digits for every finite value of either type.
	prec := lim.Digits
	if n := decomp.CountDigits(imin, lim.Radix); n > prec {
		prec = n
	}
	if n := decomp.CountDigits(imax, lim.Radix); n > prec {
		prec = n
	}

	dimin := decomp.FromInt(imin, lim.Radix, prec)
	dimax := decomp.FromInt(imax, lim.Radix, prec)
	dfmin := decomp.FromFloat(F(lim.Lowest), prec)
	dfmax := decomp.FromFloat(F(lim.Max), prec)

	lo, hi = imin, imax
	if dimin.Less(dfmin) {
		// F's lowest is above I's: it is exact in I by construction,
		// so the conversion cannot overflow.
		lo = I(lim.Lowest)
	}
	if dfmax.Less(dimax) {
		hi = I(lim.Max)
	}

	return lo, hi
}

// FloatToFloat reports whether the value f of floating-point type Src is
// within the finite range of floating-point type Dst. Src and Dst must share
// a radix; Go's floating-point types are all radix 2, so any instantiation
// satisfies this.
//
// Infinities and NaN are outside every finite range and yield false, even
// though Dst can represent them; see package conv for a conversion that
// passes them through.
func FloatToFloat[Dst, Src decomp.Float](f Src) bool {
	lo, hi := FloatToFloatBounds[Dst, Src]()

	return lo <= f && f <= hi
}

// FloatToFloatBounds returns the tightest finite bounds of Dst expressed
// exactly in Src. A value of Src is in Dst's finite range iff it lies in
// [lo, hi].
func FloatToFloatBounds[Dst, Src decomp.Float]() (lo, hi Src) {
	dl := decomp.LimitsOf[Dst]()
	sl := decomp.LimitsOf[Src]()

	prec := max(dl.Digits, sl.Digits)

	dmin := decomp.FromFloat(Dst(dl.Lowest), prec)
	dmax := decomp.FromFloat(Dst(dl.Max), prec)
	smin := decomp.FromFloat(Src(sl.Lowest), prec)
	smax := decomp.FromFloat(Src(sl.Max), prec)

	lo = decomp.ToFloat[Src](maxRep(dmin, smin))
	hi = decomp.ToFloat[Src](minRep(dmax, smax))

	return lo, hi
}

func maxRep(x, y decomp.Rep) decomp.Rep {
	if x.Less(y) {
		return y
	}

	return x
}

func minRep(x, y decomp.Rep) decomp.Rep {
	if y.Less(x) {
		return y
	}

	return x
}
