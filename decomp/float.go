package decomp

import (
	"github.com/stravager/inrange/internal/assert"
)

// classify places f into one of the five forms using magnitude thresholds
// from its type's traits.
func classify[F Float](f F, lim Limits) Form {
	v := float64(f)

	switch {
	case v == 0:
		return Zero
	case -lim.MinNormal < v && v < lim.MinNormal:
		return Subnormal
	case lim.Lowest <= v && v <= lim.Max:
		return Normal
	case v == v:
		return Inf
	default:
		return NaN
	}
}

// FromFloat decomposes f into prec digits in F's radix. The decomposition is
// exact whenever prec covers F's mantissa digit count; a smaller prec drops
// trailing digits (truncation toward zero, no rounding).
func FromFloat[F Float](f F, prec int) Rep {
	lim := LimitsOf[F]()

	assert.True(prec >= 1 && prec <= MaxDigits,
		"digit capacity %d outside [1, %d]", prec, MaxDigits)

	x := Rep{
		form:  classify(f, lim),
		neg:   signbit(f),
		radix: uint8(lim.Radix),
		prec:  uint8(prec),
	}

	// Digit extraction below handles exactly the five forms.
	assert.True(x.form <= NaN, "unknown classification %d", x.form)

	if x.form != Subnormal && x.form != Normal {
		return x
	}

	// Work on the absolute value in float64, which holds any float32
	// exactly.
	v := float64(f)
	if x.neg {
		v = -v
	}

	e := ilogb(v)
	x.exp = int32(e)

	// Normalize into [1, radix).
	v = scalbn(v, -e)

	// Extract digits, most significant first. Each digit is the integer
	// part of an exact intermediate, so no rounding occurs.
	n := min(lim.Digits, prec)
	for d := 0; d < n; d++ {
		dig := int(v)
		x.digits[d] = uint8(dig)

		v -= float64(dig)
		if v == 0 {
			break
		}
		v *= float64(lim.Radix)
	}

	return x
}

// ToFloat reconstructs x as a value of F, which must have x's radix. Digits
// beyond F's mantissa digit count are dropped (truncation toward zero). An
// exponent at or above F's maximum yields F's infinity instead of an
// out-of-range scale.
//
// ToFloat exists to materialize comparison bounds as ordinary values; the
// comparison path itself never reassembles a number.
func ToFloat[F Float](x Rep) F {
	lim := LimitsOf[F]()

	assert.True(int(x.radix) == lim.Radix,
		"radix mismatch: decomposition %d, target %d", x.radix, lim.Radix)

	var f float64

	switch x.form {
	case Zero:
		f = 0
	case Subnormal, Normal:
		if int(x.exp) >= lim.MaxExp {
			assert.True(lim.HasInf, "target type has no infinity")
			f = inf()

			break
		}

		n := min(lim.Digits, int(x.prec))
		for d := 0; d < n; d++ {
			f += scalbn(float64(x.digits[d]), -d)
		}
		f = scalbn(f, int(x.exp))
	case Inf:
		assert.True(lim.HasInf, "target type has no infinity")
		f = inf()
	case NaN:
		assert.True(lim.HasNaN, "target type has no NaN")
		f = nan()
	default:
		assert.True(false, "unknown form %d", x.form)
	}

	if x.neg {
		f = copysign(f, -1)
	}

	return F(f)
}
