package decomp

import (
	"golang.org/x/exp/constraints"

	"github.com/stravager/inrange/internal/assert"
)

// Integer is the set of integer types a value can be range-checked against.
type Integer interface {
	constraints.Integer
}

// Float is the set of floating-point types a value can be range-checked
// against.
type Float interface {
	constraints.Float
}

// MaxDigits is the digit capacity of a Rep. It covers every supported
// instantiation: float64 needs 53 binary digits and uint64 needs 64.
const MaxDigits = 64

// Form is the classification of a decomposed value.
type Form uint8

// Forms, in the order of the IEEE 754 classification.
const (
	Zero Form = iota
	Subnormal
	Normal
	Inf
	NaN
)

// Rep is a decomposed numeric value: classification, sign, normalized digits
// (most significant first, leading digit nonzero for finite nonzero values)
// and base-radix exponent. Digits and exponent are meaningful only for the
// Subnormal and Normal forms.
type Rep struct {
	form   Form
	neg    bool
	radix  uint8
	prec   uint8
	exp    int32
	digits [MaxDigits]uint8
}

// IsNaN reports whether x is a NaN.
func (x Rep) IsNaN() bool {
	return x.form == NaN
}

// IsInf reports whether x is an infinity of either sign.
func (x Rep) IsInf() bool {
	return x.form == Inf
}

// IsZero reports whether x is a zero of either sign.
func (x Rep) IsZero() bool {
	return x.form == Zero
}

// Signbit reports whether x carries a negative sign, including -0 and -Inf.
func (x Rep) Signbit() bool {
	return x.neg
}

func (x Rep) isPos() bool {
	return !x.neg && !x.IsNaN() && !x.IsZero()
}

func (x Rep) isNeg() bool {
	return x.neg && !x.IsNaN() && !x.IsZero()
}

func (x Rep) isPosInf() bool {
	return !x.neg && x.IsInf()
}

func (x Rep) isNegInf() bool {
	return x.neg && x.IsInf()
}

// Less reports whether x is strictly below y. It is a strict weak order over
// non-NaN values; if either operand is a NaN the result is false, matching
// the convention that a NaN can never be a range bound. Signed zeros compare
// equal to each other and order normally against nonzero values.
//
// Both operands must come from decompositions with the same radix and digit
// capacity.
func (x Rep) Less(y Rep) bool {
	assert.True(x.radix == y.radix && x.prec == y.prec,
		"comparing mismatched decompositions: radix %d/%d prec %d/%d",
		x.radix, y.radix, x.prec, y.prec)

	switch {
	case x.IsNaN() || y.IsNaN():
		return false
	case x.IsInf() || y.IsInf():
		return (x.isNegInf() && !y.isNegInf()) || // x == -Inf && y > -Inf
			(!x.isPosInf() && y.isPosInf()) // x < +Inf && y == +Inf
	case x.IsZero() || y.IsZero():
		return (x.IsZero() && y.isPos()) || // x == 0 && y > 0
			(x.isNeg() && y.IsZero()) // x < 0 && y == 0
	case x.isNeg() != y.isNeg():
		return x.isNeg()
	case x.exp != y.exp:
		// For two negatives the larger exponent is the smaller value.
		if x.isNeg() {
			return x.exp > y.exp
		}
		return x.exp < y.exp
	default:
		for d := 0; d < int(x.prec); d++ {
			if x.digits[d] == y.digits[d] {
				continue
			}
			if x.isNeg() {
				return x.digits[d] > y.digits[d]
			}
			return x.digits[d] < y.digits[d]
		}

		return false
	}
}
