package decomp

import (
	"github.com/stravager/inrange/internal/assert"
)

// CountDigits returns the number of base-radix digits needed to represent
// the magnitude of i.
func CountDigits[I Integer](i I, radix int) int {
	return countDigits64(magnitude(i), uint64(radix))
}

// magnitude widens i to uint64 and takes its absolute value. Widening first
// keeps the most negative value of a signed type representable: its unsigned
// negation is its own magnitude.
func magnitude[I Integer](i I) uint64 {
	u := uint64(i)
	if i < 0 {
		u = -u
	}

	return u
}

func countDigits64(u, radix uint64) int {
	n := 1
	for u >= radix {
		n++
		u /= radix
	}

	return n
}

// FromInt decomposes i into at most prec base-radix digits. Digits beyond
// prec are dropped: the result is i truncated toward zero to prec digits of
// precision, with the true exponent (digit count minus one) recorded
// regardless. This deliberate truncation is how an integer extreme is
// expressed within a floating-point type's digit budget.
func FromInt[I Integer](i I, radix, prec int) Rep {
	assert.True(radix >= 2 && radix <= 255, "radix %d outside [2, 255]", radix)
	assert.True(prec >= 1 && prec <= MaxDigits,
		"digit capacity %d outside [1, %d]", prec, MaxDigits)

	x := Rep{
		radix: uint8(radix),
		prec:  uint8(prec),
	}

	if i == 0 {
		return x
	}

	x.form = Normal
	x.neg = i < 0

	u := magnitude(i)
	r := uint64(radix)

	n := countDigits64(u, r)
	x.exp = int32(n - 1)

	// Extract digits, least significant first.
	for d := n - 1; d >= 0; d-- {
		if d < prec {
			x.digits[d] = uint8(u % r)
		}
		u /= r
	}

	return x
}
