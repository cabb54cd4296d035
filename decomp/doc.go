// Package decomp provides an exact, digit-level decomposition of numeric
// values, used to compare the magnitudes of two types' extremes without ever
// performing a rounding conversion.
//
// The problem it solves: converting an integer type's extreme into a
// floating-point type (or the reverse) can round to a value one step outside
// the valid range, so "convert then compare" misjudges the boundary. On a
// typical system:
//
//	math.MaxInt32           0x7fffffff (2^31 - 1)
//	float32 radix           2
//	float32 mantissa digits 24
//
// float32(math.MaxInt32) rounds to nearest, producing 0x80000000 (2^31),
// just outside int32's range. Instead of converting, both sides of a range
// check are decomposed into an explicit digit array and compared digit by
// digit.
//
// # Representation
//
// A decomposed value (Rep) holds a classification, a sign bit, a normalized
// digit array (most significant first, leading digit nonzero) and a
// base-radix exponent, such that for finite nonzero values:
//
//	value = ± d[0].d[1]d[2]... × radix^exp
//
// The digit capacity is chosen per use: at least the source type's mantissa
// digit count for floating-point sources (making the decomposition exact),
// or the digit count of the integer extremes for integer sources. A capacity
// smaller than a value's true digit count truncates toward zero; this is the
// deliberate precision-loss mechanism used to express an integer extreme in
// a floating-point type's smaller digit budget.
//
// A Rep is a pure value type: constructed once, compared or reconstructed,
// never mutated. It has no pointers and is freely copyable.
//
// # Comparison
//
// Less is an exact total order over non-NaN values (NaN is unordered and
// compares false against everything, itself included). It never reassembles
// a floating-point number: infinities, signed zeros and signs are ordered
// structurally, then exponents, then digits lexicographically.
//
// # Fallback arithmetic
//
// The elementary floating-point operations (sign test, classification,
// exponent extraction, scaling) normally use the math package and bit-level
// access. Building with the inrange_purego tag substitutes pure-arithmetic
// equivalents that use only comparisons, multiplication and division. The
// substitutes cannot recover the sign of a NaN and exist for environments
// where the accurate routines are unavailable; the regular test suite run
// under the tag exercises them.
package decomp
