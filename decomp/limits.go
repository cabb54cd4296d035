package decomp

import (
	"math"
	"unsafe"
)

// Limits describes a floating-point type's numeric traits. Extremes are
// carried as float64, which represents every float32 value exactly.
type Limits struct {
	// Radix is the base of the type's positional representation.
	Radix int

	// Digits is the mantissa digit count in base Radix, counting the
	// implicit leading digit.
	Digits int

	// MaxExp is one past the base-Radix exponent of the largest finite
	// value: scaling a normalized mantissa by MaxExp or more overflows.
	MaxExp int

	// Max, Lowest and MinNormal are the largest finite value, the most
	// negative finite value, and the smallest positive normal value.
	Max       float64
	Lowest    float64
	MinNormal float64

	// HasInf and HasNaN report whether the type can represent infinities
	// and NaNs. Go's float types always can; the traits are kept explicit
	// so reconstruction can guard its contract.
	HasInf bool
	HasNaN bool
}

var (
	binary32 = Limits{
		Radix:     2,
		Digits:    24,
		MaxExp:    128,
		Max:       math.MaxFloat32,
		Lowest:    -math.MaxFloat32,
		MinNormal: 0x1p-126,
		HasInf:    true,
		HasNaN:    true,
	}

	binary64 = Limits{
		Radix:     2,
		Digits:    53,
		MaxExp:    1024,
		Max:       math.MaxFloat64,
		Lowest:    -math.MaxFloat64,
		MinNormal: 0x1p-1022,
		HasInf:    true,
		HasNaN:    true,
	}
)

// LimitsOf returns the numeric traits of F.
func LimitsOf[F Float]() Limits {
	var z F
	if unsafe.Sizeof(z) == 4 {
		return binary32
	}

	return binary64
}

// IntLimitsOf returns the lowest and highest values of I.
func IntLimitsOf[I Integer]() (lo, hi I) {
	var z I

	bits := unsafe.Sizeof(z) * 8
	umax := ^uint64(0) >> (64 - bits)

	if z-1 < 0 { // signed
		hi = I(umax >> 1)
		lo = -hi - 1

		return lo, hi
	}

	return 0, I(umax)
}
