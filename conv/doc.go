// Package conv provides checked and clamping numeric conversions built on
// the range predicates of package inrange.
//
// The checked converters (Int, Float, FloatToFloat) return ErrOutOfRange
// when the value does not fit the target type's range, and ErrNaN when an
// integer target is asked to hold a NaN, instead of silently wrapping or
// saturating the way a plain Go conversion would.
//
// The clamping converters (ClampInt, ClampFloat, ClampFloatToFloat)
// saturate to the target's extremes instead of failing, for callers feeding
// counters or metrics where truncation at the boundary is acceptable.
//
// Range checks decide only membership: an in-range fractional value
// converted to an integer type is truncated toward zero, and an in-range
// integer converted to a floating-point type may round, exactly as the
// corresponding Go conversions do.
package conv
