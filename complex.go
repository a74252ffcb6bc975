package fixed

import "math"

// MaxQ15 is the largest representable Q1.15 value (just below +1.0).
const MaxQ15 = math.MaxInt16

// MinQ15 is the smallest representable Q1.15 value (-1.0).
const MinQ15 = math.MinInt16

// MaxQ31 is the largest representable Q1.31 value (just below +1.0).
const MaxQ31 = math.MaxInt32

// MinQ31 is the smallest representable Q1.31 value (-1.0).
const MinQ31 = math.MinInt32

// Complex16 is a fixed-point complex number with Q1.15 real and
// imaginary parts. It is a plain value type and is copied by value.
type Complex16 struct {
	Re int16
	Im int16
}

// Complex32 is a fixed-point complex number with Q1.31 real and
// imaginary parts. It is a plain value type and is copied by value.
type Complex32 struct {
	Re int32
	Im int32
}

// Q15ToFloat converts a Q1.15 value to its floating-point equivalent.
func Q15ToFloat(v int16) float64 {
	return float64(v) / (1 << 15)
}

// FloatToQ15 converts a floating-point value in [-1, 1) to Q1.15,
// rounding to nearest and saturating at the format limits.
func FloatToQ15(f float64) int16 {
	v := math.Round(f * (1 << 15))
	if v > MaxQ15 {
		return MaxQ15
	}
	if v < MinQ15 {
		return MinQ15
	}
	return int16(v)
}

// Q31ToFloat converts a Q1.31 value to its floating-point equivalent.
func Q31ToFloat(v int32) float64 {
	return float64(v) / (1 << 31)
}

// FloatToQ31 converts a floating-point value in [-1, 1) to Q1.31,
// rounding to nearest and saturating at the format limits.
func FloatToQ31(f float64) int32 {
	v := math.Round(f * (1 << 31))
	if v > MaxQ31 {
		return MaxQ31
	}
	if v < MinQ31 {
		return MinQ31
	}
	return int32(v)
}

// WidenQ15 converts a Q1.15 value to Q1.31 by aligning the binary
// point. The conversion is lossless.
func WidenQ15(v int16) int32 {
	return int32(v) << 16
}

// NarrowQ31 converts a Q1.31 value to Q1.15 by keeping the top 16 bits
// of the representation. Fractional precision below 2^-15 is dropped;
// the conversion truncates and does not saturate.
func NarrowQ31(v int32) int16 {
	return int16(v >> 16)
}

// magQ15 returns round(sqrt(re^2+im^2)) on the raw representations,
// clamped to MaxQ15. The squared sum needs more than 32 bits for the
// most negative component pair, so it is accumulated in int64.
func magQ15(re, im int16) int16 {
	s := int64(re)*int64(re) + int64(im)*int64(im)
	m := int64(math.Sqrt(float64(s)) + 0.5)
	if m > MaxQ15 {
		return MaxQ15
	}
	return int16(m)
}

// magSqQ15 returns (re^2+im^2)>>15 truncated to Q1.15. Squared
// magnitudes of at least +1.0 (only reachable when both components are
// near the format limits) wrap; comparisons should use the full-width
// squared sum instead, as the array reductions do.
func magSqQ15(re, im int16) int16 {
	s := int32(re)*int32(re) + int32(im)*int32(im)
	return int16(s >> 15)
}

// Magnitude returns the magnitude of the complex number in Q1.15.
//
// The result is rounded to nearest and clamped to MaxQ15. Clamping
// matters for magnitudes of at least +1.0, e.g. both components at the
// format limits; the format cannot represent sqrt(2).
func (c Complex16) Magnitude() int16 {
	return magQ15(c.Re, c.Im)
}

// MagnitudeSquared returns the squared magnitude in Q1.15. It avoids
// the square root and is the preferred comparator.
func (c Complex16) MagnitudeSquared() int16 {
	return magSqQ15(c.Re, c.Im)
}

// Phase returns the phase of the complex number in radians, in
// (-pi, pi]. Trigonometric inversion is not performed in fixed point;
// this is the intentional fixed-to-floating-point boundary.
func (c Complex16) Phase() float64 {
	return math.Atan2(float64(c.Im), float64(c.Re))
}

// SetPolar sets the complex number from a Q1.15 magnitude and a phase
// in radians.
//
// Components are computed as int16(m*cos(p) + 0.5): adding 0.5 before
// truncating toward zero rounds half away from zero for positive
// products but toward zero for negative ones.
func (c *Complex16) SetPolar(magnitude int16, phase float64) {
	c.Re = int16(float64(magnitude)*math.Cos(phase) + 0.5)
	c.Im = int16(float64(magnitude)*math.Sin(phase) + 0.5)
}

// SetPhase sets the phase of the complex number, keeping the magnitude
// unaltered. The current magnitude is re-derived from the components,
// so repeated calls accumulate quantization drift.
func (c *Complex16) SetPhase(phase float64) {
	c.SetPolar(c.Magnitude(), phase)
}

// SetMagnitude sets the magnitude of the complex number, keeping the
// phase unaltered. Subject to the same quantization drift as SetPhase.
func (c *Complex16) SetMagnitude(magnitude int16) {
	c.SetPolar(magnitude, c.Phase())
}

// Conj returns the complex conjugate. Note that negating an imaginary
// part of MinQ15 wraps back to MinQ15; -1.0 has no positive
// counterpart in the format.
func (c Complex16) Conj() Complex16 {
	return Complex16{Re: c.Re, Im: -c.Im}
}

// Widen converts the complex number to Q1.31 components. The
// conversion is lossless.
func (c Complex16) Widen() Complex32 {
	return Complex32{Re: WidenQ15(c.Re), Im: WidenQ15(c.Im)}
}

// Narrow converts the complex number to Q1.15 components by truncating
// each part to the top 16 bits. Lossy and non-saturating.
func (c Complex32) Narrow() Complex16 {
	return Complex16{Re: NarrowQ31(c.Re), Im: NarrowQ31(c.Im)}
}
