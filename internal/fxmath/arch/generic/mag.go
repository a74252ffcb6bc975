package generic

import "math"

const maxQ15 = math.MaxInt16

// Mag16 writes the Q1.15 magnitude of each element of interleaved src
// into dst (len(dst) = len(src)/2).
//
// The squared sum needs up to 32 bits, so it is accumulated wider than
// the result type. The root is rounded to nearest and clamped to
// 0x7FFF: magnitudes of 1.0 and above (reachable when both components
// are near the format limits) are not representable in Q1.15.
// This is the portable scalar implementation.
func Mag16(dst, src []int16) {
	for n := range dst {
		re := int64(src[2*n])
		im := int64(src[2*n+1])
		m := int64(math.Sqrt(float64(re*re+im*im)) + 0.5)
		if m > maxQ15 {
			m = maxQ15
		}
		dst[n] = int16(m)
	}
}

// MagSq16 writes the Q1.15 squared magnitude of each element of
// interleaved src into dst: (re^2+im^2)>>15, truncating. Squared
// magnitudes of at least +1.0 wrap; reductions that need a reliable
// comparator use MaxMagSq16 instead, which keeps the full width.
// This is the portable scalar implementation.
func MagSq16(dst, src []int16) {
	for n := range dst {
		re := int32(src[2*n])
		im := int32(src[2*n+1])
		dst[n] = int16((re*re + im*im) >> 15)
	}
}
