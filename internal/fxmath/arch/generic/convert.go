package generic

// Widen16To32 converts Q1.15 components to Q1.31 by aligning the
// binary point (left shift by 16). Lossless.
// This is the portable scalar implementation.
func Widen16To32(dst []int32, src []int16) {
	for i := range src {
		dst[i] = int32(src[i]) << 16
	}
}

// Narrow32To16 converts Q1.31 components to Q1.15 by keeping the top
// 16 bits of the representation. Truncating, non-saturating: the
// widening direction is lossless, the narrowing direction is not.
// This is the portable scalar implementation.
func Narrow32To16(dst []int16, src []int32) {
	for i := range src {
		dst[i] = int16(src[i] >> 16)
	}
}
