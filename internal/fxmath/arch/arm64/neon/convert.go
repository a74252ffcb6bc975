//go:build arm64 && !purego

package neon

// Widen16To32 converts Q1.15 components to Q1.31 (left shift by 16),
// four lanes per iteration. Lossless.
func Widen16To32(dst []int32, src []int16) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		dst[i+0] = int32(src[i+0]) << 16
		dst[i+1] = int32(src[i+1]) << 16
		dst[i+2] = int32(src[i+2]) << 16
		dst[i+3] = int32(src[i+3]) << 16
	}
	for ; i < len(src); i++ {
		dst[i] = int32(src[i]) << 16
	}
}

// Narrow32To16 converts Q1.31 components to Q1.15 (top 16 bits), four
// lanes per iteration. Truncating, non-saturating.
func Narrow32To16(dst []int16, src []int32) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		dst[i+0] = int16(src[i+0] >> 16)
		dst[i+1] = int16(src[i+1] >> 16)
		dst[i+2] = int16(src[i+2] >> 16)
		dst[i+3] = int16(src[i+3] >> 16)
	}
	for ; i < len(src); i++ {
		dst[i] = int16(src[i] >> 16)
	}
}
