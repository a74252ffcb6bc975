//go:build arm64 && !purego

package neon

// Real16 deinterleaves the real components of src into dst, four
// elements per iteration.
func Real16(dst, src []int16) {
	n := 0
	for ; n+4 <= len(dst); n += 4 {
		dst[n+0] = src[2*n+0]
		dst[n+1] = src[2*n+2]
		dst[n+2] = src[2*n+4]
		dst[n+3] = src[2*n+6]
	}
	for ; n < len(dst); n++ {
		dst[n] = src[2*n]
	}
}

// Imag16 deinterleaves the imaginary components of src into dst, four
// elements per iteration.
func Imag16(dst, src []int16) {
	n := 0
	for ; n+4 <= len(dst); n += 4 {
		dst[n+0] = src[2*n+1]
		dst[n+1] = src[2*n+3]
		dst[n+2] = src[2*n+5]
		dst[n+3] = src[2*n+7]
	}
	for ; n < len(dst); n++ {
		dst[n] = src[2*n+1]
	}
}
