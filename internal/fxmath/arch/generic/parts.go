package generic

// Real16 deinterleaves the real components of src into dst
// (len(dst) = len(src)/2).
// This is the portable scalar implementation.
func Real16(dst, src []int16) {
	for n := range dst {
		dst[n] = src[2*n]
	}
}

// Imag16 deinterleaves the imaginary components of src into dst
// (len(dst) = len(src)/2).
// This is the portable scalar implementation.
func Imag16(dst, src []int16) {
	for n := range dst {
		dst[n] = src[2*n+1]
	}
}
