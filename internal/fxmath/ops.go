package fxmath

// Add16 performs component-wise addition over interleaved Q1.15 data:
// dst[i] = a[i] + b[i], wrapping on overflow. Complex addition
// distributes over the interleaved layout, so the same kernel serves
// real and imaginary parts.
func Add16(dst, a, b []int16) {
	active().Add16(dst, a, b)
}

// Sub16 performs component-wise subtraction over interleaved Q1.15
// data: dst[i] = a[i] - b[i], wrapping on overflow.
func Sub16(dst, a, b []int16) {
	active().Sub16(dst, a, b)
}

// Mul16 performs element-wise complex multiplication of interleaved
// Q1.15 data: (ac-bd, ad+bc), each product sum renormalized by >>15.
func Mul16(dst, a, b []int16) {
	active().Mul16(dst, a, b)
}

// MulReal16 scales each complex element of interleaved a by the
// matching Q1.15 scalar in s (len(s) = len(a)/2).
func MulReal16(dst, a []int16, s []int16) {
	active().MulReal16(dst, a, s)
}

// Scale16 multiplies every component of interleaved src by a single
// Q1.15 factor.
func Scale16(dst, src []int16, factor int16) {
	active().Scale16(dst, src, factor)
}

// Conj16 copies interleaved src to dst negating every imaginary
// component.
func Conj16(dst, src []int16) {
	active().Conj16(dst, src)
}

// Mag16 writes the Q1.15 magnitude (rounded, saturating at 0x7FFF) of
// each complex element of interleaved src into dst.
func Mag16(dst, src []int16) {
	active().Mag16(dst, src)
}

// MagSq16 writes the Q1.15 squared magnitude (truncating >>15) of each
// complex element of interleaved src into dst.
func MagSq16(dst, src []int16) {
	active().MagSq16(dst, src)
}

// DotProd16 returns the raw Q2.30 component accumulators of the
// complex dot product of two interleaved arrays.
func DotProd16(a, b []int16) (re, im int32) {
	return active().DotProd16(a, b)
}

// MaxMagSq16 returns the index and full-width squared magnitude of the
// element with the largest magnitude; ties resolve to the lowest
// index. Returns (-1, 0) for an empty array.
func MaxMagSq16(src []int16) (idx int, sq uint32) {
	return active().MaxMagSq16(src)
}

// Real16 deinterleaves the real components of src into dst.
func Real16(dst, src []int16) {
	active().Real16(dst, src)
}

// Imag16 deinterleaves the imaginary components of src into dst.
func Imag16(dst, src []int16) {
	active().Imag16(dst, src)
}

// Add32 performs component-wise addition over interleaved Q1.31 data,
// wrapping on overflow.
func Add32(dst, a, b []int32) {
	active().Add32(dst, a, b)
}

// Widen16To32 converts Q1.15 components to Q1.31 by aligning the
// binary point. Lossless.
func Widen16To32(dst []int32, src []int16) {
	active().Widen16To32(dst, src)
}

// Narrow32To16 converts Q1.31 components to Q1.15 by keeping the top
// 16 bits. Truncating, non-saturating.
func Narrow32To16(dst []int16, src []int32) {
	active().Narrow32To16(dst, src)
}
