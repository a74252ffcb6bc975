package generic

// Mul16 performs element-wise complex multiplication of interleaved
// Q1.15 data: dst = (ac-bd, ad+bc), each product sum renormalized by
// an arithmetic right shift of 15. Results outside the Q1.15 range
// wrap; the library does not saturate multiplications.
// This is the portable scalar implementation.
func Mul16(dst, a, b []int16) {
	for i := 0; i+1 < len(dst); i += 2 {
		ar, ai := int32(a[i]), int32(a[i+1])
		br, bi := int32(b[i]), int32(b[i+1])
		dst[i] = int16((ar*br - ai*bi) >> 15)
		dst[i+1] = int16((ar*bi + ai*br) >> 15)
	}
}

// MulReal16 scales each complex element of interleaved a by the
// matching Q1.15 scalar in s; real and imaginary parts are scaled
// identically. len(s) must be len(a)/2.
// This is the portable scalar implementation.
func MulReal16(dst, a []int16, s []int16) {
	for n := range s {
		f := int32(s[n])
		dst[2*n] = int16((int32(a[2*n]) * f) >> 15)
		dst[2*n+1] = int16((int32(a[2*n+1]) * f) >> 15)
	}
}

// Scale16 multiplies every component of interleaved src by a single
// Q1.15 factor, renormalized by >>15. Overflow wraps.
// This is the portable scalar implementation.
func Scale16(dst, src []int16, factor int16) {
	f := int32(factor)
	for i := range dst {
		dst[i] = int16((int32(src[i]) * f) >> 15)
	}
}

// Conj16 copies interleaved src to dst, negating every imaginary
// component. Negating an imaginary part of -32768 wraps back to
// -32768; -1.0 has no positive counterpart in Q1.15.
// This is the portable scalar implementation.
func Conj16(dst, src []int16) {
	for i := 0; i+1 < len(dst); i += 2 {
		dst[i] = src[i]
		dst[i+1] = -src[i+1]
	}
}
