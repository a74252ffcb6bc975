//go:build arm64 && !purego

package neon

// Mul16 performs element-wise complex multiplication of interleaved
// Q1.15 data, two complex elements per iteration. Same product and
// renormalization order as the portable implementation, so results
// are bit-identical.
func Mul16(dst, a, b []int16) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		ar0, ai0 := int32(a[i]), int32(a[i+1])
		br0, bi0 := int32(b[i]), int32(b[i+1])
		ar1, ai1 := int32(a[i+2]), int32(a[i+3])
		br1, bi1 := int32(b[i+2]), int32(b[i+3])
		dst[i+0] = int16((ar0*br0 - ai0*bi0) >> 15)
		dst[i+1] = int16((ar0*bi0 + ai0*br0) >> 15)
		dst[i+2] = int16((ar1*br1 - ai1*bi1) >> 15)
		dst[i+3] = int16((ar1*bi1 + ai1*br1) >> 15)
	}
	for ; i+1 < len(dst); i += 2 {
		ar, ai := int32(a[i]), int32(a[i+1])
		br, bi := int32(b[i]), int32(b[i+1])
		dst[i] = int16((ar*br - ai*bi) >> 15)
		dst[i+1] = int16((ar*bi + ai*br) >> 15)
	}
}

// MulReal16 scales each complex element of interleaved a by the
// matching Q1.15 scalar in s, two complex elements per iteration.
func MulReal16(dst, a []int16, s []int16) {
	n := 0
	for ; n+2 <= len(s); n += 2 {
		f0, f1 := int32(s[n]), int32(s[n+1])
		dst[2*n+0] = int16((int32(a[2*n+0]) * f0) >> 15)
		dst[2*n+1] = int16((int32(a[2*n+1]) * f0) >> 15)
		dst[2*n+2] = int16((int32(a[2*n+2]) * f1) >> 15)
		dst[2*n+3] = int16((int32(a[2*n+3]) * f1) >> 15)
	}
	for ; n < len(s); n++ {
		f := int32(s[n])
		dst[2*n] = int16((int32(a[2*n]) * f) >> 15)
		dst[2*n+1] = int16((int32(a[2*n+1]) * f) >> 15)
	}
}

// Scale16 multiplies every component of interleaved src by a single
// Q1.15 factor, four lanes per iteration.
func Scale16(dst, src []int16, factor int16) {
	f := int32(factor)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i+0] = int16((int32(src[i+0]) * f) >> 15)
		dst[i+1] = int16((int32(src[i+1]) * f) >> 15)
		dst[i+2] = int16((int32(src[i+2]) * f) >> 15)
		dst[i+3] = int16((int32(src[i+3]) * f) >> 15)
	}
	for ; i < len(dst); i++ {
		dst[i] = int16((int32(src[i]) * f) >> 15)
	}
}

// Conj16 copies interleaved src to dst negating every imaginary
// component, two complex elements per iteration.
func Conj16(dst, src []int16) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i+0] = src[i+0]
		dst[i+1] = -src[i+1]
		dst[i+2] = src[i+2]
		dst[i+3] = -src[i+3]
	}
	for ; i+1 < len(dst); i += 2 {
		dst[i] = src[i]
		dst[i+1] = -src[i+1]
	}
}
