package generic

// DotProd16 accumulates the complex dot product of two interleaved
// Q1.15 arrays: re = sum(ac-bd), im = sum(ad+bc), keeping the raw
// Q2.30 products in 32-bit accumulators. The accumulators wrap for
// long full-scale inputs.
// This is the portable scalar implementation.
func DotProd16(a, b []int16) (re, im int32) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i+1 < n; i += 2 {
		ar, ai := int32(a[i]), int32(a[i+1])
		br, bi := int32(b[i]), int32(b[i+1])
		re += ar*br - ai*bi
		im += ar*bi + ai*br
	}
	return re, im
}

// MaxMagSq16 returns the index and full-width squared magnitude of the
// element of interleaved src with the largest magnitude. Comparison
// uses the unshifted squared sum (never the square root, and never the
// truncated Q1.15 squared magnitude), and ties resolve to the lowest
// index. Returns (-1, 0) for an empty array.
// This is the portable scalar implementation.
func MaxMagSq16(src []int16) (idx int, sq uint32) {
	idx = -1
	for i, n := 0, 0; i+1 < len(src); i, n = i+2, n+1 {
		re := int32(src[i])
		im := int32(src[i+1])
		s := uint32(re*re) + uint32(im*im)
		if idx < 0 || s > sq {
			idx, sq = n, s
		}
	}
	return idx, sq
}
