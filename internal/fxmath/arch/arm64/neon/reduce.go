//go:build arm64 && !purego

package neon

// DotProd16 accumulates the complex dot product of two interleaved
// Q1.15 arrays with two lane-pair accumulators. 32-bit wraparound
// addition is associative, so splitting and recombining the
// accumulators stays bit-identical to the portable implementation.
func DotProd16(a, b []int16) (re, im int32) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var re0, im0, re1, im1 int32
	i := 0
	for ; i+4 <= n; i += 4 {
		ar0, ai0 := int32(a[i]), int32(a[i+1])
		br0, bi0 := int32(b[i]), int32(b[i+1])
		ar1, ai1 := int32(a[i+2]), int32(a[i+3])
		br1, bi1 := int32(b[i+2]), int32(b[i+3])
		re0 += ar0*br0 - ai0*bi0
		im0 += ar0*bi0 + ai0*br0
		re1 += ar1*br1 - ai1*bi1
		im1 += ar1*bi1 + ai1*br1
	}
	re, im = re0+re1, im0+im1
	for ; i+1 < n; i += 2 {
		ar, ai := int32(a[i]), int32(a[i+1])
		br, bi := int32(b[i]), int32(b[i+1])
		re += ar*br - ai*bi
		im += ar*bi + ai*br
	}
	return re, im
}

// MaxMagSq16 returns the index and full-width squared magnitude of the
// element of interleaved src with the largest magnitude. The strict
// greater-than comparison keeps ties at the lowest index even with
// the unrolled scan order. Returns (-1, 0) for an empty array.
func MaxMagSq16(src []int16) (idx int, sq uint32) {
	idx = -1
	i, n := 0, 0
	for ; i+4 <= len(src); i, n = i+4, n+2 {
		re0, im0 := int32(src[i]), int32(src[i+1])
		re1, im1 := int32(src[i+2]), int32(src[i+3])
		s0 := uint32(re0*re0) + uint32(im0*im0)
		s1 := uint32(re1*re1) + uint32(im1*im1)
		if idx < 0 || s0 > sq {
			idx, sq = n, s0
		}
		if s1 > sq {
			idx, sq = n+1, s1
		}
	}
	for ; i+1 < len(src); i, n = i+2, n+1 {
		re := int32(src[i])
		im := int32(src[i+1])
		s := uint32(re*re) + uint32(im*im)
		if idx < 0 || s > sq {
			idx, sq = n, s
		}
	}
	return idx, sq
}
