//go:build arm64 && !purego

package neon

const maxQ15 = 0x7FFF

// isqrt returns floor(sqrt(v)) for v up to 2^33, using a binary
// digit-by-digit method in integer registers only.
func isqrt(v uint64) uint32 {
	var root, rem uint64

	bit := uint64(1) << 32
	for bit > v {
		bit >>= 2
	}

	rem = v
	for bit != 0 {
		if rem >= root+bit {
			rem -= root + bit
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return uint32(root)
}

// Mag16 writes the Q1.15 magnitude of each element of interleaved src
// into dst.
//
// The integer primitive computes the root one bit wider than the
// output format (the Q2.14-style doubled root, floor(sqrt(4*(re^2+im^2)))),
// then renormalizes with a single arithmetic right shift, which
// rounds the Q1.15 result to nearest. The renormalized value is
// clamped to 0x7FFF: the doubled root reaches sqrt(2) at full scale,
// which Q1.15 cannot represent. Bit-identical to the portable
// implementation after this renormalization step.
func Mag16(dst, src []int16) {
	for n := range dst {
		re := int64(src[2*n])
		im := int64(src[2*n+1])
		s := uint64(re*re + im*im)
		m := (isqrt(s<<2) + 1) >> 1
		if m > maxQ15 {
			m = maxQ15
		}
		dst[n] = int16(m)
	}
}

// MagSq16 writes the Q1.15 squared magnitude of each element of
// interleaved src into dst, two elements per iteration.
func MagSq16(dst, src []int16) {
	n := 0
	for ; n+2 <= len(dst); n += 2 {
		re0, im0 := int32(src[2*n]), int32(src[2*n+1])
		re1, im1 := int32(src[2*n+2]), int32(src[2*n+3])
		dst[n] = int16((re0*re0 + im0*im0) >> 15)
		dst[n+1] = int16((re1*re1 + im1*im1) >> 15)
	}
	for ; n < len(dst); n++ {
		re := int32(src[2*n])
		im := int32(src[2*n+1])
		dst[n] = int16((re*re + im*im) >> 15)
	}
}
