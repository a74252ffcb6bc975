//go:build arm64 && !purego

package neon

// Add16 performs component-wise addition over interleaved Q1.15 data.
// The loop is unrolled to a full NEON register of eight int16 lanes so
// the compiler can vectorize it on arm64. Wraparound arithmetic keeps
// it bit-identical to the portable implementation.
func Add16(dst, a, b []int16) {
	i := 0
	for ; i+8 <= len(dst); i += 8 {
		dst[i+0] = a[i+0] + b[i+0]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
		dst[i+4] = a[i+4] + b[i+4]
		dst[i+5] = a[i+5] + b[i+5]
		dst[i+6] = a[i+6] + b[i+6]
		dst[i+7] = a[i+7] + b[i+7]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}

// Sub16 performs component-wise subtraction over interleaved Q1.15
// data. Eight int16 lanes per iteration.
func Sub16(dst, a, b []int16) {
	i := 0
	for ; i+8 <= len(dst); i += 8 {
		dst[i+0] = a[i+0] - b[i+0]
		dst[i+1] = a[i+1] - b[i+1]
		dst[i+2] = a[i+2] - b[i+2]
		dst[i+3] = a[i+3] - b[i+3]
		dst[i+4] = a[i+4] - b[i+4]
		dst[i+5] = a[i+5] - b[i+5]
		dst[i+6] = a[i+6] - b[i+6]
		dst[i+7] = a[i+7] - b[i+7]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] - b[i]
	}
}

// Add32 performs component-wise addition over interleaved Q1.31 data.
// Four int32 lanes per iteration.
func Add32(dst, a, b []int32) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i+0] = a[i+0] + b[i+0]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}
