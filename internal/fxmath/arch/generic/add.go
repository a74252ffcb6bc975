package generic

// Add16 performs component-wise addition over interleaved Q1.15 data:
// dst[i] = a[i] + b[i]. Overflow wraps; complex addition distributes
// over the interleaved layout, so one loop serves both components.
// This is the portable scalar implementation.
func Add16(dst, a, b []int16) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub16 performs component-wise subtraction over interleaved Q1.15
// data: dst[i] = a[i] - b[i]. Overflow wraps.
// This is the portable scalar implementation.
func Sub16(dst, a, b []int16) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Add32 performs component-wise addition over interleaved Q1.31 data.
// Overflow wraps.
// This is the portable scalar implementation.
func Add32(dst, a, b []int32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
