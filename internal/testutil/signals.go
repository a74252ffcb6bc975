// Package testutil provides deterministic fixed-point signal
// generators shared by the package tests and diagnostic tooling.
package testutil

import (
	"math"
	"math/rand"
)

// RandomQ15 returns n pseudo-random Q1.15 values spanning the full
// representable range, reproducible for a given seed.
func RandomQ15(seed int64, n int) []int16 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(rng.Intn(1<<16) - (1 << 15))
	}
	return out
}

// RandomQ31 returns n pseudo-random Q1.31 values spanning the full
// representable range, reproducible for a given seed.
func RandomQ31(seed int64, n int) []int32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(rng.Int63n(1<<32) - (1 << 31))
	}
	return out
}

// ToneQ15 returns an interleaved complex exponential of the given
// normalized frequency (cycles per sample) at the given Q1.15
// amplitude: re,im,re,im,... with n complex elements.
func ToneQ15(freq float64, amplitude int16, n int) []int16 {
	out := make([]int16, 2*n)
	for i := 0; i < n; i++ {
		p := 2 * math.Pi * freq * float64(i)
		out[2*i] = int16(math.Round(float64(amplitude) * math.Cos(p)))
		out[2*i+1] = int16(math.Round(float64(amplitude) * math.Sin(p)))
	}
	return out
}

// UnitVectorsQ15 returns the four full-scale axis vectors
// (1,0), (0,1), (-1,0), (0,-1) as interleaved Q1.15 data, with +1
// represented by the maximum positive value.
func UnitVectorsQ15() []int16 {
	const fs = math.MaxInt16
	return []int16{fs, 0, 0, fs, -fs, 0, 0, -fs}
}
