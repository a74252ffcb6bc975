// Command fxinfo reports the accuracy of Q1.15 complex arithmetic
// against a double-precision reference.
//
// Usage:
//
//	fxinfo [flags]
//
// It synthesizes a complex exponential, runs it through the fixed-point
// magnitude, dot product and spectrum paths, and prints the error of
// each against the same computation in float64.
//
// Examples:
//
//	fxinfo
//	fxinfo -size 4096 -freq 0.05
//	fxinfo -amplitude 32767 -generic
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	fixed "github.com/cwbudde/algo-fixed"
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/fxmath"
	"github.com/cwbudde/algo-fixed/internal/testutil"
)

func main() {
	size := flag.Int("size", 1024, "signal length in complex samples (power of two)")
	freq := flag.Float64("freq", 0.1, "tone frequency in cycles per sample")
	amplitude := flag.Int("amplitude", 16384, "tone amplitude in raw Q1.15 steps")
	generic := flag.Bool("generic", false, "force the portable kernels instead of the fastest available")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reports the accuracy of Q1.15 complex arithmetic against float64.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -size 4096 -freq 0.05\n")
		fmt.Fprintf(os.Stderr, "  fxinfo -amplitude 32767 -generic\n")
	}
	flag.Parse()

	if *size < 2 || *size&(*size-1) != 0 {
		fmt.Fprintf(os.Stderr, "error: -size must be a power of two >= 2, got %d\n", *size)
		os.Exit(1)
	}
	if *amplitude < 0 || *amplitude > fixed.MaxQ15 {
		fmt.Fprintf(os.Stderr, "error: -amplitude must be in [0, %d], got %d\n", fixed.MaxQ15, *amplitude)
		os.Exit(1)
	}

	if *generic {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
		fxmath.ResetSelection()
	}

	if err := run(*size, *freq, int16(*amplitude)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(n int, freq float64, amplitude int16) error {
	a := fixed.AsArray16Interleaved(testutil.ToneQ15(freq, amplitude, n))

	re := make([]float64, n)
	im := make([]float64, n)
	for i := 0; i < n; i++ {
		re[i] = fixed.Q15ToFloat(a.Re(i))
		im[i] = fixed.Q15ToFloat(a.Im(i))
	}

	magMax, magMean := magnitudeError(a, re, im)
	dotFixed, dotRef := dotProducts(a, re, im)
	rmsDB := signalLevel(re, im)
	peakBin, peakDB, err := spectrumPeak(re, im)
	if err != nil {
		return err
	}

	expectedBin := int(math.Round(freq*float64(n))) % n
	if expectedBin < 0 {
		expectedBin += n
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "backend\t%s\n", fxmath.ImplementationName())
	fmt.Fprintf(tw, "size\t%d\n", n)
	fmt.Fprintf(tw, "tone\t%.4f cycles/sample, amplitude %d\n", freq, amplitude)
	fmt.Fprintf(tw, "signal level\t%.2f dBFS rms\n", rmsDB)
	fmt.Fprintf(tw, "magnitude max error\t%.0f steps\n", magMax)
	fmt.Fprintf(tw, "magnitude mean error\t%.4f steps\n", magMean)
	fmt.Fprintf(tw, "dot product (fixed)\t(%d, %d)\n", dotFixed.Re, dotFixed.Im)
	fmt.Fprintf(tw, "dot product (float)\t(%.0f, %.0f)\n", real(dotRef)*(1<<15), imag(dotRef)*(1<<15))
	fmt.Fprintf(tw, "spectrum peak\tbin %d (expected %d), %.2f dBFS\n", peakBin, expectedBin, peakDB)
	return tw.Flush()
}

// magnitudeError compares the fixed-point per-element magnitude against
// math.Hypot of the float64 signal, in raw Q1.15 steps.
func magnitudeError(a fixed.Array16, re, im []float64) (maxErr, meanErr float64) {
	n := a.Len()
	mags := make([]int16, n)
	a.MagnitudeValues(mags)

	sum := 0.0
	for i := 0; i < n; i++ {
		ref := math.Hypot(re[i], im[i]) * (1 << 15)
		d := math.Abs(float64(mags[i]) - ref)
		sum += d
		if d > maxErr {
			maxErr = d
		}
	}
	if n > 0 {
		meanErr = sum / float64(n)
	}
	return maxErr, meanErr
}

// dotProducts returns the fixed-point self dot product next to the same
// non-conjugated sum in complex128. Both scale the products by 2^-15,
// so for a length-n unit tone they grow linearly with n and the fixed
// accumulator wraps where the reference keeps growing.
func dotProducts(a fixed.Array16, re, im []float64) (fixed.Complex16, complex128) {
	d := a.ComplexDotProduct(a)

	var ref complex128
	for i := range re {
		z := complex(re[i], im[i])
		ref += z * z
	}
	return d, ref
}

// signalLevel returns the rms level of the complex signal in dB
// relative to a full-scale tone.
func signalLevel(re, im []float64) float64 {
	n := len(re)
	if n == 0 {
		return math.Inf(-1)
	}
	power := make([]float64, n)
	vecmath.Power(power, re, im)

	sum := 0.0
	for _, p := range power {
		sum += p
	}
	mean := sum / float64(n)
	if mean <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(mean)
}

// spectrumPeak transforms the float64 signal and returns the strongest
// bin and its level relative to a full-scale tone.
func spectrumPeak(re, im []float64) (bin int, levelDB float64, err error) {
	n := len(re)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, 0, fmt.Errorf("fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i := 0; i < n; i++ {
		in[i] = complex(re[i], im[i])
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, 0, fmt.Errorf("fft forward: %w", err)
	}

	binRe := make([]float64, n)
	binIm := make([]float64, n)
	for i, v := range out {
		binRe[i] = real(v)
		binIm[i] = imag(v)
	}
	mags := make([]float64, n)
	vecmath.Magnitude(mags, binRe, binIm)

	peak := 0.0
	for i, m := range mags {
		if m > peak {
			peak = m
			bin = i
		}
	}

	level := peak / float64(n)
	if level <= 0 {
		return bin, math.Inf(-1), nil
	}
	return bin, 20 * math.Log10(level), nil
}
