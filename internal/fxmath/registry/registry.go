// Package registry provides the implementation registry for fixed-point
// kernel operations.
//
// Kernel variants (generic, NEON, ...) register themselves via init()
// functions in their architecture packages. At runtime the dispatch
// layer looks up the highest-priority variant compatible with the
// detected CPU features; after that single lookup, calls go through
// plain function pointers.
//
// All kernels operate on interleaved component slices: a complex array
// of n elements is a slice of 2n int16 (or int32) values laid out
// re,im,re,im,... Operand lengths are caller contracts and are not
// validated here.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-fixed/internal/cpu"
)

// OpEntry is a registered kernel implementation variant.
//
// Every field must be populated: the dispatch layer selects one entry
// for all operations, so partial variants are not supported. All
// variants must be behaviorally interchangeable; producing bit-identical
// outputs is the principal conformance property of the kernel set.
type OpEntry struct {
	// Name is a human-readable identifier, e.g. "generic" or "neon".
	Name string

	// SIMDLevel is the instruction set this variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders selection when several variants are compatible;
	// higher wins. Generic uses 0, NEON 15.
	Priority int

	// Add16 performs component-wise addition over interleaved Q1.15
	// data: dst[i] = a[i] + b[i], wrapping on overflow.
	Add16 func(dst, a, b []int16)

	// Sub16 performs component-wise subtraction over interleaved Q1.15
	// data: dst[i] = a[i] - b[i], wrapping on overflow.
	Sub16 func(dst, a, b []int16)

	// Mul16 performs element-wise complex multiplication of interleaved
	// Q1.15 data: (ac-bd, ad+bc) with each product renormalized by >>15.
	Mul16 func(dst, a, b []int16)

	// MulReal16 scales each complex element of interleaved a by the
	// matching Q1.15 scalar in s (len(s) = len(a)/2).
	MulReal16 func(dst, a []int16, s []int16)

	// Scale16 multiplies every component of interleaved src by a single
	// Q1.15 factor, renormalized by >>15.
	Scale16 func(dst, src []int16, factor int16)

	// Conj16 copies interleaved src to dst negating every imaginary
	// component.
	Conj16 func(dst, src []int16)

	// Mag16 writes the Q1.15 magnitude of each complex element of
	// interleaved src into dst (len(dst) = len(src)/2). Results are
	// rounded to nearest and saturate at 0x7FFF.
	Mag16 func(dst, src []int16)

	// MagSq16 writes the Q1.15 squared magnitude (>>15, truncating) of
	// each complex element of interleaved src into dst.
	MagSq16 func(dst, src []int16)

	// DotProd16 returns the raw Q2.30 component accumulators of the
	// complex dot product of two interleaved arrays. The 32-bit
	// accumulators wrap for long full-scale inputs.
	DotProd16 func(a, b []int16) (re, im int32)

	// MaxMagSq16 returns the index and full-width squared magnitude of
	// the element with the largest magnitude, ties resolving to the
	// lowest index. Returns (-1, 0) for an empty array.
	MaxMagSq16 func(src []int16) (idx int, sq uint32)

	// Real16 deinterleaves the real components of src into dst.
	Real16 func(dst, src []int16)

	// Imag16 deinterleaves the imaginary components of src into dst.
	Imag16 func(dst, src []int16)

	// Add32 performs component-wise addition over interleaved Q1.31
	// data, wrapping on overflow.
	Add32 func(dst, a, b []int32)

	// Widen16To32 converts Q1.15 components to Q1.31 by shifting left
	// 16 bits. Lossless.
	Widen16To32 func(dst []int32, src []int16)

	// Narrow32To16 converts Q1.31 components to Q1.15 by keeping the
	// top 16 bits. Truncating, non-saturating.
	Narrow32To16 func(dst []int16, src []int32)
}

// OpRegistry manages registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default registry used by the dispatch layer.
var Global = &OpRegistry{}

// Register adds a kernel variant. It is called from init() functions
// in the architecture packages; all registrations complete before the
// first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant compatible with the
// given CPU features, or nil if none is registered. With the generic
// fallback always compiled in, nil indicates a build problem.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		sort.SliceStable(r.entries, func(i, j int) bool {
			return r.entries[i].Priority > r.entries[j].Priority
		})
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			return &r.entries[i]
		}
	}
	return nil
}

// Names returns the names of all registered variants in priority
// order. Intended for tests and diagnostics.
func (r *OpRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}
