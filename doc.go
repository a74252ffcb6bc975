// Package fixed implements fixed-point complex values and arrays for
// signal analysis and synthesis on integer hardware.
//
// Two data-width families exist in parallel and share an interface
// shape: Complex16/Array16 store Q1.15 components (16-bit signed,
// range [-1, 1)), Complex32/Array32 store Q1.31 components. Conversion
// between the two is lossless in the widening direction and truncating
// in the narrowing direction.
//
// # Views and ownership
//
// An Array16 is a non-owning view over a contiguous run of Complex16
// values. Views are created over caller-owned slices with AsArray16,
// allocated with New16, or carved out of another array with SubArray.
// Sub-arrays share memory with their parent and must never outlive it.
// For allocation-free reuse in audio callbacks, Pool16 and Pool32
// recycle owned buffers with a strict Get/Put pairing: every buffer
// obtained from Get must be returned through exactly one Put, and
// must not be used afterwards.
//
// # Contracts
//
// The numeric path performs no validation: elementwise operations
// require equal operand sizes, destinations must be at least as long
// as the receiver, and sub-array bounds must lie within the parent.
// Violations yield unspecified results (typically an index panic from
// the runtime, possibly silent corruption of shared buffers). Building
// with the fxdebug tag enables explicit assertions on these contracts.
//
// Operations on zero-size arrays are defined no-ops.
//
// # Execution backends
//
// Elementwise and reduction kernels have a portable scalar
// implementation and, on arm64, an unrolled implementation tuned for
// NEON-width lanes. Selection happens once at first use; the purego
// build tag restricts the build to the portable kernels. Both
// implementations produce bit-identical results.
package fixed
