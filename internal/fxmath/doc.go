// Package fxmath dispatches fixed-point kernel operations to the best
// implementation available for the current CPU.
//
// Architecture packages under arch/ register their kernel sets with
// the registry at init time; which packages are compiled in is decided
// by build tags (arm64, purego), so the set of candidate backends is a
// compile-time property. The concrete backend is resolved once, on
// first use, and cached; after that every call is a direct function
// pointer call with no dispatch overhead.
//
// All operations work on interleaved component slices (re,im,re,im,...)
// and perform no argument validation; length contracts are owned by
// the calling layer.
package fxmath
