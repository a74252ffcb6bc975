package fxmath

import (
	"sync"

	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/fxmath/registry"
)

var (
	activeEntry *registry.OpEntry
	activeOnce  sync.Once
)

// active returns the kernel set selected for the current CPU. The
// selection runs once; a nil result means the generic fallback was not
// compiled in, which is a build problem, not a runtime condition.
func active() *registry.OpEntry {
	activeOnce.Do(func() {
		activeEntry = registry.Global.Lookup(cpu.DetectFeatures())
		if activeEntry == nil {
			panic("fxmath: no kernel implementation registered (missing generic fallback?)")
		}
	})
	return activeEntry
}

// ImplementationName returns the name of the selected kernel set,
// e.g. "generic" or "neon". Intended for tests and diagnostics.
func ImplementationName() string {
	return active().Name
}

// ResetSelection clears the cached backend selection so the next call
// re-runs the registry lookup. Intended for tests that force CPU
// features; not safe to call concurrently with kernel use.
func ResetSelection() {
	activeEntry = nil
	activeOnce = sync.Once{}
}
