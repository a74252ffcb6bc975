//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/fxmath/registry"
)

// init registers the NEON-targeted implementations with the kernel
// registry. NEON is mandatory on ARMv8, so this variant is eligible on
// every arm64 CPU unless ForceGeneric is set.
//
// Priority: 15.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Add16:     Add16,
		Sub16:     Sub16,
		Mul16:     Mul16,
		MulReal16: MulReal16,
		Scale16:   Scale16,
		Conj16:    Conj16,

		Mag16:   Mag16,
		MagSq16: MagSq16,

		DotProd16:  DotProd16,
		MaxMagSq16: MaxMagSq16,

		Real16: Real16,
		Imag16: Imag16,

		Add32:        Add32,
		Widen16To32:  Widen16To32,
		Narrow32To16: Narrow32To16,
	})
}
