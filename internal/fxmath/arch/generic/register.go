package generic

import (
	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/fxmath/registry"
)

// init registers the portable scalar implementations with the kernel
// registry.
//
// Priority: 0 (lowest; used when no accelerated variant is available
// or when ForceGeneric is enabled for testing).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

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
