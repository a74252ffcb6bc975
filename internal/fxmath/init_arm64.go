//go:build arm64 && !purego

package fxmath

// Importing the architecture packages triggers their init() functions,
// which register kernel sets with the registry.

import (
	_ "github.com/cwbudde/algo-fixed/internal/fxmath/arch/arm64/neon"
	_ "github.com/cwbudde/algo-fixed/internal/fxmath/arch/generic"
)
