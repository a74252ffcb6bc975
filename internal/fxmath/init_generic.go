//go:build !arm64 || purego

package fxmath

// Only the portable kernel set is compiled in on this configuration.

import (
	_ "github.com/cwbudde/algo-fixed/internal/fxmath/arch/generic"
)
