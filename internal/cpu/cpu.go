// Package cpu provides CPU feature detection for fixed-point kernel
// selection.
//
// Detection runs lazily on the first call to DetectFeatures and the
// result is cached. Tests can override detection with
// SetForcedFeatures to exercise specific kernel paths.
package cpu

import "sync"

// SIMDLevel identifies an instruction set extension a kernel
// implementation requires.
type SIMDLevel int

const (
	// SIMDNone indicates the portable scalar implementation.
	SIMDNone SIMDLevel = iota

	// SIMDNEON indicates ARM Advanced SIMD (NEON), mandatory on arm64.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	// HasNEON reports ARM Advanced SIMD support.
	HasNEON bool

	// ForceGeneric disables all accelerated kernels. Used by tests to
	// compare backend outputs on the same hardware.
	ForceGeneric bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once

	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the CPU features available on the current
// system. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	return detectedFeatures
}

// HasNEON reports whether the CPU supports NEON instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features. Intended for tests.
func ResetDetection() {
	forcedMu.Lock()
	forcedFeatures = nil
	forcedMu.Unlock()
}

// Supports reports whether the given features allow an implementation
// at the specified SIMD level to run.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
