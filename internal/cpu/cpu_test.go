package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	ResetDetection()
	f := DetectFeatures()

	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture: got %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if runtime.GOARCH == "arm64" && !f.HasNEON {
		t.Error("NEON should be reported on arm64")
	}
}

func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{ForceGeneric: true, Architecture: "test"})

	f := DetectFeatures()
	if !f.ForceGeneric {
		t.Error("forced features not returned")
	}

	ResetDetection()
	if DetectFeatures().Architecture != runtime.GOARCH {
		t.Error("ResetDetection did not restore hardware detection")
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always supported", Features{}, SIMDNone, true},
		{"neon without hardware", Features{}, SIMDNEON, false},
		{"neon with hardware", Features{HasNEON: true}, SIMDNEON, true},
		{"force generic blocks neon", Features{HasNEON: true, ForceGeneric: true}, SIMDNEON, false},
		{"force generic allows none", Features{ForceGeneric: true}, SIMDNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	if SIMDNone.String() != "None" || SIMDNEON.String() != "NEON" {
		t.Error("unexpected SIMDLevel names")
	}
	if SIMDLevel(99).String() != "Unknown" {
		t.Error("unexpected name for invalid level")
	}
}
