package registry

import (
	"testing"

	"github.com/cwbudde/algo-fixed/internal/cpu"
)

func TestLookupPriority(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "low", SIMDLevel: cpu.SIMDNone, Priority: 0})
	r.Register(OpEntry{Name: "high", SIMDLevel: cpu.SIMDNEON, Priority: 15})

	e := r.Lookup(cpu.Features{HasNEON: true})
	if e == nil || e.Name != "high" {
		t.Fatalf("with NEON: got %v, want high", e)
	}

	e = r.Lookup(cpu.Features{})
	if e == nil || e.Name != "low" {
		t.Fatalf("without NEON: got %v, want low", e)
	}
}

func TestLookupForceGeneric(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15})
	r.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})

	e := r.Lookup(cpu.Features{HasNEON: true, ForceGeneric: true})
	if e == nil || e.Name != "generic" {
		t.Fatalf("forced generic: got %v, want generic", e)
	}
}

func TestLookupEmpty(t *testing.T) {
	r := &OpRegistry{}
	if e := r.Lookup(cpu.Features{}); e != nil {
		t.Fatalf("empty registry: got %v, want nil", e)
	}
}

func TestNamesOrder(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "a", Priority: 0})
	r.Register(OpEntry{Name: "b", Priority: 10})
	r.Lookup(cpu.Features{}) // triggers the priority sort

	names := r.Names()
	if len(names) != 2 || names[0] != "b" {
		t.Fatalf("got %v, want [b a]", names)
	}
}
