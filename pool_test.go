package fixed

import "testing"

func TestPool16GetZeroed(t *testing.T) {
	p := NewPool16()

	a := p.Get(32)
	if a.Len() != 32 {
		t.Fatalf("Len: got %d, want 32", a.Len())
	}
	a.SetAll(Complex16{Re: 99, Im: 99})
	p.Put(a)

	// A recycled buffer must come back zeroed.
	b := p.Get(16)
	for i := 0; i < b.Len(); i++ {
		if v := b.At(i); v.Re != 0 || v.Im != 0 {
			t.Fatalf("recycled element %d not zeroed: %v", i, v)
		}
	}
	p.Put(b)
}

func TestPool16Grow(t *testing.T) {
	p := NewPool16()

	a := p.Get(4)
	p.Put(a)

	b := p.Get(1024)
	if b.Len() != 1024 {
		t.Fatalf("Len after growth: got %d, want 1024", b.Len())
	}
	p.Put(b)

	if c := p.Get(0); c.Len() != 0 {
		t.Error("zero-size Get should give an empty array")
	}
}

func TestPool16PutNil(t *testing.T) {
	NewPool16().Put(nil) // must not panic
}

func TestPool32(t *testing.T) {
	p := NewPool32()

	a := p.Get(8)
	if a.Len() != 8 {
		t.Fatalf("Len: got %d, want 8", a.Len())
	}
	a.SetAll(Complex32{Re: 1, Im: 2})
	p.Put(a)

	b := p.Get(8)
	for i := 0; i < b.Len(); i++ {
		if b.At(i) != (Complex32{}) {
			t.Fatal("recycled buffer not zeroed")
		}
	}
	p.Put(b)
	p.Put(nil)
}

func TestPooledArrayWorksWithOperations(t *testing.T) {
	p := NewPool16()
	a := p.Get(8)
	defer p.Put(a)

	a.SetAll(Complex16{Re: 1000, Im: -1000})
	b := New16(8)
	a.AddTo(b, b)

	if b.At(3) != (Complex16{Re: 1000, Im: -1000}) {
		t.Errorf("pooled array math: got %v", b.At(3))
	}

	// Sub-views of pooled arrays share memory; they are values and can
	// never be handed to Put.
	s := a.SubArray(2, 2)
	s.Clear()
	if a.At(2) != (Complex16{}) {
		t.Error("sub-view clear did not reach the pooled buffer")
	}
}
