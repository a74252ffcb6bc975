package fxmath

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fixed/internal/testutil"
)

// Complex element counts exercised by every kernel test; interleaved
// slices carry twice as many int16 values.
var sizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 16, 33, 64, 100, 1000}

// Reference implementations, written as plain loops independent of the
// arch packages.

func add16Ref(dst, a, b []int16) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func sub16Ref(dst, a, b []int16) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mul16Ref(dst, a, b []int16) {
	for i := 0; i+1 < len(dst); i += 2 {
		ar, ai := int32(a[i]), int32(a[i+1])
		br, bi := int32(b[i]), int32(b[i+1])
		dst[i] = int16((ar*br - ai*bi) >> 15)
		dst[i+1] = int16((ar*bi + ai*br) >> 15)
	}
}

func mag16Ref(dst, src []int16) {
	for n := range dst {
		re := float64(src[2*n])
		im := float64(src[2*n+1])
		m := int64(math.Sqrt(re*re+im*im) + 0.5)
		if m > math.MaxInt16 {
			m = math.MaxInt16
		}
		dst[n] = int16(m)
	}
}

func eq16(t *testing.T, name string, got, want []int16) {
	t.Helper()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s[%d]: got %d, want %d", name, i, got[i], want[i])
		}
	}
}

func TestAdd16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.RandomQ15(1, 2*n)
			b := testutil.RandomQ15(2, 2*n)
			got := make([]int16, 2*n)
			want := make([]int16, 2*n)

			add16Ref(want, a, b)
			Add16(got, a, b)
			eq16(t, "Add16", got, want)
		})
	}
}

func TestSub16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.RandomQ15(3, 2*n)
			b := testutil.RandomQ15(4, 2*n)
			got := make([]int16, 2*n)
			want := make([]int16, 2*n)

			sub16Ref(want, a, b)
			Sub16(got, a, b)
			eq16(t, "Sub16", got, want)
		})
	}
}

func TestMul16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.RandomQ15(5, 2*n)
			b := testutil.RandomQ15(6, 2*n)
			got := make([]int16, 2*n)
			want := make([]int16, 2*n)

			mul16Ref(want, a, b)
			Mul16(got, a, b)
			eq16(t, "Mul16", got, want)
		})
	}
}

func TestMulReal16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.RandomQ15(7, 2*n)
			s := testutil.RandomQ15(8, n)
			got := make([]int16, 2*n)
			want := make([]int16, 2*n)

			for i := 0; i < n; i++ {
				f := int32(s[i])
				want[2*i] = int16((int32(a[2*i]) * f) >> 15)
				want[2*i+1] = int16((int32(a[2*i+1]) * f) >> 15)
			}
			MulReal16(got, a, s)
			eq16(t, "MulReal16", got, want)
		})
	}
}

func TestScale16(t *testing.T) {
	factors := []int16{0, 1, -1, 16384, -16384, 32767, -32768}

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := testutil.RandomQ15(9, 2*n)
			got := make([]int16, 2*n)
			want := make([]int16, 2*n)

			for _, f := range factors {
				for i := range src {
					want[i] = int16((int32(src[i]) * int32(f)) >> 15)
				}
				Scale16(got, src, f)
				eq16(t, "Scale16", got, want)
			}
		})
	}
}

func TestConj16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := testutil.RandomQ15(10, 2*n)
			got := make([]int16, 2*n)

			Conj16(got, src)
			for i := 0; i+1 < 2*n; i += 2 {
				if got[i] != src[i] || got[i+1] != -src[i+1] {
					t.Fatalf("Conj16 element %d: got (%d,%d), src (%d,%d)",
						i/2, got[i], got[i+1], src[i], src[i+1])
				}
			}
		})
	}
}

func TestMag16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := testutil.RandomQ15(11, 2*n)
			got := make([]int16, n)
			want := make([]int16, n)

			mag16Ref(want, src)
			Mag16(got, src)
			eq16(t, "Mag16", got, want)
		})
	}
}

func TestMag16Saturates(t *testing.T) {
	// Both components at the negative format limit: the true magnitude
	// is sqrt(2), which Q1.15 cannot represent.
	src := []int16{-32768, -32768}
	dst := make([]int16, 1)

	Mag16(dst, src)
	if dst[0] != math.MaxInt16 {
		t.Errorf("full-scale magnitude: got %d, want %d", dst[0], math.MaxInt16)
	}
}

func TestMagSq16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := testutil.RandomQ15(12, 2*n)
			got := make([]int16, n)

			MagSq16(got, src)
			for i := 0; i < n; i++ {
				re := int32(src[2*i])
				im := int32(src[2*i+1])
				if want := int16((re*re + im*im) >> 15); got[i] != want {
					t.Fatalf("MagSq16[%d]: got %d, want %d", i, got[i], want)
				}
			}
		})
	}
}

func TestDotProd16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.RandomQ15(13, 2*n)
			b := testutil.RandomQ15(14, 2*n)

			var wantRe, wantIm int32
			for i := 0; i+1 < 2*n; i += 2 {
				ar, ai := int32(a[i]), int32(a[i+1])
				br, bi := int32(b[i]), int32(b[i+1])
				wantRe += ar*br - ai*bi
				wantIm += ar*bi + ai*br
			}

			re, im := DotProd16(a, b)
			if re != wantRe || im != wantIm {
				t.Errorf("DotProd16: got (%d,%d), want (%d,%d)", re, im, wantRe, wantIm)
			}
		})
	}
}

func TestMaxMagSq16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := testutil.RandomQ15(15, 2*n)

			wantIdx, wantSq := -1, uint32(0)
			for i := 0; i < n; i++ {
				re := int32(src[2*i])
				im := int32(src[2*i+1])
				s := uint32(re*re) + uint32(im*im)
				if wantIdx < 0 || s > wantSq {
					wantIdx, wantSq = i, s
				}
			}

			idx, sq := MaxMagSq16(src)
			if idx != wantIdx || sq != wantSq {
				t.Errorf("MaxMagSq16: got (%d,%d), want (%d,%d)", idx, sq, wantIdx, wantSq)
			}
		})
	}
}

func TestMaxMagSq16Ties(t *testing.T) {
	// Four axis vectors of identical magnitude; the scan must keep the
	// first occurrence.
	idx, sq := MaxMagSq16(testutil.UnitVectorsQ15())
	if idx != 0 {
		t.Errorf("tie-break index: got %d, want 0", idx)
	}
	if want := uint32(32767) * 32767; sq != want {
		t.Errorf("tie magnitude: got %d, want %d", sq, want)
	}
}

func TestRealImag16(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := testutil.RandomQ15(16, 2*n)
			re := make([]int16, n)
			im := make([]int16, n)

			Real16(re, src)
			Imag16(im, src)
			for i := 0; i < n; i++ {
				if re[i] != src[2*i] || im[i] != src[2*i+1] {
					t.Fatalf("deinterleave element %d: got (%d,%d), want (%d,%d)",
						i, re[i], im[i], src[2*i], src[2*i+1])
				}
			}
		})
	}
}

func TestAdd32(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.RandomQ31(17, 2*n)
			b := testutil.RandomQ31(18, 2*n)
			got := make([]int32, 2*n)

			Add32(got, a, b)
			for i := range got {
				if want := a[i] + b[i]; got[i] != want {
					t.Fatalf("Add32[%d]: got %d, want %d", i, got[i], want)
				}
			}
		})
	}
}

func TestWidenNarrow(t *testing.T) {
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := testutil.RandomQ15(19, 2*n)
			wide := make([]int32, 2*n)
			back := make([]int16, 2*n)

			Widen16To32(wide, src)
			for i := range src {
				if wide[i] != int32(src[i])<<16 {
					t.Fatalf("Widen16To32[%d]: got %d, want %d", i, wide[i], int32(src[i])<<16)
				}
			}

			// Lossless widen, truncating narrow: the round trip of an
			// unmodified value recovers the original bits.
			Narrow32To16(back, wide)
			eq16(t, "Narrow32To16", back, src)
		})
	}
}

func sizeStr(n int) string {
	s := ""
	if n == 0 {
		return "n=0"
	}
	for v := n; v > 0; v /= 10 {
		s = string(rune('0'+v%10)) + s
	}
	return "n=" + s
}
