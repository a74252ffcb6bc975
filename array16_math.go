package fixed

import "github.com/cwbudde/algo-fixed/internal/fxmath"

// Mag returns the magnitude of element i in Q1.15, rounded and
// saturating at MaxQ15.
func (a Array16) Mag(i int) int16 {
	return magQ15(a.data[2*i], a.data[2*i+1])
}

// Mag2 returns the squared magnitude of element i in Q1.15. It avoids
// the square root and is the preferred comparator.
func (a Array16) Mag2(i int) int16 {
	return magSqQ15(a.data[2*i], a.data[2*i+1])
}

// MagnitudeValues writes the magnitude of every element into a flat
// destination of the array's length.
func (a Array16) MagnitudeValues(destination []int16) {
	assertSameSize(a.Len(), len(destination))
	fxmath.Mag16(destination, a.data)
}

// MagnitudeSquaredValues writes the squared magnitude of every element
// into a flat destination of the array's length.
func (a Array16) MagnitudeSquaredValues(destination []int16) {
	assertSameSize(a.Len(), len(destination))
	fxmath.MagSq16(destination, a.data)
}

// ConjugateValues writes the complex conjugate of every element into
// destination: dst[i] = (re[i], -im[i]). Destination may alias the
// receiver.
func (a Array16) ConjugateValues(destination Array16) {
	assertDstSize(a.Len(), destination.Len())
	fxmath.Conj16(destination.data[:len(a.data)], a.data)
}

// ComplexDotProduct returns the complex dot product with operand2,
// sum((ac-bd, ad+bc)), without conjugation.
//
// Products are accumulated at raw Q2.30 in 32-bit accumulators and
// renormalized by >>15 on return; the fixed-width accumulators wrap
// for long full-scale inputs.
func (a Array16) ComplexDotProduct(operand2 Array16) Complex16 {
	assertSameSize(a.Len(), operand2.Len())
	re, im := fxmath.DotProd16(a.data, operand2.data)
	return Complex16{Re: int16(re >> 15), Im: int16(im >> 15)}
}

// MultiplyComplex writes the element-wise complex product with
// operand2 into result: (ac-bd, ad+bc) per element, products
// renormalized by >>15 and wrapping on overflow.
func (a Array16) MultiplyComplex(operand2, result Array16) {
	assertSameSize(a.Len(), operand2.Len())
	assertDstSize(a.Len(), result.Len())
	fxmath.Mul16(result.data[:len(a.data)], a.data, operand2.data)
}

// MultiplyReal scales each element by the matching Q1.15 scalar in
// operand2, real and imaginary parts identically, into result.
func (a Array16) MultiplyReal(operand2 []int16, result Array16) {
	assertSameSize(a.Len(), len(operand2))
	assertDstSize(a.Len(), result.Len())
	fxmath.MulReal16(result.data[:len(a.data)], a.data, operand2)
}

// Add adds operand2 element-wise into the receiver. Component
// arithmetic wraps on overflow, so adding and subtracting the same
// operand restores the receiver exactly for all inputs.
func (a Array16) Add(operand2 Array16) {
	a.AddTo(operand2, a)
}

// AddTo writes the element-wise sum with operand2 into destination.
func (a Array16) AddTo(operand2, destination Array16) {
	assertSameSize(a.Len(), operand2.Len())
	assertDstSize(a.Len(), destination.Len())
	fxmath.Add16(destination.data[:len(a.data)], a.data, operand2.data)
}

// Subtract subtracts operand2 element-wise from the receiver.
func (a Array16) Subtract(operand2 Array16) {
	a.SubtractTo(operand2, a)
}

// SubtractTo writes the element-wise difference with operand2 into
// destination.
func (a Array16) SubtractTo(operand2, destination Array16) {
	assertSameSize(a.Len(), operand2.Len())
	assertDstSize(a.Len(), destination.Len())
	fxmath.Sub16(destination.data[:len(a.data)], a.data, operand2.data)
}

// Scale multiplies both components of every element by a single Q1.15
// factor in place.
func (a Array16) Scale(factor int16) {
	fxmath.Scale16(a.data, a.data, factor)
}

// MaxMagnitudeValue returns the magnitude of the element with the
// largest magnitude, or 0 for an empty array. The scan compares
// squared magnitudes; the single square root happens on the winner.
func (a Array16) MaxMagnitudeValue() int16 {
	idx, _ := fxmath.MaxMagSq16(a.data)
	if idx < 0 {
		return 0
	}
	return a.Mag(idx)
}

// MaxMagnitudeIndex returns the index of the element with the largest
// magnitude, ties resolving to the lowest index, or -1 for an empty
// array. The scan compares full-width squared magnitudes and never
// takes square roots.
func (a Array16) MaxMagnitudeIndex() int {
	idx, _ := fxmath.MaxMagSq16(a.data)
	return idx
}
