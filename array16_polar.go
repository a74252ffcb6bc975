package fixed

// Polar-coordinate bulk mutators. Magnitudes travel as Q1.15 values,
// phases as radians; every element set here goes through the same
// rounding as Complex16.SetPolar, including its asymmetry for
// negative products.
//
// The destination-supplying variants take the component they do not
// set (phase for SetMagnitudeTo, magnitude for SetPhaseTo) from the
// receiver, not from the destination. Ranged variants apply offset and
// count to the receiver and destination alike; destination elements
// outside the range are left untouched.

// SetPolar sets every element from per-element magnitudes and phases.
// Both operand slices must have the array's length.
func (a Array16) SetPolar(magnitude []int16, phase []float64) {
	a.SetPolarRange(magnitude, phase, 0, a.Len())
}

// SetPolarRange sets count elements starting at offset from
// per-element magnitudes and phases. The operand slices are indexed
// from 0 over the same range.
func (a Array16) SetPolarRange(magnitude []int16, phase []float64, offset, count int) {
	assertRange(offset, count, a.Len())
	for n := 0; n < count; n++ {
		var c Complex16
		c.SetPolar(magnitude[n], phase[n])
		a.SetAt(offset+n, c)
	}
}

// SetPhase sets the phase of every element, leaving magnitudes
// unchanged. Each element's magnitude is re-derived from its
// components, so repeated application accumulates quantization drift.
func (a Array16) SetPhase(phase []float64) {
	a.SetPhaseRange(phase, 0, a.Len())
}

// SetPhaseRange sets the phase of count elements starting at offset.
func (a Array16) SetPhaseRange(phase []float64, offset, count int) {
	assertRange(offset, count, a.Len())
	for n := 0; n < count; n++ {
		c := a.At(offset + n)
		c.SetPolar(c.Magnitude(), phase[n])
		a.SetAt(offset+n, c)
	}
}

// SetPhaseTo sets the phase of the elements of destination, taking
// each magnitude from the receiver.
func (a Array16) SetPhaseTo(phase []float64, destination Array16) {
	a.SetPhaseRangeTo(phase, 0, a.Len(), destination)
}

// SetPhaseRangeTo sets the phase of count elements of destination
// starting at offset, taking magnitudes from the same range of the
// receiver. Destination elements outside the range are not affected.
func (a Array16) SetPhaseRangeTo(phase []float64, offset, count int, destination Array16) {
	assertRange(offset, count, a.Len())
	assertRange(offset, count, destination.Len())
	for n := 0; n < count; n++ {
		var c Complex16
		c.SetPolar(a.At(offset+n).Magnitude(), phase[n])
		destination.SetAt(offset+n, c)
	}
}

// SetMagnitude sets the magnitude of every element, leaving phases
// unchanged. Subject to the same quantization drift as SetPhase.
func (a Array16) SetMagnitude(magnitude []int16) {
	a.SetMagnitudeRange(magnitude, 0, a.Len())
}

// SetMagnitudeRange sets the magnitude of count elements starting at
// offset.
func (a Array16) SetMagnitudeRange(magnitude []int16, offset, count int) {
	assertRange(offset, count, a.Len())
	for n := 0; n < count; n++ {
		c := a.At(offset + n)
		c.SetPolar(magnitude[n], c.Phase())
		a.SetAt(offset+n, c)
	}
}

// SetMagnitudeTo sets the magnitude of the elements of destination,
// taking each phase from the receiver.
func (a Array16) SetMagnitudeTo(magnitude []int16, destination Array16) {
	a.SetMagnitudeRangeTo(magnitude, 0, a.Len(), destination)
}

// SetMagnitudeRangeTo sets the magnitude of count elements of
// destination starting at offset, taking phases from the same range of
// the receiver. Destination elements outside the range are not
// affected.
func (a Array16) SetMagnitudeRangeTo(magnitude []int16, offset, count int, destination Array16) {
	assertRange(offset, count, a.Len())
	assertRange(offset, count, destination.Len())
	for n := 0; n < count; n++ {
		var c Complex16
		c.SetPolar(magnitude[n], a.At(offset+n).Phase())
		destination.SetAt(offset+n, c)
	}
}
