package fixed

import (
	"unsafe"

	"github.com/cwbudde/algo-fixed/internal/fxmath"
)

// Array16 is a view over a contiguous sequence of Complex16 values.
//
// The view itself carries no ownership: arrays wrap caller-provided
// memory (AsArray16, AsArray16Interleaved), GC-managed allocations
// (New16) or pooled buffers (Pool16). Internally the components are
// held interleaved (re,im,re,im,...), matching the layout the kernels
// and the flat-buffer bridging operations work on.
//
// The element count is fixed at construction. A zero-size array has no
// accessible memory; all operations on it are defined no-ops.
type Array16 struct {
	data []int16
}

// New16 returns a zeroed, GC-managed array of the given size.
func New16(size int) Array16 {
	if size <= 0 {
		return Array16{}
	}
	return Array16{data: make([]int16, 2*size)}
}

// AsArray16 returns a borrowed view over caller-owned complex values.
// The view never allocates or frees this memory; its lifetime is
// bounded by the caller's buffer.
func AsArray16(values []Complex16) Array16 {
	if len(values) == 0 {
		return Array16{}
	}
	return Array16{data: unsafe.Slice((*int16)(unsafe.Pointer(&values[0])), 2*len(values))}
}

// AsArray16Interleaved returns a borrowed view over a flat interleaved
// buffer laid out re,im,re,im,... The buffer length must be even; the
// view covers len(buf)/2 complex elements.
func AsArray16Interleaved(buf []int16) Array16 {
	assert(len(buf)%2 == 0, "interleaved buffer length must be even")
	return Array16{data: buf[:len(buf)&^1]}
}

// Len returns the number of complex elements in the array.
func (a Array16) Len() int {
	return len(a.data) / 2
}

// Data returns the elements as a slice of Complex16 sharing the
// array's memory.
func (a Array16) Data() []Complex16 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*Complex16)(unsafe.Pointer(&a.data[0])), len(a.data)/2)
}

// Interleaved returns the flat component buffer (re,im,re,im,...)
// sharing the array's memory.
func (a Array16) Interleaved() []int16 {
	return a.data
}

// At returns element i.
func (a Array16) At(i int) Complex16 {
	return Complex16{Re: a.data[2*i], Im: a.data[2*i+1]}
}

// SetAt stores element i.
func (a Array16) SetAt(i int, v Complex16) {
	a.data[2*i] = v.Re
	a.data[2*i+1] = v.Im
}

// Re returns the real part of element i.
func (a Array16) Re(i int) int16 {
	return a.data[2*i]
}

// Im returns the imaginary part of element i.
func (a Array16) Im(i int) int16 {
	return a.data[2*i+1]
}

// SubArray returns a zero-copy view over length elements starting at
// offset. The view shares memory with the receiver: offset+length must
// not exceed the receiver's size, the sub-array must not outlive the
// parent's backing buffer, and a pooled parent must not be returned to
// its pool while the sub-array is in use.
func (a Array16) SubArray(offset, length int) Array16 {
	assert(offset >= 0 && length >= 0 && offset+length <= a.Len(), "sub-array out of range")
	return Array16{data: a.data[2*offset : 2*(offset+length)]}
}

// CopyFrom copies the content of source into the array. Equal sizes
// are a caller contract.
func (a Array16) CopyFrom(source Array16) {
	assertSameSize(a.Len(), source.Len())
	copy(a.data, source.data)
}

// CopyTo copies the content of the array into destination. Equal
// sizes are a caller contract.
func (a Array16) CopyTo(destination Array16) {
	assertSameSize(a.Len(), destination.Len())
	copy(destination.data, a.data)
}

// CopyFromInterleaved fills the array from a flat buffer holding
// interleaved components. The buffer length must equal twice the
// array size.
func (a Array16) CopyFromInterleaved(source []int16) {
	assertSameSize(2*a.Len(), len(source))
	copy(a.data, source)
}

// CopyToInterleaved writes the array's interleaved components into a
// flat buffer. The buffer length must equal twice the array size.
func (a Array16) CopyToInterleaved(destination []int16) {
	assertSameSize(2*a.Len(), len(destination))
	copy(destination, a.data)
}

// RealValues deinterleaves the real parts into a flat buffer of the
// array's length.
func (a Array16) RealValues(destination []int16) {
	assertSameSize(a.Len(), len(destination))
	fxmath.Real16(destination, a.data)
}

// ImaginaryValues deinterleaves the imaginary parts into a flat buffer
// of the array's length.
func (a Array16) ImaginaryValues(destination []int16) {
	assertSameSize(a.Len(), len(destination))
	fxmath.Imag16(destination, a.data)
}

// Equals reports structural equality: same size and exact component
// match for every element, with no tolerance.
func (a Array16) Equals(other Array16) bool {
	if len(a.data) != len(other.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// SetAll broadcasts a single complex value to every element.
func (a Array16) SetAll(value Complex16) {
	for i := 0; i+1 < len(a.data); i += 2 {
		a.data[i] = value.Re
		a.data[i+1] = value.Im
	}
}

// SetAllComponents broadcasts the same real value into both components
// of every element.
func (a Array16) SetAllComponents(value int16) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Clear sets every element to zero.
func (a Array16) Clear() {
	a.SetAllComponents(0)
}
