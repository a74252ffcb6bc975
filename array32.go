package fixed

import (
	"unsafe"

	"github.com/cwbudde/algo-fixed/internal/fxmath"
)

// Array32 is the Q1.31 counterpart of Array16: a non-owning view over
// interleaved 32-bit components with the same lifecycle rules. It
// provides the elementwise algebra needed by accumulation stages plus
// the cross-width conversions.
type Array32 struct {
	data []int32
}

// New32 returns a zeroed, GC-managed array of the given size.
func New32(size int) Array32 {
	if size <= 0 {
		return Array32{}
	}
	return Array32{data: make([]int32, 2*size)}
}

// AsArray32 returns a borrowed view over caller-owned complex values.
func AsArray32(values []Complex32) Array32 {
	if len(values) == 0 {
		return Array32{}
	}
	return Array32{data: unsafe.Slice((*int32)(unsafe.Pointer(&values[0])), 2*len(values))}
}

// AsArray32Interleaved returns a borrowed view over a flat interleaved
// buffer laid out re,im,re,im,... The buffer length must be even.
func AsArray32Interleaved(buf []int32) Array32 {
	assert(len(buf)%2 == 0, "interleaved buffer length must be even")
	return Array32{data: buf[:len(buf)&^1]}
}

// Len returns the number of complex elements in the array.
func (a Array32) Len() int {
	return len(a.data) / 2
}

// Data returns the elements as a slice of Complex32 sharing the
// array's memory.
func (a Array32) Data() []Complex32 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*Complex32)(unsafe.Pointer(&a.data[0])), len(a.data)/2)
}

// Interleaved returns the flat component buffer sharing the array's
// memory.
func (a Array32) Interleaved() []int32 {
	return a.data
}

// At returns element i.
func (a Array32) At(i int) Complex32 {
	return Complex32{Re: a.data[2*i], Im: a.data[2*i+1]}
}

// SetAt stores element i.
func (a Array32) SetAt(i int, v Complex32) {
	a.data[2*i] = v.Re
	a.data[2*i+1] = v.Im
}

// SubArray returns a zero-copy view over length elements starting at
// offset, sharing memory with the receiver. Same lifetime rules as
// Array16.SubArray.
func (a Array32) SubArray(offset, length int) Array32 {
	assert(offset >= 0 && length >= 0 && offset+length <= a.Len(), "sub-array out of range")
	return Array32{data: a.data[2*offset : 2*(offset+length)]}
}

// Add adds operand2 element-wise into the receiver, wrapping on
// overflow.
func (a Array32) Add(operand2 Array32) {
	a.AddTo(operand2, a)
}

// AddTo writes the element-wise sum with operand2 into destination.
func (a Array32) AddTo(operand2, destination Array32) {
	assertSameSize(a.Len(), operand2.Len())
	assertDstSize(a.Len(), destination.Len())
	fxmath.Add32(destination.data[:len(a.data)], a.data, operand2.data)
}

// CopyFrom copies the content of source into the array. Equal sizes
// are a caller contract.
func (a Array32) CopyFrom(source Array32) {
	assertSameSize(a.Len(), source.Len())
	copy(a.data, source.data)
}

// CopyTo copies the content of the array into destination.
func (a Array32) CopyTo(destination Array32) {
	assertSameSize(a.Len(), destination.Len())
	copy(destination.data, a.data)
}

// CopyFrom16 widens a Q1.15 array into the receiver by aligning each
// component's binary point (left shift by 16). No information is lost.
func (a Array32) CopyFrom16(source Array16) {
	assertSameSize(a.Len(), source.Len())
	fxmath.Widen16To32(a.data, source.data)
}

// CopyTo16 narrows the receiver into a Q1.15 array by keeping the top
// 16 bits of each component. Lossy and non-saturating: values outside
// the 16-bit range truncate rather than clamp.
func (a Array32) CopyTo16(destination Array16) {
	assertSameSize(a.Len(), destination.Len())
	fxmath.Narrow32To16(destination.data, a.data)
}

// Equals reports structural equality: same size and exact component
// match for every element.
func (a Array32) Equals(other Array32) bool {
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
func (a Array32) SetAll(value Complex32) {
	for i := 0; i+1 < len(a.data); i += 2 {
		a.data[i] = value.Re
		a.data[i+1] = value.Im
	}
}

// Clear sets every element to zero.
func (a Array32) Clear() {
	for i := range a.data {
		a.data[i] = 0
	}
}
