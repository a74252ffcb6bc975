package fixed

import "sync"

// Pool16 recycles owned Array16 buffers to avoid allocation in
// real-time processing loops.
//
// The Get/Put pairing is strict: every *Array16 obtained from Get must
// be returned through exactly one Put, and must not be used after
// being returned. Putting an array twice, putting an array that did
// not come from Get, or putting an array whose sub-views are still in
// use corrupts the pool; none of this is detected at runtime.
type Pool16 struct {
	pool sync.Pool
}

// NewPool16 returns a Pool16 ready for use.
func NewPool16() *Pool16 {
	return &Pool16{
		pool: sync.Pool{
			New: func() any {
				return &Array16{}
			},
		},
	}
}

// Get returns a zeroed array of the requested size, reusing a pooled
// buffer when one of sufficient capacity is available.
func (p *Pool16) Get(size int) *Array16 {
	a := p.pool.Get().(*Array16)
	n := 2 * size
	if n < 0 {
		n = 0
	}
	if cap(a.data) < n {
		a.data = make([]int16, n)
	}
	a.data = a.data[:n]
	a.Clear()
	return a
}

// Put returns an array to the pool for reuse. The caller must not use
// the array, or any sub-view derived from it, after calling Put.
func (p *Pool16) Put(a *Array16) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}

// Pool32 recycles owned Array32 buffers. Same contract as Pool16.
type Pool32 struct {
	pool sync.Pool
}

// NewPool32 returns a Pool32 ready for use.
func NewPool32() *Pool32 {
	return &Pool32{
		pool: sync.Pool{
			New: func() any {
				return &Array32{}
			},
		},
	}
}

// Get returns a zeroed array of the requested size, reusing a pooled
// buffer when one of sufficient capacity is available.
func (p *Pool32) Get(size int) *Array32 {
	a := p.pool.Get().(*Array32)
	n := 2 * size
	if n < 0 {
		n = 0
	}
	if cap(a.data) < n {
		a.data = make([]int32, n)
	}
	a.data = a.data[:n]
	a.Clear()
	return a
}

// Put returns an array to the pool for reuse. The caller must not use
// the array, or any sub-view derived from it, after calling Put.
func (p *Pool32) Put(a *Array32) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}
