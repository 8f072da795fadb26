// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

import (
	"reflect"
	"sync"
	"unsafe"
)

// Allocator is the storage capability threaded through every container and
// smart pointer. It is a capability reference, not an owned resource: many
// containers may hold the same allocator, and none of them frees it.
//
// A block must be deallocated through an allocator compatible with the one
// that produced it. Implementations shared across goroutines are responsible
// for their own thread-safety.
type Allocator interface {
	// Allocate returns storage for n values of type t.
	Allocate(t reflect.Type, n int) unsafe.Pointer
	// Reallocate returns storage for newN values of type t with the first
	// min(oldN, newN) values of the old block preserved. The old block is
	// consumed.
	Reallocate(t reflect.Type, p unsafe.Pointer, oldN, newN int) unsafe.Pointer
	// Deallocate returns a block of n values of type t to the allocator.
	Deallocate(t reflect.Type, p unsafe.Pointer, n int)
}

// DefaultAllocator is used by every constructor that is not handed an
// explicit allocator. A nil Allocator is treated the same way by the typed
// helpers below.
var DefaultAllocator Allocator = HeapAllocator{}

// Alloc returns a pointer to a zeroed T obtained from a.
func Alloc[T any](a Allocator) *T {
	if a == nil {
		return new(T)
	}
	return (*T)(a.Allocate(reflect.TypeFor[T](), 1))
}

// AllocSlice returns a zeroed slice of n values of T obtained from a.
// The slice's length and capacity are both n.
func AllocSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	if a == nil {
		return make([]T, n)
	}
	p := (*T)(a.Allocate(reflect.TypeFor[T](), n))
	return unsafe.Slice(p, n)
}

// ReallocSlice exchanges s for a slice of n values of T with the first
// min(len(s), n) values preserved. s is consumed.
func ReallocSlice[T any](a Allocator, s []T, n int) []T {
	if n <= 0 {
		FreeSlice(a, s)
		return nil
	}
	if a == nil {
		out := make([]T, n)
		copy(out, s)
		return out
	}
	var old unsafe.Pointer
	if len(s) > 0 {
		old = unsafe.Pointer(&s[0])
	}
	p := (*T)(a.Reallocate(reflect.TypeFor[T](), old, len(s), n))
	return unsafe.Slice(p, n)
}

// Free returns the storage for a single T to a.
func Free[T any](a Allocator, p *T) {
	if p == nil {
		return
	}
	if a == nil {
		return
	}
	a.Deallocate(reflect.TypeFor[T](), unsafe.Pointer(p), 1)
}

// FreeSlice returns the storage backing s to a. s must have been obtained
// from AllocSlice or ReallocSlice with the same allocator.
func FreeSlice[T any](a Allocator, s []T) {
	if len(s) == 0 || a == nil {
		return
	}
	a.Deallocate(reflect.TypeFor[T](), unsafe.Pointer(&s[0]), len(s))
}

// HeapAllocator serves blocks from the garbage-collected heap. Deallocate
// releases the allocator's reference and leaves reclamation to the GC.
// The zero value is ready to use and safe for concurrent use.
type HeapAllocator struct{}

// Allocate implements Allocator.
func (HeapAllocator) Allocate(t reflect.Type, n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	return reflect.MakeSlice(reflect.SliceOf(t), n, n).UnsafePointer()
}

// Reallocate implements Allocator.
func (h HeapAllocator) Reallocate(t reflect.Type, p unsafe.Pointer, oldN, newN int) unsafe.Pointer {
	out := h.Allocate(t, newN)
	copyTyped(t, out, p, min(oldN, newN))
	return out
}

// Deallocate implements Allocator.
func (HeapAllocator) Deallocate(reflect.Type, unsafe.Pointer, int) {}

// CountingAllocator wraps another allocator and counts the calls routed
// through it. It exists for tests and diagnostics that need to observe a
// container's allocation traffic. Safe for concurrent use when the inner
// allocator is.
type CountingAllocator struct {
	inner    Allocator
	allocs   int64
	reallocs int64
	deallocs int64
	mu       sync.Mutex
}

// NewCountingAllocator wraps inner (DefaultAllocator when nil).
func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = DefaultAllocator
	}
	return &CountingAllocator{inner: inner}
}

// Allocate implements Allocator.
func (c *CountingAllocator) Allocate(t reflect.Type, n int) unsafe.Pointer {
	c.mu.Lock()
	c.allocs++
	c.mu.Unlock()
	return c.inner.Allocate(t, n)
}

// Reallocate implements Allocator.
func (c *CountingAllocator) Reallocate(t reflect.Type, p unsafe.Pointer, oldN, newN int) unsafe.Pointer {
	c.mu.Lock()
	c.reallocs++
	c.mu.Unlock()
	return c.inner.Reallocate(t, p, oldN, newN)
}

// Deallocate implements Allocator.
func (c *CountingAllocator) Deallocate(t reflect.Type, p unsafe.Pointer, n int) {
	c.mu.Lock()
	c.deallocs++
	c.mu.Unlock()
	c.inner.Deallocate(t, p, n)
}

// Allocs returns the number of Allocate calls observed.
func (c *CountingAllocator) Allocs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocs
}

// Reallocs returns the number of Reallocate calls observed.
func (c *CountingAllocator) Reallocs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reallocs
}

// Deallocs returns the number of Deallocate calls observed.
func (c *CountingAllocator) Deallocs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deallocs
}

// blockKey identifies a free-list bucket: blocks are interchangeable only
// when both element type and element count match.
type blockKey struct {
	t reflect.Type
	n int
}

// RecyclingAllocator keeps deallocated blocks on per-(type, count) free
// lists and serves them back before touching the heap. Recycled blocks are
// zeroed before reuse. Safe for concurrent use.
type RecyclingAllocator struct {
	mu   sync.Mutex
	free map[blockKey][]unsafe.Pointer
}

// NewRecyclingAllocator returns an empty RecyclingAllocator backed by the
// garbage-collected heap.
func NewRecyclingAllocator() *RecyclingAllocator {
	return &RecyclingAllocator{free: make(map[blockKey][]unsafe.Pointer)}
}

// Allocate implements Allocator. A recycled block is preferred when one of
// the exact type and count is available.
func (r *RecyclingAllocator) Allocate(t reflect.Type, n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}
	key := blockKey{t: t, n: n}
	r.mu.Lock()
	list := r.free[key]
	if len(list) > 0 {
		p := list[len(list)-1]
		r.free[key] = list[:len(list)-1]
		r.mu.Unlock()
		zeroTyped(t, p, n)
		return p
	}
	r.mu.Unlock()
	return HeapAllocator{}.Allocate(t, n)
}

// Reallocate implements Allocator.
func (r *RecyclingAllocator) Reallocate(t reflect.Type, p unsafe.Pointer, oldN, newN int) unsafe.Pointer {
	out := r.Allocate(t, newN)
	copyTyped(t, out, p, min(oldN, newN))
	r.Deallocate(t, p, oldN)
	return out
}

// Deallocate implements Allocator. The block is retained for reuse.
func (r *RecyclingAllocator) Deallocate(t reflect.Type, p unsafe.Pointer, n int) {
	if p == nil || n <= 0 {
		return
	}
	key := blockKey{t: t, n: n}
	r.mu.Lock()
	r.free[key] = append(r.free[key], p)
	r.mu.Unlock()
}

// Reset drops every retained block, returning the memory to the GC.
func (r *RecyclingAllocator) Reset() {
	r.mu.Lock()
	r.free = make(map[blockKey][]unsafe.Pointer)
	r.mu.Unlock()
}

// FreeBlocks reports the number of blocks currently held for reuse.
func (r *RecyclingAllocator) FreeBlocks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, list := range r.free {
		total += len(list)
	}
	return total
}

// copyTyped copies n values of type t from src to dst, preserving pointer
// identity for the garbage collector.
func copyTyped(t reflect.Type, dst, src unsafe.Pointer, n int) {
	if n <= 0 || dst == nil || src == nil {
		return
	}
	d := reflect.NewAt(reflect.ArrayOf(n, t), dst).Elem().Slice(0, n)
	s := reflect.NewAt(reflect.ArrayOf(n, t), src).Elem().Slice(0, n)
	reflect.Copy(d, s)
}

// zeroTyped zeroes n values of type t at p.
func zeroTyped(t reflect.Type, p unsafe.Pointer, n int) {
	if n <= 0 || p == nil {
		return
	}
	reflect.NewAt(reflect.ArrayOf(n, t), p).Elem().SetZero()
}
