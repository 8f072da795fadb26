// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

import (
	"sync/atomic"
)

// Shared is a reference-counted owning pointer to a single heap-allocated T.
// Clone produces a new alias of the same pointee and increments a count cell
// shared along the clone chain; Release decrements it and deletes the
// pointee exactly on the transition to zero.
//
// The count cell is allocated once per pointee and never moves: it is shared
// state outliving any particular Shared value. Count updates are atomic, so
// Clone and Release are safe to race across goroutines holding aliases of
// the same pointee. The pointee's own contents are NOT synchronized;
// coordinating concurrent mutation through aliases is the caller's
// responsibility.
type Shared[T any] struct {
	ptr     *T
	count   *atomic.Int64
	alloc   Allocator
	deleter Deleter[T]
}

// NewShared allocates a zeroed T from a and returns an owning pointer with a
// fresh count cell at 1.
func NewShared[T any](a Allocator) Shared[T] {
	return SharedFrom(a, Alloc[T](a))
}

// MakeShared allocates a T from a, initializes it to v, and returns its
// owning pointer.
func MakeShared[T any](a Allocator, v T) Shared[T] {
	p := Alloc[T](a)
	*p = v
	return SharedFrom(a, p)
}

// SharedFrom adopts ownership of p with a fresh count cell at 1. p must have
// been allocated from a (or from the heap when a is nil). The default
// deleter deallocates through a.
func SharedFrom[T any](a Allocator, p *T) Shared[T] {
	return Shared[T]{ptr: p, count: newCountCell(), alloc: a, deleter: defaultDelete[T]}
}

// SharedWithDeleter adopts ownership of p with a custom deleter.
// Panics if d is nil.
func SharedWithDeleter[T any](a Allocator, p *T, d Deleter[T]) Shared[T] {
	if d == nil {
		panic("hold: nil deleter supplied to SharedWithDeleter")
	}
	return Shared[T]{ptr: p, count: newCountCell(), alloc: a, deleter: d}
}

// newCountCell allocates a count cell initialized to one owner.
// The cell lives on the garbage-collected heap regardless of the pointee's
// allocator: it must outlive every alias, and the last Release drops the
// final reference to it.
func newCountCell() *atomic.Int64 {
	c := new(atomic.Int64)
	c.Store(1)
	return c
}

// Get returns the shared pointer without affecting the count.
// Returns nil when empty.
func (s *Shared[T]) Get() *T {
	return s.ptr
}

// IsOwning returns true when s currently participates in ownership of a
// pointee.
func (s *Shared[T]) IsOwning() bool {
	return s.count != nil
}

// Count returns the number of live aliases, or 0 when empty. The value is a
// snapshot: under concurrent Clone/Release it may be stale by the time it is
// observed.
func (s *Shared[T]) Count() int64 {
	if s.count == nil {
		return 0
	}
	return s.count.Load()
}

// Clone atomically increments the shared count and returns a new alias of
// the same pointee. Cloning an empty Shared returns an empty Shared.
func (s *Shared[T]) Clone() Shared[T] {
	if s.count == nil {
		return Shared[T]{}
	}
	s.count.Add(1)
	return *s
}

// Release atomically decrements the shared count, detaching s from the
// clone chain. Exactly one releasing alias observes the transition to zero
// and runs the deleter; the count cell is dropped along with it. s is empty
// afterwards. Releasing an empty Shared is a no-op.
func (s *Shared[T]) Release() {
	if s.count == nil {
		return
	}
	count, ptr := s.count, s.ptr
	s.count = nil
	s.ptr = nil
	if count.Add(-1) == 0 && ptr != nil {
		s.deleter(ptr, s.alloc)
	}
}

// Reset releases s's stake in the current pointee, then adopts p with a
// fresh count cell. Other aliases of the old pointee are unaffected.
func (s *Shared[T]) Reset(p *T) {
	if s.deleter == nil {
		s.deleter = defaultDelete[T]
	}
	s.Release()
	s.ptr = p
	s.count = newCountCell()
}

// Swap exchanges ownership stakes between s and other. No count changes and
// no deleter invocations occur.
func (s *Shared[T]) Swap(other *Shared[T]) {
	*s, *other = *other, *s
}

// SharedSlice is the array-flavored counterpart of [Shared]: reference-
// counted shared ownership of a heap-allocated slice, with indexed access
// and capacity-based construction.
type SharedSlice[T any] struct {
	elems   []T
	count   *atomic.Int64
	alloc   Allocator
	deleter SliceDeleter[T]
}

// NewSharedSlice allocates a zeroed slice of capacity elements from a and
// returns an owning pointer with a fresh count cell at 1.
// Panics if capacity is negative.
func NewSharedSlice[T any](a Allocator, capacity int) SharedSlice[T] {
	if capacity < 0 {
		panic("hold: negative capacity supplied to NewSharedSlice")
	}
	return SharedSliceFrom(a, AllocSlice[T](a, capacity))
}

// SharedSliceFrom adopts ownership of s with a fresh count cell at 1.
func SharedSliceFrom[T any](a Allocator, s []T) SharedSlice[T] {
	return SharedSlice[T]{elems: s, count: newCountCell(), alloc: a, deleter: defaultDeleteSlice[T]}
}

// SharedSliceWithDeleter adopts ownership of s with a custom deleter.
// Panics if d is nil.
func SharedSliceWithDeleter[T any](a Allocator, s []T, d SliceDeleter[T]) SharedSlice[T] {
	if d == nil {
		panic("hold: nil deleter supplied to SharedSliceWithDeleter")
	}
	return SharedSlice[T]{elems: s, count: newCountCell(), alloc: a, deleter: d}
}

// At returns a pointer to element i.
// Panics if i is out of range.
func (s *SharedSlice[T]) At(i int) *T {
	if i < 0 || i >= len(s.elems) {
		panic("hold: shared slice index out of range")
	}
	return &s.elems[i]
}

// Len returns the number of shared elements.
func (s *SharedSlice[T]) Len() int {
	return len(s.elems)
}

// IsOwning returns true when s currently participates in ownership.
func (s *SharedSlice[T]) IsOwning() bool {
	return s.count != nil
}

// Count returns the number of live aliases, or 0 when empty.
func (s *SharedSlice[T]) Count() int64 {
	if s.count == nil {
		return 0
	}
	return s.count.Load()
}

// Clone atomically increments the shared count and returns a new alias.
func (s *SharedSlice[T]) Clone() SharedSlice[T] {
	if s.count == nil {
		return SharedSlice[T]{}
	}
	s.count.Add(1)
	return *s
}

// Release atomically decrements the shared count; the last alias runs the
// deleter. s is empty afterwards.
func (s *SharedSlice[T]) Release() {
	if s.count == nil {
		return
	}
	count, elems := s.count, s.elems
	s.count = nil
	s.elems = nil
	if count.Add(-1) == 0 && elems != nil {
		s.deleter(elems, s.alloc)
	}
}

// Reset releases s's stake in the current slice, then adopts elems with a
// fresh count cell. Other aliases are unaffected.
func (s *SharedSlice[T]) Reset(elems []T) {
	if s.deleter == nil {
		s.deleter = defaultDeleteSlice[T]
	}
	s.Release()
	s.elems = elems
	s.count = newCountCell()
}

// Swap exchanges ownership stakes between s and other.
func (s *SharedSlice[T]) Swap(other *SharedSlice[T]) {
	*s, *other = *other, *s
}
