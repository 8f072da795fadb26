// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

// Deleter releases a scalar pointee using the owning pointer's allocator.
type Deleter[T any] func(*T, Allocator)

// SliceDeleter releases a slice pointee using the owning pointer's allocator.
type SliceDeleter[T any] func([]T, Allocator)

// defaultDelete deallocates the pointee through the stored allocator.
func defaultDelete[T any](p *T, a Allocator) {
	Free(a, p)
}

// defaultDeleteSlice deallocates the slice through the stored allocator.
func defaultDeleteSlice[T any](s []T, a Allocator) {
	FreeSlice(a, s)
}

// Unique exclusively owns a single heap-allocated T. At most one Unique may
// own a given pointee at any time; transferring ownership (Release, Move,
// Swap) always leaves exactly one owner.
//
// A Unique is either owning or empty. Free and Release leave it empty;
// freeing an empty Unique is a no-op, so a moved-from Unique is always safe
// to Free. The zero value is empty and ready to use.
//
// Unique is single-owner state: mutating the same instance from multiple
// goroutines without external synchronization is out of contract.
type Unique[T any] struct {
	ptr     *T
	alloc   Allocator
	deleter Deleter[T]
}

// NewUnique allocates a zeroed T from a and returns its owning pointer.
func NewUnique[T any](a Allocator) Unique[T] {
	return UniqueFrom(a, Alloc[T](a))
}

// MakeUnique allocates a T from a, initializes it to v, and returns its
// owning pointer.
func MakeUnique[T any](a Allocator, v T) Unique[T] {
	p := Alloc[T](a)
	*p = v
	return UniqueFrom(a, p)
}

// UniqueFrom adopts ownership of p, which must have been allocated from a
// (or from the heap when a is nil). The default deleter deallocates through a.
func UniqueFrom[T any](a Allocator, p *T) Unique[T] {
	return Unique[T]{ptr: p, alloc: a, deleter: defaultDelete[T]}
}

// UniqueWithDeleter adopts ownership of p with a custom deleter.
// Panics if d is nil.
func UniqueWithDeleter[T any](a Allocator, p *T, d Deleter[T]) Unique[T] {
	if d == nil {
		panic("hold: nil deleter supplied to UniqueWithDeleter")
	}
	return Unique[T]{ptr: p, alloc: a, deleter: d}
}

// Get returns the owned pointer without transferring ownership.
// Returns nil when empty.
func (u *Unique[T]) Get() *T {
	return u.ptr
}

// IsOwning returns true when u currently owns a pointee.
func (u *Unique[T]) IsOwning() bool {
	return u.ptr != nil
}

// Release transfers ownership of the pointee to the caller. The deleter is
// not invoked; the caller becomes responsible for deallocation. u is empty
// afterwards.
func (u *Unique[T]) Release() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset deletes the current pointee, if any, then adopts p.
func (u *Unique[T]) Reset(p *T) {
	if u.deleter == nil {
		u.deleter = defaultDelete[T]
	}
	if u.ptr != nil {
		u.deleter(u.ptr, u.alloc)
	}
	u.ptr = p
}

// Swap exchanges ownership between u and other. No deleter is invoked.
func (u *Unique[T]) Swap(other *Unique[T]) {
	*u, *other = *other, *u
}

// Move transfers ownership out of u into the returned Unique.
// u is empty afterwards.
func (u *Unique[T]) Move() Unique[T] {
	out := *u
	u.ptr = nil
	return out
}

// Free deletes the pointee, if any, leaving u empty. Idempotent: the deleter
// runs at most once per owned pointee.
func (u *Unique[T]) Free() {
	if u.ptr == nil {
		return
	}
	p := u.ptr
	u.ptr = nil
	u.deleter(p, u.alloc)
}

// UniqueSlice exclusively owns a heap-allocated slice of T. It is the
// array-flavored counterpart of [Unique]: it supports indexed access and
// capacity-based construction, which the scalar type deliberately lacks.
type UniqueSlice[T any] struct {
	elems   []T
	alloc   Allocator
	deleter SliceDeleter[T]
}

// NewUniqueSlice allocates a zeroed slice of capacity elements from a and
// returns its owning pointer. Panics if capacity is negative.
func NewUniqueSlice[T any](a Allocator, capacity int) UniqueSlice[T] {
	if capacity < 0 {
		panic("hold: negative capacity supplied to NewUniqueSlice")
	}
	return UniqueSliceFrom(a, AllocSlice[T](a, capacity))
}

// UniqueSliceFrom adopts ownership of s, which must have been allocated from
// a (or from the heap when a is nil).
func UniqueSliceFrom[T any](a Allocator, s []T) UniqueSlice[T] {
	return UniqueSlice[T]{elems: s, alloc: a, deleter: defaultDeleteSlice[T]}
}

// UniqueSliceWithDeleter adopts ownership of s with a custom deleter.
// Panics if d is nil.
func UniqueSliceWithDeleter[T any](a Allocator, s []T, d SliceDeleter[T]) UniqueSlice[T] {
	if d == nil {
		panic("hold: nil deleter supplied to UniqueSliceWithDeleter")
	}
	return UniqueSlice[T]{elems: s, alloc: a, deleter: d}
}

// At returns a pointer to element i.
// Panics if i is out of range.
func (u *UniqueSlice[T]) At(i int) *T {
	if i < 0 || i >= len(u.elems) {
		panic("hold: unique slice index out of range")
	}
	return &u.elems[i]
}

// Set stores v at element i.
// Panics if i is out of range.
func (u *UniqueSlice[T]) Set(i int, v T) {
	*u.At(i) = v
}

// Len returns the number of owned elements.
func (u *UniqueSlice[T]) Len() int {
	return len(u.elems)
}

// IsOwning returns true when u currently owns a slice.
func (u *UniqueSlice[T]) IsOwning() bool {
	return u.elems != nil
}

// Release transfers ownership of the slice to the caller. The deleter is not
// invoked. u is empty afterwards.
func (u *UniqueSlice[T]) Release() []T {
	s := u.elems
	u.elems = nil
	return s
}

// Reset deletes the current slice, if any, then adopts s.
func (u *UniqueSlice[T]) Reset(s []T) {
	if u.deleter == nil {
		u.deleter = defaultDeleteSlice[T]
	}
	if u.elems != nil {
		u.deleter(u.elems, u.alloc)
	}
	u.elems = s
}

// Swap exchanges ownership between u and other. No deleter is invoked.
func (u *UniqueSlice[T]) Swap(other *UniqueSlice[T]) {
	*u, *other = *other, *u
}

// Move transfers ownership out of u into the returned UniqueSlice.
// u is empty afterwards.
func (u *UniqueSlice[T]) Move() UniqueSlice[T] {
	out := *u
	u.elems = nil
	return out
}

// Free deletes the slice, if any, leaving u empty. Idempotent.
func (u *UniqueSlice[T]) Free() {
	if u.elems == nil {
		return
	}
	s := u.elems
	u.elems = nil
	u.deleter(s, u.alloc)
}
