// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

import (
	"fmt"
	"math"
)

// SmallCapacity is the number of elements a Vector stores inline before
// migrating to allocator-backed storage.
const SmallCapacity = 8

// MaxCapacity bounds the capacity growth arithmetic. Reserve saturates to
// this value and panics only when the requested capacity itself exceeds it.
const MaxCapacity = math.MaxInt / 2

// Vector is a growable, random-access, contiguous sequence with a
// small-size optimization: up to [SmallCapacity] elements live in an inline
// buffer with no heap traffic, beyond that storage migrates to a block
// obtained from the vector's allocator. Element lifecycle (construction,
// copy, destruction) is driven by the vector's [CollectionData].
//
// Elements in [0, Size) are live; storage beyond Size is unspecified.
// Size ≤ Capacity holds after every operation.
//
// A Vector is single-owner state: concurrent mutation of the same instance
// without external synchronization is out of contract. Copying a Vector
// value shares the heap block when one exists — use Clone for an
// independent copy.
//
// The zero value is an empty vector using [DefaultAllocator] and
// [DefaultCollectionData].
type Vector[T any] struct {
	short    [SmallCapacity]T
	long     []T
	size     int
	capacity int
	alloc    Allocator
	data     CollectionData[T]
}

// NewVector creates an empty vector with inline capacity, the default
// allocator, and default element lifecycle hooks.
func NewVector[T any]() Vector[T] {
	return NewVectorWith(DefaultAllocator, DefaultCollectionData[T]())
}

// NewVectorWithAllocator creates an empty vector routing all storage through a.
func NewVectorWithAllocator[T any](a Allocator) Vector[T] {
	return NewVectorWith(a, DefaultCollectionData[T]())
}

// NewVectorWithCollectionData creates an empty vector with custom element
// lifecycle hooks.
func NewVectorWithCollectionData[T any](data CollectionData[T]) Vector[T] {
	return NewVectorWith(DefaultAllocator, data)
}

// NewVectorWith creates an empty vector with the supplied allocator and
// element lifecycle hooks. Panics if the constructor or destructor hook is
// nil; a nil copy hook is allowed and marks the element type non-copyable.
func NewVectorWith[T any](a Allocator, data CollectionData[T]) Vector[T] {
	if data.Construct == nil {
		panic("hold: vector element constructor cannot be nil")
	}
	if data.Destroy == nil {
		panic("hold: vector element destructor cannot be nil")
	}
	if a == nil {
		a = DefaultAllocator
	}
	return Vector[T]{capacity: SmallCapacity, alloc: a, data: data}
}

// NewVectorWithCapacity creates an empty vector with capacity for at least
// capacity elements.
func NewVectorWithCapacity[T any](capacity int) Vector[T] {
	return NewVectorWithCapacityAndAllocator[T](capacity, DefaultAllocator)
}

// NewVectorWithCapacityAndAllocator creates an empty vector with capacity
// for at least capacity elements, routing all storage through a.
func NewVectorWithCapacityAndAllocator[T any](capacity int, a Allocator) Vector[T] {
	v := NewVectorWithAllocator[T](a)
	v.Reserve(capacity)
	return v
}

// lazyInit makes the zero value usable, mirroring what the constructors set.
func (v *Vector[T]) lazyInit() {
	if v.capacity == 0 {
		v.capacity = SmallCapacity
	}
	if v.alloc == nil {
		v.alloc = DefaultAllocator
	}
	if v.data.Construct == nil && v.data.Destroy == nil && v.data.Copy == nil {
		v.data = DefaultCollectionData[T]()
	}
}

// isShort reports whether storage is currently the inline buffer.
func (v *Vector[T]) isShort() bool {
	return v.capacity <= SmallCapacity
}

// storage returns the live backing buffer, inline or heap.
func (v *Vector[T]) storage() []T {
	if v.isShort() {
		return v.short[:]
	}
	return v.long
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements the current storage can hold.
func (v *Vector[T]) Capacity() int {
	if v.capacity == 0 {
		return SmallCapacity
	}
	return v.capacity
}

// IsEmpty returns true when the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// IsFull returns true when the next push would have to grow storage.
func (v *Vector[T]) IsFull() bool {
	return v.size == v.Capacity()
}

// Ref returns a pointer to element i.
// Panics if i is out of range. The pointer is invalidated by any operation
// that relocates storage.
func (v *Vector[T]) Ref(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("hold: vector index %d out of range [0, %d)", i, v.size))
	}
	return &v.storage()[i]
}

// At returns element i by value.
// Panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	return *v.Ref(i)
}

// Set stores x at element i.
// Panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	*v.Ref(i) = x
}

// Front returns a pointer to the first live element, or None when empty.
func (v *Vector[T]) Front() Option[*T] {
	if v.size == 0 {
		return None[*T]()
	}
	return Some(&v.storage()[0])
}

// Back returns a pointer to the last live element, or None when empty.
func (v *Vector[T]) Back() Option[*T] {
	if v.size == 0 {
		return None[*T]()
	}
	return Some(&v.storage()[v.size-1])
}

// expandedCapacity computes increments growth steps of 1.5x from oldCap,
// saturating at MaxCapacity.
func expandedCapacity(oldCap, increments int) int {
	if oldCap >= MaxCapacity {
		return MaxCapacity
	}
	step := oldCap + oldCap/2
	if step < oldCap || step > MaxCapacity {
		step = MaxCapacity
	}
	if step == oldCap {
		step = oldCap + 1
	}
	if increments <= 1 {
		return step
	}
	if step > MaxCapacity/increments {
		return MaxCapacity
	}
	return increments * step
}

// relocate moves live elements into storage of exactly newCap elements.
// Relocation is a move: old storage is released without destructing the
// moved-out elements. Requires newCap >= size.
func (v *Vector[T]) relocate(newCap int) {
	if newCap == v.capacity {
		return
	}
	if newCap > SmallCapacity {
		if v.isShort() {
			buf := AllocSlice[T](v.alloc, newCap)
			copy(buf, v.short[:v.size])
			v.long = buf
		} else {
			v.long = ReallocSlice(v.alloc, v.long, newCap)
		}
		v.capacity = newCap
	} else if !v.isShort() {
		copy(v.short[:], v.long[:v.size])
		FreeSlice(v.alloc, v.long)
		v.long = nil
		v.capacity = SmallCapacity
	}
}

// Reserve grows storage to hold at least newCapacity elements, relocating
// live elements in order. A no-op when newCapacity does not exceed the
// current capacity. Growth is amortized: the resulting capacity is computed
// in 1.5x steps, saturating at [MaxCapacity].
// Panics if newCapacity exceeds MaxCapacity.
func (v *Vector[T]) Reserve(newCapacity int) {
	v.lazyInit()
	if newCapacity <= v.capacity {
		return
	}
	if newCapacity > MaxCapacity {
		panic("hold: vector capacity exceeds MaxCapacity")
	}
	step := v.capacity + v.capacity/2
	increments := 1 + newCapacity/step
	actual := expandedCapacity(v.capacity, increments)
	if actual < newCapacity {
		actual = newCapacity
	}
	v.relocate(actual)
}

// PushBack appends x, growing storage when full. Amortized O(1).
func (v *Vector[T]) PushBack(x T) {
	v.lazyInit()
	if v.size+1 > v.capacity {
		v.relocate(expandedCapacity(v.capacity, 1))
	}
	v.storage()[v.size] = x
	v.size++
}

// PopBack removes and returns the last element, or None when empty.
// Ownership of the element moves to the caller: the vacated slot is zeroed
// and the element destructor is not run.
func (v *Vector[T]) PopBack() Option[T] {
	if v.size == 0 {
		return None[T]()
	}
	st := v.storage()
	x := st[v.size-1]
	var zero T
	st[v.size-1] = zero
	v.size--
	return Some(x)
}

// Insert writes x at index, shifting elements in [index, Size) one slot
// forward. index may equal Size (append position).
// Panics if index is out of [0, Size].
func (v *Vector[T]) Insert(x T, index int) {
	v.lazyInit()
	if index < 0 || index > v.size {
		panic(fmt.Sprintf("hold: vector insert index %d out of range [0, %d]", index, v.size))
	}
	if v.size+1 > v.capacity {
		v.relocate(expandedCapacity(v.capacity, 1))
	}
	st := v.storage()
	copy(st[index+1:v.size+1], st[index:v.size])
	st[index] = x
	v.size++
}

// Erase destructs the element at index and shifts [index+1, Size) back one
// slot, preserving the relative order of the survivors.
// Panics if index is out of range.
func (v *Vector[T]) Erase(index int) {
	v.lazyInit()
	if index < 0 || index >= v.size {
		panic(fmt.Sprintf("hold: vector erase index %d out of range [0, %d)", index, v.size))
	}
	st := v.storage()
	v.data.Destroy(&st[index], v.alloc)
	copy(st[index:v.size-1], st[index+1:v.size])
	var zero T
	st[v.size-1] = zero
	v.size--
}

// EraseN destructs n elements starting at index and shifts the remainder
// back. Erasing a suffix (index+n == Size) is legal.
// Panics if [index, index+n) is not within [0, Size].
func (v *Vector[T]) EraseN(index, n int) {
	v.lazyInit()
	if n < 0 || index < 0 || index+n > v.size {
		panic(fmt.Sprintf("hold: vector erase range [%d, %d) out of range [0, %d)", index, index+n, v.size))
	}
	if n == 0 {
		return
	}
	st := v.storage()
	for i := index; i < index+n; i++ {
		v.data.Destroy(&st[i], v.alloc)
	}
	copy(st[index:], st[index+n:v.size])
	var zero T
	for i := v.size - n; i < v.size; i++ {
		st[i] = zero
	}
	v.size -= n
}

// Resize sets the number of live elements to newSize. Shrinking destructs
// the trailing elements and leaves capacity unchanged; growing reserves
// storage through the amortized path and default-constructs the new
// trailing elements.
// Panics if newSize is negative.
func (v *Vector[T]) Resize(newSize int) {
	v.lazyInit()
	if newSize < 0 {
		panic("hold: negative size supplied to Vector.Resize")
	}
	switch {
	case newSize < v.size:
		st := v.storage()
		var zero T
		for i := newSize; i < v.size; i++ {
			v.data.Destroy(&st[i], v.alloc)
			st[i] = zero
		}
		v.size = newSize
	case newSize > v.size:
		if newSize > v.capacity {
			v.Reserve(newSize)
		}
		st := v.storage()
		for i := v.size; i < newSize; i++ {
			st[i] = v.data.Construct(v.alloc)
		}
		v.size = newSize
	}
}

// ShrinkToFit reduces capacity to match Size, migrating back to inline
// storage when Size fits in [SmallCapacity].
func (v *Vector[T]) ShrinkToFit() {
	v.lazyInit()
	if v.isShort() || v.size == v.capacity {
		return
	}
	v.relocate(max(v.size, 1))
}

// Clear destructs every live element and zeroes its slot. Size becomes 0;
// capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.lazyInit()
	st := v.storage()
	var zero T
	for i := 0; i < v.size; i++ {
		v.data.Destroy(&st[i], v.alloc)
		st[i] = zero
	}
	v.size = 0
}

// FreeStorage clears the vector and returns any heap block to the
// allocator. Capacity returns to [SmallCapacity] and the vector remains
// usable.
func (v *Vector[T]) FreeStorage() {
	v.Clear()
	if !v.isShort() {
		FreeSlice(v.alloc, v.long)
		v.long = nil
		v.capacity = SmallCapacity
	}
}

// Clone returns an independent copy of the vector, copying every live
// element through the copy hook and sharing the allocator and lifecycle
// hooks.
// Panics if the element type has no copy hook.
func (v *Vector[T]) Clone() Vector[T] {
	v.lazyInit()
	if v.data.Copy == nil {
		panic("hold: cannot clone a vector whose elements have no copy constructor")
	}
	out := NewVectorWith(v.alloc, v.data)
	out.Reserve(v.capacity)
	st := v.storage()
	for i := 0; i < v.size; i++ {
		out.PushBack(v.data.Copy(&st[i], v.alloc))
	}
	return out
}
