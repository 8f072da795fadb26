// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

import "iter"

// Iterator is the forward-iteration capability a compliant collection
// exposes. Iterators are positioned views into a collection, not detached
// snapshots: mutating the underlying collection invalidates outstanding
// iterators, and dereferencing one afterwards is an erroneous condition the
// library does not detect.
type Iterator[T any] interface {
	// Next advances the iterator and returns a reference to the element at
	// the new position. At the end sentinel it stays put and returns a
	// reference to the last element (nil when the collection is empty).
	Next() *T
	// Current returns a reference to the element at the current position
	// without advancing. Panics when positioned outside the live elements.
	Current() *T
	// Equals reports whether other references the same collection instance
	// at the same position.
	Equals(other Iterator[T]) bool
	// Clone returns an independent iterator at the same position.
	Clone() Iterator[T]
}

// Iterable is a collection that can produce a begin/end iterator pair.
type Iterable[T any] interface {
	// Begin returns an iterator positioned at the first element.
	Begin() Iterator[T]
	// End returns the past-the-end sentinel iterator.
	End() Iterator[T]
}

// VectorIterator iterates a [Vector] by logical index.
type VectorIterator[T any] struct {
	vec   *Vector[T]
	index int
}

// Begin returns an iterator positioned at element 0.
func (v *Vector[T]) Begin() Iterator[T] {
	return &VectorIterator[T]{vec: v}
}

// End returns the past-the-end sentinel iterator.
func (v *Vector[T]) End() Iterator[T] {
	return &VectorIterator[T]{vec: v, index: v.size}
}

// Index returns the iterator's current logical index.
func (it *VectorIterator[T]) Index() int {
	return it.index
}

// Next implements [Iterator].
func (it *VectorIterator[T]) Next() *T {
	if it.index < it.vec.size {
		it.index++
	}
	if it.index >= it.vec.size {
		if it.vec.size == 0 {
			return nil
		}
		return it.vec.Ref(it.vec.size - 1)
	}
	return it.vec.Ref(it.index)
}

// Current implements [Iterator].
func (it *VectorIterator[T]) Current() *T {
	if it.index < 0 || it.index >= it.vec.size {
		panic("hold: vector iterator dereferenced out of bounds")
	}
	return it.vec.Ref(it.index)
}

// Equals implements [Iterator]: identity of the underlying vector plus
// position.
func (it *VectorIterator[T]) Equals(other Iterator[T]) bool {
	o, ok := other.(*VectorIterator[T])
	return ok && o.vec == it.vec && o.index == it.index
}

// Clone implements [Iterator].
func (it *VectorIterator[T]) Clone() Iterator[T] {
	c := *it
	return &c
}

// All returns a range-over-func iterator over (index, element) pairs.
//
//	for i, x := range v.All() {
//		// ...
//	}
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		st := v.storage()
		for i := 0; i < v.size; i++ {
			if !yield(i, st[i]) {
				return
			}
		}
	}
}

// Values returns a range-over-func iterator over elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		st := v.storage()
		for i := 0; i < v.size; i++ {
			if !yield(st[i]) {
				return
			}
		}
	}
}
