// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

import "iter"

// Filter decides whether a range makes an element visible.
type Filter[T any] func(*T) bool

// Range is a lazy, non-owning, optionally filtered view over a collection's
// begin/end iterator pair. The filter is a view property: it is re-evaluated
// on every walk, never precomputed into a mask, so mutations of the
// underlying collection between walks are observed. Begin, end, and the
// cursor must all reference the same collection instance.
//
// Destroying a Range never affects the underlying collection.
type Range[T any] struct {
	begin   Iterator[T]
	end     Iterator[T]
	current Iterator[T]
	filter  Filter[T]
}

// RangeFrom creates an unfiltered range over [begin, end).
func RangeFrom[T any](begin, end Iterator[T]) *Range[T] {
	return RangeFiltered[T](begin, end, nil)
}

// RangeFiltered creates a range over [begin, end) showing only elements the
// filter accepts. A nil filter accepts everything.
// Panics if begin or end is nil.
func RangeFiltered[T any](begin, end Iterator[T], filter Filter[T]) *Range[T] {
	if begin == nil || end == nil {
		panic("hold: range requires begin and end iterators")
	}
	if filter == nil {
		filter = acceptAll[T]
	}
	return &Range[T]{begin: begin, end: end, current: begin.Clone(), filter: filter}
}

// RangeOf creates an unfiltered range over the whole collection.
func RangeOf[T any](c Iterable[T]) *Range[T] {
	return RangeFrom(c.Begin(), c.End())
}

// RangeOfFiltered creates a filtered range over the whole collection.
func RangeOfFiltered[T any](c Iterable[T], filter Filter[T]) *Range[T] {
	return RangeFiltered(c.Begin(), c.End(), filter)
}

// acceptAll is the default filter.
func acceptAll[T any](*T) bool { return true }

// BeginVisible resets the range's cursor and returns a reference to the
// first visible element, or None when nothing passes the filter.
func (r *Range[T]) BeginVisible() Option[*T] {
	r.current = r.begin.Clone()
	for !r.current.Equals(r.end) {
		if elem := r.current.Current(); r.filter(elem) {
			return Some(elem)
		}
		r.current.Next()
	}
	return None[*T]()
}

// NextVisible advances the cursor to the next visible element and returns a
// reference to it, or None when the view is exhausted.
func (r *Range[T]) NextVisible() Option[*T] {
	for !r.current.Equals(r.end) {
		r.current.Next()
		if r.current.Equals(r.end) {
			break
		}
		if elem := r.current.Current(); r.filter(elem) {
			return Some(elem)
		}
	}
	return None[*T]()
}

// ForEach walks the view from the beginning, invoking f on every visible
// element in traversal order. The filter is evaluated afresh for each
// element on each walk.
func (r *Range[T]) ForEach(f func(*T)) {
	for it := r.begin.Clone(); !it.Equals(r.end); it.Next() {
		if elem := it.Current(); r.filter(elem) {
			f(elem)
		}
	}
}

// Transform mutates every currently visible element in place and returns
// the same range. Elements the mutation pushes outside the filter are
// hidden from subsequent walks; elements it pulls inside become visible.
func (r *Range[T]) Transform(f func(*T)) *Range[T] {
	r.ForEach(f)
	return r
}

// Collect eagerly materializes the visible elements, in traversal order,
// into a new vector owned by [DefaultAllocator].
func (r *Range[T]) Collect() Vector[T] {
	return r.CollectWith(DefaultAllocator)
}

// CollectWith eagerly materializes the visible elements into a new vector
// owned by a.
func (r *Range[T]) CollectWith(a Allocator) Vector[T] {
	out := NewVectorWithAllocator[T](a)
	r.ForEach(func(p *T) {
		out.PushBack(*p)
	})
	return out
}

// Accumulate folds the visible elements left to right, seeding the
// accumulator with the first visible element. Returns None when nothing is
// visible: accumulation over an empty view has no meaningful seed, and the
// library reports that as absence rather than dereferencing past the end.
func (r *Range[T]) Accumulate(f func(acc, elem T) T) Option[T] {
	acc := None[T]()
	r.ForEach(func(p *T) {
		if v, some := acc.Get(); some {
			acc = Some(f(v, *p))
		} else {
			acc = Some(*p)
		}
	})
	return acc
}

// Seq returns a range-over-func iterator over references to the visible
// elements. Like every other walk, the filter is re-evaluated lazily.
func (r *Range[T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := r.begin.Clone(); !it.Equals(r.end); it.Next() {
			if elem := it.Current(); r.filter(elem) {
				if !yield(elem) {
					return
				}
			}
		}
	}
}
