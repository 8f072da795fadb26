// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

// Option represents an optional value: either Some (a value is present) or
// None (no value). Operations that may logically produce "no value", such as
// [Vector.PopBack], return an Option instead of a sentinel.
//
// Option is a transparent wrapper: it does not own deallocation logic for
// the contained value.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value.
// Panics if the Option is None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("hold: called Unwrap on a None option")
	}
	return o.value
}

// Expect returns the contained value.
// Panics with the supplied message if the Option is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic("hold: " + msg)
	}
	return o.value
}

// UnwrapOr returns the contained value, or def when None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value, or the result of gen when None.
// gen is not invoked when a value is present.
func (o Option[T]) UnwrapOrElse(gen func() T) T {
	if o.some {
		return o.value
	}
	return gen()
}

// Or returns o when it holds a value, otherwise alt.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt
}

// OrElse returns o when it holds a value, otherwise the result of alt.
// alt is not invoked when a value is present.
func (o Option[T]) OrElse(alt func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt()
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the contained value, if any.
// None propagates without invoking f.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// AndOption returns other when o holds a value, otherwise None.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.some {
		return other
	}
	return None[U]()
}

// AndThenOption sequences two optional computations (monadic bind).
// None short-circuits without invoking f.
func AndThenOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.value)
	}
	return None[U]()
}
