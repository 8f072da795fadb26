// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

// Result represents a fallible outcome: either Ok (success carrying a value)
// or Err (failure carrying a domain error). It mirrors [Option]'s shape with
// a meaningful error payload in place of absence, so the same combinator
// vocabulary applies to both.
//
// A Result should never be silently discarded: callers branch on
// IsOk/IsErr or use a combinator.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok creates a success Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Err creates a failure Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk returns true if this is a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if this is a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and whether this is a success.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetErr returns the error value and whether this is a failure.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// Unwrap returns the success value.
// Panics if the Result is an Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("hold: called Unwrap on an Err result")
	}
	return r.value
}

// Expect returns the success value.
// Panics with the supplied message if the Result is an Err.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic("hold: " + msg)
	}
	return r.value
}

// UnwrapErr returns the error value.
// Panics if the Result is an Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("hold: called UnwrapErr on an Ok result")
	}
	return r.err
}

// ExpectErr returns the error value.
// Panics with the supplied message if the Result is an Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic("hold: " + msg)
	}
	return r.err
}

// UnwrapOr returns the success value, or def when Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or the result of applying gen to
// the error. gen is not invoked on success.
func (r Result[T, E]) UnwrapOrElse(gen func(E) T) T {
	if r.ok {
		return r.value
	}
	return gen(r.err)
}

// Okay converts the success branch to an Option, discarding any error.
func (r Result[T, E]) Okay() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Error converts the failure branch to an Option, discarding any value.
func (r Result[T, E]) Error() Option[E] {
	if !r.ok {
		return Some(r.err)
	}
	return None[E]()
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// MapResult applies a function to the success value.
// Err propagates without invoking f.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr applies a function to the error value.
// Ok propagates without invoking f.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// AndThenResult sequences two fallible computations (monadic bind).
// Err short-circuits without invoking f.
func AndThenResult[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U, E](r.err)
}

// OrElseResult recovers from a failure by applying f to the error.
// Ok propagates without invoking f.
func OrElseResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}
