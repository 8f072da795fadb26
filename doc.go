// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hold provides a generic ownership and container model in Go:
// explicit-allocator containers, unique and shared owning pointers with
// pluggable deleters, Option/Result sum types for absence and failure, and
// lazy filtered range views.
//
// # Design Philosophy
//
// hold provides:
//   - Explicit allocator threading: every container and owning pointer
//     stores an [Allocator] capability and routes all storage through it
//   - Typed absence and failure: operations that can logically produce
//     "no value" return [Option]; fallible operations return [Result] —
//     never sentinels or out-parameters
//   - Loud misuse: contract violations (out-of-bounds access, unwrap on the
//     wrong variant, nil deleters) panic immediately with a diagnostic
//     message rather than continuing in a corrupted state
//
// # Allocators
//
// [Allocator] is a value-ish capability of allocate/reallocate/deallocate
// over typed blocks. Generic front-ends [Alloc], [AllocSlice],
// [ReallocSlice], [Free], and [FreeSlice] give type-safe access; a nil
// allocator falls back to the garbage-collected heap.
//
//   - [HeapAllocator]: GC-backed default ([DefaultAllocator])
//   - [CountingAllocator]: wraps another allocator and counts traffic
//   - [RecyclingAllocator]: serves freed blocks back from per-type free lists
//
// # Sum Types
//
// [Option] is Some(value) or None; [Result] is Ok(value) or Err(error).
// Both share one tagged shape and one combinator vocabulary:
//
//   - Constructors: [Some], [None], [Ok], [Err]
//   - Predicates and accessors: IsSome/IsNone, IsOk/IsErr, comma-ok Get
//   - Unwrap family: Unwrap, Expect, UnwrapOr, UnwrapOrElse (fatal on the
//     wrong variant for Unwrap/Expect; UnwrapErr/ExpectErr on Result)
//   - Combinators: [MapOption], [AndOption], [AndThenOption], Or, OrElse,
//     [MapResult], [MapErr], [AndThenResult], [OrElseResult]
//   - Pattern matching: [MatchOption], [MatchResult]
//
// # Owning Pointers
//
// [Unique] is exclusive ownership of a single heap value; [UniqueSlice] is
// its array-flavored counterpart with indexed access. [Shared] and
// [SharedSlice] add atomic reference counting: Clone increments a count
// cell shared along the clone chain, Release decrements it, and exactly one
// release observes the transition to zero and runs the deleter. The
// scalar/slice split is two distinct types, so array-only operations are a
// compile-time impossibility on scalar pointers rather than a runtime check.
//
// Deleters are pluggable per pointer ([UniqueWithDeleter],
// [SharedWithDeleter]) and default to deallocating through the stored
// allocator. Shared counting synchronizes only the count — never the
// pointee's contents.
//
// # Vector
//
// [Vector] is a growable contiguous sequence with a small-size
// optimization: up to [SmallCapacity] elements live inline with zero
// allocator traffic, and storage migrates to an allocator block on the
// first push beyond that (and back, on [Vector.ShrinkToFit]). Element
// lifecycle is driven by a [CollectionData] triple of construct/copy/
// destroy hooks. Capacity grows in 1.5x amortized steps with saturating
// arithmetic.
//
// Bounds-checked access ([Vector.At], [Vector.Ref], [Vector.Set]) panics on
// out-of-range indices. [Vector.PopBack] returns Option. Iterators are
// index-based views; any size-changing mutation invalidates them.
//
// # Iterators and Ranges
//
// Collections expose the [Iterator]/[Iterable] contract (Next, Current,
// Equals, Clone; Begin/End). [Range] wraps a begin/end pair with an
// optional element filter evaluated lazily on every walk:
//
//   - [Range.ForEach]: traverse visible elements
//   - [Range.Transform]: mutate visible elements in place
//   - [Range.Collect]: materialize visible elements into a new Vector
//   - [Range.Accumulate]: left fold seeded by the first visible element,
//     returning None when nothing is visible
//   - [Range.Seq], [Vector.All], [Vector.Values]: range-over-func adapters
//
// # Scoped Ownership
//
// [WithUnique], [WithUniqueSlice], [WithShared], and [WithVector] bound
// ownership to a lexical scope with deferred release, bracket style:
// cleanup runs even when the scope body panics.
//
// # Concurrency
//
// The containers are passive data types. The one concurrency-safe primitive
// is the shared count: [Shared.Clone]/[Shared.Release] may race freely
// across goroutines holding aliases of one pointee, and the deleter runs
// exactly once. Everything else is single-owner state.
//
// # Example
//
//	v := hold.NewVector[int]()
//	for i := range 10 {
//		v.PushBack(i)
//	}
//	r := hold.RangeOfFiltered[int](&v, func(p *int) bool { return *p%3 == 0 })
//	sum := r.Accumulate(func(a, b int) int { return a + b })
//	// sum == Some(18)
package hold
