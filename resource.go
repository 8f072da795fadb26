// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

// Scoped ownership helpers following the bracket pattern:
// acquire → use → release, where release is guaranteed to run via defer
// even if use panics. These are the deterministic-destruction surface for
// callers that want ownership bounded to a lexical scope.

// WithUnique allocates a zeroed T from a, runs use with its owning pointer,
// and frees it when use returns or panics.
func WithUnique[T, R any](a Allocator, use func(*Unique[T]) R) R {
	u := NewUnique[T](a)
	defer u.Free()
	return use(&u)
}

// WithUniqueSlice allocates a zeroed slice of capacity elements from a,
// runs use with its owning pointer, and frees it when use returns or panics.
func WithUniqueSlice[T, R any](a Allocator, capacity int, use func(*UniqueSlice[T]) R) R {
	u := NewUniqueSlice[T](a, capacity)
	defer u.Free()
	return use(&u)
}

// WithShared allocates a zeroed T from a, runs use with a shared owning
// pointer, and releases the scope's stake when use returns or panics.
// Aliases cloned inside use and handed out survive the scope; the pointee
// is deleted only when the last alias releases.
func WithShared[T, R any](a Allocator, use func(*Shared[T]) R) R {
	s := NewShared[T](a)
	defer s.Release()
	return use(&s)
}

// WithVector creates an empty vector on a, runs use with it, and releases
// its storage when use returns or panics.
func WithVector[T, R any](a Allocator, use func(*Vector[T]) R) R {
	v := NewVectorWithAllocator[T](a)
	defer v.FreeStorage()
	return use(&v)
}
