// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold

// CollectionData bundles the element lifecycle hooks a container needs:
// how to default-construct, copy, and destroy a T. Containers invoke the
// hooks with their stored allocator so element-owned resources route through
// the same capability as the container's own storage.
type CollectionData[T any] struct {
	// Construct produces a new default element. Must not be nil.
	Construct func(Allocator) T
	// Copy produces an independent copy of the element. A nil Copy marks
	// the element type non-copyable and makes cloning the container a
	// fatal misuse.
	Copy func(*T, Allocator) T
	// Destroy releases any resources owned by the element. Must not be nil.
	Destroy func(*T, Allocator)
}

// DefaultCollectionData returns the lifecycle hooks for plain value types:
// zero-value construction, dereference copy, and a no-op destructor.
func DefaultCollectionData[T any]() CollectionData[T] {
	return CollectionData[T]{
		Construct: defaultConstruct[T],
		Copy:      defaultCopy[T],
		Destroy:   defaultDestroy[T],
	}
}

// Named generic functions rather than closures so every instantiation shares
// a single static funcval.

func defaultConstruct[T any](Allocator) T {
	var zero T
	return zero
}

func defaultCopy[T any](p *T, _ Allocator) T {
	return *p
}

func defaultDestroy[T any](*T, Allocator) {}
