// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold_test

import (
	"testing"

	"code.hybscloud.com/hold"
)

func TestUniqueNewOwns(t *testing.T) {
	u := hold.MakeUnique(nil, 42)
	if !u.IsOwning() {
		t.Fatal("MakeUnique not owning")
	}
	if got := *u.Get(); got != 42 {
		t.Fatalf("pointee = %d, want 42", got)
	}
	u.Free()
	if u.IsOwning() {
		t.Fatal("owning after Free")
	}
}

func TestUniqueReleaseTransfersOwnership(t *testing.T) {
	deletes := 0
	x := 5
	u := hold.UniqueWithDeleter(nil, &x, func(*int, hold.Allocator) { deletes++ })

	p := u.Release()
	if p != &x {
		t.Fatal("Release returned a different pointer")
	}
	if u.IsOwning() {
		t.Fatal("owning after Release")
	}
	if u.Get() != nil {
		t.Fatal("Get() non-nil after Release")
	}

	// The released pointee must not be double-freed by the empty source.
	u.Free()
	if deletes != 0 {
		t.Fatalf("deleter ran %d times after Release, want 0", deletes)
	}
}

func TestUniqueResetDeletesOldPointee(t *testing.T) {
	deleted := make([]int, 0, 2)
	newOwned := func(v int) (hold.Unique[int], *int) {
		p := hold.Alloc[int](nil)
		*p = v
		u := hold.UniqueWithDeleter(nil, p, func(q *int, _ hold.Allocator) {
			deleted = append(deleted, *q)
		})
		return u, p
	}

	u, _ := newOwned(1)
	fresh := hold.Alloc[int](nil)
	*fresh = 2
	u.Reset(fresh)
	if len(deleted) != 1 || deleted[0] != 1 {
		t.Fatalf("deleted = %v, want [1]", deleted)
	}
	if got := *u.Get(); got != 2 {
		t.Fatalf("pointee after Reset = %d, want 2", got)
	}
	u.Free()
	if len(deleted) != 2 || deleted[1] != 2 {
		t.Fatalf("deleted = %v, want [1 2]", deleted)
	}
}

func TestUniqueFreeIdempotent(t *testing.T) {
	deletes := 0
	x := 1
	u := hold.UniqueWithDeleter(nil, &x, func(*int, hold.Allocator) { deletes++ })
	u.Free()
	u.Free()
	if deletes != 1 {
		t.Fatalf("deleter ran %d times, want 1", deletes)
	}
}

func TestUniqueSwap(t *testing.T) {
	a := hold.MakeUnique(nil, 1)
	b := hold.MakeUnique(nil, 2)
	a.Swap(&b)
	if *a.Get() != 2 || *b.Get() != 1 {
		t.Fatalf("after swap: a=%d b=%d", *a.Get(), *b.Get())
	}

	var empty hold.Unique[int]
	a.Swap(&empty)
	if a.IsOwning() {
		t.Fatal("a owning after swap with empty")
	}
	if !empty.IsOwning() || *empty.Get() != 2 {
		t.Fatal("empty did not receive ownership")
	}
	b.Free()
	empty.Free()
}

func TestUniqueMoveInvalidatesSource(t *testing.T) {
	u := hold.MakeUnique(nil, 7)
	moved := u.Move()
	if u.IsOwning() {
		t.Fatal("source owning after Move")
	}
	if !moved.IsOwning() || *moved.Get() != 7 {
		t.Fatal("destination did not receive ownership")
	}
	u.Free() // empty: must be a no-op
	moved.Free()
}

func TestUniqueNilDeleterPanics(t *testing.T) {
	expectPanic(t, "nil deleter", func() {
		x := 1
		hold.UniqueWithDeleter(nil, &x, nil)
	})
}

func TestUniqueRoutesThroughAllocator(t *testing.T) {
	c := hold.NewCountingAllocator(nil)
	u := hold.NewUnique[int](c)
	if got := c.Allocs(); got != 1 {
		t.Fatalf("Allocs() = %d, want 1", got)
	}
	u.Free()
	if got := c.Deallocs(); got != 1 {
		t.Fatalf("Deallocs() = %d, want 1", got)
	}
}

func TestUniqueSliceIndexedAccess(t *testing.T) {
	u := hold.NewUniqueSlice[int](nil, 4)
	if u.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", u.Len())
	}
	u.Set(2, 9)
	if got := *u.At(2); got != 9 {
		t.Fatalf("At(2) = %d, want 9", got)
	}
	expectPanic(t, "index out of range", func() { u.At(4) })
	expectPanic(t, "index out of range", func() { u.At(-1) })
	u.Free()
}

func TestUniqueSliceReleaseAndReset(t *testing.T) {
	deletes := 0
	u := hold.UniqueSliceWithDeleter(nil, []int{1, 2, 3}, func([]int, hold.Allocator) { deletes++ })

	s := u.Release()
	if len(s) != 3 || u.IsOwning() {
		t.Fatal("Release did not transfer the slice")
	}
	u.Free()
	if deletes != 0 {
		t.Fatal("deleter ran for a released slice")
	}

	u.Reset(s)
	u.Reset([]int{4})
	if deletes != 1 {
		t.Fatalf("deleter ran %d times after Reset, want 1", deletes)
	}
	u.Free()
	if deletes != 2 {
		t.Fatalf("deleter ran %d times after Free, want 2", deletes)
	}
}

func TestUniqueSliceNegativeCapacityPanics(t *testing.T) {
	expectPanic(t, "negative capacity", func() {
		hold.NewUniqueSlice[int](nil, -1)
	})
}
