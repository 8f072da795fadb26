// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold_test

import (
	"testing"

	"code.hybscloud.com/hold"
)

func TestAllocSliceZeroed(t *testing.T) {
	s := hold.AllocSlice[int](hold.DefaultAllocator, 4)
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
	for i, x := range s {
		if x != 0 {
			t.Fatalf("s[%d] = %d, want 0", i, x)
		}
	}
	if got := hold.AllocSlice[int](hold.DefaultAllocator, 0); got != nil {
		t.Fatalf("AllocSlice(0) = %v, want nil", got)
	}
}

func TestAllocNilAllocatorFallsBackToHeap(t *testing.T) {
	p := hold.Alloc[int](nil)
	if p == nil || *p != 0 {
		t.Fatalf("Alloc(nil) = %v", p)
	}
	s := hold.AllocSlice[string](nil, 3)
	if len(s) != 3 {
		t.Fatalf("len = %d, want 3", len(s))
	}
}

func TestReallocSlicePreservesPrefix(t *testing.T) {
	a := hold.DefaultAllocator
	s := hold.AllocSlice[int](a, 3)
	s[0], s[1], s[2] = 1, 2, 3

	s = hold.ReallocSlice(a, s, 6)
	if len(s) != 6 {
		t.Fatalf("len = %d, want 6", len(s))
	}
	for i, want := range []int{1, 2, 3, 0, 0, 0} {
		if s[i] != want {
			t.Fatalf("s[%d] = %d, want %d", i, s[i], want)
		}
	}

	s = hold.ReallocSlice(a, s, 2)
	if len(s) != 2 || s[0] != 1 || s[1] != 2 {
		t.Fatalf("shrink result = %v, want [1 2]", s)
	}
}

func TestReallocSlicePointerElements(t *testing.T) {
	a := hold.DefaultAllocator
	s := hold.AllocSlice[*int](a, 2)
	x, y := 1, 2
	s[0], s[1] = &x, &y

	s = hold.ReallocSlice(a, s, 4)
	if *s[0] != 1 || *s[1] != 2 {
		t.Fatal("pointer elements lost across reallocation")
	}
}

func TestCountingAllocatorCounts(t *testing.T) {
	c := hold.NewCountingAllocator(nil)

	s := hold.AllocSlice[int](c, 8)
	if got := c.Allocs(); got != 1 {
		t.Fatalf("Allocs() = %d, want 1", got)
	}
	s = hold.ReallocSlice(c, s, 16)
	if got := c.Reallocs(); got != 1 {
		t.Fatalf("Reallocs() = %d, want 1", got)
	}
	hold.FreeSlice(c, s)
	if got := c.Deallocs(); got != 1 {
		t.Fatalf("Deallocs() = %d, want 1", got)
	}
}

func TestRecyclingAllocatorReusesBlocks(t *testing.T) {
	r := hold.NewRecyclingAllocator()

	s := hold.AllocSlice[int](r, 16)
	s[0] = 99
	hold.FreeSlice(r, s)
	if got := r.FreeBlocks(); got != 1 {
		t.Fatalf("FreeBlocks() = %d, want 1", got)
	}

	s2 := hold.AllocSlice[int](r, 16)
	if got := r.FreeBlocks(); got != 0 {
		t.Fatalf("FreeBlocks() after reuse = %d, want 0", got)
	}
	if s2[0] != 0 {
		t.Fatalf("recycled block not zeroed: s2[0] = %d", s2[0])
	}

	// Different size: not served from the 16-element bucket.
	s3 := hold.AllocSlice[int](r, 8)
	_ = s3
	if got := r.FreeBlocks(); got != 0 {
		t.Fatalf("FreeBlocks() = %d, want 0", got)
	}

	r.Reset()
	hold.FreeSlice(r, s2)
	if got := r.FreeBlocks(); got != 1 {
		t.Fatalf("FreeBlocks() after Reset+free = %d, want 1", got)
	}
}

func TestRecyclingAllocatorRealloc(t *testing.T) {
	r := hold.NewRecyclingAllocator()

	s := hold.AllocSlice[int](r, 4)
	s[0], s[3] = 7, 8
	s = hold.ReallocSlice(r, s, 8)
	if s[0] != 7 || s[3] != 8 {
		t.Fatalf("prefix lost: %v", s[:4])
	}
	// The 4-element block went back on its free list.
	if got := r.FreeBlocks(); got != 1 {
		t.Fatalf("FreeBlocks() = %d, want 1", got)
	}
}
