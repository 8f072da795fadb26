// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hold_test

import (
	"testing"

	"code.hybscloud.com/hold"
)

func TestWithUniqueReleasesOnReturn(t *testing.T) {
	c := hold.NewCountingAllocator(nil)
	got := hold.WithUnique(c, func(u *hold.Unique[int]) int {
		*u.Get() = 42
		return *u.Get()
	})
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if c.Allocs() != 1 || c.Deallocs() != 1 {
		t.Fatalf("allocs=%d deallocs=%d, want 1/1", c.Allocs(), c.Deallocs())
	}
}

func TestWithUniqueReleasesOnPanic(t *testing.T) {
	c := hold.NewCountingAllocator(nil)
	func() {
		defer func() { _ = recover() }()
		hold.WithUnique(c, func(u *hold.Unique[int]) int {
			panic("boom")
		})
	}()
	if c.Deallocs() != 1 {
		t.Fatalf("deallocs = %d, want 1 after panic", c.Deallocs())
	}
}

func TestWithUniqueSlice(t *testing.T) {
	c := hold.NewCountingAllocator(nil)
	sum := hold.WithUniqueSlice(c, 4, func(u *hold.UniqueSlice[int]) int {
		for i := 0; i < u.Len(); i++ {
			u.Set(i, i+1)
		}
		s := 0
		for i := 0; i < u.Len(); i++ {
			s += *u.At(i)
		}
		return s
	})
	if sum != 10 {
		t.Fatalf("sum = %d, want 10", sum)
	}
	if c.Deallocs() != 1 {
		t.Fatalf("deallocs = %d, want 1", c.Deallocs())
	}
}

func TestWithSharedAliasOutlivesScope(t *testing.T) {
	var escaped hold.Shared[int]
	hold.WithShared(nil, func(s *hold.Shared[int]) struct{} {
		*s.Get() = 9
		escaped = s.Clone()
		return struct{}{}
	})

	// The scope's stake is gone but the escaped alias still owns.
	if !escaped.IsOwning() {
		t.Fatal("escaped alias lost ownership when the scope closed")
	}
	if got := escaped.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	if *escaped.Get() != 9 {
		t.Fatalf("pointee = %d, want 9", *escaped.Get())
	}
	escaped.Release()
}

func TestWithVectorFreesStorage(t *testing.T) {
	c := hold.NewCountingAllocator(nil)
	got := hold.WithVector(c, func(v *hold.Vector[int]) int {
		for i := 0; i < 20; i++ {
			v.PushBack(i)
		}
		return v.Size()
	})
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	if c.Allocs()+c.Reallocs() == 0 {
		t.Fatal("vector never drew from the scope allocator")
	}
	if c.Deallocs() != 1 {
		t.Fatalf("deallocs = %d, want 1 after the scope closed", c.Deallocs())
	}
}
