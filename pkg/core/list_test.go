package core_test

import (
	"testing"

	"github.com/mwantia/lumen/pkg/core"
)

func TestListPushAndGet(t *testing.T) {
	heap := core.NewHeap(0, 0)
	l := core.NewList(heap)

	for i := 0; i < 5; i++ {
		l.Push(heap, core.Number(float64(i)))
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	for i := 0; i < 5; i++ {
		v, err := l.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if v.AsNumber() != float64(i) {
			t.Errorf("Get(%d) = %v, want %d", i, v.AsNumber(), i)
		}
	}
}

func TestListGetOutOfBounds(t *testing.T) {
	heap := core.NewHeap(0, 0)
	l := core.NewList(heap)
	if _, err := l.Get(0); err == nil {
		t.Error("Get(0) on empty list = nil error, want error")
	}
	if _, err := l.Get(-1); err == nil {
		t.Error("Get(-1) = nil error, want error")
	}
}

func TestListInsertShiftsRight(t *testing.T) {
	heap := core.NewHeap(0, 0)
	l := core.NewList(heap)
	for _, n := range []float64{1, 2, 3} {
		l.Push(heap, core.Number(n))
	}
	if err := l.Insert(heap, core.Number(99), 1); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	want := []float64{1, 99, 2, 3}
	for i, w := range want {
		v, _ := l.Get(i)
		if v.AsNumber() != w {
			t.Errorf("Get(%d) = %v, want %v", i, v.AsNumber(), w)
		}
	}
}

func TestListRemoveAtShrinksCapacity(t *testing.T) {
	heap := core.NewHeap(0, 0)
	l := core.NewList(heap)
	for i := 0; i < 64; i++ {
		l.Push(heap, core.Number(float64(i)))
	}
	before := heap.Stats().BytesAllocated
	for i := 63; i >= 2; i-- {
		if _, err := l.RemoveAt(heap, i); err != nil {
			t.Fatalf("RemoveAt(%d): %v", i, err)
		}
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	v, _ := l.Get(0)
	if v.AsNumber() != 0 {
		t.Errorf("Get(0) = %v, want 0", v.AsNumber())
	}
	// Capacity halves 64 -> 32 -> 16 and stops at the 16-slot floor; each
	// slot is accounted as 16 bytes.
	if got, want := before-heap.Stats().BytesAllocated, int64((64-16)*16); got != want {
		t.Errorf("BytesAllocated dropped by %d after shrinking, want %d", got, want)
	}
}

func TestListString(t *testing.T) {
	heap := core.NewHeap(0, 0)
	l := core.NewList(heap)
	l.Push(heap, core.Number(1))
	l.Push(heap, core.Bool(true))
	l.Push(heap, core.Null)

	if got, want := l.String(), "[1, true, null]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
