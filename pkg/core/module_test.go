package core_test

import (
	"testing"

	"github.com/mwantia/lumen/pkg/core"
)

func TestSymbolTableEnsureInterns(t *testing.T) {
	var t1 core.SymbolTable
	a := t1.Ensure("x")
	b := t1.Ensure("y")
	c := t1.Ensure("x")

	if a != c {
		t.Errorf("Ensure(\"x\") returned %d then %d, want the same symbol both times", a, c)
	}
	if a == b {
		t.Error("Ensure(\"x\") and Ensure(\"y\") returned the same symbol, want distinct")
	}
	if t1.Len() != 2 {
		t.Errorf("Len() = %d, want 2", t1.Len())
	}
}

func TestSymbolTableFindMissing(t *testing.T) {
	var table core.SymbolTable
	table.Ensure("known")
	if got := table.Find("unknown"); got != -1 {
		t.Errorf("Find(\"unknown\") = %d, want -1", got)
	}
}

func TestModuleDeclareHoldsDeclarationLine(t *testing.T) {
	heap := core.NewHeap(0, 0)
	m := core.NewModule(heap, core.NewString(heap, "main"))

	slot := m.Declare("x", 42)
	if m.IsDefined(slot) {
		t.Error("IsDefined(slot) = true right after Declare, want false")
	}
	if got := m.DeclarationLine(slot); got != 42 {
		t.Errorf("DeclarationLine(slot) = %d, want 42", got)
	}
}

func TestModuleDefineMarksDefined(t *testing.T) {
	heap := core.NewHeap(0, 0)
	m := core.NewModule(heap, core.NewString(heap, "main"))

	slot := m.Define("x", core.Number(7))
	if !m.IsDefined(slot) {
		t.Error("IsDefined(slot) = false right after Define, want true")
	}
	if got := m.Value(slot); got.AsNumber() != 7 {
		t.Errorf("Value(slot) = %v, want 7", got.AsNumber())
	}
}

func TestModuleDeclareThenDefineSameSlot(t *testing.T) {
	heap := core.NewHeap(0, 0)
	m := core.NewModule(heap, core.NewString(heap, "main"))

	declSlot := m.Declare("x", 10)
	defSlot := m.Define("x", core.True)

	if declSlot != defSlot {
		t.Fatalf("Declare and Define for the same name returned different slots: %d vs %d", declSlot, defSlot)
	}
	if !m.IsDefined(declSlot) {
		t.Error("IsDefined(slot) = false after Define, want true")
	}
	if got := m.Value(declSlot); !core.Same(got, core.True) {
		t.Errorf("Value(slot) = %v, want True", got)
	}
}

func TestModuleDeclareIsNoOpOnceDefined(t *testing.T) {
	heap := core.NewHeap(0, 0)
	m := core.NewModule(heap, core.NewString(heap, "main"))

	slot := m.Define("x", core.Number(5))
	m.Declare("x", 99) // a later forward-declaration must not clobber the real value

	if got := m.Value(slot); got.AsNumber() != 5 {
		t.Errorf("Value(slot) after a redundant Declare = %v, want 5 (unchanged)", got.AsNumber())
	}
	if !m.IsDefined(slot) {
		t.Error("IsDefined(slot) = false after a redundant Declare, want true")
	}
}

func TestModuleValueOutOfRangeIsNull(t *testing.T) {
	heap := core.NewHeap(0, 0)
	m := core.NewModule(heap, core.NewString(heap, "main"))
	if got := m.Value(5); !got.IsNull() {
		t.Errorf("Value(5) on an empty module = %v, want Null", got)
	}
}
