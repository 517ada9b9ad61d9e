package core

import "fmt"

// Range is an immutable numeric interval: from, to, and whether to is
// included. Two ranges with the same triple are structurally equal, which
// is why Equal (value.go) special-cases it the same way it special-cases
// String.
type Range struct {
	Object
	From      float64
	To        float64
	Inclusive bool
}

var _ Obj = (*Range)(nil)

func NewRange(heap *Heap, from, to float64, inclusive bool) *Range {
	r := &Range{From: from, To: to, Inclusive: inclusive}
	heap.allocate(r, KindRange)
	return r
}

func (r *Range) trace(func(Obj)) {}
func (r *Range) size() int       { return 32 }

func (r *Range) Equal(o *Range) bool {
	return r.From == o.From && r.To == o.To && r.Inclusive == o.Inclusive
}

func (r *Range) String() string {
	op := ".."
	if !r.Inclusive {
		op = "..<"
	}
	return fmt.Sprintf("%s%s%s", numToString(r.From), op, numToString(r.To))
}

// hashRange XORs the hashes of From and To.
func hashRange(r *Range) uint32 {
	return hashNumber(r.From) ^ hashNumber(r.To)
}
