package core

// Upvalue is a captured variable: open while it still points at a live
// fiber stack slot, closed once it owns a copy of that slot's value.
// Rather than a raw pointer into the stack array, which is fragile in Go
// since a slice backing array can move, an open Upvalue names its fiber
// and stack index — the fiber's stack is fixed-capacity for its lifetime,
// so the index is as stable as a pointer would be, without unsafe.
//
// Upvalues are never first-class script values, so — like Module — their
// Object.Class stays nil.
type Upvalue struct {
	Object
	fiber  *Fiber
	index  int // valid while open
	closed Value
	open   bool
	next   *Upvalue // open-list link, ordered by descending index
}

var _ Obj = (*Upvalue)(nil)

// newUpvalue allocates an open upvalue over fiber's stack slot index. It is
// package-private: upvalues always come from Fiber.CaptureUpvalue, which
// maintains the open list's invariants.
func newUpvalue(heap *Heap, fiber *Fiber, index int) *Upvalue {
	uv := &Upvalue{fiber: fiber, index: index, open: true}
	heap.allocate(uv, KindUpvalue)
	return uv
}

// Get returns the upvalue's current value, whether open or closed.
func (u *Upvalue) Get() Value {
	if u.open {
		return u.fiber.stack[u.index]
	}
	return u.closed
}

// Set stores v through the upvalue, whether open or closed.
func (u *Upvalue) Set(v Value) {
	if u.open {
		u.fiber.stack[u.index] = v
	} else {
		u.closed = v
	}
}

// trace marks the upvalue's closed value. While open, nothing is marked
// here — the referenced stack slot is already reachable through the
// owning fiber's own stack trace.
func (u *Upvalue) trace(mark func(Obj)) {
	if !u.open && u.closed.IsObj() {
		mark(u.closed.AsObj())
	}
}

func (u *Upvalue) size() int { return 48 }
