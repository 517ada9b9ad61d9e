package core

// Closure pairs a compiled Function with the upvalues its body captured
// from enclosing scopes. The same Function can back many closures, each
// with its own distinct upvalue set — this is what lets a closure remember
// the particular variables it was created alongside rather than the ones
// live at a later call to the same function.
type Closure struct {
	Object
	Function *Function
	Upvalues []*Upvalue
}

var _ Obj = (*Closure)(nil)

// NewClosure allocates a closure over fn with an empty upvalue slot for
// each of fn.NumUpvalues captures. The caller fills them in immediately
// after, one per capture instruction, via either CaptureUpvalue (share an
// enclosing fiber's open slot) or by reusing an upvalue already held by
// the enclosing closure (share a capture one level up).
func NewClosure(heap *Heap, fn *Function) *Closure {
	c := &Closure{
		Function: fn,
		Upvalues: make([]*Upvalue, fn.NumUpvalues),
	}
	heap.allocate(c, KindClosure)
	return c
}

func (c *Closure) trace(mark func(Obj)) {
	mark(c.Function)
	for _, uv := range c.Upvalues {
		if uv != nil {
			mark(uv)
		}
	}
}

func (c *Closure) size() int {
	return 32 + len(c.Upvalues)*8
}

func (c *Closure) String() string {
	name := c.Function.DebugName
	if name == "" {
		name = "anonymous"
	}
	return "<fn " + name + ">"
}

// CaptureUpvalue returns the fiber's open upvalue over stack slot index,
// reusing one already open over that exact slot so that two closures
// created in the same frame and capturing the same local share state
// instead of drifting apart. The open list is kept sorted by descending
// index so the search and CloseUpvalues can both stop early.
func (fiber *Fiber) CaptureUpvalue(heap *Heap, index int) *Upvalue {
	var prev *Upvalue
	cur := fiber.openUpvalues
	for cur != nil && cur.index > index {
		prev = cur
		cur = cur.next
	}
	if cur != nil && cur.index == index {
		return cur
	}

	created := newUpvalue(heap, fiber, index)
	created.next = cur
	if prev == nil {
		fiber.openUpvalues = created
	} else {
		prev.next = created
	}
	return created
}

// CloseUpvalues closes every open upvalue at or above stack slot from,
// copying each one's current stack value into its own storage before the
// frame that owns that slot is popped. Walking stops at the first
// upvalue below from since the list is kept sorted by descending index.
func (fiber *Fiber) CloseUpvalues(from int) {
	for fiber.openUpvalues != nil && fiber.openUpvalues.index >= from {
		uv := fiber.openUpvalues
		uv.closed = fiber.stack[uv.index]
		uv.open = false
		fiber.openUpvalues = uv.next
		uv.next = nil
	}
}
