package core

import "fmt"

// List is a growable sequence of Values over buffer, with the same
// geometric growth as every buffer (factor 2, floor 16) and an aggressive
// shrink-to-half once occupancy drops to capacity/2 or below — more
// aggressive than Map's shrink policy, which is deliberate rather than an
// oversight: lists churn via push/pop far more than maps churn via
// insert/delete.
type List struct {
	Object
	buf *buffer[Value]
}

var _ Obj = (*List)(nil)

func NewList(heap *Heap) *List {
	l := &List{buf: newBuffer[Value]()}
	heap.allocate(l, KindList)
	return l
}

func (l *List) trace(mark func(Obj)) {
	for i := 0; i < l.buf.Len(); i++ {
		if v := l.buf.At(i); v.IsObj() {
			mark(v.AsObj())
		}
	}
}

func (l *List) size() int {
	return 32 + l.buf.Cap()*16 // header + backing array, Value ~16 bytes
}

func (l *List) Len() int { return l.buf.Len() }

func (l *List) Get(i int) (Value, error) {
	if i < 0 || i >= l.buf.Len() {
		return Null, fmt.Errorf("core: list index %d out of bounds (length %d)", i, l.buf.Len())
	}
	return l.buf.At(i), nil
}

func (l *List) Set(i int, v Value) error {
	if i < 0 || i >= l.buf.Len() {
		return fmt.Errorf("core: list index %d out of bounds (length %d)", i, l.buf.Len())
	}
	l.buf.Set(i, v)
	return nil
}

// Push appends v, temporarily rooting it first if it's an object — growing
// the backing buffer is itself an allocation that could trigger a GC.
func (l *List) Push(heap *Heap, v Value) {
	if v.IsObj() {
		defer heap.ScopedRoot(v.AsObj())()
	}
	oldCap := l.buf.Cap()
	l.buf.write(v)
	heap.reallocate(oldCap*16, l.buf.Cap()*16)
}

// Insert appends a slot, shifts [i..] right by one, and stores v at i. v
// is root-protected across the append.
func (l *List) Insert(heap *Heap, v Value, i int) error {
	if i < 0 || i > l.buf.Len() {
		return fmt.Errorf("core: list insert index %d out of bounds (length %d)", i, l.buf.Len())
	}
	if v.IsObj() {
		defer heap.ScopedRoot(v.AsObj())()
	}
	oldCap := l.buf.Cap()
	l.buf.insertAt(i, v)
	heap.reallocate(oldCap*16, l.buf.Cap()*16)
	return nil
}

// RemoveAt reads the value at i, shifts everything after it left,
// decrements the length, and shrinks capacity by half once capacity/2 is
// still large enough to hold the remaining elements.
func (l *List) RemoveAt(heap *Heap, i int) (Value, error) {
	if i < 0 || i >= l.buf.Len() {
		return Null, fmt.Errorf("core: list removeAt index %d out of bounds (length %d)", i, l.buf.Len())
	}
	oldCap := l.buf.Cap()
	v := l.buf.removeAt(i)
	if l.buf.Cap()/2 >= l.buf.Len() && l.buf.Cap()/2 >= bufferMinCapacity {
		l.buf.shrinkTo(l.buf.Cap() / 2)
	}
	heap.reallocate(oldCap*16, l.buf.Cap()*16)
	return v, nil
}

func (l *List) String() string {
	s := "["
	for i := 0; i < l.buf.Len(); i++ {
		if i > 0 {
			s += ", "
		}
		s += l.buf.At(i).String()
	}
	return s + "]"
}
