package core

// Default heap-growth policy: the next collection runs once live bytes
// exceed max(minHeapSize, bytesAllocated * heapGrowPercent/100).
const (
	DefaultMinHeapSize     = 1 << 20 // 1 MiB
	DefaultHeapGrowPercent = 150
)

// RootFunc enumerates a set of GC roots by calling mark once per root
// object. The VM supplies one to cover roots the Heap itself doesn't know
// about — the current fiber, the module registry, pinned API handles.
type RootFunc func(mark func(Obj))

// Heap is the allocator and collector over the VM's object graph: a
// single intrusive list of every live object, byte accounting, and the
// explicit temporary-root stack every allocation site must use before an
// about-to-be-stored value can trigger another allocation. Mark/sweep
// proper lives in gc.go.
type Heap struct {
	objects Obj // head of the intrusive "all objects" list

	bytesAllocated int64
	nextGC         int64

	minHeapSize     int64
	heapGrowPercent int

	tempRoots []Obj
	roots     RootFunc

	liveCounts map[Kind]int
	collecting bool // reentrancy guard: a trace must never allocate
}

// NewHeap creates a Heap with the given minimum GC threshold and
// heap-growth percentage. A zero minHeapSize/heapGrowPercent takes the
// package defaults (1 MiB, 150%).
func NewHeap(minHeapSize int64, heapGrowPercent int) *Heap {
	if minHeapSize <= 0 {
		minHeapSize = DefaultMinHeapSize
	}
	if heapGrowPercent <= 0 {
		heapGrowPercent = DefaultHeapGrowPercent
	}
	return &Heap{
		minHeapSize:     minHeapSize,
		heapGrowPercent: heapGrowPercent,
		nextGC:          minHeapSize,
		liveCounts:      make(map[Kind]int),
	}
}

// SetRoots installs the VM-level root provider. Called once, during VM
// construction.
func (h *Heap) SetRoots(fn RootFunc) {
	h.roots = fn
}

// SeedThreshold raises the next collection threshold to n, for an embedder
// that knows up front roughly how much it's about to allocate and wants to
// skip the early collections NewHeap's minHeapSize default would otherwise
// trigger. It only ever raises nextGC — a seed smaller than the heap's own
// minimum threshold is a no-op.
func (h *Heap) SeedThreshold(n int64) {
	if n > h.nextGC {
		h.nextGC = n
	}
}

// reallocate is the allocator's single entry point: every size
// change — new allocation, container growth, or a free — flows through it
// so bytesAllocated stays accurate and a GC can be triggered on growth.
func (h *Heap) reallocate(oldSize, newSize int) {
	h.bytesAllocated += int64(newSize - oldSize)
	if newSize > oldSize && !h.collecting && h.bytesAllocated > h.nextGC {
		h.Collect()
	}
}

// allocate links a freshly-constructed object into the live list, tags its
// header with kind, and accounts for its size. Every New* constructor in
// this package ends by calling it.
func (h *Heap) allocate(o Obj, kind Kind) {
	hdr := o.header()
	hdr.Kind = kind
	hdr.next = h.objects
	h.objects = o
	h.liveCounts[kind]++
	h.reallocate(0, o.size())
}

// PushRoot temporarily roots obj so an allocation that happens before obj
// is stored into a reachable container cannot collect it out from under
// the caller. Every push must be matched by a PopRoot; ScopedRoot offers
// an RAII-style alternative for Go code that doesn't want to track the
// book-keeping by hand.
func (h *Heap) PushRoot(o Obj) {
	h.tempRoots = append(h.tempRoots, o)
}

// PopRoot pops the most recently pushed temporary root.
func (h *Heap) PopRoot() {
	if len(h.tempRoots) == 0 {
		return
	}
	h.tempRoots = h.tempRoots[:len(h.tempRoots)-1]
}

// ScopedRoot pushes obj and returns a closer that pops it — a
// push-on-construction, pop-on-scope-exit idiom:
//
//	defer heap.ScopedRoot(candidate)()
func (h *Heap) ScopedRoot(o Obj) func() {
	h.PushRoot(o)
	return h.PopRoot
}

// Stats is a point-in-time snapshot of heap accounting: bytes allocated,
// the next collection threshold, and live object counts by kind.
type Stats struct {
	BytesAllocated int64
	NextGC         int64
	LiveObjects    int
	ByKind         map[Kind]int
}

// Stats reports the heap's current accounting. Counts reflect the last
// sweep exactly (a prior GC run), plus any allocations since then.
func (h *Heap) Stats() Stats {
	byKind := make(map[Kind]int, len(h.liveCounts))
	total := 0
	for k, n := range h.liveCounts {
		byKind[k] = n
		total += n
	}
	return Stats{
		BytesAllocated: h.bytesAllocated,
		NextGC:         h.nextGC,
		LiveObjects:    total,
		ByKind:         byKind,
	}
}
