package core

// Collect runs one full mark-sweep cycle. Marking starts from the
// temporary-root stack and the VM-supplied RootFunc, and proceeds through
// an explicit gray worklist rather than recursing through the object
// graph, which is what lets a deep fiber stack or a long closure chain
// collect without risking a Go stack overflow in the collector itself.
//
// Sweep then walks the single intrusive list once: unmarked objects are
// unlinked (and become eligible for Go's own GC once nothing else
// references them), survivors have their mark bit cleared and are
// rethreaded. bytesAllocated and the per-kind live counts are rebuilt from
// scratch during sweep, so the collector re-establishes the true live size
// every cycle regardless of any accounting drift.
func (h *Heap) Collect() {
	if h.collecting {
		// A trace function must never allocate; if one does, recursing
		// into Collect would corrupt the gray worklist. Treat it as a
		// no-op rather than crash the embedder.
		return
	}
	h.collecting = true
	defer func() { h.collecting = false }()

	var gray []Obj
	mark := func(o Obj) {
		if o == nil {
			return
		}
		hdr := o.header()
		if hdr.Marked {
			return
		}
		hdr.Marked = true
		gray = append(gray, o)
	}

	for _, r := range h.tempRoots {
		mark(r)
	}
	if h.roots != nil {
		h.roots(mark)
	}

	for len(gray) > 0 {
		n := len(gray) - 1
		o := gray[n]
		gray = gray[:n]
		o.trace(mark)
	}

	h.sweep()
}

// sweep reclaims every unmarked object from the intrusive list and
// rebuilds live accounting from the survivors.
func (h *Heap) sweep() {
	var (
		head   Obj
		tail   Obj
		total  int64
		counts = make(map[Kind]int, len(h.liveCounts))
	)

	cur := h.objects
	for cur != nil {
		hdr := cur.header()
		next := hdr.next
		if hdr.Marked {
			hdr.Marked = false
			hdr.next = nil
			if tail == nil {
				head = cur
			} else {
				tail.header().next = cur
			}
			tail = cur
			total += int64(cur.size())
			counts[hdr.Kind]++
		}
		// Unmarked objects are simply dropped from the list; nothing else
		// in this package holds a reference to them once unlinked, so
		// Go's own GC reclaims the memory behind them.
		cur = next
	}

	h.objects = head
	h.bytesAllocated = total
	h.liveCounts = counts
	h.nextGC = h.minHeapSize
	if grown := total * int64(h.heapGrowPercent) / 100; grown > h.nextGC {
		h.nextGC = grown
	}
}
