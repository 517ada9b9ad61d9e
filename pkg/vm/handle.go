package vm

import "github.com/mwantia/lumen/pkg/core"

// Handle is an opaque reference an embedder can hold onto across calls
// into the VM without risking the referenced value being collected.
// Unlike core.Heap's PushRoot/PopRoot, which is a stack discipline for
// code running inside the VM, a Handle has no fixed lifetime — it stays
// pinned until the embedder explicitly releases it.
type Handle struct {
	value core.Value
}

// Value returns the handle's pinned value.
func (h *Handle) Value() core.Value {
	return h.value
}

// Pin roots v for as long as the returned handle is held, returning a new
// handle. Pinning a non-object value (null, a bool, a number) still works
// — Value just always returns v back unchanged, since those have nothing
// for the collector to reclaim.
func (vm *VM) Pin(v core.Value) *Handle {
	h := &Handle{value: v}
	vm.handles[h] = struct{}{}
	return h
}

// Unpin releases h. After this call h must not be used again.
func (vm *VM) Unpin(h *Handle) {
	delete(vm.handles, h)
}

// markHandles is part of the VM's core.RootFunc: every pinned handle's
// object value is itself a GC root.
func (vm *VM) markHandles(mark func(core.Obj)) {
	for h := range vm.handles {
		if h.value.IsObj() {
			mark(h.value.AsObj())
		}
	}
}
