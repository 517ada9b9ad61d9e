// Package vm wires pkg/core's heap, fibers, and modules into an
// embeddable virtual machine: module registry, GC roots, foreign
// method/class binding, and pinned value handles. It deliberately knows
// nothing about source syntax or bytecode generation — Interpret takes a
// CompileFn supplied by the embedder, the same way the core takes an
// opaque core.Instruction stream.
package vm

import (
	"github.com/mwantia/lumen/lumenerr"
	"github.com/mwantia/lumen/pkg/core"
)

// ForeignMethodFn implements a method body supplied by the embedder
// rather than compiled from source.
type ForeignMethodFn func(fiber *core.Fiber, args []core.Value) (core.Value, error)

// ForeignClassFn constructs the fields of a foreign-allocated instance
// when a foreign class is instantiated.
type ForeignClassFn func(heap *core.Heap) (*core.Instance, error)

// CompileFn turns source text for a module into a runnable closure. It is
// supplied by the embedder, since lexing/parsing/bytecode generation sit
// outside this package's scope.
type CompileFn func(vm *VM, module *core.Module, source string) (*core.Closure, error)

// Config configures a VM at construction time. Every function field is
// optional; a nil one simply means the corresponding capability isn't
// offered (a nil Write silently discards output, a nil Error drops error
// reports, and so on).
type Config struct {
	// Compile turns module source text into a closure ready to run.
	Compile CompileFn

	// LoadModule resolves a module name to its source text, for imports
	// triggered during execution.
	LoadModule func(name string) (string, error)

	// BindForeignMethod resolves a foreign method by (module, class,
	// signature, isStatic). The bool return reports whether a binding
	// was found.
	BindForeignMethod func(module, class, signature string, isStatic bool) (ForeignMethodFn, bool)

	// BindForeignClass resolves a foreign class's allocator by (module,
	// class).
	BindForeignClass func(module, class string) (ForeignClassFn, bool)

	// Write receives text produced by the running script's print-like
	// operations.
	Write func(text string)

	// Error receives each stack frame of an unhandled runtime error, plus
	// the final error, in innermost-first order.
	Error func(err *lumenerr.Error, frames []lumenerr.Frame)

	// InitialHeapSize seeds the first collection threshold above
	// MinHeapSize, for an embedder that knows roughly how much it's about
	// to allocate and wants to skip the early collections a small default
	// threshold would otherwise trigger. Zero leaves the threshold at
	// MinHeapSize.
	InitialHeapSize   int64
	MinHeapSize       int64
	HeapGrowthPercent int
}

func (c Config) write(text string) {
	if c.Write != nil {
		c.Write(text)
	}
}

func (c Config) reportError(err *lumenerr.Error, frames []lumenerr.Frame) {
	if c.Error != nil {
		c.Error(err, frames)
	}
}
