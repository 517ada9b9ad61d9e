package vm

import (
	"context"
	"fmt"
	"sync"

	"github.com/mwantia/lumen/lumenerr"
	"github.com/mwantia/lumen/pkg/core"
)

// Result is the outcome of Interpret.
type Result int

const (
	Success Result = iota
	CompileError
	RuntimeError
)

// VM is one independent embedding of the language core: its own heap,
// module registry, and root set. Multiple VMs may exist in the same
// process and share no state.
type VM struct {
	mu sync.RWMutex

	config Config
	heap   *core.Heap

	modules     map[string]*core.Module
	methodSymbols core.SymbolTable

	current     *core.Fiber
	nextFiberID uint64

	handles        map[*Handle]struct{}
	foreignMethods map[foreignKey]ForeignMethodFn
	foreignClasses map[foreignKey]ForeignClassFn

	ctx    context.Context
	cancel context.CancelFunc
}

// New constructs a VM from cfg. Zero-valued heap-sizing fields in cfg take
// core's own defaults.
func New(cfg Config) *VM {
	ctx, cancel := context.WithCancel(context.Background())
	vm := &VM{
		config:         cfg,
		modules:        make(map[string]*core.Module),
		handles:        make(map[*Handle]struct{}),
		foreignMethods: make(map[foreignKey]ForeignMethodFn),
		foreignClasses: make(map[foreignKey]ForeignClassFn),
		ctx:            ctx,
		cancel:         cancel,
	}
	vm.heap = core.NewHeap(cfg.MinHeapSize, cfg.HeapGrowthPercent)
	if cfg.InitialHeapSize > 0 {
		vm.heap.SeedThreshold(cfg.InitialHeapSize)
	}
	vm.heap.SetRoots(vm.markRoots)
	return vm
}

// markRoots is the VM's core.RootFunc: the current fiber, every module in
// the registry, and every pinned handle.
func (vm *VM) markRoots(mark func(core.Obj)) {
	if vm.current != nil {
		mark(vm.current)
	}
	for _, m := range vm.modules {
		mark(m)
	}
	vm.markHandles(mark)
}

// Heap returns the VM's heap, for embedders that need direct access to
// allocation statistics or manual collection.
func (vm *VM) Heap() *core.Heap {
	return vm.heap
}

// Context returns the VM's cancellation context, safe to read from
// foreign methods running on behalf of the VM.
func (vm *VM) Context() context.Context {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.ctx
}

// Cancel interrupts any running operation by canceling the VM's context.
func (vm *VM) Cancel() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.cancel()
}

// Shutdown releases the VM. After Shutdown the VM must not be used again.
func (vm *VM) Shutdown() {
	vm.Cancel()
}

// Module returns the named module, creating and registering an empty one
// if it doesn't exist yet.
func (vm *VM) Module(name string) *core.Module {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if m, ok := vm.modules[name]; ok {
		return m
	}
	m := core.NewModule(vm.heap, core.NewString(vm.heap, name))
	vm.modules[name] = m
	return m
}

// nextFiber allocates a fiber running closure, assigning it the next id
// from this VM's monotonically increasing counter.
func (vm *VM) nextFiber(closure *core.Closure) *core.Fiber {
	vm.nextFiberID++
	return core.NewFiber(vm.heap, closure, vm.nextFiberID)
}

// Interpret compiles source as the named module and installs the
// resulting closure on a fresh fiber as the VM's current fiber.
// Compilation is delegated to Config.Compile, since this package does not
// own syntax. No bytecode is executed here: this package has no
// interpreter loop, so RuntimeError is returned only when the new fiber
// already carries an error.
func (vm *VM) Interpret(moduleName, source string) Result {
	if vm.config.Compile == nil {
		vm.config.reportError(lumenerr.New(lumenerr.CompileError, "no Compile function configured"), nil)
		return CompileError
	}

	module := vm.Module(moduleName)
	closure, err := vm.config.Compile(vm, module, source)
	if err != nil {
		vm.config.reportError(lumenerr.NewCompileError(moduleName, 0, "%s", err), nil)
		return CompileError
	}

	fiber := vm.nextFiber(closure)
	vm.current = fiber

	if !fiber.Error.IsNull() {
		vm.reportFiberError(fiber)
		return RuntimeError
	}
	return Success
}

// reportFiberError translates a failed fiber's recorded error into
// Config.Error, describing each call frame innermost-first. The bytecode
// interpreter that actually runs frames and populates Error lives outside
// this package; this only shapes whatever it leaves behind for reporting.
func (vm *VM) reportFiberError(fiber *core.Fiber) {
	list := &lumenerr.List{Message: fiber.Error.String()}
	for _, frame := range fiber.ErrorFrames() {
		fn := frame.Closure.Function
		module := ""
		if fn.Module != nil {
			module = fn.Module.Name.Value()
		}
		line := 0
		if frame.IP < len(fn.Lines) {
			line = fn.Lines[frame.IP]
		}
		list.Add(lumenerr.Frame{Module: module, Line: line, Function: fn.DebugName})
	}

	var lerr *lumenerr.Error
	if len(list.Frames) > 0 {
		lerr = lumenerr.NewAt(lumenerr.RuntimeError, list.Frames[0].Module, list.Frames[0].Line, "%s", list.Error())
	} else {
		lerr = lumenerr.NewRuntimeError("%s", list.Error())
	}
	vm.config.reportError(lerr, list.Frames)
}

// String renders a Result for diagnostics.
func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case CompileError:
		return "compile-error"
	case RuntimeError:
		return "runtime-error"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}
