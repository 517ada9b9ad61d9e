package vm

import "github.com/mwantia/lumen/pkg/core"

// foreignKey identifies a single foreign method binding the way the
// embedder names it: by owning module, class, call signature (name plus
// arity, e.g. "add(_,_)"), and whether it's a static method.
type foreignKey struct {
	module    string
	class     string
	signature string
	isStatic  bool
}

// MethodSymbols is the VM-wide table mapping method names to the small
// dense integers every class's method vector is indexed by — stable
// across every class so a call site's symbol always means the same
// method name everywhere.
func (vm *VM) MethodSymbols() *core.SymbolTable {
	return &vm.methodSymbols
}

// BindForeignMethod installs fn as the implementation of signature on
// class within module. It does not consult Config.BindForeignMethod; only
// ForeignMethod falls back to it, on a lookup miss. Foreign methods don't
// occupy a class's bytecode method vector — the interpreter loop checks
// this registry before falling back to Class.Method.
func (vm *VM) BindForeignMethod(module, class, signature string, isStatic bool, fn ForeignMethodFn) {
	vm.foreignMethods[foreignKey{module, class, signature, isStatic}] = fn
}

// ForeignMethod looks up a previously bound foreign method, falling back
// to Config.BindForeignMethod on a miss so an embedder can resolve
// bindings lazily instead of registering every one up front.
func (vm *VM) ForeignMethod(module, class, signature string, isStatic bool) (ForeignMethodFn, bool) {
	key := foreignKey{module, class, signature, isStatic}
	if fn, ok := vm.foreignMethods[key]; ok {
		return fn, true
	}
	if vm.config.BindForeignMethod == nil {
		return nil, false
	}
	fn, ok := vm.config.BindForeignMethod(module, class, signature, isStatic)
	if ok {
		vm.foreignMethods[key] = fn
	}
	return fn, ok
}

// ForeignClass resolves the allocator for a foreign class, consulting
// Config.BindForeignClass on a miss the same way ForeignMethod does.
func (vm *VM) ForeignClass(module, class string) (ForeignClassFn, bool) {
	key := foreignKey{module: module, class: class}
	if fn, ok := vm.foreignClasses[key]; ok {
		return fn, true
	}
	if vm.config.BindForeignClass == nil {
		return nil, false
	}
	fn, ok := vm.config.BindForeignClass(module, class)
	if ok {
		vm.foreignClasses[key] = fn
	}
	return fn, ok
}
