// Package core implements the heap, garbage collector, and primitive
// runtime objects that every other part of an embedding (lexer, compiler,
// bytecode interpreter, builtin bindings) is built on. It owns value
// representation, allocation, and the mark-sweep collector; it knows
// nothing about source syntax or opcodes beyond the opaque bytecode a
// compiler hands it.
package core

// Kind identifies the runtime type of a heap object. The object header
// carries it so the collector and the value layer can dispatch without a
// type switch on the Go type itself.
type Kind byte

const (
	KindClass Kind = iota + 1
	KindClosure
	KindFiber
	KindFunction
	KindInstance
	KindList
	KindMap
	KindModule
	KindRange
	KindString
	KindUpvalue
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindClosure:
		return "closure"
	case KindFiber:
		return "fiber"
	case KindFunction:
		return "function"
	case KindInstance:
		return "instance"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindModule:
		return "module"
	case KindRange:
		return "range"
	case KindString:
		return "string"
	case KindUpvalue:
		return "upvalue"
	default:
		return "unknown"
	}
}

// Obj is implemented by every heap-allocated entity. Modules and upvalues
// are never first-class script values, but they still satisfy Obj so the
// collector can mark and sweep them uniformly.
type Obj interface {
	// header returns the common prefix every heap object carries: kind,
	// mark bit, owning class, and the intrusive "all objects" link.
	header() *Object

	// trace reports every Obj this object references, by calling mark once
	// per outgoing pointer. Leaf types (String, Range) implement it empty.
	trace(mark func(Obj))

	// size estimates the live bytes this object occupies, for heap
	// accounting. It does not need to be exact — only consistent, so
	// growth decisions are stable.
	size() int
}

// Object is the common header embedded in every concrete heap type: a
// type tag, a mark bit, a class pointer, and the intrusive next-pointer
// the heap uses to track every live object.
type Object struct {
	Kind   Kind
	Marked bool
	Class  *Class // nil for module/upvalue, which are never first-class
	next   Obj    // intrusive link in the VM's single list of live objects
}

func (o *Object) header() *Object { return o }
