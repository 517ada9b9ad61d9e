package core

import "fmt"

// Class describes the shape and behavior shared by its instances: how many
// fields each instance carries and which method closures answer which
// symbols. Method is a per-class table: Instance itself only stores field
// values, so calling a method on an instance always means climbing to the
// instance's Object.Class first.
type Class struct {
	Object
	Name       *String
	Superclass *Class
	NumFields  int
	Methods    []Value // indexed by method symbol; Null where unbound
}

var _ Obj = (*Class)(nil)

// newBareClass allocates an unpopulated class record: no class-of, no
// superclass, no fields or methods. It's the one allocation primitive
// shared by NewRootClass and NewClass so the heap bookkeeping only lives
// in one place.
func newBareClass(heap *Heap, name *String) *Class {
	c := &Class{Name: name}
	heap.allocate(c, KindClass)
	return c
}

// NewRootClass allocates the distinguished root Class every metaclass
// ultimately inherits from. Its class-of is itself — the root class is
// its own sole instance, same as every other metaclass — which is safe
// to trace since the collector's mark function is idempotent on an
// object already marked.
func NewRootClass(heap *Heap, name *String) *Class {
	root := newBareClass(heap, name)
	root.Class = root
	return root
}

// NewClass builds a new class C named name with superclass super,
// following the four-step metaclass construction every class goes
// through:
//
//  1. Allocate C's metaclass, Cmeta, named "<name> metaclass", with
//     class-of set to root (every metaclass is an instance of the root
//     Class).
//  2. Bind Cmeta's own superclass to root, so metaclasses themselves
//     form a flat hierarchy directly under the root.
//  3. Allocate C with class-of set to Cmeta — Cmeta's sole instance.
//  4. Bind C's superclass to super, inheriting its fields and methods.
//
// root must be the same distinguished Class for every class built in a
// given heap; NewRootClass constructs it once per VM.
func NewClass(heap *Heap, root *Class, name *String, super *Class) *Class {
	meta := newBareClass(heap, NewString(heap, name.Value()+" metaclass"))
	meta.Class = root
	meta.BindSuperclass(root)

	c := newBareClass(heap, name)
	c.Class = meta
	if super != nil {
		c.BindSuperclass(super)
	}
	return c
}

func (c *Class) trace(mark func(Obj)) {
	mark(c.Name)
	if c.Class != nil {
		mark(c.Class)
	}
	if c.Superclass != nil {
		mark(c.Superclass)
	}
	for _, m := range c.Methods {
		if m.IsObj() {
			mark(m.AsObj())
		}
	}
}

func (c *Class) size() int {
	return 48 + len(c.Methods)*16
}

func (c *Class) String() string {
	return c.Name.Value()
}

// BindSuperclass inherits super's field count and method table into c. It
// must run before c gets any fields or methods of its own, since field
// offsets for the subclass's own declarations start right after the
// inherited ones. The method table is copied rather than shared so that
// later overrides in c don't retroactively change super's instances.
func (c *Class) BindSuperclass(super *Class) {
	c.Superclass = super
	c.NumFields = super.NumFields
	c.Methods = append([]Value(nil), super.Methods...)
}

// BindMethod installs closure as the implementation of symbol on c,
// growing the method table with Null placeholders if symbol is beyond its
// current length. Symbols are assigned globally by whatever maintains the
// method-name table (mirrored by the VM layer, not the core), so a given
// symbol always means the same method name across every class.
func (c *Class) BindMethod(symbol int, closure Value) {
	for len(c.Methods) <= symbol {
		c.Methods = append(c.Methods, Null)
	}
	c.Methods[symbol] = closure
}

// Method looks up symbol, returning Null (not an error) if the class and
// its ancestors leave it unbound — callers distinguish "no method" from
// "method raised" themselves.
func (c *Class) Method(symbol int) Value {
	if symbol < 0 || symbol >= len(c.Methods) {
		return Null
	}
	return c.Methods[symbol]
}

// Instance is an object built from a Class: its Object.Class names the
// class and Fields holds one Value per field declared by that class and
// its ancestors, in declaration order.
type Instance struct {
	Object
	Fields []Value
}

var _ Obj = (*Instance)(nil)

// NewInstance allocates an instance of class with every field initialized
// to Null.
func NewInstance(heap *Heap, class *Class) *Instance {
	inst := &Instance{Fields: make([]Value, class.NumFields)}
	heap.allocate(inst, KindInstance)
	inst.Class = class
	return inst
}

func (inst *Instance) trace(mark func(Obj)) {
	mark(inst.Class)
	for _, f := range inst.Fields {
		if f.IsObj() {
			mark(f.AsObj())
		}
	}
}

func (inst *Instance) size() int {
	return 32 + len(inst.Fields)*16
}

func (inst *Instance) Field(i int) (Value, error) {
	if i < 0 || i >= len(inst.Fields) {
		return Null, fmt.Errorf("core: field index %d out of bounds (count %d)", i, len(inst.Fields))
	}
	return inst.Fields[i], nil
}

func (inst *Instance) SetField(i int, v Value) error {
	if i < 0 || i >= len(inst.Fields) {
		return fmt.Errorf("core: field index %d out of bounds (count %d)", i, len(inst.Fields))
	}
	inst.Fields[i] = v
	return nil
}

func (inst *Instance) String() string {
	return "<instance " + inst.Class.Name.Value() + ">"
}
