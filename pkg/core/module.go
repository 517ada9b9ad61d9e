package core

// SymbolTable maps distinct names to small dense integers in first-seen
// order, the way a module tracks which top-level variable or a class
// tracks which method name a given symbol number refers to. Lookup is a
// linear scan rather than a hash map: module- and class-level symbol
// counts stay small enough that a scan is both simpler and, in practice,
// no slower than hashing.
type SymbolTable struct {
	names []string
}

// Ensure returns the existing symbol for name if one was already
// interned, or interns and returns a new one otherwise.
func (t *SymbolTable) Ensure(name string) int {
	if i := t.Find(name); i >= 0 {
		return i
	}
	t.names = append(t.names, name)
	return len(t.names) - 1
}

// Find returns the symbol for name, or -1 if name was never interned.
func (t *SymbolTable) Find(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (t *SymbolTable) Name(symbol int) string {
	if symbol < 0 || symbol >= len(t.names) {
		return ""
	}
	return t.names[symbol]
}

func (t *SymbolTable) Len() int { return len(t.names) }

// Module is one compiled source file's top-level namespace: its
// variable-name table and the value slot each one resolved to. A
// declared-but-not-yet-defined variable (a forward reference resolved
// later in the same top level, or a genuinely missing one reported at
// link time) holds its declaration line number disguised as a number
// Value in its slot, rather than Null — Null is a legitimate value a
// variable can genuinely hold, so it can't double as "not yet defined"
// the way a dedicated sentinel slot state can. Call IsDefined to tell the
// two apart; resolving the slot itself never distinguishes them.
type Module struct {
	Object
	Name      *String
	Variables SymbolTable
	Values    []Value
	defined   []bool
}

var _ Obj = (*Module)(nil)

func NewModule(heap *Heap, name *String) *Module {
	m := &Module{Name: name}
	heap.allocate(m, KindModule)
	return m
}

func (m *Module) trace(mark func(Obj)) {
	mark(m.Name)
	for _, v := range m.Values {
		if v.IsObj() {
			mark(v.AsObj())
		}
	}
}

func (m *Module) size() int {
	return 32 + len(m.Values)*16
}

func (m *Module) String() string {
	return "<module " + m.Name.Value() + ">"
}

// Declare reserves a slot for name if it doesn't already have one,
// recording declarationLine as a placeholder value and marking it
// undefined. It's a no-op, returning the existing slot, if name was
// already declared or defined.
func (m *Module) Declare(name string, declarationLine int) int {
	slot := m.Variables.Ensure(name)
	for len(m.Values) <= slot {
		m.Values = append(m.Values, Null)
		m.defined = append(m.defined, false)
	}
	if !m.defined[slot] && m.Values[slot].IsNull() {
		m.Values[slot] = Number(float64(declarationLine))
	}
	return slot
}

// Define stores v in name's slot and marks it defined, declaring the slot
// first if this is the variable's first appearance.
func (m *Module) Define(name string, v Value) int {
	slot := m.Variables.Ensure(name)
	for len(m.Values) <= slot {
		m.Values = append(m.Values, Null)
		m.defined = append(m.defined, false)
	}
	m.Values[slot] = v
	m.defined[slot] = true
	return slot
}

// IsDefined reports whether slot holds an actual value rather than a
// declaration-line placeholder.
func (m *Module) IsDefined(slot int) bool {
	return slot >= 0 && slot < len(m.defined) && m.defined[slot]
}

// DeclarationLine returns the source line slot was declared at, valid
// only while IsDefined(slot) is false.
func (m *Module) DeclarationLine(slot int) int {
	if slot < 0 || slot >= len(m.Values) {
		return 0
	}
	return int(m.Values[slot].AsNumber())
}

func (m *Module) Value(slot int) Value {
	if slot < 0 || slot >= len(m.Values) {
		return Null
	}
	return m.Values[slot]
}
