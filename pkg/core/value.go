package core

import (
	"fmt"
	"math"
)

// valueKind discriminates the tagged Value union. A NaN-boxed
// representation would pack the same four cases into a single float64,
// trading this type switch for pointer-tagging tricks; see DESIGN.md for
// why the tagged form is what's implemented here.
type valueKind byte

const (
	valueNull valueKind = iota
	valueBool
	valueNumber
	valueObj
)

// Value is a single runtime datum: null, true, false, a double, or an
// object reference, held as a small tagged struct rather than one machine
// word. It is safe to copy and compare with ==
// is intentionally NOT supported — use Same/Equal, since object identity
// and NaN semantics require explicit handling.
type Value struct {
	kind   valueKind
	number float64
	obj    Obj
}

// Null, True, and False are the unique singleton non-numeric, non-object
// values.
var (
	Null  = Value{kind: valueNull}
	True  = Value{kind: valueBool, number: 1}
	False = Value{kind: valueBool, number: 0}
)

// Number wraps a float64 as a Value.
func Number(f float64) Value {
	return Value{kind: valueNumber, number: f}
}

// Bool wraps a bool as a Value, returning one of the True/False singletons.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// FromObj wraps a heap object reference as a Value.
func FromObj(o Obj) Value {
	if o == nil {
		return Null
	}
	return Value{kind: valueObj, obj: o}
}

func (v Value) IsNull() bool   { return v.kind == valueNull }
func (v Value) IsBool() bool   { return v.kind == valueBool }
func (v Value) IsNumber() bool { return v.kind == valueNumber }
func (v Value) IsObj() bool    { return v.kind == valueObj }

// AsBool returns the boolean payload. It panics if the Value is not a bool,
// matching how a clox-style core trusts its own dispatch to have checked
// IsBool first.
func (v Value) AsBool() bool {
	if v.kind != valueBool {
		panic("core: Value.AsBool on non-bool Value")
	}
	return v.number != 0
}

func (v Value) AsNumber() float64 {
	if v.kind != valueNumber {
		panic("core: Value.AsNumber on non-number Value")
	}
	return v.number
}

func (v Value) AsObj() Obj {
	if v.kind != valueObj {
		panic("core: Value.AsObj on non-object Value")
	}
	return v.obj
}

// Kind returns the object Kind for an object Value, or false otherwise.
func (v Value) Kind() (Kind, bool) {
	if v.kind != valueObj {
		return 0, false
	}
	return v.obj.header().Kind, true
}

// Truthy reports whether v counts as true in a condition: only false and
// null are falsey, everything else (including zero and the empty string)
// is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case valueNull:
		return false
	case valueBool:
		return v.number != 0
	default:
		return true
	}
}

// TypeName returns a short, stable, lowercase name for diagnostics.
func (v Value) TypeName() string {
	switch v.kind {
	case valueNull:
		return "null"
	case valueBool:
		return "bool"
	case valueNumber:
		return "number"
	case valueObj:
		return v.obj.header().Kind.String()
	default:
		return "unknown"
	}
}

func (v Value) String() string {
	switch v.kind {
	case valueNull:
		return "null"
	case valueBool:
		if v.number != 0 {
			return "true"
		}
		return "false"
	case valueNumber:
		return numToString(v.number)
	case valueObj:
		return stringifyObj(v.obj)
	default:
		return "<invalid>"
	}
}

func stringifyObj(o Obj) string {
	switch t := o.(type) {
	case *String:
		return t.Value()
	case *Range:
		return t.String()
	case *List:
		return t.String()
	case *Map:
		return t.String()
	case *Class:
		return fmt.Sprintf("<class %s>", t.Name.Value())
	case *Instance:
		return fmt.Sprintf("<instance of %s>", t.Class.Name.Value())
	case *Closure:
		return fmt.Sprintf("<fn %s>", t.Function.DebugName)
	case *Function:
		return fmt.Sprintf("<fn %s>", t.DebugName)
	case *Fiber:
		return fmt.Sprintf("<fiber %d>", t.ID())
	case *Module:
		return fmt.Sprintf("<module %s>", t.Name.Value())
	default:
		return "<object>"
	}
}

// Same tests bitwise/identity equality: numbers compare by IEEE-754
// equality, so NaN is never Same as itself, and object references compare
// by pointer identity regardless of type.
func Same(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case valueNull:
		return true
	case valueBool:
		return a.number == b.number
	case valueNumber:
		return a.number == b.number
	case valueObj:
		return a.obj == b.obj
	default:
		return false
	}
}

// Equal is Same, plus a structural fallback for String (length+hash+bytes)
// and Range (tuple equality) — the two object kinds that opt into
// structural equality instead of identity.
func Equal(a, b Value) bool {
	if Same(a, b) {
		return true
	}
	if a.kind != valueObj || b.kind != valueObj {
		return false
	}
	as, aok := a.obj.(*String)
	bs, bok := b.obj.(*String)
	if aok && bok {
		return as.Equal(bs)
	}
	ar, aok := a.obj.(*Range)
	br, bok := b.obj.(*Range)
	if aok && bok {
		return ar.Equal(br)
	}
	return false
}

// Hash computes a Value's hash code. Numbers, strings, classes, ranges,
// and the null/true/false singletons are hashable, as are fibers (by id).
// Every other object kind is unhashable; Hash reports that as an error
// rather than panicking, since an embeddable Go library should never
// crash the embedder on a caller mistake.
func Hash(v Value) (uint32, error) {
	switch v.kind {
	case valueNull:
		return hashNull, nil
	case valueBool:
		if v.number != 0 {
			return hashTrue, nil
		}
		return hashFalse, nil
	case valueNumber:
		return hashNumber(v.number), nil
	case valueObj:
		switch o := v.obj.(type) {
		case *String:
			return o.hash, nil
		case *Class:
			return o.Name.hash, nil
		case *Range:
			return hashRange(o), nil
		case *Fiber:
			return uint32(o.ID()) ^ uint32(o.ID()>>32), nil
		default:
			return 0, fmt.Errorf("core: value of type %q is not hashable", v.TypeName())
		}
	default:
		return 0, fmt.Errorf("core: value of type %q is not hashable", v.TypeName())
	}
}

// Distinct small hash constants for the three non-numeric singletons,
// chosen arbitrarily but fixed.
const (
	hashNull  uint32 = 0x6e756c6c // "null"
	hashTrue  uint32 = 0x74727565 // "true"
	hashFalse uint32 = 0x66616c73 // "fals"
)

// hashNumber XORs the two 32-bit halves of the IEEE-754 bit pattern.
func hashNumber(f float64) uint32 {
	bits := math.Float64bits(f)
	return uint32(bits) ^ uint32(bits>>32)
}
