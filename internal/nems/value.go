package nems

import (
	"fmt"
	"strconv"
)

// Kind discriminates the scalar types an attribute value can hold.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// Value is a scalar attribute value. Configuration attributes are untyped
// text on the wire; the closed variant here only controls rendering.
type Value struct {
	kind Kind
	s    string
	i    int
	f    float64
	b    bool
}

func String(s string) Value { return Value{kind: KindString, s: s} }
func Int(i int) Value       { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

// String renders the value as it appears in attribute blocks. Booleans
// render as true/false; the Fortran .true./.false. form is specific to
// model_configure and handled by that writer.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// FromAny converts a scalar decoded from YAML or a flag into a Value.
// Unrecognized types fall back to their string form.
func FromAny(raw any) Value {
	switch x := raw.(type) {
	case string:
		return String(x)
	case int:
		return Int(x)
	case int64:
		return Int(int(x))
	case float64:
		return Float(x)
	case bool:
		return Bool(x)
	case Value:
		return x
	default:
		return String(fmt.Sprintf("%v", raw))
	}
}
