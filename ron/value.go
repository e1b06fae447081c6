// Package ron implements the typed textual content format used by campaign
// data files: structs with named fields `Name(field: value)`, enum variants
// `Variant` / `Variant(...)`, lists, maps, tuples, comments, and trailing
// commas. Parsing is strict: unknown fields, missing non-defaulted fields,
// and duplicate map keys are rejected.
package ron

// Value is the parsed representation of a single document node.
type Value interface {
	valueNode()
}

// Bool is a boolean literal.
type Bool bool

// Int is a signed integer literal.
type Int int64

// Float is a floating point literal.
type Float float64

// String is a quoted string literal.
type String string

// Enum is a bare variant identifier such as `Anytime` or `None`.
type Enum string

// List is an ordered sequence `[a, b, c]`.
type List []Value

// MapEntry is a single key/value pair inside a Map.
type MapEntry struct {
	Key Value
	Val Value
}

// Map is an ordered map `{k: v, ...}`. Keys may be any scalar or tuple value;
// duplicates are rejected at parse time.
type Map []MapEntry

// Field is a named struct field.
type Field struct {
	Name string
	Val  Value
}

// Struct is a compound with named fields: `Name(a: 1, b: 2)` or `(a: 1)`.
// Name is empty for anonymous structs.
type Struct struct {
	Name   string
	Fields []Field
}

// Tuple is a compound with positional items: `Name(a, b)`, `(a, b)`, or the
// unit value `()`. Name is empty for plain tuples.
type Tuple struct {
	Name  string
	Items []Value
}

func (Bool) valueNode()   {}
func (Int) valueNode()    {}
func (Float) valueNode()  {}
func (String) valueNode() {}
func (Enum) valueNode()   {}
func (List) valueNode()   {}
func (Map) valueNode()    {}
func (Struct) valueNode() {}
func (Tuple) valueNode()  {}

// Marshaler lets a type control its own RON representation.
type Marshaler interface {
	MarshalRON() (Value, error)
}

// Unmarshaler lets a type decode itself from a RON value.
type Unmarshaler interface {
	UnmarshalRON(v Value) error
}

// field lookup helper shared by decode and merge.
func (s Struct) field(name string) (Value, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Val, true
		}
	}
	return nil, false
}
