package ron

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

const indentUnit = "    "

// Marshal renders a Go value as canonical pretty-printed text. Output is
// deterministic: struct fields appear in declaration order, map entries are
// sorted by key, and identical inputs produce identical bytes.
func Marshal(v any) ([]byte, error) {
	val, err := toValue(reflect.ValueOf(v), "")
	if err != nil {
		return nil, err
	}
	return []byte(formatValue(val, 0) + "\n"), nil
}

// Format reparses a document and renders it canonically.
func Format(data []byte) ([]byte, error) {
	val, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return []byte(formatValue(val, 0) + "\n"), nil
}

// ToValue converts a Go value into its parsed representation without
// rendering it. Useful for building tagged variants by hand.
func ToValue(v any) (Value, error) {
	return toValue(reflect.ValueOf(v), "")
}

var marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()

func toValue(rv reflect.Value, path string) (Value, error) {
	if !rv.IsValid() {
		return nil, schemaErrf(path, "cannot marshal invalid value")
	}
	if rv.Type().Implements(marshalerType) {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Enum("None"), nil
		}
		return rv.Interface().(Marshaler).MarshalRON()
	}
	if rv.CanAddr() && rv.Addr().Type().Implements(marshalerType) {
		return rv.Addr().Interface().(Marshaler).MarshalRON()
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return Enum("None"), nil
		}
		inner, err := toValue(rv.Elem(), path)
		if err != nil {
			return nil, err
		}
		return Tuple{Name: "Some", Items: []Value{inner}}, nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, schemaErrf(path, "unsigned value %d overflows the integer literal range", u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		list := make(List, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := toValue(rv.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			list[i] = item
		}
		return list, nil
	case reflect.Array:
		items := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := toValue(rv.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return Tuple{Items: items}, nil
	case reflect.Map:
		entries := make(Map, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := toValue(iter.Key(), path+".<key>")
			if err != nil {
				return nil, err
			}
			val, err := toValue(iter.Value(), path+".<value>")
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: key, Val: val})
		}
		sort.Slice(entries, func(i, j int) bool {
			return formatValue(entries[i].Key, 0) < formatValue(entries[j].Key, 0)
		})
		return entries, nil
	case reflect.Struct:
		fields, err := structFields(rv.Type())
		if err != nil {
			return nil, schemaErrf(path, "%v", err)
		}
		out := Struct{}
		for _, fi := range fields {
			fv, err := toValue(rv.Field(fi.index), path+"."+fi.name)
			if err != nil {
				return nil, err
			}
			out.Fields = append(out.Fields, Field{Name: fi.name, Val: fv})
		}
		return out, nil
	}
	return nil, schemaErrf(path, "cannot marshal %s", rv.Kind())
}

func formatValue(v Value, depth int) string {
	switch t := v.(type) {
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(int64(t), 10)
	case Float:
		return formatFloat(float64(t))
	case String:
		return quoteString(string(t))
	case Enum:
		return string(t)
	case Tuple:
		if len(t.Items) == 0 {
			return t.Name + "()"
		}
		parts := make([]string, len(t.Items))
		for i, item := range t.Items {
			parts[i] = formatValue(item, depth)
		}
		return t.Name + "(" + strings.Join(parts, ", ") + ")"
	case List:
		return formatList(t, depth)
	case Map:
		return formatMap(t, depth)
	case Struct:
		return formatStruct(t, depth)
	}
	return ""
}

func formatList(list List, depth int) string {
	if len(list) == 0 {
		return "[]"
	}
	inline := len(list) <= 8
	for _, item := range list {
		switch item.(type) {
		case Struct, Map, List:
			inline = false
		}
	}
	if inline {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = formatValue(item, depth)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	var sb strings.Builder
	sb.WriteString("[\n")
	inner := strings.Repeat(indentUnit, depth+1)
	for _, item := range list {
		sb.WriteString(inner)
		sb.WriteString(formatValue(item, depth+1))
		sb.WriteString(",\n")
	}
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString("]")
	return sb.String()
}

func formatMap(m Map, depth int) string {
	if len(m) == 0 {
		return "{}"
	}
	entries := make(Map, len(m))
	copy(entries, m)
	sort.Slice(entries, func(i, j int) bool {
		return formatValue(entries[i].Key, 0) < formatValue(entries[j].Key, 0)
	})
	var sb strings.Builder
	sb.WriteString("{\n")
	inner := strings.Repeat(indentUnit, depth+1)
	for _, e := range entries {
		sb.WriteString(inner)
		sb.WriteString(formatValue(e.Key, depth+1))
		sb.WriteString(": ")
		sb.WriteString(formatValue(e.Val, depth+1))
		sb.WriteString(",\n")
	}
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString("}")
	return sb.String()
}

func formatStruct(s Struct, depth int) string {
	if len(s.Fields) == 0 {
		return s.Name + "()"
	}
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteString("(\n")
	inner := strings.Repeat(indentUnit, depth+1)
	for _, f := range s.Fields {
		sb.WriteString(inner)
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(formatValue(f.Val, depth+1))
		sb.WriteString(",\n")
	}
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString(")")
	return sb.String()
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnI") {
		s += ".0"
	}
	return s
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
