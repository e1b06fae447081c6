package ron

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
)

// Unmarshal parses a document and decodes it into v, which must be a non-nil
// pointer. Decoding is strict: unknown struct fields and missing fields
// without a `,default` tag option (or pointer type) are rejected.
func Unmarshal(data []byte, v any) error {
	val, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(val, v)
}

// Decode maps an already-parsed Value onto v.
func Decode(val Value, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return schemaErrf("", "decode target must be a non-nil pointer")
	}
	return decodeValue(val, rv.Elem(), "")
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

func decodeValue(val Value, rv reflect.Value, path string) error {
	if rv.CanAddr() && rv.Addr().Type().Implements(unmarshalerType) {
		return rv.Addr().Interface().(Unmarshaler).UnmarshalRON(val)
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if e, ok := val.(Enum); ok && e == "None" {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if t, ok := val.(Tuple); ok && t.Name == "Some" {
			if len(t.Items) != 1 {
				return schemaErrf(path, "Some takes exactly one value")
			}
			val = t.Items[0]
		}
		elem := reflect.New(rv.Type().Elem())
		if err := decodeValue(val, elem.Elem(), path); err != nil {
			return err
		}
		rv.Set(elem)
		return nil
	case reflect.Bool:
		b, ok := val.(Bool)
		if !ok {
			return typeErr(path, "bool", val)
		}
		rv.SetBool(bool(b))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := val.(Int)
		if !ok {
			return typeErr(path, "integer", val)
		}
		if rv.OverflowInt(int64(n)) {
			return schemaErrf(path, "value %d overflows %s", int64(n), rv.Type())
		}
		rv.SetInt(int64(n))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := val.(Int)
		if !ok {
			return typeErr(path, "integer", val)
		}
		if n < 0 {
			return schemaErrf(path, "negative value %d for %s", int64(n), rv.Type())
		}
		if rv.OverflowUint(uint64(n)) {
			return schemaErrf(path, "value %d overflows %s", int64(n), rv.Type())
		}
		rv.SetUint(uint64(n))
		return nil
	case reflect.Float32, reflect.Float64:
		switch t := val.(type) {
		case Float:
			rv.SetFloat(float64(t))
		case Int:
			rv.SetFloat(float64(t))
		default:
			return typeErr(path, "float", val)
		}
		if rv.Kind() == reflect.Float32 && math.IsInf(rv.Float(), 0) {
			return schemaErrf(path, "value overflows float32")
		}
		return nil
	case reflect.String:
		s, ok := val.(String)
		if !ok {
			return typeErr(path, "string", val)
		}
		rv.SetString(string(s))
		return nil
	case reflect.Slice:
		list, ok := val.(List)
		if !ok {
			return typeErr(path, "list", val)
		}
		out := reflect.MakeSlice(rv.Type(), len(list), len(list))
		for i, item := range list {
			if err := decodeValue(item, out.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil
	case reflect.Array:
		items, err := positionalItems(val, path)
		if err != nil {
			return err
		}
		if len(items) != rv.Len() {
			return schemaErrf(path, "expected %d elements, found %d", rv.Len(), len(items))
		}
		for i, item := range items {
			if err := decodeValue(item, rv.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		m, ok := val.(Map)
		if !ok {
			return typeErr(path, "map", val)
		}
		out := reflect.MakeMapWithSize(rv.Type(), len(m))
		for _, entry := range m {
			key := reflect.New(rv.Type().Key()).Elem()
			if err := decodeValue(entry.Key, key, path+".<key>"); err != nil {
				return err
			}
			elem := reflect.New(rv.Type().Elem()).Elem()
			if err := decodeValue(entry.Val, elem, fmt.Sprintf("%s[%v]", path, key.Interface())); err != nil {
				return err
			}
			out.SetMapIndex(key, elem)
		}
		rv.Set(out)
		return nil
	case reflect.Struct:
		return decodeStruct(val, rv, path)
	}
	return schemaErrf(path, "unsupported target type %s", rv.Type())
}

func decodeStruct(val Value, rv reflect.Value, path string) error {
	fields, err := structFields(rv.Type())
	if err != nil {
		return schemaErrf(path, "%v", err)
	}

	switch t := val.(type) {
	case Struct:
		byName := make(map[string]fieldInfo, len(fields))
		for _, fi := range fields {
			byName[fi.name] = fi
		}
		seen := make(map[string]struct{}, len(t.Fields))
		for _, f := range t.Fields {
			fi, ok := byName[f.Name]
			if !ok {
				return schemaErrf(joinPath(path, f.Name), "unknown field")
			}
			seen[f.Name] = struct{}{}
			if err := decodeValue(f.Val, rv.Field(fi.index), joinPath(path, f.Name)); err != nil {
				return err
			}
		}
		for _, fi := range fields {
			if _, ok := seen[fi.name]; ok {
				continue
			}
			if fi.optional {
				continue
			}
			return schemaErrf(joinPath(path, fi.name), "missing field")
		}
		return nil
	case Tuple:
		// Positional form, used for short structs like positions: (x, y).
		if len(t.Items) != len(fields) {
			return schemaErrf(path, "expected %d positional fields, found %d", len(fields), len(t.Items))
		}
		for i, fi := range fields {
			if err := decodeValue(t.Items[i], rv.Field(fi.index), joinPath(path, fi.name)); err != nil {
				return err
			}
		}
		return nil
	}
	return typeErr(path, "struct", val)
}

func positionalItems(val Value, path string) ([]Value, error) {
	switch t := val.(type) {
	case List:
		return t, nil
	case Tuple:
		if t.Name != "" {
			return nil, schemaErrf(path, "unexpected variant %q", t.Name)
		}
		return t.Items, nil
	}
	return nil, typeErr(path, "sequence", val)
}

func typeErr(path, want string, got Value) error {
	return schemaErrf(path, "expected %s, found %s", want, describe(got))
}

func describe(v Value) string {
	switch t := v.(type) {
	case Bool:
		return "bool"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Enum:
		return fmt.Sprintf("variant %q", string(t))
	case List:
		return "list"
	case Map:
		return "map"
	case Struct:
		if t.Name != "" {
			return fmt.Sprintf("struct %q", t.Name)
		}
		return "struct"
	case Tuple:
		if t.Name != "" {
			return fmt.Sprintf("variant %q", t.Name)
		}
		return "tuple"
	}
	return "unknown"
}

// ===== struct field metadata =====

type fieldInfo struct {
	name     string
	index    int
	optional bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

func structFields(t reflect.Type) ([]fieldInfo, error) {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo), nil
	}
	var fields []fieldInfo
	seen := make(map[string]struct{})
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := snakeCase(sf.Name)
		optional := sf.Type.Kind() == reflect.Ptr
		if tag, ok := sf.Tag.Lookup("ron"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "default" {
					optional = true
				}
			}
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate field name %q on %s", name, t)
		}
		seen[name] = struct{}{}
		fields = append(fields, fieldInfo{name: name, index: i, optional: optional})
	}
	fieldCache.Store(t, fields)
	return fields, nil
}

func snakeCase(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prev := name[i-1]
				if prev < 'A' || prev > 'Z' {
					sb.WriteByte('_')
				}
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
