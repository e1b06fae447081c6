package ron

// Merge deep-merges overlay onto base and returns the combined value. Structs
// and maps merge field-by-field with overlay winning at the leaves; lists,
// tuples, and scalars are replaced wholesale. A container in one document
// colliding with a scalar in the other is a MergeError.
func Merge(base, overlay Value) (Value, error) {
	return mergeValue(base, overlay, "")
}

// MergeDocuments parses both inputs, merges them, and renders the result
// canonically.
func MergeDocuments(base, overlay []byte) ([]byte, error) {
	bv, err := Parse(base)
	if err != nil {
		return nil, err
	}
	ov, err := Parse(overlay)
	if err != nil {
		return nil, err
	}
	merged, err := Merge(bv, ov)
	if err != nil {
		return nil, err
	}
	return []byte(formatValue(merged, 0) + "\n"), nil
}

func mergeValue(base, overlay Value, path string) (Value, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	switch b := base.(type) {
	case Struct:
		o, ok := overlay.(Struct)
		if !ok {
			return nil, mergeConflict(path, base, overlay)
		}
		if b.Name != o.Name && b.Name != "" && o.Name != "" {
			return nil, &MergeError{Path: path, Msg: "cannot merge struct " + b.Name + " with struct " + o.Name}
		}
		return mergeStructs(b, o, path)
	case Map:
		o, ok := overlay.(Map)
		if !ok {
			return nil, mergeConflict(path, base, overlay)
		}
		return mergeMaps(b, o, path)
	}

	if isContainer(overlay) && !isContainer(base) {
		return nil, mergeConflict(path, base, overlay)
	}
	return overlay, nil
}

func mergeStructs(base, overlay Struct, path string) (Value, error) {
	name := base.Name
	if name == "" {
		name = overlay.Name
	}
	out := Struct{Name: name}
	out.Fields = append(out.Fields, base.Fields...)

	index := make(map[string]int, len(out.Fields))
	for i, f := range out.Fields {
		index[f.Name] = i
	}
	for _, f := range overlay.Fields {
		if i, ok := index[f.Name]; ok {
			merged, err := mergeValue(out.Fields[i].Val, f.Val, joinPath(path, f.Name))
			if err != nil {
				return nil, err
			}
			out.Fields[i].Val = merged
			continue
		}
		index[f.Name] = len(out.Fields)
		out.Fields = append(out.Fields, f)
	}
	return out, nil
}

func mergeMaps(base, overlay Map, path string) (Value, error) {
	out := make(Map, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, e := range out {
		index[formatValue(e.Key, 0)] = i
	}
	for _, e := range overlay {
		canon := formatValue(e.Key, 0)
		if i, ok := index[canon]; ok {
			merged, err := mergeValue(out[i].Val, e.Val, joinPath(path, canon))
			if err != nil {
				return nil, err
			}
			out[i].Val = merged
			continue
		}
		index[canon] = len(out)
		out = append(out, e)
	}
	return out, nil
}

func isContainer(v Value) bool {
	switch v.(type) {
	case Struct, Map:
		return true
	}
	return false
}

func mergeConflict(path string, base, overlay Value) *MergeError {
	return &MergeError{Path: path, Msg: "cannot merge " + describe(base) + " with " + describe(overlay)}
}
