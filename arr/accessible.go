package arr

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
)

// Accessible reports whether v is array-like: a *Map, a Go slice or array
// (other than []byte), or a Go map.
func Accessible(v any) bool {
	_, ok := Of(v)
	return ok
}

// Of returns an ordered view of an array-like v.
//
// A *Map is returned as-is, not copied. Slices and arrays become lists. Go
// maps are ordered by key, integer keys first, so the result is
// deterministic. Any other value reports false.
func Of(v any) (*Map, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *Map:
		if t == nil {
			return nil, false
		}
		return t, true
	case []any:
		return List(t...), true
	case []byte:
		return nil, false
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		m := New()
		for _, k := range sortKeys(keys) {
			m.Set(k, t[k])
		}
		return m, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		m := New()
		for i := 0; i < rv.Len(); i++ {
			m.Append(rv.Index(i).Interface())
		}
		return m, true
	case reflect.Map:
		byKey := make(map[string]reflect.Value, rv.Len())
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			s := keyString(NormalizeKey(k.Interface()))
			byKey[s] = k
			keys = append(keys, s)
		}
		m := New()
		for _, s := range sortKeys(keys) {
			m.Set(s, rv.MapIndex(byKey[s]).Interface())
		}
		return m, true
	}
	return nil, false
}

// Wrap returns v as an array: array-like values via [Of], nil as an empty
// Map, and any other value as a one-element list.
func Wrap(v any) *Map {
	if v == nil {
		return New()
	}
	if m, ok := Of(v); ok {
		return m
	}
	return List(v)
}

// FromStruct converts a struct, or a non-nil pointer to one, into a Map of
// its exported fields in declaration order. Fields are keyed by their json
// tag name when one is set; fields tagged "-" are skipped.
func FromStruct(v any) (*Map, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	rt := rv.Type()
	m := New()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := fieldName(f)
		if skip {
			continue
		}
		m.Set(name, rv.Field(i).Interface())
	}
	return m, true
}

func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}
	if name == "" {
		return f.Name, false
	}
	return name, false
}

// sortKeys orders rendered keys: canonical integers numerically first, then
// strings lexically.
func sortKeys(keys []string) []string {
	slices.SortStableFunc(keys, func(x, y string) int {
		a, aInt := canonicalInt(x)
		b, bInt := canonicalInt(y)
		switch {
		case aInt && bInt:
			return cmp.Compare(a, b)
		case aInt:
			return -1
		case bInt:
			return 1
		default:
			return strings.Compare(x, y)
		}
	})
	return keys
}
