package arr

import (
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access
//
// Paths such as "user.address.city" walk nested values one segment at a
// time. Each segment is resolved against whatever the previous step
// produced:
//
//	*Map               key lookup
//	ArrayAccess        OffsetExists then OffsetGet
//	AttributeAccessor  GetAttribute
//	map[string]any     key lookup
//	Go maps            key converted to the map's key type
//	slices, arrays     canonical integer index
//	structs            exported field by name, json tag or case-insensitive name
//
// A "*" segment fans out over every element of an array-like value and
// returns a list of the results.
// ─────────────────────────────────────────────────────────────────────────────

// ArrayAccess is implemented by values that expose keyed offsets, such as a
// collection.
type ArrayAccess interface {
	OffsetExists(key any) bool
	OffsetGet(key any) (any, bool)
}

// AttributeAccessor is implemented by values with virtual attributes that
// are not plain fields, e.g. computed properties of a model.
type AttributeAccessor interface {
	GetAttribute(name string) (any, bool)
}

type arrayable interface {
	ToArray() *Map
}

// Get resolves a dot-notation path against target and reports whether every
// segment was present. An empty path returns target itself. For a *Map or
// map[string]any a key that literally contains dots is tried first.
//
//	Get(m, "user.address.city")  // "London", true
//	Get(m, "users.*.name")       // *Map list of names, true
func Get(target any, path string) (any, bool) {
	if path == "" {
		return target, true
	}
	if strings.Contains(path, ".") {
		switch t := target.(type) {
		case *Map:
			if v, ok := t.Get(path); ok {
				return v, true
			}
		case map[string]any:
			if v, ok := t[path]; ok {
				return v, true
			}
		}
	}
	return getSegments(target, strings.Split(path, "."))
}

func getSegments(target any, segments []string) (any, bool) {
	current := target
	for i, seg := range segments {
		if seg == "*" {
			return getWildcard(current, segments[i+1:])
		}
		v, ok := lookup(current, seg)
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}

func getWildcard(target any, rest []string) (any, bool) {
	items, ok := Of(target)
	if !ok {
		a, isArrayable := target.(arrayable)
		if !isArrayable {
			return nil, false
		}
		items = a.ToArray()
	}
	collapse := false
	for _, seg := range rest {
		if seg == "*" {
			collapse = true
			break
		}
	}
	out := New()
	for _, item := range items.All() {
		v, _ := getSegments(item, rest)
		if nested, isMap := v.(*Map); collapse && isMap {
			for _, nv := range nested.All() {
				out.Append(nv)
			}
			continue
		}
		out.Append(v)
	}
	return out, true
}

// lookup resolves a single path segment.
func lookup(target any, seg string) (any, bool) {
	switch t := target.(type) {
	case nil:
		return nil, false
	case *Map:
		return t.Get(seg)
	case map[string]any:
		v, ok := t[seg]
		return v, ok
	case []any:
		i, ok := canonicalInt(seg)
		if !ok || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	}
	if a, ok := target.(ArrayAccess); ok && a.OffsetExists(seg) {
		return a.OffsetGet(seg)
	}
	if a, ok := target.(AttributeAccessor); ok {
		if v, found := a.GetAttribute(seg); found {
			return v, true
		}
	}
	return lookupReflect(reflect.ValueOf(target), seg)
}

func lookupReflect(rv reflect.Value, seg string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		k, ok := mapKey(rv.Type().Key(), seg)
		if !ok {
			return nil, false
		}
		v := rv.MapIndex(k)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := canonicalInt(seg)
		if !ok || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		return structField(rv, seg)
	}
	return nil, false
}

// mapKey converts a path segment into a reflect key of type kt.
func mapKey(kt reflect.Type, seg string) (reflect.Value, bool) {
	switch kt.Kind() {
	case reflect.String:
		return reflect.ValueOf(seg).Convert(kt), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	case reflect.Interface:
		return reflect.ValueOf(NormalizeKey(seg)), true
	}
	return reflect.Value{}, false
}

func structField(rv reflect.Value, seg string) (any, bool) {
	rt := rv.Type()
	if f, ok := rt.FieldByName(seg); ok && f.IsExported() {
		return rv.FieldByIndex(f.Index).Interface(), true
	}
	fold := -1
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if name, skip := fieldName(f); !skip && name == seg {
			return rv.Field(i).Interface(), true
		}
		if fold < 0 && strings.EqualFold(f.Name, seg) {
			fold = i
		}
	}
	if fold >= 0 {
		return rv.Field(fold).Interface(), true
	}
	return nil, false
}

// Has reports whether the dot-notation path resolves in target.
func Has(target any, path string) bool {
	_, ok := Get(target, path)
	return ok
}

// HasAll reports whether every path resolves in target. No paths reports
// false.
func HasAll(target any, paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !Has(target, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one path resolves in target.
func HasAny(target any, paths ...string) bool {
	for _, p := range paths {
		if Has(target, p) {
			return true
		}
	}
	return false
}

// Set writes value into m at the dot-notation path, creating intermediate
// Maps as needed. A non-Map value in the way is replaced. It returns m.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m *Map, path string, value any) *Map {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		return m.Set(path, value)
	}
	child, ok := mapAt(m, seg)
	if !ok {
		child = New()
		m.Set(seg, child)
	}
	Set(child, rest, value)
	return m
}

// Forget removes each dot-notation path from m. A key that literally
// matches the whole path is removed first. Nested Maps along a path are
// copied before they are modified, so values shared with other Maps are
// left untouched. Missing paths are ignored.
func Forget(m *Map, paths ...string) {
	for _, path := range paths {
		if m.Has(path) {
			m.Delete(path)
			continue
		}
		forgetPath(m, path)
	}
}

func forgetPath(m *Map, path string) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m.Delete(path)
		return
	}
	child, ok := mapAt(m, seg)
	if !ok {
		return
	}
	child = child.Clone()
	m.Set(seg, child)
	forgetPath(child, rest)
}

func mapAt(m *Map, key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Map)
	return child, ok && child != nil
}

// Dot flattens nested Maps into a single-level Map keyed by dot paths.
// Empty nested Maps are kept as leaves.
//
//	Dot({"a": {"b": 1}})  // {"a.b": 1}
func Dot(m *Map) *Map {
	out := New()
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m *Map, out *Map) {
	for k, v := range m.All() {
		key := prefix + keyString(k)
		if nested, ok := v.(*Map); ok && nested.Len() > 0 {
			dotFlatten(key+".", nested, out)
			continue
		}
		out.Set(key, v)
	}
}

// Undot expands a Map with dot-notation keys into nested Maps.
//
//	Undot({"a.b": 1, "a.c": 2})  // {"a": {"b": 1, "c": 2}}
func Undot(m *Map) *Map {
	out := New()
	for k, v := range m.All() {
		Set(out, keyString(k), v)
	}
	return out
}

// Only returns the entries of m whose keys are listed, in m's order.
func Only(m *Map, keys ...any) *Map {
	want := make(map[any]struct{}, len(keys))
	for _, k := range keys {
		want[NormalizeKey(k)] = struct{}{}
	}
	out := New()
	for k, v := range m.All() {
		if _, ok := want[k]; ok {
			out.Set(k, v)
		}
	}
	return out
}

// Except returns a copy of m without the given dot-notation paths.
func Except(m *Map, paths ...string) *Map {
	out := m.Clone()
	Forget(out, paths...)
	return out
}

// Merge combines maps left to right like PHP's array_merge: integer keys
// are appended with fresh indexes and string keys overwrite in place.
func Merge(maps ...*Map) *Map {
	out := New()
	for _, m := range maps {
		for k, v := range m.All() {
			if _, ok := k.(int); ok {
				out.Append(v)
			} else {
				out.Set(k, v)
			}
		}
	}
	return out
}
