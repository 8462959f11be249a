package compare

import (
	"math"
	"reflect"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/contracts"
)

type class int

const (
	classNull class = iota
	classBool
	classInt
	classFloat
	classString
	classArray
	classObject
)

// value is an operand after classification.
type value struct {
	class class
	b     bool
	i     int64
	f     float64
	s     string
	m     *arr.Map
	raw   any
}

func classify(v any) value {
	switch t := v.(type) {
	case nil:
		return value{class: classNull}
	case bool:
		return value{class: classBool, b: t, raw: v}
	case int:
		return value{class: classInt, i: int64(t), raw: v}
	case float64:
		return value{class: classFloat, f: t, raw: v}
	case string:
		return value{class: classString, s: t, raw: v}
	case *arr.Map:
		if t == nil {
			return value{class: classNull}
		}
		return value{class: classArray, m: t, raw: v}
	case contracts.Arrayable:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return value{class: classNull}
		}
		return value{class: classArray, m: t.ToArray(), raw: v}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return value{class: classBool, b: rv.Bool(), raw: v}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value{class: classInt, i: rv.Int(), raw: v}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return value{class: classFloat, f: float64(u), raw: v}
		}
		return value{class: classInt, i: int64(u), raw: v}
	case reflect.Float32, reflect.Float64:
		return value{class: classFloat, f: rv.Float(), raw: v}
	case reflect.String:
		return value{class: classString, s: rv.String(), raw: v}
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return value{class: classNull}
		}
	}
	if m, ok := arr.Of(v); ok {
		return value{class: classArray, m: m, raw: v}
	}
	return value{class: classObject, raw: v}
}

func (v value) truthy() bool {
	switch v.class {
	case classNull:
		return false
	case classBool:
		return v.b
	case classInt:
		return v.i != 0
	case classFloat:
		return v.f != 0
	case classString:
		return v.s != "" && v.s != "0"
	case classArray:
		return v.m.Len() > 0
	}
	if e, ok := v.raw.(interface{ IsEmpty() bool }); ok {
		return !e.IsEmpty()
	}
	return true
}

func (v value) number() number {
	switch v.class {
	case classInt:
		return number{i: v.i}
	case classFloat:
		return number{f: v.f, isFloat: true}
	case classString:
		n, _ := parseNumericPrefix(v.s)
		return n
	case classBool:
		if v.b {
			return number{i: 1}
		}
	}
	return number{}
}

// Loose compares a and b with PHP 8 loose semantics and returns -1, 0 or 1.
// See the package documentation for the coercion table.
func Loose(a, b any) int {
	return compareValues(classify(a), classify(b))
}

// LooseEqual reports whether a == b under loose comparison.
func LooseEqual(a, b any) bool {
	return Loose(a, b) == 0
}

func compareValues(x, y value) int {
	switch {
	case x.class == classNull && y.class == classNull:
		return 0
	case x.class == classNull && y.class == classString:
		return compareStrings("", y.s)
	case x.class == classString && y.class == classNull:
		return compareStrings(x.s, "")
	case x.class <= classBool || y.class <= classBool:
		return compareBools(x.truthy(), y.truthy())
	case x.class == classArray && y.class == classArray:
		return compareArrays(x.m, y.m)
	case x.class == classArray:
		return 1
	case y.class == classArray:
		return -1
	case x.class == classObject || y.class == classObject:
		return compareObjects(x, y)
	}

	if x.class == classString && y.class == classString {
		xn, xok := parseNumeric(x.s)
		yn, yok := parseNumeric(y.s)
		if xok && yok {
			return compareNumbers(xn, yn)
		}
		return compareStrings(x.s, y.s)
	}
	if x.class == classString {
		if xn, ok := parseNumeric(x.s); ok {
			return compareNumbers(xn, y.number())
		}
		return compareStrings(x.s, ToString(y.raw))
	}
	if y.class == classString {
		if yn, ok := parseNumeric(y.s); ok {
			return compareNumbers(x.number(), yn)
		}
		return compareStrings(ToString(x.raw), y.s)
	}
	return compareNumbers(x.number(), y.number())
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareNumbers(a, b number) int {
	if !a.isFloat && !b.isFloat {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		}
		return 0
	}
	x, y := a.float(), b.float()
	switch {
	case x < y:
		return -1
	case x == y:
		return 0
	}
	// greater, or NaN which is uncomparable
	return 1
}

func compareArrays(a, b *arr.Map) int {
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	}
	for k, av := range a.All() {
		bv, ok := b.Get(k)
		if !ok {
			return 1
		}
		if c := Loose(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

func compareObjects(x, y value) int {
	if x.class == classObject && y.class == classObject {
		if sameComparable(x.raw, y.raw) && x.raw == y.raw {
			return 0
		}
		if reflect.DeepEqual(x.raw, y.raw) {
			return 0
		}
		return 1
	}
	if x.class == classObject {
		if s, ok := stringer(x.raw); ok && y.class == classString {
			return compareStrings(s, y.s)
		}
		return 1
	}
	if s, ok := stringer(y.raw); ok && x.class == classString {
		return compareStrings(x.s, s)
	}
	return -1
}

// StrictEqual reports whether a === b: same kind of value and same value.
// See the package documentation.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	x, y := strictClass(a), strictClass(b)
	if x.class != y.class {
		return false
	}
	switch x.class {
	case classBool:
		return x.b == y.b
	case classInt:
		return x.i == y.i
	case classFloat:
		return x.f == y.f
	case classString:
		return x.s == y.s
	case classArray:
		return strictArrays(x.m, y.m)
	}
	if sameComparable(a, b) {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// strictClass classifies like classify but treats Arrayable values as
// objects, so collections compare by identity.
func strictClass(v any) value {
	if _, ok := v.(contracts.Arrayable); ok {
		if _, isMap := v.(*arr.Map); !isMap {
			return value{class: classObject, raw: v}
		}
	}
	return classify(v)
}

func strictArrays(a, b *arr.Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	bk, bv := b.Keys(), b.Values()
	i := 0
	for k, v := range a.All() {
		if k != bk[i] || !StrictEqual(v, bv[i]) {
			return false
		}
		i++
	}
	return true
}

// sameComparable reports whether a == b is safe to evaluate: both have the
// same dynamic type and neither holds an uncomparable value.
func sameComparable(a, b any) bool {
	if a == nil || b == nil || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable()
}

// Truthy reports whether v converts to true. See the package documentation.
func Truthy(v any) bool {
	return classify(v).truthy()
}
