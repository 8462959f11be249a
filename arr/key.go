package arr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// NormalizeKey converts key into the canonical form used by [Map]: an int or
// a string.
//
//   - Go integer kinds (signed and unsigned) become int.
//   - Strings holding a canonical decimal integer ("8", "-3") become int;
//     "08", "+1", "-0" and " 1" stay strings.
//   - bool becomes 0 or 1, nil becomes "".
//   - Floats are truncated towards zero.
//   - fmt.Stringer values use their String form; anything else uses fmt.Sprint.
//
// These are the PHP array-key coercion rules.
func NormalizeKey(key any) any {
	switch k := key.(type) {
	case int:
		return k
	case string:
		return normalizeString(k)
	case nil:
		return ""
	case bool:
		if k {
			return 1
		}
		return 0
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return strconv.FormatUint(u, 10)
		}
		return int(u)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	case reflect.String:
		return normalizeString(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	}

	if s, ok := key.(fmt.Stringer); ok {
		return normalizeString(s.String())
	}
	return normalizeString(fmt.Sprint(key))
}

func normalizeString(s string) any {
	if i, ok := canonicalInt(s); ok {
		return i
	}
	return s
}

// canonicalInt reports whether s is the decimal form strconv.Itoa would
// produce for some int.
func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && (len(digits) > 1 || s[0] == '-')) {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// keyString renders a normalised key for JSON objects and dot paths.
func keyString(key any) string {
	switch k := key.(type) {
	case int:
		return strconv.Itoa(k)
	case string:
		return k
	}
	return fmt.Sprint(key)
}
