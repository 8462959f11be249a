package compare

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	numericPattern = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)
	numericPrefix  = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// number is a parsed numeric operand. Integers stay exact.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func parseNumeric(s string) (number, bool) {
	if !numericPattern.MatchString(s) {
		return number{}, false
	}
	return parseNumber(strings.TrimSpace(s)), true
}

// parseNumericPrefix parses the leading numeric part of s, the way PHP casts
// "12abc" to 12. It reports whether any prefix was found.
func parseNumericPrefix(s string) (number, bool) {
	m := numericPrefix.FindString(s)
	if m == "" {
		return number{}, false
	}
	return parseNumber(strings.TrimSpace(m)), true
}

func parseNumber(s string) number {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return number{i: i}
	}
	f, _ := strconv.ParseFloat(s, 64)
	return number{f: f, isFloat: true}
}

// IsNumeric reports whether v is a Go number or a numeric string.
func IsNumeric(v any) bool {
	x := classify(v)
	switch x.class {
	case classInt, classFloat:
		return true
	case classString:
		_, ok := parseNumeric(x.s)
		return ok
	}
	return false
}

// ToFloat converts v to a float64 the way PHP's (float) cast does: strings
// use their leading numeric prefix, bools become 0 or 1, arrays 0 when
// empty and 1 otherwise, nil 0.
func ToFloat(v any) float64 {
	x := classify(v)
	switch x.class {
	case classNull:
		return 0
	case classArray, classObject:
		if x.truthy() {
			return 1
		}
		return 0
	}
	return x.number().float()
}

// ToString converts v to a string the way PHP's (string) cast does: nil and
// false become "", true "1", floats use up to 14 significant digits, arrays
// "Array". Other values use fmt.Stringer or fmt.Sprint.
func ToString(v any) string {
	x := classify(v)
	switch x.class {
	case classNull:
		return ""
	case classBool:
		if x.b {
			return "1"
		}
		return ""
	case classInt:
		return strconv.FormatInt(x.i, 10)
	case classFloat:
		return formatFloat(x.f)
	case classString:
		return x.s
	case classArray:
		if s, ok := stringer(x.raw); ok {
			return s
		}
		return "Array"
	}
	if s, ok := stringer(x.raw); ok {
		return s
	}
	return fmt.Sprint(x.raw)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'G', 14, 64)
}

func stringer(v any) (string, bool) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}
