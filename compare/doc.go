// Package compare implements the loose and strict comparison rules used by
// collections, modelled on PHP 8 comparison semantics.
//
// # Loose comparison
//
// [Loose] is a three-way comparison ("spaceship"). Operands are first
// classified as null, bool, number (any Go integer or float kind), string
// (any Go string kind), array (*arr.Map, Go slices, arrays and maps, or a
// [contracts.Arrayable]) or object (anything else). The first matching row
// of the table decides:
//
//	left      right     rule
//	null      string    null becomes ""; compared as strings
//	bool/null anything  both sides converted to bool; false < true
//	string    string    numerically if both are numeric, else byte-wise
//	number    string    numerically if the string is numeric, else the
//	                    number is converted to a string and compared byte-wise
//	number    number    numerically; int against int is exact
//	array     array     fewer elements is smaller; otherwise each key of the
//	                    left side is looked up in the right side and values
//	                    compared loosely; a missing key is uncomparable
//	array     anything  the array is greater
//	object    string    compared as strings when the object is a fmt.Stringer
//	object    object    equal if == or reflect.DeepEqual, else uncomparable
//	object    anything  the object is greater
//
// Uncomparable operands compare as 1 in either direction, so neither < nor
// > holds between them and they are never equal.
//
// A string is numeric when it matches
//
//	^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$
//
// so " 1", "1 ", "1e3" and ".5" are numeric while "0x1A", "1_000" and ""
// are not. Some consequences:
//
//	0 == "a"      false   ("0" vs "a" as strings)
//	"1" == "01"   true
//	"10" == "1e1" true
//	100 == "1e2"  true
//	null == 0     true
//	null == "0"   false
//	"abc" == 0    false
//	[] == false   true
//
// # Strict comparison
//
// [StrictEqual] requires the same kind of value: all Go integer kinds are
// one type, all float kinds another, so 1 and 1.0 differ, as do 0 and "0".
// Arrays must hold the same keys in the same order with strictly equal
// values. Pointers compare by identity.
//
// # Truthiness
//
// [Truthy] follows PHP's boolean conversion: nil, false, 0, 0.0, "", "0"
// and empty arrays are false. Values with an IsEmpty() bool method, such as
// collections, are false when empty.
package compare
