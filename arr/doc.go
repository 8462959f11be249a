// Package arr implements the ordered, PHP-style array that backs every
// collection, together with dot-notation access helpers inspired by
// Laravel's Arr facade.
//
// # Ordered arrays
//
// [Map] keeps entries in insertion order, keyed by int or string. Keys are
// normalised the way PHP normalises array keys, so "1" and 1 are the same
// key, and [Map.Append] picks the next free integer index:
//
//	m := arr.List("a", "b")  // {0: "a", 1: "b"}
//	m.Set("name", "x")       // {0: "a", 1: "b", "name": "x"}
//	m.Append("c")            // key 2
//
// A list-shaped Map encodes to a JSON array and anything else to a JSON
// object in key order. [DecodeJSON] goes the other way and keeps member
// order.
//
// # Dot-notation access
//
// [Get], [Has], [Set], [Forget], [Dot] and [Undot] address nested values
// with dot-separated paths. [Get] resolves through Maps, Go maps, slices,
// structs and values implementing [ArrayAccess] or [AttributeAccessor]:
//
//	arr.Get(m, "user.address.city")    // "London", true
//	arr.Set(m, "user.address.postcode", "EC1")
//	arr.Forget(m, "user.address")
//	flat := arr.Dot(m)                 // {"user.name": "Alice"}
package arr
