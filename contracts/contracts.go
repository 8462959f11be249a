// Package contracts declares the capability interfaces a value can
// implement to control how collections unwrap and serialise it.
package contracts

import "github.com/hasbyte1/go-laravel-collections/arr"

// Arrayable is implemented by values that have an array view. Collections
// unwrap Arrayable items when they are constructed from them, merged with
// them or converted with ToArray.
type Arrayable interface {
	ToArray() *arr.Map
}

// Jsonable is implemented by values that render themselves as JSON text.
type Jsonable interface {
	ToJSON() ([]byte, error)
}

// JSONSerializable is implemented by values with a dedicated
// serialisation view. It is consulted only when producing JSON output.
type JSONSerializable interface {
	JSONSerialize() any
}
