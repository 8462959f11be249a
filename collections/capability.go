package collections

import (
	"iter"
	"reflect"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/contracts"
)

// Capability describes how a value is unwrapped into collection items.
type Capability int

const (
	// RawValue is a plain value; it becomes a one-element list, or its
	// exported fields when it is a struct.
	RawValue Capability = iota
	// NestedContainer is a Collection, *arr.Map, iterator, or Go slice,
	// array or map; its entries are copied.
	NestedContainer
	// ArrayableValue implements [contracts.Arrayable].
	ArrayableValue
	// JsonableValue implements [contracts.Jsonable]; its JSON is decoded.
	JsonableValue
	// JSONSerializableValue implements [contracts.JSONSerializable].
	JSONSerializableValue
)

// String returns the name of the capability.
func (c Capability) String() string {
	switch c {
	case NestedContainer:
		return "NestedContainer"
	case ArrayableValue:
		return "ArrayableValue"
	case JsonableValue:
		return "JsonableValue"
	case JSONSerializableValue:
		return "JSONSerializableValue"
	}
	return "RawValue"
}

// CapabilityOf classifies v. Containers win over the capability
// interfaces, and Arrayable wins over Jsonable, which wins over
// JSONSerializable.
func CapabilityOf(v any) Capability {
	switch v.(type) {
	case nil:
		return RawValue
	case *Collection, *arr.Map, iter.Seq2[any, any], iter.Seq[any],
		func(func(any, any) bool), func(func(any) bool):
		return NestedContainer
	case contracts.Arrayable:
		return ArrayableValue
	case contracts.Jsonable:
		return JsonableValue
	case contracts.JSONSerializable:
		return JSONSerializableValue
	}
	if arr.Accessible(v) {
		return NestedContainer
	}
	return RawValue
}

// arrayableItems returns a fresh mapping holding the entries of v, unwrapped
// one level according to its capability. nil yields an empty mapping.
func arrayableItems(v any) *arr.Map {
	if v == nil || isNilPointer(v) {
		return arr.New()
	}
	switch CapabilityOf(v) {
	case NestedContainer:
		switch t := v.(type) {
		case *Collection:
			return t.items.Clone()
		case *arr.Map:
			return t.Clone()
		case iter.Seq2[any, any]:
			return fromSeq2(t)
		case func(func(any, any) bool):
			return fromSeq2(t)
		case iter.Seq[any]:
			return fromSeq(t)
		case func(func(any) bool):
			return fromSeq(t)
		}
		m, _ := arr.Of(v)
		return m
	case ArrayableValue:
		return v.(contracts.Arrayable).ToArray().Clone()
	case JsonableValue:
		return decodeJsonable(v.(contracts.Jsonable))
	case JSONSerializableValue:
		return arrayableItems(v.(contracts.JSONSerializable).JSONSerialize())
	}
	if m, ok := arr.FromStruct(v); ok {
		return m
	}
	return arr.List(v)
}

func fromSeq2(seq iter.Seq2[any, any]) *arr.Map {
	m := arr.New()
	for k, v := range seq {
		m.Set(k, v)
	}
	return m
}

func fromSeq(seq iter.Seq[any]) *arr.Map {
	m := arr.New()
	for v := range seq {
		m.Append(v)
	}
	return m
}

func decodeJsonable(j contracts.Jsonable) *arr.Map {
	b, err := j.ToJSON()
	if err != nil {
		logger().Warn().Err(err).Msg("collections: Jsonable value failed to encode")
		return arr.New()
	}
	decoded, err := arr.DecodeJSON(b)
	if err != nil {
		logger().Warn().Err(err).Msg("collections: Jsonable value produced invalid JSON")
		return arr.New()
	}
	if m, ok := decoded.(*arr.Map); ok {
		return m
	}
	if decoded == nil {
		return arr.New()
	}
	return arr.List(decoded)
}

// arrayLike returns a read-only view of v when v is a nested container that
// operations such as Flatten and Collapse descend into: a Collection, an
// *arr.Map, or a Go slice, array or map.
func arrayLike(v any) (*arr.Map, bool) {
	if c, ok := v.(*Collection); ok {
		if c == nil {
			return nil, false
		}
		return c.items, true
	}
	return arr.Of(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
