package collections

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-laravel-collections/arr"
	"github.com/hasbyte1/go-laravel-collections/contracts"
)

// ─────────────────────────────────────────────────────────────────────────────
// Serialization views
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns the items as an *arr.Map, replacing every
// [contracts.Arrayable] value (nested collections included) with its array
// view.
func (c *Collection) ToArray() *arr.Map {
	out := arr.New()
	for k, v := range c.items.All() {
		if a, ok := v.(contracts.Arrayable); ok && !isNilPointer(v) {
			v = a.ToArray()
		}
		out.Set(k, v)
	}
	return out
}

// JSONSerialize returns the *arr.Map that ToJSON encodes. Each value is
// replaced by its JSONSerialize view, its decoded ToJSON output or its
// ToArray view, in that order of preference.
func (c *Collection) JSONSerialize() any {
	out := arr.New()
	for k, v := range c.items.All() {
		out.Set(k, jsonView(v))
	}
	return out
}

func jsonView(v any) any {
	if v == nil || isNilPointer(v) {
		return v
	}
	switch t := v.(type) {
	case contracts.JSONSerializable:
		return t.JSONSerialize()
	case contracts.Jsonable:
		b, err := t.ToJSON()
		if err != nil {
			logger().Warn().Err(err).Msg("collections: Jsonable value failed to encode")
			return nil
		}
		decoded, err := arr.DecodeJSON(b)
		if err != nil {
			logger().Warn().Err(err).Msg("collections: Jsonable value produced invalid JSON")
			return nil
		}
		return decoded
	case contracts.Arrayable:
		return t.ToArray()
	}
	return v
}

// ToJSON encodes the [Collection.JSONSerialize] view. List-mode collections
// encode as JSON arrays, map-mode collections as objects in key order.
func (c *Collection) ToJSON() ([]byte, error) {
	return json.Marshal(c.JSONSerialize())
}

// MarshalJSON implements json.Marshaler.
func (c *Collection) MarshalJSON() ([]byte, error) { return c.ToJSON() }

// UnmarshalJSON implements json.Unmarshaler. Arrays and objects keep their
// order; nested ones become *arr.Map values.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var m arr.Map
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	c.items = &m
	return nil
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items.Values())
	}
	return string(b)
}

// ToYAML encodes the [Collection.JSONSerialize] view as YAML with two-space
// indentation, keeping key order.
func (c *Collection) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.JSONSerialize()); err != nil {
		return nil, fmt.Errorf("collections: encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("collections: encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Collection) MarshalYAML() (any, error) {
	return c.JSONSerialize(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Debugging
// ─────────────────────────────────────────────────────────────────────────────

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes a go-spew dump of the entries to stdout and returns c for
// chaining.
func (c *Collection) Dump() *Collection {
	dumper.Dump(dumpView(c.items))
	return c
}

// Sdump returns the dump [Collection.Dump] would print.
func (c *Collection) Sdump() string {
	return dumper.Sdump(dumpView(c.items))
}

// dumpView turns the mapping, and nested collections and Maps within it,
// into entry slices so the dump shows keys, order and value types.
func dumpView(m *arr.Map) []arr.Entry {
	out := make([]arr.Entry, 0, m.Len())
	for k, v := range m.All() {
		switch t := v.(type) {
		case *Collection:
			if t != nil {
				v = dumpView(t.items)
			}
		case *arr.Map:
			if t != nil {
				v = dumpView(t)
			}
		}
		out = append(out, arr.Entry{Key: k, Value: v})
	}
	return out
}
