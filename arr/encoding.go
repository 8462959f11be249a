package arr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler. A list-shaped Map (see
// [Map.IsList]) encodes as a JSON array, anything else as an object whose
// members follow the Map's order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	list := m.IsList()
	if list {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		if !list {
			kb, err := json.Marshal(keyString(k))
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("arr: encoding key %v: %w", k, err)
		}
		buf.Write(vb)
	}
	if list {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a JSON array
// or object; member order is kept. Nested arrays and objects decode to *Map.
func (m *Map) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("arr: cannot unmarshal %s into Map", bytes.TrimSpace(data))
	}
	*m = *decoded
	return nil
}

// DecodeJSON decodes data like PHP's json_decode($data, true): arrays and
// objects become ordered *Map values (object keys go through
// [NormalizeKey]), integral numbers become int, other numbers float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("arr: decoding JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("arr: decoding JSON: trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		m := New()
		switch t {
		case '{':
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(kt, v)
			}
		case '[':
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Append(v)
			}
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return m, nil
	case json.Number:
		if i, err := strconv.Atoi(t.String()); err == nil {
			return i, nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}

// MarshalYAML implements yaml.Marshaler. Lists become sequences, anything
// else a mapping in the Map's order.
func (m *Map) MarshalYAML() (any, error) {
	if m.IsList() {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if m.Len() == 0 {
			node.Style = yaml.FlowStyle
		}
		for _, v := range m.All() {
			var vn yaml.Node
			if err := vn.Encode(v); err != nil {
				return nil, err
			}
			node.Content = append(node.Content, &vn)
		}
		return node, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyString(k)}
		if _, ok := k.(int); ok {
			kn.Tag = "!!int"
		}
		var vn yaml.Node
		if err := vn.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, kn, &vn)
	}
	return node, nil
}
