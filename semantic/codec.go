package semantic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes v as JSON. Mapping keys keep their insertion order and
// Floats always carry a fraction or exponent so they decode back as Floats.
// NaN and infinities fail with [ErrInvalidDocument].
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (m *Mapping) MarshalJSON() ([]byte, error) { return Map(m).MarshalJSON() }

// MarshalJSON encodes the sequence as a JSON array.
func (s *Sequence) MarshalJSON() ([]byte, error) { return Seq(s).MarshalJSON() }

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("%w: %s has no JSON representation", ErrInvalidDocument, formatFloat(v.f))
		}
		buf.WriteString(formatFloat(v.f))
	case KindString:
		writeJSONString(buf, v.s)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.seq.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, k := range v.m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := writeJSON(buf, v.m.entries[k]); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	// Marshalling a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}

// DecodeJSON decodes a JSON document into a Value, keeping object keys in
// document order. Integers that fit in int64 become Int; every other number
// becomes Float. Anything but whitespace after the first value fails with
// [ErrInvalidDocument].
func DecodeJSON(data []byte) (Value, error) {
	raw, dt, end, err := jsonparser.Get(data)
	if err != nil {
		return Null(), fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for i := end; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return Null(), fmt.Errorf("%w: unexpected data after value at offset %d", ErrInvalidDocument, i)
		}
	}
	return decodeJSONValue(raw, dt)
}

func decodeJSONValue(raw []byte, dt jsonparser.ValueType) (Value, error) {
	switch dt {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Null(), fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return Bool(b), nil
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(raw); err == nil {
			return Int(i), nil
		}
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return Null(), fmt.Errorf("%w: number %s: %v", ErrInvalidDocument, raw, err)
		}
		return Float(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Null(), fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return String(s), nil
	case jsonparser.Array:
		seq := EmptySequence()
		var inner error
		_, err := jsonparser.ArrayEach(raw, func(value []byte, dt jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}
			if err != nil {
				inner = err
				return
			}
			item, err := decodeJSONValue(value, dt)
			if err != nil {
				inner = err
				return
			}
			seq.items = append(seq.items, item)
		})
		if inner != nil {
			return Null(), inner
		}
		if err != nil {
			return Null(), fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return Seq(seq), nil
	case jsonparser.Object:
		m := NewMapping()
		err := jsonparser.ObjectEach(raw, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
			item, err := decodeJSONValue(value, dt)
			if err != nil {
				return err
			}
			m.Set(string(key), item)
			return nil
		})
		if err != nil {
			return Null(), fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		return Map(m), nil
	}
	return Null(), fmt.Errorf("%w: unexpected JSON token %s", ErrInvalidDocument, dt)
}

// UnmarshalJSON decodes any JSON value into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// UnmarshalJSON decodes a JSON object into m, replacing its contents.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.AsMapping()
	if !ok {
		return fmt.Errorf("%w: expected a JSON object, got %s", ErrInvalidDocument, v.kind)
	}
	*m = *decoded
	return nil
}

// UnmarshalJSON decodes a JSON array into s, replacing its contents.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.AsSequence()
	if !ok {
		return fmt.Errorf("%w: expected a JSON array, got %s", ErrInvalidDocument, v.kind)
	}
	*s = *decoded
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// MarshalYAML returns a *yaml.Node for v, keeping mapping key order.
func (v Value) MarshalYAML() (any, error) { return yamlNode(v), nil }

// MarshalYAML returns the mapping as an ordered YAML mapping node.
func (m *Mapping) MarshalYAML() (any, error) { return yamlNode(Map(m)), nil }

// MarshalYAML returns the sequence as a YAML sequence node.
func (s *Sequence) MarshalYAML() (any, error) { return yamlNode(Seq(s)), nil }

func yamlNode(v Value) *yaml.Node {
	scalar := func(tag, text string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
	}
	switch v.kind {
	case KindBool:
		return scalar("!!bool", strconv.FormatBool(v.b))
	case KindInt:
		return scalar("!!int", strconv.FormatInt(v.i, 10))
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			return scalar("!!float", ".nan")
		case math.IsInf(v.f, 1):
			return scalar("!!float", ".inf")
		case math.IsInf(v.f, -1):
			return scalar("!!float", "-.inf")
		}
		return scalar("!!float", formatFloat(v.f))
	case KindString:
		return scalar("!!str", v.s)
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.seq.items {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range v.m.keys {
			n.Content = append(n.Content, scalar("!!str", k), yamlNode(v.m.entries[k]))
		}
		return n
	default:
		return scalar("!!null", "null")
	}
}

// DecodeYAML decodes a YAML document into a Value, keeping mapping key order.
// An empty document decodes to null.
func DecodeYAML(data []byte) (Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Null(), fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return decodeYAMLNode(&n)
}

func decodeYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case 0:
		return Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return decodeYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return decodeYAMLNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]Value, len(n.Content))
		for i, c := range n.Content {
			item, err := decodeYAMLNode(c)
			if err != nil {
				return Null(), err
			}
			items[i] = item
		}
		return Seq(&Sequence{items: items}), nil
	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, val := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return Null(), fmt.Errorf("%w: line %d: mapping keys must be scalars", ErrInvalidDocument, k.Line)
			}
			item, err := decodeYAMLNode(val)
			if err != nil {
				return Null(), err
			}
			if k.ShortTag() == "!!merge" {
				mergeYAMLDefaults(m, item)
				continue
			}
			m.Set(k.Value, item)
		}
		return Map(m), nil
	case yaml.ScalarNode:
		return decodeYAMLScalar(n)
	}
	return Null(), fmt.Errorf("%w: line %d: unexpected YAML node kind %d", ErrInvalidDocument, n.Line, n.Kind)
}

// mergeYAMLDefaults applies a "<<" merge key: keys already set win.
func mergeYAMLDefaults(m *Mapping, src Value) {
	var sources []*Mapping
	switch src.kind {
	case KindMapping:
		sources = append(sources, src.m)
	case KindSequence:
		for _, item := range src.seq.items {
			if nested, ok := item.AsMapping(); ok {
				sources = append(sources, nested)
			}
		}
	}
	for _, s := range sources {
		for _, k := range s.keys {
			if !m.Has(k) {
				m.Set(k, s.entries[k])
			}
		}
	}
}

func decodeYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Null(), fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Null(), fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		return Float(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Null(), fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		return Float(f), nil
	default:
		return String(n.Value), nil
	}
}

// UnmarshalYAML decodes any YAML node into v.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	decoded, err := decodeYAMLNode(n)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// UnmarshalYAML decodes a YAML mapping into m, replacing its contents.
func (m *Mapping) UnmarshalYAML(n *yaml.Node) error {
	v, err := decodeYAMLNode(n)
	if err != nil {
		return err
	}
	decoded, ok := v.AsMapping()
	if !ok {
		return fmt.Errorf("%w: expected a YAML mapping, got %s", ErrInvalidDocument, v.kind)
	}
	*m = *decoded
	return nil
}

// UnmarshalYAML decodes a YAML sequence into s, replacing its contents.
func (s *Sequence) UnmarshalYAML(n *yaml.Node) error {
	v, err := decodeYAMLNode(n)
	if err != nil {
		return err
	}
	decoded, ok := v.AsSequence()
	if !ok {
		return fmt.Errorf("%w: expected a YAML sequence, got %s", ErrInvalidDocument, v.kind)
	}
	*s = *decoded
	return nil
}
