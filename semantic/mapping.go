package semantic

import (
	"fmt"
	"slices"
	"strings"
)

// mappingTypeName is the container name used in attribute errors.
const mappingTypeName = "Mapping"

// Mapping is an insertion-ordered container from string keys to [Value].
//
// Keys iterate in the order they were first set; overwriting a key keeps its
// position. A mapping stored inside another mapping or a sequence is held
// by reference (see [Value]).
//
// # Attribute-style access
//
// [Mapping.Attr] and [Mapping.SetAttr] give property-style access:
//
//	m := semantic.MappingOf(semantic.E("user", map[string]any{"name": "Alice"}))
//	user, _ := m.Attr("user")
//	name, _ := user.AsMapping()
//
// Attr on a mapping-valued key returns a shallow copy of the nested mapping.
// Adding or removing keys on the copy does not change the parent, but any
// mapping or sequence one level further down is the same object in both.
//
// Use [Mapping.Get] when the stored value itself is wanted, without the copy.
//
// # Structural operations
//
// [Mapping.Transform] and [Mapping.Merge] return a *new* Mapping and never
// modify their operands.
//
// A Mapping is not safe for concurrent mutation.
type Mapping struct {
	keys    []string
	entries map[string]Value
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{keys: []string{}, entries: make(map[string]Value)}
}

// MappingOf creates a Mapping from entries in order. A repeated key
// overwrites the earlier value and keeps the earlier position.
func MappingOf(entries ...Entry) *Mapping {
	m := &Mapping{
		keys:    make([]string, 0, len(entries)),
		entries: make(map[string]Value, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string { return slices.Clone(m.keys) }

// Entries returns the key/value pairs in insertion order.
func (m *Mapping) Entries() []Entry {
	out := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry{Key: k, Value: m.entries[k]}
	}
	return out
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Get returns the value stored at key as is, together with a presence flag.
// Nested mappings and sequences are returned by reference, not copied.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Set stores v at key, overwriting any previous value.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Mapping) Delete(key string) bool {
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Copy returns a shallow copy: a new key table holding the same values.
func (m *Mapping) Copy() *Mapping {
	out := &Mapping{
		keys:    slices.Clone(m.keys),
		entries: make(map[string]Value, len(m.entries)),
	}
	for k, v := range m.entries {
		out.entries[k] = v
	}
	return out
}

// Each calls fn(key, value) for every entry in insertion order.
func (m *Mapping) Each(fn func(string, Value)) {
	for _, k := range m.keys {
		fn(k, m.entries[k])
	}
}

// Interface converts the mapping to a map[string]any of plain Go values.
func (m *Mapping) Interface() any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.entries[k].Interface()
	}
	return out
}

// Equal reports whether both mappings have the same keys with [Equal]
// values. Key order is not compared.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || len(m.keys) != len(other.keys) {
		return false
	}
	for k, v := range m.entries {
		ov, ok := other.entries[k]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}

// String returns an ordered JSON representation of the mapping.
// It implements [fmt.Stringer].
func (m *Mapping) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		parts := make([]string, len(m.keys))
		for i, k := range m.keys {
			parts[i] = Entry{Key: k, Value: m.entries[k]}.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Attribute-style access
// ─────────────────────────────────────────────────────────────────────────────

// Attr returns the value at key, attribute style.
//
// A mapping value comes back as a new Mapping over a shallow copy of the
// stored one. Strings and every other kind come back unchanged. A missing
// key fails with [ErrAttributeNotFound].
func (m *Mapping) Attr(key string) (Value, error) {
	v, ok := m.entries[key]
	if !ok {
		return Null(), fmt.Errorf("%w: '%s' object has no attribute %q",
			ErrAttributeNotFound, mappingTypeName, key)
	}
	if v.kind == KindMapping {
		return Map(v.m.Copy()), nil
	}
	return v, nil
}

// SetAttr stores v at key, attribute style. It never fails and performs no
// validation or conversion.
func (m *Mapping) SetAttr(key string, v Value) { m.Set(key, v) }

// ─────────────────────────────────────────────────────────────────────────────
// Transform
// ─────────────────────────────────────────────────────────────────────────────

// TransformFunc maps one value to another. It must handle every kind it can
// be given; its errors are returned by [Mapping.Transform] unchanged.
type TransformFunc func(Value) (Value, error)

// TransformOption configures [Mapping.Transform].
type TransformOption func(*transformConfig)

type transformConfig struct {
	recursive bool
	include   map[string]struct{}
	exclude   map[string]struct{}
}

// Recursive controls whether Transform descends into nested mappings and
// into sequences. It is on by default.
func Recursive(on bool) TransformOption {
	return func(c *transformConfig) { c.recursive = on }
}

// IncludeKeys limits the transformation to the given keys at every level.
// Other keys are copied unchanged. Calling it with no keys includes nothing.
func IncludeKeys(keys ...string) TransformOption {
	return func(c *transformConfig) { c.include = keySet(keys) }
}

// ExcludeKeys copies the given keys unchanged at every level. Exclusion is
// checked before inclusion.
func ExcludeKeys(keys ...string) TransformOption {
	return func(c *transformConfig) { c.exclude = keySet(keys) }
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Transform returns a new Mapping with fn applied to the values, keys kept in
// order. For each key:
//
//  1. excluded keys are copied unchanged;
//  2. when an include set is given, keys outside it are copied unchanged;
//  3. with recursion on, a mapping value is transformed with the same options;
//  4. with recursion on, a sequence value becomes a new sequence where
//     mapping elements are transformed recursively and every other element,
//     nested sequences included, is passed to fn;
//  5. anything else is passed to fn.
//
// The first error from fn is returned as is and no mapping is produced.
//
//	doubled, err := m.Transform(func(v semantic.Value) (semantic.Value, error) {
//	    return semantic.Mul(v, semantic.Int(2))
//	}, semantic.ExcludeKeys("id"))
func (m *Mapping) Transform(fn TransformFunc, opts ...TransformOption) (*Mapping, error) {
	cfg := transformConfig{recursive: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return m.transform(fn, &cfg)
}

func (m *Mapping) transform(fn TransformFunc, cfg *transformConfig) (*Mapping, error) {
	out := &Mapping{
		keys:    make([]string, 0, len(m.keys)),
		entries: make(map[string]Value, len(m.keys)),
	}
	for _, k := range m.keys {
		v, err := cfg.apply(k, m.entries[k], fn)
		if err != nil {
			return nil, err
		}
		out.Set(k, v)
	}
	return out, nil
}

func (c *transformConfig) apply(key string, v Value, fn TransformFunc) (Value, error) {
	if _, skip := c.exclude[key]; skip {
		return v, nil
	}
	if c.include != nil {
		if _, ok := c.include[key]; !ok {
			return v, nil
		}
	}
	if !c.recursive {
		return fn(v)
	}
	switch v.kind {
	case KindMapping:
		t, err := v.m.transform(fn, c)
		if err != nil {
			return Null(), err
		}
		return Map(t), nil
	case KindSequence:
		items := make([]Value, len(v.seq.items))
		for i, item := range v.seq.items {
			if item.kind == KindMapping {
				t, err := item.m.transform(fn, c)
				if err != nil {
					return Null(), err
				}
				items[i] = Map(t)
				continue
			}
			out, err := fn(item)
			if err != nil {
				return Null(), err
			}
			items[i] = out
		}
		return Seq(&Sequence{items: items}), nil
	default:
		return fn(v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge
// ─────────────────────────────────────────────────────────────────────────────

// Resolver picks the merged value for a key present in both operands of
// [Mapping.Merge] when the two values are not both mappings. Its errors are
// returned by Merge unchanged.
type Resolver func(key string, self, other Value) (Value, error)

// Merge returns a deep merge of other into a copy of m.
//
// The result starts with m's keys in m's order. Each key of other, in
// other's order, is then folded in:
//
//   - a key missing from the result is appended (a mapping value is added
//     as a shallow copy);
//   - when both values are mappings they are merged recursively with the
//     same resolver;
//   - otherwise resolver(key, mine, theirs) decides, or other's value wins
//     when resolver is nil. The key keeps its position.
//
// Neither m nor other is modified.
func (m *Mapping) Merge(other *Mapping, resolver Resolver) (*Mapping, error) {
	out := m.Copy()
	if other == nil {
		return out, nil
	}
	for _, k := range other.keys {
		theirs := other.entries[k]
		mine, ok := out.entries[k]
		if !ok {
			if theirs.kind == KindMapping {
				theirs = Map(theirs.m.Copy())
			}
			out.Set(k, theirs)
			continue
		}
		switch {
		case mine.kind == KindMapping && theirs.kind == KindMapping:
			merged, err := mine.m.Merge(theirs.m, resolver)
			if err != nil {
				return nil, err
			}
			out.entries[k] = Map(merged)
		case resolver != nil:
			v, err := resolver(k, mine, theirs)
			if err != nil {
				return nil, err
			}
			out.entries[k] = v
		default:
			out.entries[k] = theirs
		}
	}
	return out, nil
}
