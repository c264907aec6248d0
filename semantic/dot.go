package semantic

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// These methods read, write and test values in nested mappings using
// dot-separated key paths:
//
//	m.Lookup("user.address.city")  → "London", true
//	m.Put("user.age", semantic.Int(30))
//	m.HasPath("user.name")         → true
//	m.Forget("user.address")
//
// Paths only descend through mappings; a sequence or scalar in the middle of
// a path ends the walk. Unlike Attr, these methods never copy: Put and Forget
// change the nested mappings in place.
// ─────────────────────────────────────────────────────────────────────────────

// Lookup returns the value at the dot-notation path.
func (m *Mapping) Lookup(path string) (Value, bool) {
	segments := strings.Split(path, ".")
	current := m
	for i, seg := range segments {
		v, ok := current.entries[seg]
		if !ok {
			return Null(), false
		}
		if i == len(segments)-1 {
			return v, true
		}
		nested, ok := v.AsMapping()
		if !ok {
			return Null(), false
		}
		current = nested
	}
	return Null(), false
}

// Put writes v at the dot-notation path, creating intermediate mappings as
// needed. A non-mapping value in the way is replaced by a new mapping.
func (m *Mapping) Put(path string, v Value) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m.Set(path, v)
		return
	}
	child, ok := m.entries[seg].AsMapping()
	if !ok {
		child = NewMapping()
		m.Set(seg, Map(child))
	}
	child.Put(rest, v)
}

// HasPath reports whether the dot-notation path exists.
func (m *Mapping) HasPath(path string) bool {
	_, ok := m.Lookup(path)
	return ok
}

// Forget removes the value at the dot-notation path and reports whether it
// was present. Intermediate mappings are left in place, even when empty.
func (m *Mapping) Forget(path string) bool {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		return m.Delete(path)
	}
	child, ok := m.entries[seg].AsMapping()
	if !ok {
		return false
	}
	return child.Forget(rest)
}

// Dot flattens nested mappings into a single-level Mapping whose keys are
// dot-notation paths, in depth-first insertion order. Empty nested mappings
// and non-mapping values are kept as leaves.
//
//	{"a": {"b": 1}, "c": 2}.Dot() → {"a.b": 1, "c": 2}
func (m *Mapping) Dot() *Mapping {
	out := NewMapping()
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m *Mapping, out *Mapping) {
	for _, k := range m.keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		v := m.entries[k]
		if nested, ok := v.AsMapping(); ok && nested.Len() > 0 {
			dotFlatten(key, nested, out)
			continue
		}
		out.Set(key, v)
	}
}

// Undot expands a flat dot-notation Mapping back into nested mappings.
//
//	Undot({"a.b": 1, "a.c": 2}) → {"a": {"b": 1, "c": 2}}
func Undot(flat *Mapping) *Mapping {
	out := NewMapping()
	for _, k := range flat.keys {
		out.Put(k, flat.entries[k])
	}
	return out
}
