package semantic

import "fmt"

// Entry is one key/value pair of a [Mapping], as returned by
// [Mapping.Entries] and accepted by [MappingOf].
type Entry struct {
	Key   string
	Value Value
}

// E builds an Entry, converting x with [MustFrom]. It panics on Go values
// that have no Value representation, so it is meant for literals.
//
//	m := semantic.MappingOf(semantic.E("a", 1), semantic.E("b", "two"))
func E(key string, x any) Entry {
	return Entry{Key: key, Value: MustFrom(x)}
}

// String returns a human-readable representation: "key: value".
func (e Entry) String() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Value)
}
