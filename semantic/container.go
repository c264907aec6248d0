package semantic

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Container is the interface satisfied by *[Mapping] and *[Sequence].
//
// Accept Container in code that only needs to size, print, encode or hash a
// document, so that either kind of root can be passed.
type Container interface {
	fmt.Stringer
	json.Marshaler
	yaml.Marshaler

	// Len returns the number of keys or elements.
	Len() int

	// Interface converts the container to plain Go values.
	Interface() any

	// Digest returns the canonical BLAKE2b-256 sum of the container.
	Digest() [32]byte
}

var (
	_ Container = (*Mapping)(nil)
	_ Container = (*Sequence)(nil)
)

// AsContainer returns the container held by v, or false for scalars.
func (v Value) AsContainer() (Container, bool) {
	switch v.kind {
	case KindMapping:
		return v.m, true
	case KindSequence:
		return v.seq, true
	}
	return nil, false
}
