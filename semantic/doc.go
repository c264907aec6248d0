// Package semantic provides two dynamic containers with convenience
// semantics on top of plain maps and slices: an insertion-ordered [Mapping]
// and a [Sequence] with element-wise arithmetic, stepped slicing, basic
// statistics and filtering.
//
// # Values
//
// Both containers hold [Value], a closed variant over null, bool, int,
// float, string, sequence and mapping. Build values with the kind
// constructors or convert plain Go data with [From]:
//
//	v := semantic.Int(3)
//	m, err := semantic.MappingFrom(map[string]any{"a": 1, "b": []any{2, 3}})
//
// Nested mappings and sequences are held by reference. Copying a Value that
// wraps one shares the container.
//
// # Mapping
//
// Keys iterate in insertion order. [Mapping.Attr] reads a key attribute
// style and hands back a shallow copy of a nested mapping:
//
//	cfg := semantic.MappingOf(semantic.E("db", map[string]any{"host": "localhost"}))
//	db, _ := cfg.Attr("db")
//
// [Mapping.Transform] applies a function to values, recursing into nested
// mappings and sequences, and [Mapping.Merge] deep-merges two mappings with
// an optional conflict [Resolver]. Both return new mappings.
//
// Dot paths reach into nested mappings without copying:
//
//	cfg.Lookup("db.host") // → "localhost", true
//
// # Sequence
//
//	a := semantic.Numbers(1, 2, 3)
//	b := semantic.Numbers(10, 20)
//	sum, _ := a.Add(b)                                // [11,22]
//	odd, _ := a.Slice(semantic.StepSpan(0, 3, 2))     // [1,3]
//	big, _ := a.WhereOp(semantic.OpGt, semantic.Int(1)) // [2,3]
//	med, _ := a.Median()                              // 2
//
// Arithmetic between sequences of different lengths stops at the shorter
// one.
//
// # Encoding
//
// Mappings and sequences implement json.Marshaler, json.Unmarshaler,
// yaml.Marshaler and yaml.Unmarshaler. Key order survives a round trip, and
// so does the Int/Float distinction. [Value.Digest] hashes a canonical form
// that ignores key order.
//
// # Registry
//
// Named transforms and resolvers can be registered at runtime with
// [RegisterTransform] and [RegisterResolver] and fetched by name, which is
// how the semantic command line tool selects them.
//
// # Errors
//
// Failures are reported with the sentinel errors in errors.go, wrapped with
// context. Match them with [errors.Is].
package semantic
