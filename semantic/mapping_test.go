package semantic_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-semantic-collections/semantic"
)

func double(v semantic.Value) (semantic.Value, error) {
	return semantic.Mul(v, semantic.Int(2))
}

// ─────────────────────────────────────────────────────────────────────────────
// Basics
// ─────────────────────────────────────────────────────────────────────────────

func TestMappingInsertionOrder(t *testing.T) {
	m := semantic.NewMapping()
	m.Set("b", semantic.Int(1))
	m.Set("a", semantic.Int(2))
	m.Set("b", semantic.Int(3))
	assertKeys(t, m, "b", "a")

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.True(t, semantic.Equal(semantic.Int(3), v))

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assertKeys(t, m, "a")
}

func TestMappingOfRepeatedKey(t *testing.T) {
	m := semantic.MappingOf(semantic.E("x", 1), semantic.E("y", 2), semantic.E("x", 3))
	assertKeys(t, m, "x", "y")
	assert.Equal(t, `{"x":3,"y":2}`, m.String())
}

func TestMappingEntries(t *testing.T) {
	m := semantic.MappingOf(semantic.E("a", 1), semantic.E("b", "two"))
	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b: two", entries[1].String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Attribute access
// ─────────────────────────────────────────────────────────────────────────────

func TestAttrScalar(t *testing.T) {
	m := mapOf(t, map[string]any{"name": "Alice", "age": 30})
	v, err := m.Attr("name")
	require.NoError(t, err)
	assert.True(t, semantic.Equal(semantic.String("Alice"), v))
}

func TestAttrMissing(t *testing.T) {
	m := semantic.NewMapping()
	_, err := m.Attr("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, semantic.ErrAttributeNotFound))
	assert.Contains(t, err.Error(), `'Mapping' object has no attribute "missing"`)
}

func TestAttrReturnsShallowCopy(t *testing.T) {
	m := mapOf(t, map[string]any{
		"user": map[string]any{
			"name":    "Alice",
			"address": map[string]any{"city": "London"},
		},
	})

	v, err := m.Attr("user")
	require.NoError(t, err)
	user, ok := v.AsMapping()
	require.True(t, ok)

	// Top-level changes on the copy stay on the copy.
	user.SetAttr("name", semantic.String("Bob"))
	user.Set("email", semantic.String("bob@example.com"))
	original, _ := m.Lookup("user.name")
	assert.True(t, semantic.Equal(semantic.String("Alice"), original))
	assert.False(t, m.HasPath("user.email"))

	// One level further down the mappings are shared.
	addr, err := user.Attr("address")
	require.NoError(t, err)
	shared, _ := user.Get("address")
	inner, _ := shared.AsMapping()
	inner.Set("city", semantic.String("Paris"))
	city, _ := m.Lookup("user.address.city")
	assert.True(t, semantic.Equal(semantic.String("Paris"), city))

	// But the copy Attr returned for address is detached at its own level.
	copied, _ := addr.AsMapping()
	copied.Set("zip", semantic.String("75001"))
	assert.False(t, m.HasPath("user.address.zip"))
}

func TestAttrSequenceIsShared(t *testing.T) {
	m := mapOf(t, map[string]any{"tags": []any{"a"}})
	v, err := m.Attr("tags")
	require.NoError(t, err)
	tags, _ := v.AsSequence()
	tags.Append(semantic.String("b"))
	stored, _ := m.Get("tags")
	s, _ := stored.AsSequence()
	assert.Equal(t, 2, s.Len())
}

func TestSetAttr(t *testing.T) {
	m := semantic.NewMapping()
	m.SetAttr("x", semantic.Int(1))
	m.SetAttr("x", semantic.String("one"))
	v, err := m.Attr("x")
	require.NoError(t, err)
	assert.True(t, semantic.Equal(semantic.String("one"), v))
	assertKeys(t, m, "x")
}

// ─────────────────────────────────────────────────────────────────────────────
// Transform
// ─────────────────────────────────────────────────────────────────────────────

func TestTransformRecursive(t *testing.T) {
	m := semantic.MappingOf(
		semantic.E("a", map[string]any{"b": 1}),
		semantic.E("c", []any{1, map[string]any{"d": 2}}),
	)
	got, err := m.Transform(double)
	require.NoError(t, err)

	want := map[string]any{
		"a": map[string]any{"b": int64(2)},
		"c": []any{int64(2), map[string]any{"d": int64(4)}},
	}
	if diff := cmp.Diff(want, got.Interface()); diff != "" {
		t.Fatalf("transform mismatch (-want +got):\n%s", diff)
	}
	assertKeys(t, got, "a", "c")

	// Operand untouched.
	b, _ := m.Lookup("a.b")
	assert.True(t, semantic.Equal(semantic.Int(1), b))
}

func TestTransformNonRecursive(t *testing.T) {
	m := semantic.MappingOf(semantic.E("n", 2), semantic.E("s", []any{1, 2}))
	got, err := m.Transform(double, semantic.Recursive(false))
	require.NoError(t, err)
	assert.Equal(t, `{"n":4,"s":[1,2,1,2]}`, got.String())
}

func TestTransformNestedSequenceIsPassedWhole(t *testing.T) {
	m := semantic.MappingOf(semantic.E("grid", []any{[]any{1, 2}}))
	got, err := m.Transform(double)
	require.NoError(t, err)
	assert.Equal(t, `{"grid":[[1,2,1,2]]}`, got.String())
}

func TestTransformIncludeExclude(t *testing.T) {
	m := semantic.MappingOf(
		semantic.E("a", 1),
		semantic.E("b", 2),
		semantic.E("c", map[string]any{"a": 3, "b": 4}),
	)

	got, err := m.Transform(double, semantic.ExcludeKeys("b"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":2,"c":{"a":6,"b":4}}`, got.String())

	got, err = m.Transform(double, semantic.IncludeKeys("a", "c"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":2,"c":{"a":6,"b":4}}`, got.String())

	got, err = m.Transform(double, semantic.IncludeKeys("a", "c"), semantic.ExcludeKeys("a"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":{"a":3,"b":4}}`, got.String(), "exclusion wins")

	got, err = m.Transform(double, semantic.IncludeKeys())
	require.NoError(t, err)
	assert.True(t, m.Equal(got), "an empty include set selects nothing")
}

func TestTransformError(t *testing.T) {
	m := semantic.MappingOf(semantic.E("a", 1), semantic.E("b", nil))
	got, err := m.Transform(double)
	assert.ErrorIs(t, err, semantic.ErrUnsupportedOperand)
	assert.Nil(t, got)

	boom := errors.New("boom")
	_, err = m.Transform(func(semantic.Value) (semantic.Value, error) { return semantic.Null(), boom })
	assert.Same(t, boom, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge
// ─────────────────────────────────────────────────────────────────────────────

func TestMergeRightBiased(t *testing.T) {
	a := semantic.MappingOf(semantic.E("a", 1))
	b := semantic.MappingOf(semantic.E("a", 2))
	got, err := a.Merge(b, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, got.String())
}

func TestMergeResolver(t *testing.T) {
	maxOf := func(_ string, self, other semantic.Value) (semantic.Value, error) {
		c, err := semantic.Compare(self, other)
		if err != nil || c >= 0 {
			return self, err
		}
		return other, nil
	}
	a := semantic.MappingOf(semantic.E("a", 1), semantic.E("b", 9))
	b := semantic.MappingOf(semantic.E("a", 2), semantic.E("b", 3))
	got, err := a.Merge(b, maxOf)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":9}`, got.String())
}

func TestMergeDeepAndOrdered(t *testing.T) {
	a := semantic.MappingOf(
		semantic.E("db", map[string]any{"host": "localhost", "port": 5432}),
		semantic.E("debug", false),
	)
	b := semantic.MappingOf(
		semantic.E("extra", 1),
		semantic.E("db", map[string]any{"port": 6543, "user": "admin"}),
	)
	got, err := a.Merge(b, nil)
	require.NoError(t, err)
	assert.Equal(t,
		`{"db":{"host":"localhost","port":6543,"user":"admin"},"debug":false,"extra":1}`,
		got.String())

	// Operands untouched.
	assert.Equal(t, `{"db":{"host":"localhost","port":5432},"debug":false}`, a.String())
	assert.Equal(t, `{"extra":1,"db":{"port":6543,"user":"admin"}}`, b.String())
}

func TestMergeMappingOverScalar(t *testing.T) {
	a := semantic.MappingOf(semantic.E("x", 1))
	b := semantic.MappingOf(semantic.E("x", map[string]any{"y": 2}))
	got, err := a.Merge(b, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"x":{"y":2}}`, got.String())
}

func TestMergeResolverNotCalledForNestedMappings(t *testing.T) {
	calls := 0
	r := func(_ string, _, other semantic.Value) (semantic.Value, error) {
		calls++
		return other, nil
	}
	a := mapOf(t, map[string]any{"n": map[string]any{"x": 1}})
	b := mapOf(t, map[string]any{"n": map[string]any{"x": 2}})
	_, err := a.Merge(b, r)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "only the leaf conflict reaches the resolver")
}

func TestMergeResolverError(t *testing.T) {
	boom := errors.New("boom")
	a := semantic.MappingOf(semantic.E("a", 1))
	_, err := a.Merge(a, func(string, semantic.Value, semantic.Value) (semantic.Value, error) {
		return semantic.Null(), boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestMergeInsertedMappingIsShallowCopy(t *testing.T) {
	a := semantic.NewMapping()
	b := mapOf(t, map[string]any{"n": map[string]any{"x": 1}})
	got, err := a.Merge(b, nil)
	require.NoError(t, err)
	got.Put("n.y", semantic.Int(2))
	assert.False(t, b.HasPath("n.y"))
}

func TestMergeNil(t *testing.T) {
	a := semantic.MappingOf(semantic.E("a", 1))
	got, err := a.Merge(nil, nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(got))
	assert.NotSame(t, a, got)
}
