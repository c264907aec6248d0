package semantic

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// From converts a Go value into a [Value].
//
// Supported inputs are nil, bool, every integer kind, float32, float64,
// string, [Value], *Mapping, *Sequence, slices and arrays of supported
// values, and maps with string keys. Go maps carry no order, so their keys
// are inserted in sorted order. Unsigned integers above math.MaxInt64 and
// any other type fail with [ErrUnsupportedType].
func From(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Mapping:
		return Map(v), nil
	case *Sequence:
		return Seq(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []Value:
		return Seq(NewSequence(v...)), nil
	case []any:
		s, err := SequenceOf(v...)
		if err != nil {
			return Null(), err
		}
		return Seq(s), nil
	case map[string]any:
		m, err := MappingFrom(v)
		if err != nil {
			return Null(), err
		}
		return Map(m), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

// MustFrom is like [From] but panics on error. Intended for literals in
// tests and examples.
func MustFrom(x any) Value {
	v, err := From(x)
	if err != nil {
		panic(err)
	}
	return v
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Null(), fmt.Errorf("%w: %d overflows int64", ErrUnsupportedType, u)
	}
	return Int(int64(u)), nil
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		items := make([]Value, rv.Len())
		for i := range items {
			item, err := From(rv.Index(i).Interface())
			if err != nil {
				return Null(), err
			}
			items[i] = item
		}
		return Seq(&Sequence{items: items}), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null(), nil
		}
		keys := make([]string, 0, rv.Len())
		byName := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
			byName[k.String()] = k
		}
		slices.Sort(keys)
		m := NewMapping()
		for _, k := range keys {
			item, err := From(rv.MapIndex(byName[k]).Interface())
			if err != nil {
				return Null(), err
			}
			m.Set(k, item)
		}
		return Map(m), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		return From(rv.Elem().Interface())
	}
	return Null(), fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

// MappingFrom builds a Mapping from a Go map, inserting keys in sorted order.
func MappingFrom(src map[string]any) (*Mapping, error) {
	m := NewMapping()
	for _, k := range slices.Sorted(maps.Keys(src)) {
		v, err := From(src[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		m.Set(k, v)
	}
	return m, nil
}

// ParseScalar interprets text the way a command-line value would be read:
// "null" is null, integers (including 0x, 0o and 0b forms) become Int,
// finite decimal numbers become Float, "true" and "false" become Bool, and
// anything else stays a String.
func ParseScalar(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "null" {
		return Null()
	}
	if i, err := cast.ToInt64E(trimmed); err == nil && trimmed != "" {
		return Int(i)
	}
	if f, err := cast.ToFloat64E(trimmed); err == nil && trimmed != "" && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Float(f)
	}
	if strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false") {
		if b, err := cast.ToBoolE(strings.ToLower(trimmed)); err == nil {
			return Bool(b)
		}
	}
	return String(s)
}
