package semantic

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

// Operator is a comparison operator accepted by [Sequence.Where].
type Operator string

// Supported comparison operators.
const (
	OpEq Operator = "=="
	OpNe Operator = "!="
	OpGt Operator = ">"
	OpLt Operator = "<"
	OpGe Operator = ">="
	OpLe Operator = "<="
)

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	switch op {
	case OpEq, OpNe, OpGt, OpLt, OpGe, OpLe:
		return true
	}
	return false
}

// ParseOperator validates s as an [Operator].
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperator, s)
	}
	return op, nil
}

// Equal reports whether a and b hold equal values.
//
// Ints and Floats compare by exact numeric value, so Int(1) equals
// Float(1.0) but Int(1<<53 + 1) does not equal Float(1<<53).
// Booleans only equal booleans. Sequences compare element-wise and mappings
// compare as key sets regardless of insertion order.
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		if isNaN(a) || isNaN(b) {
			return false
		}
		return compareNumbers(a, b) == 0
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindSequence:
		return a.seq.Equal(b.seq)
	case KindMapping:
		return a.m.Equal(b.m)
	}
	return false
}

// Compare orders a against b, returning -1, 0 or +1.
//
// Numbers order numerically, strings lexically and sequences
// lexicographically by element. Any other pairing fails with
// [ErrIncomparable].
func Compare(a, b Value) (int, error) {
	switch {
	case a.IsNumeric() && b.IsNumeric():
		return compareNumbers(a, b), nil
	case a.kind == KindString && b.kind == KindString:
		return strings.Compare(a.s, b.s), nil
	case a.kind == KindSequence && b.kind == KindSequence:
		n := min(a.seq.Len(), b.seq.Len())
		for i := 0; i < n; i++ {
			x, y := a.seq.items[i], b.seq.items[i]
			if Equal(x, y) {
				continue
			}
			return Compare(x, y)
		}
		return cmp.Compare(a.seq.Len(), b.seq.Len()), nil
	}
	return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, a.kind, b.kind)
}

// CompareOp evaluates a op b.
//
// Equality operators never fail. Ordering operators fail with
// [ErrIncomparable] when the kinds have no ordering; a NaN operand makes
// every ordering comparison false.
func CompareOp(a Value, op Operator, b Value) (bool, error) {
	switch op {
	case OpEq:
		return Equal(a, b), nil
	case OpNe:
		return !Equal(a, b), nil
	case OpGt, OpLt, OpGe, OpLe:
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(op))
	}
	if isNaN(a) || isNaN(b) {
		if a.IsNumeric() && b.IsNumeric() {
			return false, nil
		}
	}
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	switch op {
	case OpGt:
		return c > 0, nil
	case OpLt:
		return c < 0, nil
	case OpGe:
		return c >= 0, nil
	default:
		return c <= 0, nil
	}
}

// compareNumbers orders two numeric values. An Int and a Float are compared
// exactly rather than through float64.
func compareNumbers(a, b Value) int {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		return cmp.Compare(a.i, b.i)
	case a.kind == KindInt:
		return compareIntFloat(a.i, b.f)
	case b.kind == KindInt:
		return -compareIntFloat(b.i, a.f)
	}
	return cmp.Compare(a.f, b.f)
}

// twoTo63 is 2^63, the first float64 above the int64 range.
const twoTo63 = float64(1 << 63)

func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return cmp.Compare(float64(i), f)
	case f >= twoTo63:
		return -1
	case f < -twoTo63:
		return 1
	}
	whole := math.Trunc(f)
	if c := cmp.Compare(i, int64(whole)); c != 0 {
		return c
	}
	return cmp.Compare(whole, f)
}

func isNaN(v Value) bool { return v.kind == KindFloat && math.IsNaN(v.f) }

type nullKey struct{}

// hashKey returns a map key under which Equal scalars collide: integral
// floats share the bucket of the matching Int.
func hashKey(v Value) (any, error) {
	switch v.kind {
	case KindNull:
		return nullKey{}, nil
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.i, nil
	case KindFloat:
		if v.f == math.Trunc(v.f) && v.f >= math.MinInt64 && v.f < math.MaxInt64 {
			return int64(v.f), nil
		}
		return v.f, nil
	case KindString:
		return v.s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnhashable, v.kind)
}
