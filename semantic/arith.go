package semantic

import (
	"fmt"
	"math"
	"strings"
)

// BinaryOp combines two values. [Add], [Sub], [Mul], [Div], [FloorDiv] and
// [Mod] all satisfy it.
type BinaryOp func(a, b Value) (Value, error)

// Add returns a + b.
//
// Int+Int stays Int unless the sum leaves the int64 range, in which case it
// is computed as a Float. Any Float operand gives Float. Strings and
// sequences concatenate. Other pairings fail with [ErrUnsupportedOperand].
func Add(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		if sum, ok := addInt(a.i, b.i); ok {
			return Int(sum), nil
		}
		return Float(float64(a.i) + float64(b.i)), nil
	case a.IsNumeric() && b.IsNumeric():
		x, y := floats(a, b)
		return Float(x + y), nil
	case a.kind == KindString && b.kind == KindString:
		return String(a.s + b.s), nil
	case a.kind == KindSequence && b.kind == KindSequence:
		items := make([]Value, 0, a.seq.Len()+b.seq.Len())
		items = append(items, a.seq.items...)
		items = append(items, b.seq.items...)
		return Seq(&Sequence{items: items}), nil
	}
	return Null(), operandError("+", a, b)
}

// Sub returns a - b for numeric operands. Like [Add], an Int result that
// would overflow becomes a Float.
func Sub(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		if diff, ok := subInt(a.i, b.i); ok {
			return Int(diff), nil
		}
		return Float(float64(a.i) - float64(b.i)), nil
	case a.IsNumeric() && b.IsNumeric():
		x, y := floats(a, b)
		return Float(x - y), nil
	}
	return Null(), operandError("-", a, b)
}

// Mul returns a * b.
//
// An Int product that would overflow becomes a Float. Besides numbers, a
// string or sequence multiplied by an Int is repeated that many times; a
// count below one gives an empty result. A repetition longer than
// [MaxRepeatLen] bytes or elements fails with [ErrResultTooLarge].
func Mul(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		if prod, ok := mulInt(a.i, b.i); ok {
			return Int(prod), nil
		}
		return Float(float64(a.i) * float64(b.i)), nil
	case a.IsNumeric() && b.IsNumeric():
		x, y := floats(a, b)
		return Float(x * y), nil
	case a.kind == KindString && b.kind == KindInt:
		return repeatString(a.s, b.i)
	case a.kind == KindInt && b.kind == KindString:
		return repeatString(b.s, a.i)
	case a.kind == KindSequence && b.kind == KindInt:
		return repeatSeq(a.seq, b.i)
	case a.kind == KindInt && b.kind == KindSequence:
		return repeatSeq(b.seq, a.i)
	}
	return Null(), operandError("*", a, b)
}

// MaxRepeatLen bounds the length of a string (in bytes) or a sequence (in
// elements) built by repetition in [Mul].
const MaxRepeatLen = 1 << 28

// repeatCount validates a repetition of size elements count times and
// returns the count as an int, clamped at zero.
func repeatCount(size int, count int64) (int, error) {
	if count <= 0 || size == 0 {
		return 0, nil
	}
	if count > int64(MaxRepeatLen/size) {
		return 0, fmt.Errorf("%w: %d * %d exceeds %d", ErrResultTooLarge, size, count, MaxRepeatLen)
	}
	return int(count), nil
}

func repeatString(s string, count int64) (Value, error) {
	n, err := repeatCount(len(s), count)
	if err != nil {
		return Null(), err
	}
	return String(strings.Repeat(s, n)), nil
}

func repeatSeq(s *Sequence, count int64) (Value, error) {
	n, err := repeatCount(s.Len(), count)
	if err != nil {
		return Null(), err
	}
	return Seq(s.repeat(n)), nil
}

// Div returns a / b. The quotient is always a Float.
func Div(a, b Value) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Null(), operandError("/", a, b)
	}
	x, y := floats(a, b)
	if y == 0 {
		return Null(), fmt.Errorf("%w: %s / %s", ErrDivisionByZero, a, b)
	}
	return Float(x / y), nil
}

// FloorDiv returns a // b, rounding toward negative infinity. Two Ints give
// an Int; otherwise the result is a Float.
func FloorDiv(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		if b.i == 0 {
			return Null(), fmt.Errorf("%w: %s // %s", ErrDivisionByZero, a, b)
		}
		if a.i == math.MinInt64 && b.i == -1 {
			return Float(-float64(math.MinInt64)), nil
		}
		q := a.i / b.i
		if a.i%b.i != 0 && (a.i < 0) != (b.i < 0) {
			q--
		}
		return Int(q), nil
	case a.IsNumeric() && b.IsNumeric():
		x, y := floats(a, b)
		if y == 0 {
			return Null(), fmt.Errorf("%w: %s // %s", ErrDivisionByZero, a, b)
		}
		return Float(math.Floor(x / y)), nil
	}
	return Null(), operandError("//", a, b)
}

// Mod returns a % b. The remainder takes the sign of the divisor.
func Mod(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		if b.i == 0 {
			return Null(), fmt.Errorf("%w: %s %% %s", ErrDivisionByZero, a, b)
		}
		r := a.i % b.i
		if r != 0 && (r < 0) != (b.i < 0) {
			r += b.i
		}
		return Int(r), nil
	case a.IsNumeric() && b.IsNumeric():
		x, y := floats(a, b)
		if y == 0 {
			return Null(), fmt.Errorf("%w: %s %% %s", ErrDivisionByZero, a, b)
		}
		r := math.Mod(x, y)
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return Float(r), nil
	}
	return Null(), operandError("%", a, b)
}

func addInt(x, y int64) (int64, bool) {
	sum := x + y
	if (x > 0 && y > 0 && sum < 0) || (x < 0 && y < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func subInt(x, y int64) (int64, bool) {
	diff := x - y
	if (y > 0 && diff > x) || (y < 0 && diff < x) {
		return 0, false
	}
	return diff, true
}

func mulInt(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	prod := x * y
	if prod/y != x {
		return 0, false
	}
	return prod, true
}

func floats(a, b Value) (float64, float64) {
	x, _ := a.AsFloat()
	y, _ := b.AsFloat()
	return x, y
}

func operandError(op string, a, b Value) error {
	return fmt.Errorf("%w: %s %s %s", ErrUnsupportedOperand, a.kind, op, b.kind)
}
