package semantic

import (
	"fmt"
	"slices"
)

// Sequence is an ordered, 0-indexed container of [Value] elements.
// Duplicates and mixed kinds are allowed.
//
// Arithmetic, slicing and filtering return a *new* Sequence and never touch
// the receiver; statistics are read-only. The only mutators are
// [Sequence.Append] and [Sequence.SetAt], which exist because sequences are
// shared by reference between the mappings that hold them.
//
// # Creating a sequence
//
//	s := semantic.Numbers(1, 2, 3, 4, 5)
//	s := semantic.Strings("a", "b")
//	s, err := semantic.SequenceOf(1, "two", 3.0, nil)
//
// # Element-wise arithmetic
//
//	sum, _ := semantic.Numbers(1, 2, 3).Add(semantic.Numbers(10, 20, 30)) // [11,22,33]
//
// Operands of different lengths are zipped: the result stops at the shorter
// one and the extra elements are dropped.
//
// A Sequence is not safe for concurrent mutation.
type Sequence struct {
	items []Value
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSequence creates a Sequence from the given values (copied).
func NewSequence(items ...Value) *Sequence {
	dst := make([]Value, len(items))
	copy(dst, items)
	return &Sequence{items: dst}
}

// EmptySequence creates a Sequence with no elements.
func EmptySequence() *Sequence {
	return &Sequence{items: []Value{}}
}

// SequenceOf converts each Go value with [From] and collects the results.
func SequenceOf(xs ...any) (*Sequence, error) {
	items := make([]Value, len(xs))
	for i, x := range xs {
		v, err := From(x)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = v
	}
	return &Sequence{items: items}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (s *Sequence) Len() int { return len(s.items) }

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence) IsEmpty() bool { return len(s.items) == 0 }

// Items returns a copy of the underlying slice.
func (s *Sequence) Items() []Value { return slices.Clone(s.items) }

// Copy returns a shallow copy: a new element slice holding the same values.
func (s *Sequence) Copy() *Sequence { return NewSequence(s.items...) }

// At returns the element at index. A negative index counts from the end.
func (s *Sequence) At(index int) (Value, error) {
	i, err := s.resolve(index)
	if err != nil {
		return Null(), err
	}
	return s.items[i], nil
}

// SetAt replaces the element at index in place. A negative index counts
// from the end.
func (s *Sequence) SetAt(index int, v Value) error {
	i, err := s.resolve(index)
	if err != nil {
		return err
	}
	s.items[i] = v
	return nil
}

// Append adds values to the end of the sequence in place.
func (s *Sequence) Append(vals ...Value) {
	s.items = append(s.items, vals...)
}

// Each calls fn(item, index) for every element.
func (s *Sequence) Each(fn func(Value, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// Interface converts the sequence to a []any of plain Go values.
func (s *Sequence) Interface() any {
	out := make([]any, len(s.items))
	for i, item := range s.items {
		out[i] = item.Interface()
	}
	return out
}

// Equal reports whether both sequences have equal elements in the same order.
func (s *Sequence) Equal(other *Sequence) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil || len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if !Equal(s.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

func (s *Sequence) resolve(index int) (int, error) {
	i := index
	if i < 0 {
		i += len(s.items)
	}
	if i < 0 || i >= len(s.items) {
		return 0, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	return i, nil
}

func (s *Sequence) repeat(n int) *Sequence {
	if n <= 0 {
		return EmptySequence()
	}
	out := make([]Value, 0, len(s.items)*n)
	for range n {
		out = append(out, s.items...)
	}
	return &Sequence{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Element-wise arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add returns s[i] + other[i] for every index both sequences share.
func (s *Sequence) Add(other *Sequence) (*Sequence, error) { return ZipWith(s, other, Add) }

// Sub returns s[i] - other[i] for every index both sequences share.
func (s *Sequence) Sub(other *Sequence) (*Sequence, error) { return ZipWith(s, other, Sub) }

// Mul returns s[i] * other[i] for every index both sequences share.
func (s *Sequence) Mul(other *Sequence) (*Sequence, error) { return ZipWith(s, other, Mul) }

// Div returns s[i] / other[i] as Floats for every index both sequences share.
func (s *Sequence) Div(other *Sequence) (*Sequence, error) { return ZipWith(s, other, Div) }

// FloorDiv returns s[i] // other[i] for every index both sequences share.
// Int operands give Int quotients.
func (s *Sequence) FloorDiv(other *Sequence) (*Sequence, error) {
	return ZipWith(s, other, FloorDiv)
}

// Mod returns s[i] % other[i] for every index both sequences share.
func (s *Sequence) Mod(other *Sequence) (*Sequence, error) { return ZipWith(s, other, Mod) }

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Span is a slice expression. A nil bound takes its default: Start 0,
// Stop the sequence length, and no step.
type Span struct {
	Start *int
	Stop  *int
	Step  *int
}

// Bound returns a pointer to i for use in a [Span].
func Bound(i int) *int { return &i }

// SpanOf returns the span start:stop.
func SpanOf(start, stop int) Span { return Span{Start: Bound(start), Stop: Bound(stop)} }

// StepSpan returns the span start:stop:step.
func StepSpan(start, stop, step int) Span {
	return Span{Start: Bound(start), Stop: Bound(stop), Step: Bound(step)}
}

// Slice returns the elements selected by sp as a new sequence.
//
// Without a step the usual rules apply: negative bounds count from the end
// and both bounds are clamped to the sequence.
//
// With a step, a cursor starts at Start and advances by Step while it is
// below both Stop and the length. Each visited index is read with
// [Sequence.At], so a negative cursor reads from the end and one below
// -Len fails with [ErrIndexOutOfRange]. Steps of zero or less fail with
// [ErrInvalidStep].
//
//	semantic.Numbers(1, 2, 3, 4, 5).Slice(semantic.StepSpan(1, 5, 2)) // [2,4]
func (s *Sequence) Slice(sp Span) (*Sequence, error) {
	n := len(s.items)
	if sp.Step == nil {
		start := clampBound(sp.Start, 0, n)
		stop := clampBound(sp.Stop, n, n)
		if start >= stop {
			return EmptySequence(), nil
		}
		return NewSequence(s.items[start:stop]...), nil
	}

	step := *sp.Step
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	cursor := 0
	if sp.Start != nil {
		cursor = *sp.Start
	}
	stop := n
	if sp.Stop != nil {
		stop = *sp.Stop
	}
	out := make([]Value, 0)
	for cursor < stop && cursor < n {
		item, err := s.At(cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
		cursor += step
	}
	return &Sequence{items: out}, nil
}

func clampBound(b *int, def, n int) int {
	if b == nil {
		return def
	}
	i := *b
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i > n {
		i = n
	}
	return i
}

// ─────────────────────────────────────────────────────────────────────────────
// Statistics
// ─────────────────────────────────────────────────────────────────────────────

// Sum folds the elements with [Add], starting from Int(0).
func (s *Sequence) Sum() (Value, error) {
	total := Int(0)
	for _, item := range s.items {
		next, err := Add(total, item)
		if err != nil {
			return Null(), err
		}
		total = next
	}
	return total, nil
}

// Mean returns the arithmetic mean of the elements, summed as float64.
// Returns [ErrEmptyCollection] for an empty sequence and
// [ErrUnsupportedOperand] when an element is not a number.
func (s *Sequence) Mean() (float64, error) {
	if len(s.items) == 0 {
		return 0, fmt.Errorf("%w: cannot calculate mean", ErrEmptyCollection)
	}
	var total float64
	for _, item := range s.items {
		f, ok := item.AsFloat()
		if !ok {
			return 0, operandError("+", Float(total), item)
		}
		total += f
	}
	return total / float64(len(s.items)), nil
}

// Median returns the middle element of a sorted copy of the sequence.
//
// For an odd length the middle element is returned unchanged, so an Int
// median stays an Int. For an even length the two central elements must be
// numbers and are averaged into a Float. The receiver is not reordered.
func (s *Sequence) Median() (Value, error) {
	n := len(s.items)
	if n == 0 {
		return Null(), fmt.Errorf("%w: cannot calculate median", ErrEmptyCollection)
	}
	sorted, err := s.sorted()
	if err != nil {
		return Null(), err
	}
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	lo, hi := sorted[n/2-1], sorted[n/2]
	x, okLo := lo.AsFloat()
	y, okHi := hi.AsFloat()
	if !okLo || !okHi {
		return Null(), operandError("+", lo, hi)
	}
	return Float(x/2 + y/2), nil
}

// Mode returns every element whose frequency equals the highest frequency,
// in the order each was first seen. Elements that are [Equal] share a count
// and the first one seen represents them.
// Returns [ErrEmptyCollection] for an empty sequence and [ErrUnhashable]
// when an element is a mapping or a sequence.
func (s *Sequence) Mode() (*Sequence, error) {
	if len(s.items) == 0 {
		return nil, fmt.Errorf("%w: cannot calculate mode", ErrEmptyCollection)
	}
	type bucket struct {
		item  Value
		count int
	}
	index := make(map[any]int, len(s.items))
	buckets := make([]bucket, 0, len(s.items))
	best := 0
	for _, item := range s.items {
		k, err := hashKey(item)
		if err != nil {
			return nil, err
		}
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, bucket{item: item})
		}
		buckets[i].count++
		best = max(best, buckets[i].count)
	}
	out := make([]Value, 0, 1)
	for _, b := range buckets {
		if b.count == best {
			out = append(out, b.item)
		}
	}
	return &Sequence{items: out}, nil
}

// sorted returns a stably sorted copy of the elements.
func (s *Sequence) sorted() ([]Value, error) {
	out := slices.Clone(s.items)
	var firstErr error
	slices.SortStableFunc(out, func(a, b Value) int {
		c, err := Compare(a, b)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return c
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Predicate reports whether an element should be kept.
type Predicate func(Value) bool

// Filter holds the arguments of [Sequence.Where]. Exactly one form is valid:
// a Predicate alone, or an Operator together with a Value.
type Filter struct {
	Predicate Predicate
	Operator  Operator
	Value     *Value
}

// ByPredicate returns a predicate-only [Filter].
func ByPredicate(p Predicate) Filter { return Filter{Predicate: p} }

// ByComparison returns an operator-and-value [Filter].
func ByComparison(op Operator, v Value) Filter { return Filter{Operator: op, Value: &v} }

// Filter returns the elements for which p returns true.
func (s *Sequence) Filter(p Predicate) *Sequence {
	out := make([]Value, 0, len(s.items))
	for _, item := range s.items {
		if p(item) {
			out = append(out, item)
		}
	}
	return &Sequence{items: out}
}

// Where returns the elements selected by f.
//
// The shape of f is checked before any element is visited: anything other
// than predicate-only or operator-and-value fails with
// [ErrInvalidFilterArguments], and an operator outside ==, !=, >, <, >=, <=
// fails with [ErrUnsupportedOperator]. Ordering errors from [CompareOp]
// are returned as is.
//
//	s.Where(semantic.ByPredicate(func(v semantic.Value) bool { ... }))
//	s.Where(semantic.ByComparison(semantic.OpGt, semantic.Int(3)))
func (s *Sequence) Where(f Filter) (*Sequence, error) {
	switch {
	case f.Predicate != nil && f.Operator == "" && f.Value == nil:
		return s.Filter(f.Predicate), nil
	case f.Predicate == nil && f.Operator != "" && f.Value != nil:
		if !f.Operator.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperator, string(f.Operator))
		}
		want := *f.Value
		out := make([]Value, 0, len(s.items))
		for _, item := range s.items {
			ok, err := CompareOp(item, f.Operator, want)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, item)
			}
		}
		return &Sequence{items: out}, nil
	}
	return nil, ErrInvalidFilterArguments
}

// WhereOp is shorthand for Where(ByComparison(op, v)).
func (s *Sequence) WhereOp(op Operator, v Value) (*Sequence, error) {
	return s.Where(ByComparison(op, v))
}
