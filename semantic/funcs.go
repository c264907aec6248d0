package semantic

// This file contains package-level generic helpers. Go generics do not allow
// methods to introduce type parameters, so typed constructors live here:
//
//	nums := semantic.Numbers(1, 2, 3)
//	pct  := semantic.Numbers(0.25, 0.5)

// Number is the set of Go numeric types accepted by [Numbers].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// Numbers builds a Sequence from Go numbers. Integer types become Int
// elements and floating-point types become Float elements.
//
//	semantic.Numbers(1, 2, 3)       // [1,2,3]
//	semantic.Numbers(1.5, 2.5)      // [1.5,2.5]
func Numbers[T Number](xs ...T) *Sequence {
	// Integer division truncates, so this is only non-zero for float types.
	isFloat := T(1)/2 != 0
	out := make([]Value, len(xs))
	for i, x := range xs {
		if isFloat {
			out[i] = Float(float64(x))
		} else {
			out[i] = Int(int64(x))
		}
	}
	return &Sequence{items: out}
}

// Strings builds a Sequence of String elements.
func Strings(xs ...string) *Sequence {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = String(x)
	}
	return &Sequence{items: out}
}

// ZipWith combines a and b element by element with op.
// It stops at the shorter of the two sequences; extra elements of the
// longer one are dropped. The first error from op is returned.
//
//	semantic.ZipWith(semantic.Numbers(1, 2, 3), semantic.Numbers(10, 20), semantic.Add)
//	// → [11,22]
func ZipWith(a, b *Sequence, op BinaryOp) (*Sequence, error) {
	n := min(len(a.items), len(b.items))
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		v, err := op(a.items[i], b.items[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &Sequence{items: out}, nil
}

// MapValues applies fn to every element and returns a new Sequence.
// The first error from fn is returned.
func MapValues(s *Sequence, fn TransformFunc) (*Sequence, error) {
	out := make([]Value, len(s.items))
	for i, item := range s.items {
		v, err := fn(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &Sequence{items: out}, nil
}
