package semantic

import "errors"

// Sentinel errors returned by Mapping, Sequence and Value operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := m.Attr("missing")
//	if errors.Is(err, semantic.ErrAttributeNotFound) {
//	    // key is not present
//	}
var (
	// ErrAttributeNotFound is returned by [Mapping.Attr] when the key is not
	// present. The wrapped message names the container type and the key.
	ErrAttributeNotFound = errors.New("semantic: attribute not found")

	// ErrEmptyCollection is returned when a statistic requires at least one
	// element but the sequence is empty.
	ErrEmptyCollection = errors.New("semantic: operation on empty collection")

	// ErrInvalidFilterArguments is returned by [Sequence.Where] when the
	// filter is neither predicate-only nor operator-and-value.
	ErrInvalidFilterArguments = errors.New("semantic: provide either a predicate or an operator and value")

	// ErrUnsupportedOperator is returned when a comparison operator is not one
	// of ==, !=, >, <, >=, <=.
	ErrUnsupportedOperator = errors.New("semantic: unsupported operator")

	// ErrIndexOutOfRange is returned when an index falls outside the sequence.
	ErrIndexOutOfRange = errors.New("semantic: index out of range")

	// ErrInvalidStep is returned by [Sequence.Slice] for a step of zero or less.
	ErrInvalidStep = errors.New("semantic: slice step must be greater than 0")

	// ErrUnsupportedOperand is returned when an arithmetic operator is
	// applied to values of incompatible kinds.
	ErrUnsupportedOperand = errors.New("semantic: unsupported operand kinds")

	// ErrResultTooLarge is returned by [Mul] when repeating a string or a
	// sequence would exceed [MaxRepeatLen].
	ErrResultTooLarge = errors.New("semantic: result too large")

	// ErrDivisionByZero is returned by division, floor division and modulo
	// when the divisor is zero.
	ErrDivisionByZero = errors.New("semantic: division by zero")

	// ErrIncomparable is returned when two values have no ordering.
	ErrIncomparable = errors.New("semantic: values are not comparable")

	// ErrUnhashable is returned by [Sequence.Mode] when an element is a
	// mapping or a sequence.
	ErrUnhashable = errors.New("semantic: unhashable element")

	// ErrUnsupportedType is returned by [From] for Go values that have no
	// Value representation.
	ErrUnsupportedType = errors.New("semantic: unsupported Go type")

	// ErrInvalidDocument is returned when JSON or YAML cannot be decoded, when
	// a decoded document does not have the shape the target type requires, or
	// when a value has no JSON representation.
	ErrInvalidDocument = errors.New("semantic: invalid document")

	// ErrTransformNotFound is returned when an unregistered transform name is
	// looked up.
	ErrTransformNotFound = errors.New("semantic: transform not found")

	// ErrResolverNotFound is returned when an unregistered resolver name is
	// looked up.
	ErrResolverNotFound = errors.New("semantic: resolver not found")
)
