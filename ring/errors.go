package ring

import "errors"

// Every message is prefixed with "ring: ...". Operations wrap these sentinels
// with fmt.Errorf("%w: ...") to add context; callers match them with errors.Is.
var (
	// ErrInvalidRingDegree is returned when a ring-reduced operation is
	// given a ring degree that is not strictly positive.
	ErrInvalidRingDegree = errors.New("ring: invalid ring degree")

	// ErrDimensionMismatch indicates incompatible matrix dimensions, e.g.
	// Add on different shapes or Mul where a.Width() != b.Height().
	ErrDimensionMismatch = errors.New("ring: dimension mismatch")

	// ErrAllocation indicates that the result of an operation could not be allocated.
	ErrAllocation = errors.New("ring: allocation failure")

	// ErrDivisionByZero is returned by DivMod when the divisor is the zero polynomial.
	ErrDivisionByZero = errors.New("ring: division by zero polynomial")

	// ErrInvalidParameters is returned when a parameter literal fails validation.
	ErrInvalidParameters = errors.New("ring: invalid parameters")

	// ErrSyntax is returned by ParsePoly on malformed input.
	ErrSyntax = errors.New("ring: syntax error")
)
