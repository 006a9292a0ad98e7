package triangle

import "errors"

// Sentinel errors. Builders wrap them with the offending parameters; test
// with errors.Is.
var (
	// ErrInvalidParameter is returned when p, q or r is non-finite or <= 1.
	ErrInvalidParameter = errors.New("triangle: invalid (p,q,r) parameter")

	// ErrAngleSum is returned by the Euclidean builder when π/p+π/q+π/r
	// differs from π by more than the angle-sum tolerance.
	ErrAngleSum = errors.New("triangle: angle sum violates the Euclidean constraint")

	// ErrDegenerateTriangle is returned when the law of sines produces a
	// zero-area triangle.
	ErrDegenerateTriangle = errors.New("triangle: degenerate triangle")

	// ErrInvalidRange is returned by the snapping functions for an empty or
	// non-positive denominator range.
	ErrInvalidRange = errors.New("triangle: invalid denominator range")
)
