package sphere

import "errors"

var (
	// ErrInvalidParameter is returned when p, q or r is non-finite or <= 1.
	ErrInvalidParameter = errors.New("sphere: invalid (p,q,r) parameter")

	// ErrNotSpherical is returned when 1/p+1/q+1/r does not exceed 1.
	ErrNotSpherical = errors.New("sphere: (p,q,r) is not spherical")
)
