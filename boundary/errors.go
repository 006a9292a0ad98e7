package boundary

import "errors"

// Construction errors. They signal a caller contract violation, typically an
// editing UI that dragged control points into a degenerate configuration.
// Callers branch with errors.Is and either ignore the edit or revert it.
var (
	// ErrDegenerateNormal is returned when a half-plane normal or a line
	// direction has (near) zero length.
	ErrDegenerateNormal = errors.New("boundary: degenerate normal")

	// ErrCoincidentPoints is returned when two control points that must
	// define a line are within tolerance of each other.
	ErrCoincidentPoints = errors.New("boundary: coincident control points")

	// ErrNonFinite is returned for NaN or infinite inputs.
	ErrNonFinite = errors.New("boundary: non-finite input")

	// ErrDegenerateSpacing is returned when control points are requested
	// with a spacing that is not a positive finite number.
	ErrDegenerateSpacing = errors.New("boundary: degenerate control point spacing")

	// ErrDegenerateCircle is returned when an oriented circle has a zero or
	// non-finite radius.
	ErrDegenerateCircle = errors.New("boundary: degenerate circle")
)
