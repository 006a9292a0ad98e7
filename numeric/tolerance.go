// Package numeric holds the scalar and vector helpers shared by every other
// package of the kernel: the scale-aware tolerance model, a square root that
// absorbs round-off, angle normalization and clamping.
//
// Coordinates in the kernel range from roughly 1e-3 (deep tiles near the disk
// boundary) to 1 (the unit disk itself), so a fixed epsilon is either too
// loose for small features or too tight for large ones. Every comparison goes
// through a Tolerance evaluated at the scale of the problem instead.
package numeric

import "math"

// Tolerance is an absolute/relative epsilon pair.
// The effective epsilon at scale s is Abs + Rel*max(1, |s|).
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance returns the tolerance used when a caller does not supply one.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: 1e-9, Rel: 1e-9}
}

// Eps returns the effective epsilon at the given problem scale.
func (t Tolerance) Eps(scale float64) float64 {
	return t.Abs + t.Rel*math.Max(1, math.Abs(scale))
}

// Equal reports whether a and b differ by at most Eps(scale).
func (t Tolerance) Equal(a, b, scale float64) bool {
	return math.Abs(a-b) <= t.Eps(scale)
}

// IsZero reports whether |x| <= Eps(scale).
func (t Tolerance) IsZero(x, scale float64) bool {
	return math.Abs(x) <= t.Eps(scale)
}

// SafeSqrt returns sqrt(x) for x >= 0, 0 for slightly negative x (within
// Eps(scale)) and NaN for anything more negative. NaN means "numerically
// outside": callers treat it as the absence of a solution.
func (t Tolerance) SafeSqrt(x, scale float64) float64 {
	if x >= 0 {
		return math.Sqrt(x)
	}
	if x >= -t.Eps(scale) {
		return 0
	}
	return math.NaN()
}
