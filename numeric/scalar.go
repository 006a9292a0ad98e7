package numeric

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s1"
)

const TwoPi = 2 * math.Pi

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsFiniteVec2 reports whether both components of v are finite.
func IsFiniteVec2(v mgl64.Vec2) bool {
	return IsFinite(v[0]) && IsFinite(v[1])
}

// Clamp restricts x to [lo, hi]. NaN clamps to lo.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return mgl64.Clamp(x, lo, hi)
}

// WrapAngle maps theta into (-π, π].
func WrapAngle(theta float64) float64 {
	return s1.Angle(theta).Normalized().Radians()
}

// NormalizeAngle maps theta into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	a := WrapAngle(theta)
	if a < 0 {
		a += TwoPi
	}
	// a == 2π can only come from round-off of a tiny negative angle
	if a >= TwoPi {
		a = 0
	}
	return a
}

// Perp rotates v by +90° (counter-clockwise).
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v[1], v[0]}
}

// PerpCW rotates v by -90° (clockwise).
func PerpCW(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v[1], -v[0]}
}

// Cross2 is the z component of the 3D cross product of a and b.
func Cross2(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// SafeNormalize returns v/|v|, or fallback when |v| is within tolerance of
// zero or v is not finite. It never returns NaN.
func SafeNormalize(v, fallback mgl64.Vec2, tol Tolerance) mgl64.Vec2 {
	if !IsFiniteVec2(v) {
		return fallback
	}
	l := v.Len()
	if l <= tol.Eps(1) {
		return fallback
	}
	return v.Mul(1 / l)
}

// Rotate rotates v by theta radians around the origin.
func Rotate(v mgl64.Vec2, theta float64) mgl64.Vec2 {
	return mgl64.Rotate2D(theta).Mul2x1(v)
}

// LessXY orders points by x, then y.
func LessXY(a, b mgl64.Vec2) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
