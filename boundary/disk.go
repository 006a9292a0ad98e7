package boundary

import (
	"math"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// AngleToUnitPoint returns the point of the unit circle at angle theta.
func AngleToUnitPoint(theta float64) mgl64.Vec2 {
	s, c := math.Sincos(theta)
	return mgl64.Vec2{c, s}
}

// UnitPointToAngle returns the polar angle of p in [0, 2π). The origin maps to 0.
func UnitPointToAngle(p mgl64.Vec2) float64 {
	if p[0] == 0 && p[1] == 0 {
		return 0
	}
	return numeric.NormalizeAngle(math.Atan2(p[1], p[0]))
}

// SnapAngle rounds theta to the nearest multiple of 2π/n and returns it in
// [0, 2π). n < 1 leaves the angle unsnapped.
func SnapAngle(theta float64, n int) float64 {
	if n < 1 {
		return numeric.NormalizeAngle(theta)
	}
	step := numeric.TwoPi / float64(n)
	k := math.Round(numeric.NormalizeAngle(theta) / step)
	return numeric.NormalizeAngle(k * step)
}

// SnapUnitPoint projects p onto the unit circle and snaps its angle to one of
// n evenly spaced positions. Points at the origin snap to angle 0.
func SnapUnitPoint(p mgl64.Vec2, n int, tol numeric.Tolerance) mgl64.Vec2 {
	if p.Len() <= tol.Eps(1) {
		return AngleToUnitPoint(SnapAngle(0, n))
	}
	return AngleToUnitPoint(SnapAngle(UnitPointToAngle(p), n))
}
