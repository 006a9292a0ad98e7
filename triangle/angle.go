package triangle

import (
	"math"

	"github.com/akmonengine/kaleido/boundary"
	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// tangentAt returns the unit tangent of g at the point at, without a chosen
// direction. at is assumed to lie on g.
func tangentAt(g boundary.Geodesic, at mgl64.Vec2) mgl64.Vec2 {
	switch g := g.(type) {
	case boundary.Diameter:
		return g.Dir.Normalize()
	case boundary.GeodesicHalfPlane:
		return numeric.Perp(g.Normal).Normalize()
	case boundary.GeodesicCircle:
		return numeric.Perp(at.Sub(g.Center)).Normalize()
	}
	panic("triangle: unknown geodesic")
}

// AngleBetweenGeodesics returns the crossing angle of a and b at their
// common point at, in [0, π/2].
func AngleBetweenGeodesics(a, b boundary.Geodesic, at mgl64.Vec2) float64 {
	ta := tangentAt(a, at)
	tb := tangentAt(b, at)
	return math.Acos(numeric.Clamp(math.Abs(ta.Dot(tb)), 0, 1))
}

// InteriorAngle returns the angle in [0, π] at vertex between the arc of a
// heading toward towardA and the arc of b heading toward towardB. Arcs are
// assumed shorter than a half circle, which holds for every geodesic segment
// inside the unit disk.
func InteriorAngle(a, b boundary.Geodesic, vertex, towardA, towardB mgl64.Vec2) float64 {
	ta := tangentAt(a, vertex)
	if ta.Dot(towardA.Sub(vertex)) < 0 {
		ta = ta.Mul(-1)
	}
	tb := tangentAt(b, vertex)
	if tb.Dot(towardB.Sub(vertex)) < 0 {
		tb = tb.Mul(-1)
	}
	return math.Acos(numeric.Clamp(ta.Dot(tb), -1, 1))
}
