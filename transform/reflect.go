package transform

import (
	"github.com/akmonengine/kaleido/boundary"
	"github.com/go-gl/mathgl/mgl64"
)

// ReflectAcrossGeodesic mirrors p across g: a line reflection for diameters
// and straight half-plane mirrors, an inversion for circle geodesics.
func ReflectAcrossGeodesic(g boundary.Geodesic, p mgl64.Vec2) mgl64.Vec2 {
	switch g := g.(type) {
	case boundary.Diameter:
		// 2(p·d)d - p
		return g.Dir.Mul(2 * p.Dot(g.Dir)).Sub(p)
	case boundary.GeodesicHalfPlane:
		return p.Sub(g.Normal.Mul(2 * (g.Normal.Dot(p) + g.Offset)))
	case boundary.GeodesicCircle:
		return InvertInCircle(p, g.Circle())
	}
	panic("transform: unknown geodesic")
}

// GeodesicReflector returns the reflection across g as a point map.
func GeodesicReflector(g boundary.Geodesic) func(mgl64.Vec2) mgl64.Vec2 {
	return func(p mgl64.Vec2) mgl64.Vec2 {
		return ReflectAcrossGeodesic(g, p)
	}
}

// HalfPlaneReflector returns the reflection across a Euclidean mirror.
func HalfPlaneReflector(h boundary.HalfPlane) func(mgl64.Vec2) mgl64.Vec2 {
	return h.Reflect
}
