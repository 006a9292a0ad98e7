// Package boundary defines the boundary representations mirrors are made of:
// circles, half-planes, unoriented geodesics of the Poincaré disk and their
// oriented counterparts. It also implements circle-circle intersection and
// the unit-disk angle helpers used by control-point editing.
package boundary

import (
	"math"
	"sort"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// Circle is a Euclidean circle. A normalized circle has a strictly positive radius.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

// Normalize makes the radius positive. It reports false for non-finite input
// or a zero radius; such circles never intersect anything.
func (c Circle) Normalize() (Circle, bool) {
	if !numeric.IsFiniteVec2(c.Center) || !numeric.IsFinite(c.Radius) {
		return Circle{}, false
	}
	r := math.Abs(c.Radius)
	if r == 0 {
		return Circle{}, false
	}
	return Circle{Center: c.Center, Radius: r}, true
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p mgl64.Vec2, tol numeric.Tolerance) bool {
	return p.Sub(c.Center).Len() <= c.Radius+tol.Eps(c.Radius)
}

// IntersectKind tags the variant of an IntersectResult.
type IntersectKind int

const (
	IntersectNone IntersectKind = iota
	IntersectTangent
	IntersectTwo
	IntersectConcentric
	IntersectCoincident
)

func (k IntersectKind) String() string {
	switch k {
	case IntersectNone:
		return "none"
	case IntersectTangent:
		return "tangent"
	case IntersectTwo:
		return "two"
	case IntersectConcentric:
		return "concentric"
	case IntersectCoincident:
		return "coincident"
	}
	return "unknown"
}

// IntersectResult is the outcome of CircleCircleIntersection.
// Points holds exactly one point for IntersectTangent, exactly two points
// sorted by (x, y) for IntersectTwo, and nothing otherwise.
type IntersectResult struct {
	Kind   IntersectKind
	Points []mgl64.Vec2
}

// CircleCircleIntersection classifies and computes the intersection of two circles.
//
// With d the distance between centers, the foot of the common chord lies at
// aLen = (r1²-r2²+d²)/(2d) from the first center and the half chord is
// h = sqrt(r1²-aLen²). The comparisons are made at scale r1+r2.
//
// Tangency is reported only when r1²-aLen² is zero or slightly negative.
// Round-off that leaves it slightly positive on nearly tangent circles gives
// IntersectTwo with two points a few 1e-9 apart around the tangent point.
func CircleCircleIntersection(a, b Circle, tol numeric.Tolerance) IntersectResult {
	a, okA := a.Normalize()
	b, okB := b.Normalize()
	if !okA || !okB {
		return IntersectResult{Kind: IntersectNone}
	}

	scale := a.Radius + b.Radius
	eps := tol.Eps(scale)

	delta := b.Center.Sub(a.Center)
	d := delta.Len()
	if d <= eps {
		if tol.Equal(a.Radius, b.Radius, scale) {
			return IntersectResult{Kind: IntersectCoincident}
		}
		return IntersectResult{Kind: IntersectConcentric}
	}

	if d > scale+eps || d < math.Abs(a.Radius-b.Radius)-eps {
		return IntersectResult{Kind: IntersectNone}
	}

	aLen := (a.Radius*a.Radius - b.Radius*b.Radius + d*d) / (2 * d)
	h := tol.SafeSqrt(a.Radius*a.Radius-aLen*aLen, scale*scale)
	if math.IsNaN(h) {
		return IntersectResult{Kind: IntersectNone}
	}

	dir := delta.Mul(1 / d)
	base := a.Center.Add(dir.Mul(aLen))
	if h == 0 {
		return IntersectResult{Kind: IntersectTangent, Points: []mgl64.Vec2{base}}
	}

	offset := numeric.Perp(dir).Mul(h)
	points := []mgl64.Vec2{base.Add(offset), base.Sub(offset)}
	sort.Slice(points, func(i, j int) bool {
		return numeric.LessXY(points[i], points[j])
	})
	return IntersectResult{Kind: IntersectTwo, Points: points}
}
