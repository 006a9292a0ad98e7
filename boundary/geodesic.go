package boundary

import (
	"math"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// Geodesic is an unoriented mirror of the Poincaré disk, as produced by the
// triangle builders. The variant set is closed: Diameter, GeodesicCircle and
// GeodesicHalfPlane. Consumers switch on the concrete type.
type Geodesic interface {
	isGeodesic()
}

// Diameter is a straight geodesic through the origin with unit direction Dir.
type Diameter struct {
	Dir mgl64.Vec2
}

// GeodesicCircle is a circle orthogonal to the unit circle: |Center|² = 1 + Radius².
type GeodesicCircle struct {
	Center mgl64.Vec2
	Radius float64
}

// GeodesicHalfPlane is the straight line normal·p + offset = 0 with a unit
// normal. It covers straight mirrors that do not pass through the origin.
type GeodesicHalfPlane struct {
	Normal mgl64.Vec2
	Offset float64
}

func (Diameter) isGeodesic()          {}
func (GeodesicCircle) isGeodesic()    {}
func (GeodesicHalfPlane) isGeodesic() {}

// IsOrthogonal reports whether the circle meets the unit circle at right angles.
func (g GeodesicCircle) IsOrthogonal(tol numeric.Tolerance) bool {
	lhs := g.Center.LenSqr()
	rhs := 1 + g.Radius*g.Radius
	return tol.Equal(lhs, rhs, rhs)
}

// Circle returns the underlying Euclidean circle.
func (g GeodesicCircle) Circle() Circle {
	return Circle{Center: g.Center, Radius: g.Radius}
}

// HalfPlane returns the diameter as a half-plane anchored at the origin whose
// normal is the counter-clockwise perpendicular of Dir.
func (d Diameter) HalfPlane() HalfPlane {
	return HalfPlane{Normal: numeric.Perp(d.Dir)}
}

// HalfPlane returns the line as a half-plane anchored at its foot point.
func (g GeodesicHalfPlane) HalfPlane() HalfPlane {
	return HalfPlane{Anchor: g.Normal.Mul(-g.Offset), Normal: g.Normal}
}

// OrientedGeodesic is a boundary with an explicit positive side. The variant
// set is closed: OrientedCircle and OrientedLine.
type OrientedGeodesic interface {
	isOriented()
}

// OrientedCircle is positive inside the circle when Orientation is +1 and
// outside when it is -1. Hyperbolic mirrors are not always interior-positive,
// hence the explicit multiplier.
type OrientedCircle struct {
	Center      mgl64.Vec2
	Radius      float64
	Orientation int
}

// OrientedLine is positive on the side Normal points to.
type OrientedLine struct {
	Anchor mgl64.Vec2
	Normal mgl64.Vec2
}

func (OrientedCircle) isOriented() {}
func (OrientedLine) isOriented()   {}

// NormalizeOriented makes line normals unit length, circle radii positive and
// circle orientations exactly ±1 (zero counts as +1).
func NormalizeOriented(g OrientedGeodesic, tol numeric.Tolerance) (OrientedGeodesic, error) {
	switch g := g.(type) {
	case OrientedCircle:
		if !numeric.IsFiniteVec2(g.Center) || !numeric.IsFinite(g.Radius) {
			return nil, ErrNonFinite
		}
		r := math.Abs(g.Radius)
		if r <= tol.Eps(g.Center.Len()) {
			return nil, ErrDegenerateCircle
		}
		o := 1
		if g.Orientation < 0 {
			o = -1
		}
		return OrientedCircle{Center: g.Center, Radius: r, Orientation: o}, nil
	case OrientedLine:
		h, err := HalfPlane{Anchor: g.Anchor, Normal: g.Normal}.Normalize(tol)
		if err != nil {
			return nil, err
		}
		return OrientedLine{Anchor: h.Anchor, Normal: h.Normal}, nil
	}
	panic("boundary: unknown oriented geodesic")
}

// SignedDistance is positive on the oriented geodesic's positive side.
// For circles it is orientation·(radius - |p - center|).
func SignedDistance(g OrientedGeodesic, p mgl64.Vec2) float64 {
	switch g := g.(type) {
	case OrientedCircle:
		return float64(g.Orientation) * (g.Radius - p.Sub(g.Center).Len())
	case OrientedLine:
		return g.Normal.Dot(p.Sub(g.Anchor))
	}
	panic("boundary: unknown oriented geodesic")
}

// ToGeodesic drops the orientation. Lines through the origin become
// diameters, other lines half-planes, circles geodesic circles.
func ToGeodesic(g OrientedGeodesic, tol numeric.Tolerance) Geodesic {
	switch g := g.(type) {
	case OrientedCircle:
		return GeodesicCircle{Center: g.Center, Radius: g.Radius}
	case OrientedLine:
		offset := -g.Normal.Dot(g.Anchor)
		if tol.IsZero(offset, 1) {
			return Diameter{Dir: numeric.Perp(g.Normal)}
		}
		return GeodesicHalfPlane{Normal: g.Normal, Offset: offset}
	}
	panic("boundary: unknown oriented geodesic")
}

// OrientTowards orients g so that interior lies on its positive side.
func OrientTowards(g Geodesic, interior mgl64.Vec2, tol numeric.Tolerance) (OrientedGeodesic, error) {
	var og OrientedGeodesic
	switch g := g.(type) {
	case Diameter:
		og = OrientedLine{Normal: numeric.Perp(g.Dir)}
	case GeodesicCircle:
		og = OrientedCircle{Center: g.Center, Radius: g.Radius, Orientation: 1}
	case GeodesicHalfPlane:
		og = OrientedLine{Anchor: g.Normal.Mul(-g.Offset), Normal: g.Normal}
	default:
		panic("boundary: unknown geodesic")
	}

	og, err := NormalizeOriented(og, tol)
	if err != nil {
		return nil, err
	}
	if SignedDistance(og, interior) >= 0 {
		return og, nil
	}
	switch o := og.(type) {
	case OrientedCircle:
		o.Orientation = -o.Orientation
		return o, nil
	case OrientedLine:
		o.Normal = o.Normal.Mul(-1)
		return o, nil
	}
	panic("boundary: unknown oriented geodesic")
}
