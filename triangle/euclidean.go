package triangle

import (
	"fmt"
	"math"

	"github.com/akmonengine/kaleido/boundary"
	"github.com/go-gl/mathgl/mgl64"
)

// BuildEuclidean builds the Euclidean triangle with angles π/p, π/q, π/r.
//
// The law of sines with the edge between vertices 0 and 1 fixed to length 1
// places vertex 0 at the origin, vertex 1 on the x-axis and vertex 2 above
// it; the triangle is then translated so its barycenter is the origin.
// Mirror 0 carries edge v0v1, mirror 1 edge v0v2, mirror 2 edge v1v2. Each
// mirror's normal points outward: the interior evaluates negative.
func BuildEuclidean(p, q, r float64, opts ...Option) (PrimitiveSet[boundary.HalfPlane], error) {
	cfg := newConfig(opts)
	if err := validateParams(p, q, r); err != nil {
		return PrimitiveSet[boundary.HalfPlane]{}, err
	}

	alpha, beta, gamma := math.Pi/p, math.Pi/q, math.Pi/r
	if sum := alpha + beta + gamma; math.Abs(sum-math.Pi) > cfg.AngleSumTolerance {
		return PrimitiveSet[boundary.HalfPlane]{}, fmt.Errorf("(p,q,r)=(%v,%v,%v) angle sum %v: %w", p, q, r, sum, ErrAngleSum)
	}
	sinGamma := math.Sin(gamma)
	if sinGamma <= 0 {
		return PrimitiveSet[boundary.HalfPlane]{}, fmt.Errorf("(p,q,r)=(%v,%v,%v): %w", p, q, r, ErrDegenerateTriangle)
	}

	// b is the edge opposite beta, from v0 to v2
	b := math.Sin(beta) / sinGamma
	v0 := mgl64.Vec2{0, 0}
	v1 := mgl64.Vec2{1, 0}
	v2 := boundary.AngleToUnitPoint(alpha).Mul(b)

	center := v0.Add(v1).Add(v2).Mul(1.0 / 3)
	verts := [3]mgl64.Vec2{v0.Sub(center), v1.Sub(center), v2.Sub(center)}

	edges := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	var mirrors [3]boundary.HalfPlane
	for i, e := range edges {
		h, err := boundary.HalfPlaneFromPoints(verts[e[0]], verts[e[1]], cfg.Tolerance)
		if err != nil {
			return PrimitiveSet[boundary.HalfPlane]{}, fmt.Errorf("(p,q,r)=(%v,%v,%v) mirror %d: %w", p, q, r, i, ErrDegenerateTriangle)
		}
		// the barycenter is the origin and must evaluate negative
		if h.Evaluate(mgl64.Vec2{}) > 0 {
			h = h.Flip()
		}
		mirrors[i] = h
	}

	return PrimitiveSet[boundary.HalfPlane]{
		Kind:     KindEuclidean,
		Mirrors:  mirrors,
		Vertices: verts,
		Angles:   [3]float64{alpha, beta, gamma},
	}, nil
}
