package triangle

import (
	"fmt"
	"math"

	"github.com/akmonengine/kaleido/boundary"
	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// vertex 1 is kept inside [minVertexT, maxVertexT] on the x-axis
	minVertexT = 1e-6
	maxVertexT = 1 - 1e-9
)

// Hyperbolic is a (p,q,r) triangle of the Poincaré disk.
type Hyperbolic struct {
	PrimitiveSet[boundary.Geodesic]

	// Oriented holds the mirrors oriented so the triangle interior is positive.
	Oriented [3]boundary.OrientedGeodesic
	// DiameterPlanes holds interior-positive half-planes for the diameter
	// mirrors and nil for the circular one. Half-plane editing UIs use them
	// as control representations.
	DiameterPlanes [3]*boundary.HalfPlane
	// Feasible is false when 1/p+1/q+1/r >= 1; the mirrors are then a best
	// effort and a warning has been logged.
	Feasible bool
	Solve    SolveReport
}

// thirdMirror is the circle orthogonal to the unit circle that crosses the
// x-axis at (t, 0) with angle beta.
func thirdMirror(t, beta float64) boundary.GeodesicCircle {
	a := (1 - t*t) / (2 * t)
	return boundary.GeodesicCircle{
		Center: mgl64.Vec2{(1 + t*t) / (2 * t), a / math.Tan(beta)},
		Radius: a / math.Sin(beta),
	}
}

// diameterHit returns the distance s along the unit direction u at which the
// circle crosses the ray inside the disk.
func diameterHit(c boundary.GeodesicCircle, u mgl64.Vec2) (float64, bool) {
	uc := u.Dot(c.Center)
	// |c|² - R² is 1 for an orthogonal circle
	k := c.Center.LenSqr() - c.Radius*c.Radius
	disc := uc*uc - k
	if uc <= 0 || disc < 0 {
		return 0, false
	}
	s := uc - math.Sqrt(disc)
	if s <= 0 || s >= 1 {
		return 0, false
	}
	return s, true
}

// angleAtSecondMirror is the interior angle between mirror 2 (the diameter
// along u) and the third mirror for parameter t. It is 0 when the circle
// misses the ray inside the disk: the two mirrors are then ultraparallel.
func angleAtSecondMirror(t, beta float64, u mgl64.Vec2) float64 {
	c := thirdMirror(t, beta)
	s, ok := diameterHit(c, u)
	if !ok {
		return 0
	}
	return InteriorAngle(boundary.Diameter{Dir: u}, c, u.Mul(s), mgl64.Vec2{}, mgl64.Vec2{t, 0})
}

// xAxisVertex picks the crossing of the circle with the x-axis that lies in
// (0, 1), clamping into [minVertexT, maxVertexT] when round-off pushed it out.
func xAxisVertex(c boundary.GeodesicCircle, tol numeric.Tolerance) mgl64.Vec2 {
	h := tol.SafeSqrt(c.Radius*c.Radius-c.Center.Y()*c.Center.Y(), c.Radius*c.Radius)
	if math.IsNaN(h) {
		h = 0
	}
	for _, x := range [2]float64{c.Center.X() - h, c.Center.X() + h} {
		if x > 0 && x < 1 {
			return mgl64.Vec2{numeric.Clamp(x, minVertexT, maxVertexT), 0}
		}
	}
	return mgl64.Vec2{numeric.Clamp(c.Center.X()-h, minVertexT, maxVertexT), 0}
}

// BuildHyperbolic builds the Poincaré-disk triangle with angles π/p, π/q, π/r.
//
// Mirror 0 is the x-axis, mirror 1 the diameter at angle α = π/p, so vertex 0
// sits at the origin with angle α. Mirror 2 is a circle orthogonal to the
// unit circle crossing the x-axis at (t, 0) with angle β = π/q; t is solved
// numerically so that the circle meets mirror 1 with angle γ = π/r.
//
// A non-hyperbolic triple (1/p+1/q+1/r >= 1) is not an error: the mirrors
// are still well defined, Feasible is false and a warning is logged.
func BuildHyperbolic(p, q, r float64, opts ...Option) (Hyperbolic, error) {
	cfg := newConfig(opts)
	if err := validateParams(p, q, r); err != nil {
		return Hyperbolic{}, err
	}

	feasible := IsHyperbolic(p, q, r)
	if !feasible {
		cfg.Logger.Warn("triangle: (p,q,r) is not hyperbolic, building best-effort mirrors",
			"p", p, "q", q, "r", r, "reciprocalSum", 1/p+1/q+1/r)
	}

	alpha, beta, gamma := math.Pi/p, math.Pi/q, math.Pi/r
	u := boundary.AngleToUnitPoint(alpha)

	report := findRoot(func(t float64) float64 {
		return angleAtSecondMirror(t, beta, u) - gamma
	}, cfg.Solver)
	if !report.Converged {
		cfg.Logger.Warn("triangle: third mirror did not converge",
			"p", p, "q", q, "r", r, "method", report.Method.String(), "t", report.T, "residual", report.Residual)
	}

	m0 := boundary.Diameter{Dir: mgl64.Vec2{1, 0}}
	m1 := boundary.Diameter{Dir: u}
	m2 := thirdMirror(report.T, beta)

	v1 := xAxisVertex(m2, cfg.Tolerance)
	s, ok := diameterHit(m2, u)
	if !ok {
		s = numeric.Clamp(u.Dot(m2.Center), minVertexT, maxVertexT)
	}
	v2 := u.Mul(numeric.Clamp(s, minVertexT, maxVertexT))

	tri := Hyperbolic{
		PrimitiveSet: PrimitiveSet[boundary.Geodesic]{
			Kind:     KindHyperbolic,
			Mirrors:  [3]boundary.Geodesic{m0, m1, m2},
			Vertices: [3]mgl64.Vec2{{0, 0}, v1, v2},
			Angles:   [3]float64{alpha, beta, gamma},
		},
		Feasible: feasible,
		Solve:    report,
	}

	// a point just off vertex 0 on the angle bisector is inside whatever the
	// curvature of the third side
	interior := boundary.AngleToUnitPoint(alpha / 2).Mul(1e-3 * math.Min(v1.Len(), v2.Len()))
	for i, m := range tri.Mirrors {
		og, err := boundary.OrientTowards(m, interior, cfg.Tolerance)
		if err != nil {
			return Hyperbolic{}, fmt.Errorf("(p,q,r)=(%v,%v,%v) mirror %d: %w", p, q, r, i, err)
		}
		tri.Oriented[i] = og
		if line, ok := og.(boundary.OrientedLine); ok {
			tri.DiameterPlanes[i] = &boundary.HalfPlane{Anchor: line.Anchor, Normal: line.Normal}
		}
	}

	return tri, nil
}

// MeasuredAngles measures the interior angles of the built mirrors at the
// vertices. They match Angles up to the solver residual.
func (h Hyperbolic) MeasuredAngles() [3]float64 {
	v := h.Vertices
	m := h.Mirrors
	return [3]float64{
		InteriorAngle(m[0], m[1], v[0], v[1], v[2]),
		InteriorAngle(m[0], m[2], v[1], v[0], v[2]),
		InteriorAngle(m[1], m[2], v[2], v[0], v[1]),
	}
}

// Contains reports whether p lies inside the triangle, boundary included.
func (h Hyperbolic) Contains(p mgl64.Vec2, tol numeric.Tolerance) bool {
	for _, og := range h.Oriented {
		if boundary.SignedDistance(og, p) < -tol.Eps(1) {
			return false
		}
	}
	return true
}
