// Package triangle builds fundamental (p,q,r) triangles: the three mirrors,
// vertices and angles of the triangle with angles π/p, π/q and π/r, in the
// Euclidean plane or the Poincaré disk. The result seeds the reflection-group
// expansion of package tiling.
package triangle

import (
	"fmt"
	"math"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind tells which geometry a triangle lives in.
type Kind int

const (
	KindHyperbolic Kind = iota
	KindEuclidean
)

func (k Kind) String() string {
	switch k {
	case KindHyperbolic:
		return "hyperbolic"
	case KindEuclidean:
		return "euclidean"
	}
	return "unknown"
}

// PrimitiveSet is a built triangle, generic over the mirror representation
// (boundary.Geodesic for hyperbolic triangles, boundary.HalfPlane for
// Euclidean ones). Vertex i has angle Angles[i]. Values are immutable once
// returned by a builder.
type PrimitiveSet[M any] struct {
	Kind     Kind
	Mirrors  [3]M
	Vertices [3]mgl64.Vec2
	Angles   [3]float64
}

// Barycenter is the mean of the three vertices.
func (s PrimitiveSet[M]) Barycenter() mgl64.Vec2 {
	return s.Vertices[0].Add(s.Vertices[1]).Add(s.Vertices[2]).Mul(1.0 / 3)
}

// AngleSum returns π/p + π/q + π/r.
func AngleSum(p, q, r float64) float64 {
	return math.Pi/p + math.Pi/q + math.Pi/r
}

// reciprocalSlack absorbs the round-off of 1/p+1/q+1/r: in float64,
// 1/2+1/3+1/6 sums to 1-1.1e-16.
const reciprocalSlack = 1e-12

// IsHyperbolic reports whether 1/p + 1/q + 1/r < 1, up to round-off.
func IsHyperbolic(p, q, r float64) bool {
	return 1/p+1/q+1/r < 1-reciprocalSlack
}

func validateParams(p, q, r float64) error {
	for _, v := range [3]float64{p, q, r} {
		if !numeric.IsFinite(v) || v <= 1 {
			return fmt.Errorf("(p,q,r)=(%v,%v,%v): %w", p, q, r, ErrInvalidParameter)
		}
	}
	return nil
}
