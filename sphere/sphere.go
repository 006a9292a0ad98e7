// Package sphere holds the spherical counterpart of the triangle builders:
// unit vectors on the sphere, right-handed vertex triples and the (p,q,r)
// triangles of the finite reflection groups.
package sphere

import (
	"fmt"
	"math"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

var north = mgl64.Vec3{0, 0, 1}

// Normalize projects v onto the unit sphere. Zero and non-finite vectors map
// to the north pole.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	for _, c := range v {
		if !numeric.IsFinite(c) {
			return north
		}
	}
	l := v.Len()
	if l == 0 {
		return north
	}
	return v.Mul(1 / l)
}

// IsRightHanded reports whether (a×b)·c is non-negative within tolerance.
func IsRightHanded(a, b, c mgl64.Vec3, tol numeric.Tolerance) bool {
	return a.Cross(b).Dot(c) >= -tol.Eps(1)
}

// Triangle is a spherical triangle with unit, right-handed vertices.
type Triangle struct {
	Vertices [3]mgl64.Vec3
}

// NewTriangle normalizes the vertices and swaps the last two when the triple
// is left-handed.
func NewTriangle(a, b, c mgl64.Vec3, tol numeric.Tolerance) Triangle {
	a, b, c = Normalize(a), Normalize(b), Normalize(c)
	if !IsRightHanded(a, b, c, tol) {
		b, c = c, b
	}
	return Triangle{Vertices: [3]mgl64.Vec3{a, b, c}}
}

// Build returns the spherical triangle with angles π/p, π/q and π/r at
// vertices 0, 1 and 2. Vertex 0 is the north pole and vertex 1 lies in the
// xz half-plane x > 0; the side lengths come from the spherical law of
// cosines for angles.
func Build(p, q, r float64, tol numeric.Tolerance) (Triangle, error) {
	for _, v := range [3]float64{p, q, r} {
		if !numeric.IsFinite(v) || v <= 1 {
			return Triangle{}, fmt.Errorf("(p,q,r)=(%v,%v,%v): %w", p, q, r, ErrInvalidParameter)
		}
	}
	if sum := 1/p + 1/q + 1/r; sum <= 1+tol.Eps(1) {
		return Triangle{}, fmt.Errorf("(p,q,r)=(%v,%v,%v) reciprocal sum %v: %w", p, q, r, sum, ErrNotSpherical)
	}

	A, B, C := math.Pi/p, math.Pi/q, math.Pi/r
	sinA, cosA := math.Sincos(A)
	sinB, cosB := math.Sincos(B)
	sinC, cosC := math.Sincos(C)

	// b joins vertices 0 and 2, c joins vertices 0 and 1
	b := math.Acos(numeric.Clamp((cosB+cosA*cosC)/(sinA*sinC), -1, 1))
	c := math.Acos(numeric.Clamp((cosC+cosA*cosB)/(sinA*sinB), -1, 1))

	return Triangle{Vertices: [3]mgl64.Vec3{
		north,
		mgl64.SphericalToCartesian(1, c, 0),
		mgl64.SphericalToCartesian(1, b, A),
	}}, nil
}

func mustBuild(p, q, r float64) Triangle {
	t, err := Build(p, q, r, numeric.DefaultTolerance())
	if err != nil {
		panic(err)
	}
	return t
}

// Tetrahedron is the (2,3,3) triangle of the tetrahedral group.
func Tetrahedron() Triangle { return mustBuild(2, 3, 3) }

// Octahedron is the (2,3,4) triangle of the octahedral group.
func Octahedron() Triangle { return mustBuild(2, 3, 4) }

// Icosahedron is the (2,3,5) triangle of the icosahedral group.
func Icosahedron() Triangle { return mustBuild(2, 3, 5) }

// Dihedral is the (2,2,n) triangle of the dihedral group of order 2n.
func Dihedral(n int) (Triangle, error) {
	if n < 2 {
		return Triangle{}, fmt.Errorf("dihedral order %d: %w", n, ErrInvalidParameter)
	}
	return Build(2, 2, float64(n), numeric.DefaultTolerance())
}

// tangent is the unit direction at v of the great circle toward u.
func tangent(v, u mgl64.Vec3) mgl64.Vec3 {
	t := u.Sub(v.Mul(u.Dot(v)))
	if l := t.Len(); l > 0 {
		return t.Mul(1 / l)
	}
	return t
}

// Angle measures the interior angle at vertex i.
func (t Triangle) Angle(i int) float64 {
	v := t.Vertices[i]
	a := tangent(v, t.Vertices[(i+1)%3])
	b := tangent(v, t.Vertices[(i+2)%3])
	return math.Acos(numeric.Clamp(a.Dot(b), -1, 1))
}

// Area is the spherical excess: the angle sum minus π.
func (t Triangle) Area() float64 {
	return t.Angle(0) + t.Angle(1) + t.Angle(2) - math.Pi
}

// Mirrors returns the unit normals of the great circles through the edges,
// oriented so the triangle lies on the positive side. Mirror 0 carries
// vertices 0 and 1, mirror 1 vertices 0 and 2, mirror 2 vertices 1 and 2.
func (t Triangle) Mirrors() [3]mgl64.Vec3 {
	v := t.Vertices
	edges := [3][3]int{{0, 1, 2}, {0, 2, 1}, {1, 2, 0}}
	var out [3]mgl64.Vec3
	for i, e := range edges {
		n := Normalize(v[e[0]].Cross(v[e[1]]))
		if n.Dot(v[e[2]]) < 0 {
			n = n.Mul(-1)
		}
		out[i] = n
	}
	return out
}

// Contains reports whether the unit vector p lies inside the triangle,
// boundary included.
func (t Triangle) Contains(p mgl64.Vec3, tol numeric.Tolerance) bool {
	for _, n := range t.Mirrors() {
		if n.Dot(p) < -tol.Eps(1) {
			return false
		}
	}
	return true
}

// Reflect mirrors v across the plane through the origin with the given normal.
func Reflect(normal, v mgl64.Vec3) mgl64.Vec3 {
	n := Normalize(normal)
	return v.Sub(n.Mul(2 * v.Dot(n)))
}
