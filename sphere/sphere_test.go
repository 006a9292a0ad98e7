package sphere

import (
	"errors"
	"math"
	"testing"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"unit", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 0, 0}},
		{"scaled", mgl64.Vec3{0, 3, 4}, mgl64.Vec3{0, 0.6, 0.8}},
		{"zero", mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}},
		{"NaN", mgl64.Vec3{math.NaN(), 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"infinite", mgl64.Vec3{0, math.Inf(-1), 0}, mgl64.Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.True(t, got.ApproxEqualThreshold(tt.want, 1e-15), "Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		})
	}
}

func TestNewTriangleHandedness(t *testing.T) {
	tol := numeric.DefaultTolerance()
	x, y, z := mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}

	assert.True(t, IsRightHanded(x, y, z, tol))
	assert.False(t, IsRightHanded(x, z, y, tol))

	kept := NewTriangle(x, y, z, tol)
	assert.Equal(t, [3]mgl64.Vec3{x, y, z}, kept.Vertices)

	swapped := NewTriangle(x.Mul(2), z.Mul(3), y, tol)
	assert.Equal(t, [3]mgl64.Vec3{x, y, z}, swapped.Vertices)
}

func TestBuild(t *testing.T) {
	tol := numeric.DefaultTolerance()
	tests := []struct {
		name    string
		p, q, r float64
	}{
		{"tetrahedral", 2, 3, 3},
		{"octahedral", 2, 3, 4},
		{"icosahedral", 2, 3, 5},
		{"dihedral", 2, 2, 7},
		{"permuted", 5, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := Build(tt.p, tt.q, tt.r, tol)
			require.NoError(t, err)

			for i, v := range tri.Vertices {
				assert.InDelta(t, 1, v.Len(), 1e-12, "vertex %d", i)
			}
			assert.Equal(t, mgl64.Vec3{0, 0, 1}, tri.Vertices[0])
			assert.True(t, IsRightHanded(tri.Vertices[0], tri.Vertices[1], tri.Vertices[2], tol))

			assert.InDelta(t, math.Pi/tt.p, tri.Angle(0), 1e-9)
			assert.InDelta(t, math.Pi/tt.q, tri.Angle(1), 1e-9)
			assert.InDelta(t, math.Pi/tt.r, tri.Angle(2), 1e-9)
			assert.InDelta(t, math.Pi*(1/tt.p+1/tt.q+1/tt.r-1), tri.Area(), 1e-9)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tol := numeric.DefaultTolerance()
	tests := []struct {
		name    string
		p, q, r float64
		want    error
	}{
		{"Euclidean", 2, 3, 6, ErrNotSpherical},
		{"hyperbolic", 2, 3, 7, ErrNotSpherical},
		{"p equals 1", 1, 3, 3, ErrInvalidParameter},
		{"NaN", 2, math.NaN(), 3, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.p, tt.q, tt.r, tol)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := Dihedral(1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNamedGroups(t *testing.T) {
	// the fundamental triangle covers 1/(2·order of the rotation group) of the sphere
	tests := []struct {
		name  string
		tri   Triangle
		order float64
	}{
		{"tetrahedron", Tetrahedron(), 24},
		{"octahedron", Octahedron(), 48},
		{"icosahedron", Icosahedron(), 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 4*math.Pi/tt.order, tt.tri.Area(), 1e-9)
		})
	}

	d, err := Dihedral(6)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi/24, d.Area(), 1e-9)
}

func TestMirrors(t *testing.T) {
	tri := Icosahedron()
	tol := numeric.DefaultTolerance()
	mirrors := tri.Mirrors()
	edges := [3][3]int{{0, 1, 2}, {0, 2, 1}, {1, 2, 0}}

	for i, n := range mirrors {
		e := edges[i]
		assert.InDelta(t, 1, n.Len(), 1e-12)
		assert.InDelta(t, 0, n.Dot(tri.Vertices[e[0]]), 1e-12)
		assert.InDelta(t, 0, n.Dot(tri.Vertices[e[1]]), 1e-12)
		assert.Greater(t, n.Dot(tri.Vertices[e[2]]), 0.0)
	}

	center := Normalize(tri.Vertices[0].Add(tri.Vertices[1]).Add(tri.Vertices[2]))
	assert.True(t, tri.Contains(center, tol))
	assert.False(t, tri.Contains(center.Mul(-1), tol))

	// reflecting across mirror 0 swaps the triangle to the other side
	reflected := Reflect(mirrors[0], center)
	assert.False(t, tri.Contains(reflected, tol))
}

func TestReflect(t *testing.T) {
	n := mgl64.Vec3{1, 2, 2}
	for _, v := range []mgl64.Vec3{{1, 0, 0}, {0.3, -0.4, 0.5}, Normalize(mgl64.Vec3{-1, 1, 1})} {
		r := Reflect(n, v)
		assert.InDelta(t, v.Len(), r.Len(), 1e-12)
		back := Reflect(n, r)
		assert.True(t, back.ApproxEqualThreshold(v, 1e-12), "Reflect twice %v = %v", v, back)
	}

	// points on the mirror are fixed
	on := mgl64.Vec3{2, -1, 0}
	assert.True(t, Reflect(n, on).ApproxEqualThreshold(on, 1e-12))
}
