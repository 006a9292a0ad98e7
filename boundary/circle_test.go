package boundary

import (
	"math"
	"math/rand"
	"testing"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleNormalize(t *testing.T) {
	tests := []struct {
		name   string
		circle Circle
		ok     bool
		radius float64
	}{
		{"positive radius", Circle{Radius: 2}, true, 2},
		{"negative radius made positive", Circle{Radius: -2}, true, 2},
		{"zero radius", Circle{Radius: 0}, false, 0},
		{"NaN radius", Circle{Radius: math.NaN()}, false, 0},
		{"infinite center", Circle{Center: mgl64.Vec2{math.Inf(1), 0}, Radius: 1}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := tt.circle.Normalize()
			if ok != tt.ok {
				t.Fatalf("Normalize() ok = %v, want %v", ok, tt.ok)
			}
			if ok && c.Radius != tt.radius {
				t.Errorf("Normalize() radius = %v, want %v", c.Radius, tt.radius)
			}
		})
	}
}

func TestCircleCircleIntersection_UnitCircles(t *testing.T) {
	tol := numeric.DefaultTolerance()
	res := CircleCircleIntersection(
		Circle{Center: mgl64.Vec2{0, 0}, Radius: 1},
		Circle{Center: mgl64.Vec2{1, 0}, Radius: 1},
		tol,
	)

	require.Equal(t, IntersectTwo, res.Kind)
	require.Len(t, res.Points, 2)
	assert.InDelta(t, 0.5, res.Points[0].X(), 1e-12)
	assert.InDelta(t, -math.Sqrt(3)/2, res.Points[0].Y(), 1e-12)
	assert.InDelta(t, 0.5, res.Points[1].X(), 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, res.Points[1].Y(), 1e-12)
}

func TestCircleCircleIntersection_Kinds(t *testing.T) {
	tol := numeric.DefaultTolerance()

	tests := []struct {
		name   string
		a, b   Circle
		kind   IntersectKind
		points int
	}{
		{"separate", Circle{mgl64.Vec2{0, 0}, 1}, Circle{mgl64.Vec2{3, 0}, 1}, IntersectNone, 0},
		{"nested", Circle{mgl64.Vec2{0, 0}, 3}, Circle{mgl64.Vec2{0.5, 0}, 1}, IntersectNone, 0},
		{"external tangent", Circle{mgl64.Vec2{0, 0}, 1}, Circle{mgl64.Vec2{2, 0}, 1}, IntersectTangent, 1},
		{"internal tangent", Circle{mgl64.Vec2{0, 0}, 2}, Circle{mgl64.Vec2{1, 0}, 1}, IntersectTangent, 1},
		{"concentric", Circle{mgl64.Vec2{1, 1}, 1}, Circle{mgl64.Vec2{1, 1}, 2}, IntersectConcentric, 0},
		{"coincident", Circle{mgl64.Vec2{1, 1}, 1}, Circle{mgl64.Vec2{1, 1 + 1e-12}, 1}, IntersectCoincident, 0},
		{"degenerate radius", Circle{mgl64.Vec2{0, 0}, 0}, Circle{mgl64.Vec2{0, 0}, 1}, IntersectNone, 0},
		{"NaN input", Circle{mgl64.Vec2{math.NaN(), 0}, 1}, Circle{mgl64.Vec2{0, 0}, 1}, IntersectNone, 0},
		{"crossing", Circle{mgl64.Vec2{0, 0}, 2}, Circle{mgl64.Vec2{0, 3}, 2}, IntersectTwo, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CircleCircleIntersection(tt.a, tt.b, tol)
			assert.Equal(t, tt.kind, res.Kind, "kind %s", res.Kind)
			assert.Len(t, res.Points, tt.points)
		})
	}
}

func TestCircleCircleIntersection_TangentPoint(t *testing.T) {
	res := CircleCircleIntersection(
		Circle{Center: mgl64.Vec2{0, 0}, Radius: 1},
		Circle{Center: mgl64.Vec2{0, 2}, Radius: 1},
		numeric.DefaultTolerance(),
	)
	require.Equal(t, IntersectTangent, res.Kind)
	assert.InDelta(t, 0, res.Points[0].X(), 1e-12)
	assert.InDelta(t, 1, res.Points[0].Y(), 1e-12)
}

func TestCircleCircleIntersection_NearTangent(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Circle
		point mgl64.Vec2
	}{
		{"external", Circle{mgl64.Vec2{0, 0}, 0.1}, Circle{mgl64.Vec2{0.3, 0}, 0.2}, mgl64.Vec2{0.1, 0}},
		{"internal", Circle{mgl64.Vec2{0, 0}, 0.3}, Circle{mgl64.Vec2{0.1, 0}, 0.2}, mgl64.Vec2{0.3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CircleCircleIntersection(tt.a, tt.b, numeric.DefaultTolerance())
			assert.Contains(t, []IntersectKind{IntersectTangent, IntersectTwo}, res.Kind)
			require.NotEmpty(t, res.Points)
			for _, p := range res.Points {
				assert.InDelta(t, 0, p.Sub(tt.point).Len(), 1e-8)
			}
			if res.Kind == IntersectTwo {
				assert.InDelta(t, 0, res.Points[0].Sub(res.Points[1]).Len(), 2e-8)
			}
		})
	}
}

func TestCircleCircleIntersection_OrderingAndOnCircles(t *testing.T) {
	tol := numeric.DefaultTolerance()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		a := Circle{Center: mgl64.Vec2{rng.Float64()*4 - 2, rng.Float64()*4 - 2}, Radius: 0.1 + rng.Float64()*2}
		r2 := 0.1 + rng.Float64()*2
		lo, hi := math.Abs(a.Radius-r2), a.Radius+r2
		// strictly between |r1-r2| and r1+r2
		d := lo + (hi-lo)*(0.05+0.9*rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		b := Circle{Center: a.Center.Add(AngleToUnitPoint(theta).Mul(d)), Radius: r2}

		res := CircleCircleIntersection(a, b, tol)
		require.Equal(t, IntersectTwo, res.Kind, "case %d", i)
		require.Len(t, res.Points, 2)
		p0, p1 := res.Points[0], res.Points[1]
		if !(p0.X() < p1.X() || (p0.X() == p1.X() && p0.Y() <= p1.Y())) {
			t.Fatalf("case %d: points not sorted: %v %v", i, p0, p1)
		}
		for _, p := range res.Points {
			assert.InDelta(t, a.Radius, p.Sub(a.Center).Len(), 1e-9)
			assert.InDelta(t, b.Radius, p.Sub(b.Center).Len(), 1e-9)
		}
	}
}

func TestIntersectKindString(t *testing.T) {
	assert.Equal(t, "two", IntersectTwo.String())
	assert.Equal(t, "coincident", IntersectCoincident.String())
	assert.Equal(t, "unknown", IntersectKind(42).String())
}
