package numeric

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestToleranceEps(t *testing.T) {
	tol := Tolerance{Abs: 1e-9, Rel: 1e-6}

	tests := []struct {
		name     string
		scale    float64
		expected float64
	}{
		{"small scale uses floor of one", 1e-3, 1e-9 + 1e-6},
		{"unit scale", 1, 1e-9 + 1e-6},
		{"large scale", 10, 1e-9 + 1e-5},
		{"negative scale uses magnitude", -10, 1e-9 + 1e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tol.Eps(tt.scale), 1e-18)
		})
	}
}

func TestToleranceEqual(t *testing.T) {
	tol := DefaultTolerance()

	assert.True(t, tol.Equal(1, 1+1e-10, 1))
	assert.False(t, tol.Equal(1, 1+1e-6, 1))
	// a larger scale widens the band
	assert.True(t, tol.Equal(1000, 1000+5e-7, 1000))
	assert.True(t, tol.IsZero(-1e-10, 1))
}

func TestSafeSqrt(t *testing.T) {
	tol := DefaultTolerance()

	t.Run("positive", func(t *testing.T) {
		assert.Equal(t, 3.0, tol.SafeSqrt(9, 1))
	})

	t.Run("tiny negative clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, tol.SafeSqrt(-1e-12, 1))
	})

	t.Run("negative outside tolerance is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(tol.SafeSqrt(-1e-3, 1)))
	})

	t.Run("NaN propagates", func(t *testing.T) {
		assert.True(t, math.IsNaN(tol.SafeSqrt(math.NaN(), 1)))
	})
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
		{TwoPi + 0.25, 0.25},
	}

	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("NormalizeAngle(%v) = %v, out of [0, 2π)", tt.in, got)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0.5, WrapAngle(0.5+4*math.Pi), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 0, 1))
}

func TestPerp(t *testing.T) {
	v := mgl64.Vec2{1, 0}
	assert.Equal(t, mgl64.Vec2{0, 1}, Perp(v))
	assert.Equal(t, mgl64.Vec2{0, -1}, PerpCW(v))
	assert.Equal(t, v, PerpCW(Perp(v)))
	assert.Equal(t, 1.0, Cross2(v, Perp(v)))
}

func TestSafeNormalize(t *testing.T) {
	tol := DefaultTolerance()
	fallback := mgl64.Vec2{1, 0}

	t.Run("regular vector", func(t *testing.T) {
		n := SafeNormalize(mgl64.Vec2{3, 4}, fallback, tol)
		assert.InDelta(t, 0.6, n.X(), 1e-15)
		assert.InDelta(t, 0.8, n.Y(), 1e-15)
	})

	t.Run("zero vector falls back", func(t *testing.T) {
		assert.Equal(t, fallback, SafeNormalize(mgl64.Vec2{}, fallback, tol))
	})

	t.Run("NaN vector falls back", func(t *testing.T) {
		assert.Equal(t, fallback, SafeNormalize(mgl64.Vec2{math.NaN(), 0}, fallback, tol))
	})
}

func TestRotate(t *testing.T) {
	r := Rotate(mgl64.Vec2{1, 0}, math.Pi/2)
	assert.InDelta(t, 0, r.X(), 1e-15)
	assert.InDelta(t, 1, r.Y(), 1e-15)
}

func TestLessXY(t *testing.T) {
	assert.True(t, LessXY(mgl64.Vec2{0, 5}, mgl64.Vec2{1, 0}))
	assert.True(t, LessXY(mgl64.Vec2{1, -1}, mgl64.Vec2{1, 0}))
	assert.False(t, LessXY(mgl64.Vec2{1, 0}, mgl64.Vec2{1, 0}))
}
