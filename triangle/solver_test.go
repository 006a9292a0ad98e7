package triangle

import (
	"math"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/stretchr/testify/assert"
)

func TestFindRoot(t *testing.T) {
	cfg := DefaultSolverConfig()

	tests := []struct {
		name      string
		f         func(float64) float64
		method    SolveMethod
		converged bool
		root      float64
	}{
		{"bracketed by endpoints", func(x float64) float64 { return x - 0.3 }, SolveBisection, true, 0.3},
		{"decreasing", func(x float64) float64 { return 0.7 - x }, SolveBisection, true, 0.7},
		{"found by the scan", func(x float64) float64 { return (x - 0.3) * (x - 0.35) }, SolveBisection, true, 0.3},
		{"no root in the disk", func(x float64) float64 { return x - 2 }, SolveSecant, false, 0.95},
		{"flat", func(float64) float64 { return -1 }, SolveSecant, false, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := findRoot(tt.f, cfg)
			assert.Equal(t, tt.method, report.Method)
			assert.Equal(t, tt.converged, report.Converged)
			assert.InDelta(t, tt.root, report.T, 1e-2)
			if tt.converged {
				assert.Less(t, math.Abs(tt.f(report.T)), cfg.Residual)
			}
		})
	}
}

func TestFindRootSecant(t *testing.T) {
	cfg := DefaultSolverConfig()
	// a narrow bracket that misses the root forces the secant fallback
	cfg.Bracket = r1.Interval{Lo: 0.1, Hi: 0.2}
	cfg.TailSteps = 0

	report := findRoot(func(x float64) float64 { return x*x - 0.25 }, cfg)
	assert.Equal(t, SolveSecant, report.Method)
	assert.True(t, report.Converged)
	assert.InDelta(t, 0.5, report.T, 1e-3)
	assert.Greater(t, report.Iterations, 0)
}

func TestFindRootTail(t *testing.T) {
	tests := []struct {
		name string
		root float64
	}{
		{"just past the bracket", 0.97},
		{"near the boundary", 0.99995},
		{"close to the limit", 1 - 1e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSolverConfig()
			f := func(x float64) float64 { return x - tt.root }

			report := findRoot(f, cfg)
			assert.Equal(t, SolveBisection, report.Method)
			assert.True(t, report.Converged)
			assert.InDelta(t, tt.root, report.T, cfg.Residual)
			assert.Less(t, report.T, 1.0)
		})
	}
}

func TestFindRootSecantBackoff(t *testing.T) {
	// the steep step around 0.7 throws the plain secant onto the flat tail
	f := func(x float64) float64 { return math.Atan(20 * (0.7 - x)) }

	tests := []struct {
		name      string
		backoff   int
		converged bool
	}{
		{"undamped", 0, false},
		{"damped", 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSolverConfig()
			cfg.Bracket = r1.Interval{Lo: 0.1, Hi: 0.2}
			cfg.TailSteps = 0
			cfg.SecantBackoff = tt.backoff

			report := findRoot(f, cfg)
			assert.Equal(t, SolveSecant, report.Method)
			assert.Equal(t, tt.converged, report.Converged)
			if tt.converged {
				assert.InDelta(t, 0.7, report.T, 1e-3)
			}
		})
	}
}

func TestSolveMethodString(t *testing.T) {
	assert.Equal(t, "bisection", SolveBisection.String())
	assert.Equal(t, "secant", SolveSecant.String())
	assert.Equal(t, "unknown", SolveMethod(9).String())
}
