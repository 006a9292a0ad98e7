package triangle

import (
	"log/slog"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/golang/geo/r1"
)

// SolverConfig holds the constants of the third-mirror root finder. The
// defaults were tuned empirically; they are exposed so extreme (p,q,r)
// inputs can be bracketed with a wider or finer search.
type SolverConfig struct {
	// Bracket is the search interval for the mirror parameter t.
	Bracket r1.Interval
	// Subdivisions is the number of uniform steps scanned for a sign change
	// when the bracket endpoints do not already bracket the root.
	Subdivisions int
	// MaxBisections bounds the bisection refinement.
	MaxBisections int
	// Residual stops the refinement once |f| drops below it.
	Residual float64
	// Width stops the refinement once the bracket is narrower than
	// Width·(1-lo), relative to the gap left to the disk boundary t = 1.
	Width float64
	// TailSteps bounds the scan between Bracket.Hi and 1. Sample k sits at
	// 1 - (1-Bracket.Hi)·TailRatio^k, so the scan closes in on the
	// boundary geometrically.
	TailSteps int
	TailRatio float64
	// TailLimit is the largest t the tail scan samples.
	TailLimit float64
	// SecantSteps bounds the fallback secant iteration.
	SecantSteps int
	// SecantClamp keeps secant iterates inside the disk.
	SecantClamp r1.Interval
	// SecantSeeds are the two starting points of the secant iteration.
	SecantSeeds [2]float64
	// SecantBackoff bounds how many times a secant step is halved when it
	// does not reduce |f|.
	SecantBackoff int
}

// DefaultSolverConfig returns the tuned root-finder constants.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Bracket:       r1.Interval{Lo: 0.1, Hi: 0.9},
		Subdivisions:  20,
		MaxBisections: 60,
		Residual:      5e-4,
		Width:         1e-6,
		TailSteps:     40,
		TailRatio:     0.5,
		TailLimit:     1 - 1e-9,
		SecantSteps:   12,
		SecantClamp:   r1.Interval{Lo: 0.05, Hi: 0.95},
		SecantSeeds:   [2]float64{0.5, 0.6},
		SecantBackoff: 8,
	}
}

// Config is the resolved configuration of a builder call.
type Config struct {
	Tolerance numeric.Tolerance
	Solver    SolverConfig
	// AngleSumTolerance bounds |α+β+γ-π| for Euclidean triangles.
	AngleSumTolerance float64
	Logger            *slog.Logger
}

// Option customizes a builder call.
type Option func(*Config)

// WithTolerance sets the numeric tolerance.
func WithTolerance(tol numeric.Tolerance) Option {
	return func(c *Config) {
		c.Tolerance = tol
	}
}

// WithSolver replaces the root-finder constants.
func WithSolver(s SolverConfig) Option {
	return func(c *Config) {
		c.Solver = s
	}
}

// WithAngleSumTolerance sets the Euclidean angle-sum tolerance. Panics on a
// negative value.
func WithAngleSumTolerance(eps float64) Option {
	if eps < 0 {
		panic("triangle: WithAngleSumTolerance(eps<0)")
	}
	return func(c *Config) {
		c.AngleSumTolerance = eps
	}
}

// WithLogger routes diagnostics to l. A nil logger means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts []Option) Config {
	cfg := Config{
		Tolerance:         numeric.DefaultTolerance(),
		Solver:            DefaultSolverConfig(),
		AngleSumTolerance: 1e-6,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
