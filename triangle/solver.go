package triangle

import (
	"math"

	"github.com/akmonengine/kaleido/numeric"
)

// SolveMethod tells how the third mirror parameter was found.
type SolveMethod int

const (
	// SolveBisection means a sign change was bracketed and refined.
	SolveBisection SolveMethod = iota
	// SolveSecant means no bracket was found and the clamped secant
	// fallback produced the parameter.
	SolveSecant
)

func (m SolveMethod) String() string {
	switch m {
	case SolveBisection:
		return "bisection"
	case SolveSecant:
		return "secant"
	}
	return "unknown"
}

// SolveReport describes a root-finder run.
type SolveReport struct {
	Method     SolveMethod
	Iterations int
	T          float64
	Residual   float64
	Converged  bool
}

func brackets(fa, fb float64) bool {
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return false
	}
	return (fa <= 0 && fb >= 0) || (fa >= 0 && fb <= 0)
}

// findRoot locates a zero of f on (0, 1). It looks for a sign change at the
// bracket endpoints, then on a uniform subdivision of the bracket, then on a
// geometric tail scan between the bracket and 1, and refines the first one
// found by bisection. Without a bracket it falls back to a damped, clamped
// secant iteration.
func findRoot(f func(float64) float64, cfg SolverConfig) SolveReport {
	lo, hi := cfg.Bracket.Lo, cfg.Bracket.Hi
	flo, fhi := f(lo), f(hi)
	if brackets(flo, fhi) {
		return bisect(f, lo, hi, flo, cfg)
	}

	n := max(cfg.Subdivisions, 1)
	step := cfg.Bracket.Length() / float64(n)
	prevT, prevF := lo, flo
	for i := 1; i <= n; i++ {
		t := lo + float64(i)*step
		ft := f(t)
		if brackets(prevF, ft) {
			return bisect(f, prevT, t, prevF, cfg)
		}
		prevT, prevF = t, ft
	}

	gap := 1 - hi
	for s := 0; s < cfg.TailSteps; s++ {
		gap *= cfg.TailRatio
		t := 1 - gap
		if t > cfg.TailLimit || t <= prevT {
			break
		}
		ft := f(t)
		if brackets(prevF, ft) {
			return bisect(f, prevT, t, prevF, cfg)
		}
		prevT, prevF = t, ft
	}

	return secant(f, cfg)
}

// bisect keeps the half whose endpoints bracket the sign change. Only a
// residual below cfg.Residual counts as converged; the width stop merely
// ends the refinement.
func bisect(f func(float64) float64, lo, hi, flo float64, cfg SolverConfig) SolveReport {
	if flo == 0 {
		return SolveReport{Method: SolveBisection, T: lo, Converged: true}
	}

	report := SolveReport{Method: SolveBisection}
	mid, fmid := lo, flo
	for report.Iterations < cfg.MaxBisections {
		report.Iterations++
		mid = 0.5 * (lo + hi)
		fmid = f(mid)
		if math.Abs(fmid) < cfg.Residual || hi-lo < cfg.Width*(1-lo) {
			break
		}
		if brackets(flo, fmid) {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}

	report.T = mid
	report.Residual = math.Abs(fmid)
	report.Converged = report.Residual < cfg.Residual
	return report
}

// secant runs the clamped secant iteration from the configured seeds. A
// step that does not reduce |f|, typically one that lands on a plateau, is
// halved back toward the previous iterate up to cfg.SecantBackoff times.
func secant(f func(float64) float64, cfg SolverConfig) SolveReport {
	clamp := func(t float64) float64 {
		return numeric.Clamp(t, cfg.SecantClamp.Lo, cfg.SecantClamp.Hi)
	}

	t0, t1 := clamp(cfg.SecantSeeds[0]), clamp(cfg.SecantSeeds[1])
	f0, f1 := f(t0), f(t1)
	report := SolveReport{Method: SolveSecant}
	for report.Iterations < cfg.SecantSteps {
		if math.Abs(f1) < cfg.Residual {
			break
		}
		denom := f1 - f0
		if denom == 0 || !numeric.IsFinite(denom) {
			break
		}
		report.Iterations++
		t2 := clamp(t1 - f1*(t1-t0)/denom)
		f2 := f(t2)
		for k := 0; k < cfg.SecantBackoff; k++ {
			if math.Abs(f2) < math.Abs(f1) {
				break
			}
			t2 = 0.5 * (t1 + t2)
			f2 = f(t2)
		}
		t0, f0 = t1, f1
		t1, f1 = t2, f2
	}

	report.T = t1
	report.Residual = math.Abs(f1)
	report.Converged = report.Residual < cfg.Residual
	return report
}
