package triangle

import (
	"fmt"
	"math"
)

// maxSnapSteps bounds the feasibility loop for locked sums within round-off of 1.
const maxSnapSteps = 1 << 24

// Locks marks parameters that the user pinned and snapping must not adjust.
type Locks struct {
	P, Q, R bool
}

// Params is a snapped (p,q,r) triple.
type Params struct {
	P, Q, R int
	// Hyperbolic reports 1/p+1/q+1/r < 1. It is false only when the locked
	// parameters alone already reach a reciprocal sum of 1.
	Hyperbolic bool
}

// SnapParameterToPiOverN returns the n in [nMin, nMax] minimizing
// |π/n - π/value|, ties going to the smaller n. Non-positive and infinite
// values have π/value taken as 0 and snap to nMax; NaN snaps to nMin.
func SnapParameterToPiOverN(value float64, nMin, nMax int) (int, error) {
	if nMin < 1 || nMax < nMin {
		return 0, fmt.Errorf("range [%d,%d]: %w", nMin, nMax, ErrInvalidRange)
	}
	if math.IsNaN(value) {
		return nMin, nil
	}

	target := 0.0
	if value > 0 && !math.IsInf(value, 1) {
		target = math.Pi / value
	}

	best, bestDiff := nMin, math.Inf(1)
	for n := nMin; n <= nMax; n++ {
		diff := math.Abs(math.Pi/float64(n) - target)
		if diff < bestDiff {
			best, bestDiff = n, diff
		}
	}
	return best, nil
}

// SnapTriangleParams snaps p, q and r independently, then increments
// unlocked parameters, r first, then q, then p, until 1/p+1/q+1/r < 1.
// Increments may go past nMax: hyperbolic feasibility wins over the range
// whenever at least one parameter is unlocked.
func SnapTriangleParams(p, q, r float64, locks Locks, nMin, nMax int) (Params, error) {
	var snapped [3]int
	for i, v := range [3]float64{p, q, r} {
		n, err := SnapParameterToPiOverN(v, nMin, nMax)
		if err != nil {
			return Params{}, err
		}
		snapped[i] = n
	}

	// adjustment order: r, q, p
	locked := [3]bool{locks.P, locks.Q, locks.R}
	order := [3]int{2, 1, 0}
	hyperbolic := func() bool {
		return IsHyperbolic(float64(snapped[0]), float64(snapped[1]), float64(snapped[2]))
	}

	// unlocked terms only shrink toward 0, so the locked ones alone must
	// leave room below 1
	lockedSum := 0.0
	for i, l := range locked {
		if l {
			lockedSum += 1 / float64(snapped[i])
		}
	}

	for step := 0; lockedSum < 1-reciprocalSlack && step < maxSnapSteps && !hyperbolic(); step++ {
		idx := -1
		// the first unlocked parameter still inside the range
		for _, i := range order {
			if !locked[i] && snapped[i] < nMax {
				idx = i
				break
			}
		}
		// every unlocked parameter reached nMax: grow the smallest one
		if idx == -1 {
			for _, i := range order {
				if !locked[i] && (idx == -1 || snapped[i] < snapped[idx]) {
					idx = i
				}
			}
		}
		if idx == -1 {
			break
		}
		snapped[idx]++
	}

	return Params{P: snapped[0], Q: snapped[1], R: snapped[2], Hyperbolic: hyperbolic()}, nil
}
