package boundary

import (
	"fmt"
	"math"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// HalfPlane is a line through Anchor with a unit Normal. Evaluate is positive
// on the side the normal points to.
type HalfPlane struct {
	Anchor mgl64.Vec2
	Normal mgl64.Vec2
}

// NewHalfPlane builds a half-plane and normalizes its normal.
func NewHalfPlane(anchor, normal mgl64.Vec2, tol numeric.Tolerance) (HalfPlane, error) {
	return HalfPlane{Anchor: anchor, Normal: normal}.Normalize(tol)
}

// Normalize divides the normal by its length. A normal of length <= eps is
// an error, not something to default.
func (h HalfPlane) Normalize(tol numeric.Tolerance) (HalfPlane, error) {
	if !numeric.IsFiniteVec2(h.Anchor) || !numeric.IsFiniteVec2(h.Normal) {
		return HalfPlane{}, fmt.Errorf("half-plane anchor=%v normal=%v: %w", h.Anchor, h.Normal, ErrNonFinite)
	}
	l := h.Normal.Len()
	if l <= tol.Eps(1) {
		return HalfPlane{}, fmt.Errorf("half-plane normal=%v: %w", h.Normal, ErrDegenerateNormal)
	}
	return HalfPlane{Anchor: h.Anchor, Normal: h.Normal.Mul(1 / l)}, nil
}

// HalfPlaneFromPoints builds the half-plane whose boundary runs from a to b.
// The normal is the clockwise perpendicular of the direction b-a.
func HalfPlaneFromPoints(a, b mgl64.Vec2, tol numeric.Tolerance) (HalfPlane, error) {
	if !numeric.IsFiniteVec2(a) || !numeric.IsFiniteVec2(b) {
		return HalfPlane{}, fmt.Errorf("control points %v %v: %w", a, b, ErrNonFinite)
	}
	dir := b.Sub(a)
	l := dir.Len()
	if l <= tol.Eps(math.Max(a.Len(), b.Len())) {
		return HalfPlane{}, fmt.Errorf("control points %v %v: %w", a, b, ErrCoincidentPoints)
	}
	return HalfPlane{Anchor: a, Normal: numeric.PerpCW(dir.Mul(1 / l))}, nil
}

// HalfPlaneFromNormalOffset builds the half-plane {p : normal·p + offset >= 0}.
// The anchor is the foot of the perpendicular from the origin.
func HalfPlaneFromNormalOffset(normal mgl64.Vec2, offset float64, tol numeric.Tolerance) (HalfPlane, error) {
	if !numeric.IsFinite(offset) {
		return HalfPlane{}, fmt.Errorf("offset=%v: %w", offset, ErrNonFinite)
	}
	n, err := HalfPlane{Normal: normal}.Normalize(tol)
	if err != nil {
		return HalfPlane{}, err
	}
	// rescale the offset along with the normal
	offset /= normal.Len()
	return HalfPlane{Anchor: n.Normal.Mul(-offset), Normal: n.Normal}, nil
}

// Offset is -normal·anchor, so that Evaluate(p) = normal·p + Offset().
func (h HalfPlane) Offset() float64 {
	return -h.Normal.Dot(h.Anchor)
}

// Evaluate is the signed distance normal·(p - anchor).
func (h HalfPlane) Evaluate(p mgl64.Vec2) float64 {
	return h.Normal.Dot(p.Sub(h.Anchor))
}

// Contains reports whether p is on the non-positive side, boundary included.
func (h HalfPlane) Contains(p mgl64.Vec2, tol numeric.Tolerance) bool {
	return h.Evaluate(p) <= tol.Eps(p.Len())
}

// Reflect mirrors p across the boundary line: p - 2·d(p)·normal.
// The sign of the normal does not matter.
func (h HalfPlane) Reflect(p mgl64.Vec2) mgl64.Vec2 {
	return p.Sub(h.Normal.Mul(2 * h.Evaluate(p)))
}

// Flip returns the same boundary with the opposite normal.
func (h HalfPlane) Flip() HalfPlane {
	return HalfPlane{Anchor: h.Anchor, Normal: h.Normal.Mul(-1)}
}

// Foot returns the point of the boundary closest to the origin.
func (h HalfPlane) Foot() mgl64.Vec2 {
	return h.Normal.Mul(-h.Offset())
}

// Direction is the boundary direction used by HalfPlaneFromPoints.
func (h HalfPlane) Direction() mgl64.Vec2 {
	return numeric.Perp(h.Normal)
}

// ControlPoints returns two boundary points spacing apart, centered on the
// foot of the origin and ordered so that HalfPlaneFromPoints(a, b)
// reproduces h.
func (h HalfPlane) ControlPoints(spacing float64, tol numeric.Tolerance) ([2]mgl64.Vec2, error) {
	if !numeric.IsFinite(spacing) || spacing <= tol.Eps(spacing) {
		return [2]mgl64.Vec2{}, fmt.Errorf("spacing=%v: %w", spacing, ErrDegenerateSpacing)
	}
	h, err := h.Normalize(tol)
	if err != nil {
		return [2]mgl64.Vec2{}, err
	}
	foot := h.Foot()
	half := h.Direction().Mul(spacing / 2)
	return [2]mgl64.Vec2{foot.Sub(half), foot.Add(half)}, nil
}
