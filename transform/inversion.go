// Package transform implements the point maps the tilings are generated
// with: inversion in a circle, the image of a line under inversion, and the
// reflection across a geodesic mirror of the Poincaré disk.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/kaleido/boundary"
	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateLine is returned when a line is given by coincident or
// non-finite endpoints.
var ErrDegenerateLine = errors.New("transform: degenerate line")

// InvertInUnitCircle maps p to p/|p|². Points within tolerance of the origin
// are returned unchanged rather than sent to infinity.
func InvertInUnitCircle(p mgl64.Vec2, tol numeric.Tolerance) mgl64.Vec2 {
	d2 := p.LenSqr()
	if math.Sqrt(d2) <= tol.Eps(1) {
		return p
	}
	return p.Mul(1 / d2)
}

// InvertInCircle maps p to c + r²/|p-c|² (p-c). Only the exact center is
// special-cased (returned unchanged), so the map stays an exact involution
// everywhere else.
func InvertInCircle(p mgl64.Vec2, c boundary.Circle) mgl64.Vec2 {
	v := p.Sub(c.Center)
	d2 := v.LenSqr()
	if d2 == 0 {
		return p
	}
	return c.Center.Add(v.Mul(c.Radius * c.Radius / d2))
}

// CircleThroughPoints returns the unique circle through a, b and c. It
// reports false when the points are collinear within tolerance.
func CircleThroughPoints(a, b, c mgl64.Vec2, tol numeric.Tolerance) (boundary.Circle, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * numeric.Cross2(ab, ac)
	scale := math.Max(ab.LenSqr(), ac.LenSqr())
	if math.Abs(d) <= tol.Eps(scale)*scale || !numeric.IsFinite(d) {
		return boundary.Circle{}, false
	}

	ab2 := ab.LenSqr()
	ac2 := ac.LenSqr()
	// center relative to a
	ux := (ac[1]*ab2 - ab[1]*ac2) / d
	uy := (ab[0]*ac2 - ac[0]*ab2) / d
	u := mgl64.Vec2{ux, uy}
	return boundary.Circle{Center: a.Add(u), Radius: u.Len()}, true
}

// Image is the result of inverting a line: a LineImage or a CircleImage.
type Image interface {
	isImage()
}

// LineImage is a line through A and B.
type LineImage struct {
	A, B mgl64.Vec2
}

// CircleImage is a circle through the inversion center.
type CircleImage struct {
	Circle boundary.Circle
}

func (LineImage) isImage()   {}
func (CircleImage) isImage() {}

// InvertLine returns the image under inversion in inv of the line through a
// and b. A line through the inversion center maps to itself; any other line
// maps to the circle through the inverted endpoints and the center. A
// numerically collinear configuration falls back to a line through the
// inverted endpoints.
func InvertLine(a, b mgl64.Vec2, inv boundary.Circle, tol numeric.Tolerance) (Image, error) {
	if !numeric.IsFiniteVec2(a) || !numeric.IsFiniteVec2(b) {
		return nil, fmt.Errorf("line %v-%v: %w", a, b, ErrDegenerateLine)
	}
	dir := b.Sub(a)
	l := dir.Len()
	if l <= tol.Eps(math.Max(a.Len(), b.Len())) {
		return nil, fmt.Errorf("line %v-%v: %w", a, b, ErrDegenerateLine)
	}

	// distance from the inversion center to the line
	dist := math.Abs(numeric.Cross2(dir.Mul(1/l), inv.Center.Sub(a)))
	if dist <= tol.Eps(inv.Radius) {
		return LineImage{A: a, B: b}, nil
	}

	ia := InvertInCircle(a, inv)
	ib := InvertInCircle(b, inv)
	circle, ok := CircleThroughPoints(ia, ib, inv.Center, tol)
	if !ok {
		return LineImage{A: ia, B: ib}, nil
	}
	return CircleImage{Circle: circle}, nil
}
