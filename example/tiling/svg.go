package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/akmonengine/kaleido/transform"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
)

// SVG is a minimal serializer for the shapes the example draws.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

// printf keeps the first write error; later calls become no-ops.
func (svg *SVG) printf(format string, a ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func (svg *SVG) Err() error { return svg.err }

func extraparams(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return strings.Join(s, " ") + " "
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Start opens the document. The content group flips y so coordinates are
// written in the usual math orientation.
func (svg *SVG) Start(viewBox r2.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1" viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
<g transform="scale(1,-1)">
`, viewBox.X.Lo, -viewBox.Y.Hi, viewBox.X.Length(), viewBox.Y.Length(), extraparams(s))
}

func (svg *SVG) End() {
	svg.printf("</g>\n</svg>\n")
}

func (svg *SVG) Circle(c mgl64.Vec2, r float64, s ...string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X(), c.Y(), r, extraparams(s))
}

func (svg *SVG) StartPath(p mgl64.Vec2, s ...string) {
	svg.printf("<path %sd='M%f,%f", extraparams(s), p.X(), p.Y())
}

func (svg *SVG) EndPath() {
	svg.printf(" Z'/>\n")
}

func (svg *SVG) PathLineTo(p mgl64.Vec2) {
	svg.printf("\n  L%f,%f", p.X(), p.Y())
}

func (svg *SVG) PathCircularArcTo(p mgl64.Vec2, r float64, largeArc, sweep bool) {
	svg.printf("\n  A%f,%f 0 %s,%s %f,%f", r, r, onezero(largeArc), onezero(sweep), p.X(), p.Y())
}

// PathGeodesicTo draws the hyperbolic segment from a to b: the arc of the
// circle through a, b and the inverse of a in the unit circle, or a straight
// line when the three are collinear.
func (svg *SVG) PathGeodesicTo(a, b mgl64.Vec2, tol numeric.Tolerance) {
	c, ok := transform.CircleThroughPoints(a, b, transform.InvertInUnitCircle(a, tol), tol)
	if !ok {
		svg.PathLineTo(b)
		return
	}
	sweep := numeric.Cross2(a.Sub(c.Center), b.Sub(c.Center)) > 0
	svg.PathCircularArcTo(b, c.Radius, false, sweep)
}
