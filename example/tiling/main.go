package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/akmonengine/kaleido"
	"github.com/akmonengine/kaleido/numeric"
	"github.com/akmonengine/kaleido/tiling"
	"github.com/akmonengine/kaleido/triangle"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
)

const (
	FACE_STYLE = "fill='none' stroke='black' stroke-width='0.002'"
	ROOT_STYLE = "fill='#f0c040' stroke='black' stroke-width='0.002'"
	DISK_STYLE = "fill='none' stroke='gray' stroke-width='0.004'"
)

func writeTiling(path string, res kaleido.TileResult, tol numeric.Tolerance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hyperbolic := res.Request.Geometry == kaleido.GeometryHyperbolic
	view := r2.RectFromPoints(r2.Point{X: -1.05, Y: -1.05}, r2.Point{X: 1.05, Y: 1.05})
	if !hyperbolic {
		view = r2.EmptyRect()
		for _, face := range res.Result.Faces {
			view = view.Union(face.AABB)
		}
		view = view.ExpandedByMargin(0.05)
	}

	svg := NewSVG(f)
	svg.Start(view)
	if hyperbolic {
		svg.Circle(mgl64.Vec2{}, 1, DISK_STYLE)
	}
	for _, face := range res.Result.Faces {
		style := FACE_STYLE
		if face.Word == "" {
			style = ROOT_STYLE
		}
		v := face.Verts
		svg.StartPath(v[0], style)
		for i := 0; i < 3; i++ {
			a, b := v[i], v[(i+1)%3]
			if hyperbolic {
				svg.PathGeodesicTo(a, b, tol)
			} else {
				svg.PathLineTo(b)
			}
		}
		svg.EndPath()
	}
	svg.End()
	return svg.Err()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	tol := numeric.DefaultTolerance()

	// parameters dragged off the canonical values snap back onto a
	// hyperbolic triple
	snapped, err := triangle.SnapTriangleParams(2.2, 3.1, 6.4, triangle.Locks{}, 2, 12)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("snapped (2.2, 3.1, 6.4) to (%d, %d, %d)\n", snapped.P, snapped.Q, snapped.R)

	k := &kaleido.Kernel{Tolerance: tol, Workers: 3, Logger: logger}
	results := k.Tile([]kaleido.TileRequest{
		{Name: "snapped", Geometry: kaleido.GeometryHyperbolic, P: float64(snapped.P), Q: float64(snapped.Q), R: float64(snapped.R), Depth: 10, MaxFaces: 4000},
		{Name: "334", Geometry: kaleido.GeometryHyperbolic, P: 3, Q: 3, R: 4, Depth: 8, MaxFaces: 4000},
		{Name: "244", Geometry: kaleido.GeometryEuclidean, P: 2, Q: 4, R: 4, Depth: 8},
	})

	grid := tiling.NewFaceGrid(nil, 0.1, 1024, tol)
	for _, res := range results {
		if res.Err != nil {
			log.Fatal(res.Err)
		}
		stats := res.Result.Stats
		fmt.Printf("%s: %d faces (depth %d, truncated %v)\n", res.Request.Name, stats.Total, stats.Depth, stats.Truncated)

		grid.Rebuild(res.Result.Faces)
		if face, ok := grid.Locate(mgl64.Vec2{0.2, 0.1}); ok {
			fmt.Printf("   face under (0.2, 0.1): %s\n", face.ID)
		}

		path := res.Request.Name + ".svg"
		if err := writeTiling(path, res, tol); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("   wrote %s\n", path)
	}
}
