// Package kaleido runs batches of tiling requests over the geometry kernel:
// each request builds a fundamental (p,q,r) triangle and expands it into a
// tessellation. Requests are independent and are spread over a worker pool.
package kaleido

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/akmonengine/kaleido/boundary"
	"github.com/akmonengine/kaleido/numeric"
	"github.com/akmonengine/kaleido/tiling"
	"github.com/akmonengine/kaleido/triangle"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// ErrUnknownGeometry is returned for a request whose geometry cannot be tiled.
var ErrUnknownGeometry = errors.New("kaleido: unknown geometry")

// Geometry selects the space a request is tiled in.
type Geometry int

const (
	GeometryHyperbolic Geometry = iota
	GeometryEuclidean
)

func (g Geometry) String() string {
	switch g {
	case GeometryHyperbolic:
		return "hyperbolic"
	case GeometryEuclidean:
		return "euclidean"
	}
	return "unknown"
}

// TileRequest asks for the tiling of the (P,Q,R) triangle up to Depth
// reflection levels. MaxFaces <= 0 means no cap.
type TileRequest struct {
	Name     string
	Geometry Geometry
	P, Q, R  float64
	Depth    int
	MaxFaces int
}

// TileResult pairs a request with its outcome. Vertices holds the
// fundamental triangle when it could be built.
type TileResult struct {
	Request  TileRequest
	Vertices [3]mgl64.Vec2
	Result   tiling.Result
	Err      error
}

type Kernel struct {
	// Tolerance used by the builders; the zero value means numeric.DefaultTolerance().
	Tolerance numeric.Tolerance
	Workers   int
	// Logger receives diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// Tile runs every request and returns the results in request order. It can
// be called from several goroutines at once.
func (k *Kernel) Tile(reqs []TileRequest) []TileResult {
	kc := k.resolved()

	results := make([]TileResult, len(reqs))
	task(kc.Workers, reqs, func(i int, req TileRequest) {
		results[i] = kc.tile(req)
	})
	return results
}

// resolved returns a copy of k with defaults filled in.
func (k *Kernel) resolved() Kernel {
	kc := *k
	kc.Workers = max(DEFAULT_WORKERS, kc.Workers)
	if kc.Logger == nil {
		kc.Logger = slog.Default()
	}
	if kc.Tolerance == (numeric.Tolerance{}) {
		kc.Tolerance = numeric.DefaultTolerance()
	}
	return kc
}

func (k *Kernel) tile(req TileRequest) TileResult {
	logger := k.Logger.With("request", req.Name, "geometry", req.Geometry.String())
	tilingOpts := []tiling.Option{tiling.WithMaxFaces(req.MaxFaces), tiling.WithLogger(logger)}
	triangleOpts := []triangle.Option{triangle.WithTolerance(k.Tolerance), triangle.WithLogger(logger)}

	out := TileResult{Request: req}
	var err error
	switch req.Geometry {
	case GeometryHyperbolic:
		var tri triangle.Hyperbolic
		tri, err = triangle.BuildHyperbolic(req.P, req.Q, req.R, triangleOpts...)
		if err == nil {
			out.Vertices = tri.Vertices
			out.Result, err = tiling.ExpandHyperbolic(tri, req.Depth, tilingOpts...)
		}
	case GeometryEuclidean:
		var tri triangle.PrimitiveSet[boundary.HalfPlane]
		tri, err = triangle.BuildEuclidean(req.P, req.Q, req.R, triangleOpts...)
		if err == nil {
			out.Vertices = tri.Vertices
			out.Result, err = tiling.ExpandEuclidean(tri, req.Depth, tilingOpts...)
		}
	default:
		err = ErrUnknownGeometry
	}

	if err != nil {
		out.Err = fmt.Errorf("%s: %w", req.Name, err)
		logger.Error("kaleido: tiling request failed", "err", err)
	}
	return out
}
