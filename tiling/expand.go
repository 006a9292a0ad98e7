// Package tiling expands a fundamental triangle into a tessellation by
// repeatedly reflecting it across its own mirrors, breadth first.
//
// The expansion is generic over the mirror type: it only needs a function
// turning a mirror into a point reflection. Faces reached through different
// generator words are deduplicated on their quantized barycenter, and the
// result is sorted into a canonical order so identical inputs always give
// identical face sequences.
package tiling

import (
	"fmt"
	"math"
	"sort"

	"github.com/akmonengine/kaleido/boundary"
	"github.com/akmonengine/kaleido/numeric"
	"github.com/akmonengine/kaleido/transform"
	"github.com/akmonengine/kaleido/triangle"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
)

// Quantum is the grid step used to quantize barycenters into dedup keys.
const Quantum = 1e-9

// Face is one triangle of the tiling.
type Face struct {
	// ID is Word and the quantized barycenter key joined by '@'.
	ID    string
	Verts [3]mgl64.Vec2
	AABB  r2.Rect
	// Word lists the 1-based mirror indices applied from the root, "" for
	// the root itself.
	Word string
}

// Barycenter is the mean of the face vertices.
func (f Face) Barycenter() mgl64.Vec2 {
	return f.Verts[0].Add(f.Verts[1]).Add(f.Verts[2]).Mul(1.0 / 3)
}

// Stats summarizes an expansion.
type Stats struct {
	Depth int
	Total int
	// Truncated is set when MaxFaces stopped the expansion early.
	Truncated bool
}

// Result is the canonical face list of an expansion.
type Result struct {
	Faces []Face
	Stats Stats
}

// Reflector turns a mirror into the reflection across it.
type Reflector[M any] func(M) func(mgl64.Vec2) mgl64.Vec2

type node struct {
	// xf maps the base triangle onto this face
	xf   func(mgl64.Vec2) mgl64.Vec2
	word string
}

func identity(p mgl64.Vec2) mgl64.Vec2 { return p }

func barycenterKey(v [3]mgl64.Vec2) string {
	b := v[0].Add(v[1]).Add(v[2]).Mul(1.0 / 3)
	return fmt.Sprintf("%d,%d", int64(math.Round(b.X()/Quantum)), int64(math.Round(b.Y()/Quantum)))
}

func newFace(verts [3]mgl64.Vec2, word, key string) Face {
	return Face{
		ID:    word + "@" + key,
		Verts: verts,
		AABB: r2.RectFromPoints(
			r2.Point{X: verts[0].X(), Y: verts[0].Y()},
			r2.Point{X: verts[1].X(), Y: verts[1].Y()},
			r2.Point{X: verts[2].X(), Y: verts[2].Y()},
		),
		Word: word,
	}
}

// ExpandTriangleGroup tiles base up to depth reflection levels.
//
// Each face is reflected across its own three mirrors, the images of the
// base mirrors under the face transform; a child transform is the parent
// transform composed with a base reflection, so only base mirrors are ever
// reflected across. Children whose barycenter key was already seen are
// dropped. Faces with non-finite vertices are skipped.
func ExpandTriangleGroup[M any](base triangle.PrimitiveSet[M], depth int, reflect Reflector[M], opts ...Option) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("depth %d: %w", depth, ErrNegativeDepth)
	}
	cfg := newConfig(opts)

	var mirrors [3]func(mgl64.Vec2) mgl64.Vec2
	for i, m := range base.Mirrors {
		mirrors[i] = reflect(m)
	}

	rootKey := barycenterKey(base.Vertices)
	faces := []Face{newFace(base.Vertices, "", rootKey)}
	seen := map[string]bool{rootKey: true}
	queue := []node{{xf: identity}}
	stats := Stats{Depth: depth}

levels:
	for level := 0; level < depth && len(queue) > 0; level++ {
		var next []node
		for _, parent := range queue {
			for i, r := range mirrors {
				parent, r := parent, r // per-iteration copies for the closure below (pre-Go 1.22 loop semantics)
				xf := func(p mgl64.Vec2) mgl64.Vec2 { return parent.xf(r(p)) }

				var verts [3]mgl64.Vec2
				finite := true
				for k, v := range base.Vertices {
					verts[k] = xf(v)
					finite = finite && numeric.IsFiniteVec2(verts[k])
				}
				if !finite {
					continue
				}

				key := barycenterKey(verts)
				if seen[key] {
					continue
				}
				if cfg.MaxFaces > 0 && len(faces) >= cfg.MaxFaces {
					stats.Truncated = true
					break levels
				}
				seen[key] = true

				word := parent.word + string(rune('1'+i))
				faces = append(faces, newFace(verts, word, key))
				next = append(next, node{xf: xf, word: word})
			}
		}
		queue = next
	}

	if stats.Truncated {
		cfg.Logger.Warn("tiling: expansion truncated", "depth", depth, "maxFaces", cfg.MaxFaces)
	}

	sort.Slice(faces, func(i, j int) bool {
		a, b := faces[i], faces[j]
		if len(a.Word) != len(b.Word) {
			return len(a.Word) < len(b.Word)
		}
		if a.Word != b.Word {
			return a.Word < b.Word
		}
		return a.ID < b.ID
	})

	stats.Total = len(faces)
	return Result{Faces: faces, Stats: stats}, nil
}

// ExpandHyperbolic tiles a Poincaré-disk triangle.
func ExpandHyperbolic(tri triangle.Hyperbolic, depth int, opts ...Option) (Result, error) {
	return ExpandTriangleGroup(tri.PrimitiveSet, depth, transform.GeodesicReflector, opts...)
}

// ExpandEuclidean tiles a Euclidean triangle.
func ExpandEuclidean(tri triangle.PrimitiveSet[boundary.HalfPlane], depth int, opts ...Option) (Result, error) {
	return ExpandTriangleGroup(tri, depth, transform.HalfPlaneReflector, opts...)
}
