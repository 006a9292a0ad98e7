package tiling

import (
	"math"
	"slices"
	"sort"

	"github.com/akmonengine/kaleido/numeric"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
)

// CellKey is the integer coordinate of a grid cell.
type CellKey struct {
	X, Y int
}

// Cell holds the indices of the faces whose AABB overlaps it.
type Cell struct {
	faceIndices []int
}

// FaceGrid is a uniform hashed grid over face bounding boxes, used to find
// the face under a point without scanning the whole tiling.
type FaceGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
	faces    []Face
	tol      numeric.Tolerance
}

// NewFaceGrid indexes faces. numCells is rounded up to a power of two. tol
// widens the face boxes and the edge tests of Locate.
func NewFaceGrid(faces []Face, cellSize float64, numCells int, tol numeric.Tolerance) *FaceGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].faceIndices = make([]int, 0, 8)
	}

	g := &FaceGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
		tol:      tol,
	}
	g.Rebuild(faces)
	return g
}

// Rebuild replaces the indexed faces, reusing the cell storage.
func (g *FaceGrid) Rebuild(faces []Face) {
	for i := range g.cells {
		g.cells[i].faceIndices = g.cells[i].faceIndices[:0]
	}
	g.faces = faces
	for i, f := range faces {
		g.Insert(i, f.AABB)
	}
	g.SortCells()
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert adds faceIndex to every cell the box covers.
func (g *FaceGrid) Insert(faceIndex int, box r2.Rect) {
	minCell := g.worldToCell(box.Lo())
	maxCell := g.worldToCell(box.Hi())

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			cellIdx := g.hashCell(CellKey{x, y})
			g.cells[cellIdx].faceIndices = append(g.cells[cellIdx].faceIndices, faceIndex)
		}
	}
}

// SortCells restores ascending, duplicate-free indices in every cell.
// Hash collisions can put one face twice in the same cell.
func (g *FaceGrid) SortCells() {
	for i := range g.cells {
		if len(g.cells[i].faceIndices) > 1 {
			sort.Ints(g.cells[i].faceIndices)
			g.cells[i].faceIndices = slices.Compact(g.cells[i].faceIndices)
		}
	}
}

// Candidates returns the indices of the faces that may contain p, ascending.
// The slice is owned by the grid.
func (g *FaceGrid) Candidates(p mgl64.Vec2) []int {
	if !numeric.IsFiniteVec2(p) {
		return nil
	}
	key := g.worldToCell(r2.Point{X: p.X(), Y: p.Y()})
	return g.cells[g.hashCell(key)].faceIndices
}

// Locate returns the first face, in canonical order, whose straight-edged
// triangle contains p. Hyperbolic faces are approximated by their chords.
func (g *FaceGrid) Locate(p mgl64.Vec2) (Face, bool) {
	for _, idx := range g.Candidates(p) {
		f := g.faces[idx]
		box := f.AABB.ExpandedByMargin(g.tol.Eps(1))
		if !box.ContainsPoint(r2.Point{X: p.X(), Y: p.Y()}) {
			continue
		}
		if triangleContains(f.Verts, p, g.tol) {
			return f, true
		}
	}
	return Face{}, false
}

// triangleContains is an orientation-independent sign test on the three
// edge cross products.
func triangleContains(v [3]mgl64.Vec2, p mgl64.Vec2, tol numeric.Tolerance) bool {
	eps := tol.Eps(1)
	var pos, neg bool
	for i := 0; i < 3; i++ {
		a, b := v[i], v[(i+1)%3]
		c := numeric.Cross2(b.Sub(a), p.Sub(a))
		if c > eps {
			pos = true
		} else if c < -eps {
			neg = true
		}
	}
	return !(pos && neg)
}

func (g *FaceGrid) worldToCell(pos r2.Point) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X / g.cellSize)),
		Y: int(math.Floor(pos.Y / g.cellSize)),
	}
}

func (g *FaceGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663)
	return h & g.cellMask
}
