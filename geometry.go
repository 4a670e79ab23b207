package nxncube

import "fmt"

// Geometry answers coordinate questions about the slices of a fixed-size
// cube: where layer (depth, slot) positions land on each face of a slice's
// cycle, and how a cell on one face corresponds to a cell on another face of
// the same cycle. All answers come from the same strip tables that drive the
// actual rotations, so geometry and rotation agree by construction.
type Geometry struct {
	n     int
	inv   [3][6][]pointIndex // per slice, per face: full-grid cell -> (depth, slot)
	edges []EdgeRef
}

type pointIndex struct {
	depth, slot int
}

// NewGeometry builds the lookup tables for a cube of size n.
func NewGeometry(n int) *Geometry {
	if n < 2 {
		panic(fmt.Sprintf("nxncube: geometry needs size >= 2, got %d", n))
	}
	g := &Geometry{n: n, edges: buildEdges()}
	for _, s := range []SliceName{SliceM, SliceE, SliceS} {
		ref := ReferenceFace(s)
		for k, f := range layerCycle[ref] {
			table := make([]pointIndex, n*n)
			for d := 0; d < n; d++ {
				for j := 0; j < n; j++ {
					r, c := stripCell(ref, k, n, d, j)
					table[r*n+c] = pointIndex{depth: d, slot: j}
				}
			}
			g.inv[s][f] = table
		}
	}
	return g
}

// Size returns the cube dimension the geometry was built for.
func (g *Geometry) Size() int { return g.n }

func (g *Geometry) cyclePos(s SliceName, f Face) int {
	for k, cf := range CycleOrder(s) {
		if cf == f {
			return k
		}
	}
	panic(fmt.Sprintf("nxncube: face %s is not on slice %s", f, s))
}

// Point returns the full-grid cell on face f occupied by slot j of the
// slice's layer at the given depth (0 = the layer at the reference face).
func (g *Geometry) Point(s SliceName, f Face, depth, slot int) (row, col int) {
	k := g.cyclePos(s, f)
	return stripCell(ReferenceFace(s), k, g.n, depth, slot)
}

// Locate is the inverse of Point: it returns which (depth, slot) of the
// slice the given full-grid cell of f belongs to.
func (g *Geometry) Locate(s SliceName, f Face, row, col int) (depth, slot int) {
	table := g.inv[s][f]
	if table == nil {
		panic(fmt.Sprintf("nxncube: face %s is not on slice %s", f, s))
	}
	p := table[row*g.n+col]
	return p.depth, p.slot
}

// Transform maps a cell on one face of a slice's cycle to the cell on
// another face of the same cycle holding the same (depth, slot) position.
// This is exactly where a positive slice rotation carries content as it
// steps from face to face.
func (g *Geometry) Transform(s SliceName, from, to Face, row, col int) (int, int) {
	d, j := g.Locate(s, from, row, col)
	return g.Point(s, to, d, j)
}

// TransformType describes how a slice's Transform between two faces acts on
// the face grid. Every such transform is a pure rotation of the grid, which
// is what keeps center orbits intact across face transfers.
type TransformType int

const (
	TransformIdentity TransformType = iota
	TransformCW
	TransformCCW
	Transform180
)

func (t TransformType) String() string {
	switch t {
	case TransformIdentity:
		return "identity"
	case TransformCW:
		return "cw"
	case TransformCCW:
		return "ccw"
	case Transform180:
		return "180"
	default:
		return "?"
	}
}

// Inverse returns the rotation undoing this one.
func (t TransformType) Inverse() TransformType {
	switch t {
	case TransformCW:
		return TransformCCW
	case TransformCCW:
		return TransformCW
	default:
		return t
	}
}

// Apply maps a full-grid cell through the rotation on an n-sized grid.
func (t TransformType) Apply(n, row, col int) (int, int) {
	switch t {
	case TransformIdentity:
		return row, col
	case TransformCW:
		return col, n - 1 - row
	case TransformCCW:
		return n - 1 - col, row
	case Transform180:
		return n - 1 - row, n - 1 - col
	default:
		panic(fmt.Sprintf("nxncube: unknown transform type %d", int(t)))
	}
}

// ApplyCenter maps a center-grid coordinate through the rotation on an
// m-sized center grid.
func (t TransformType) ApplyCenter(m int, p Coord) Coord {
	r, c := t.Apply(m, p.Row, p.Col)
	return Coord{Row: r, Col: c}
}

// TransformKind classifies the Transform between two faces of a slice's
// cycle by probing a corner: a grid rotation is fully determined by where it
// sends (0,0).
func (g *Geometry) TransformKind(s SliceName, from, to Face) TransformType {
	r, c := g.Transform(s, from, to, 0, 0)
	n := g.n
	switch {
	case r == 0 && c == 0:
		return TransformIdentity
	case r == 0 && c == n-1:
		return TransformCW
	case r == n-1 && c == 0:
		return TransformCCW
	case r == n-1 && c == n-1:
		return Transform180
	default:
		panic(fmt.Sprintf("nxncube: transform %s->%s on %s is not a rotation", from, to, s))
	}
}

// WalkStep is one stop on a slice's cycle: the face, and the edge crossed
// when entering it from the previous face of the cycle.
type WalkStep struct {
	Face  Face
	Entry EdgeRef
}

// Walk returns the slice's four faces in content-flow order, each with the
// edge a positive rotation carries content across to reach it.
func (g *Geometry) Walk(s SliceName) [4]WalkStep {
	cycle := CycleOrder(s)
	var out [4]WalkStep
	for k, f := range cycle {
		prev := cycle[(k+3)%4]
		out[k] = WalkStep{Face: f, Entry: g.edgeBetween(prev, f)}
	}
	return out
}

func (g *Geometry) edgeBetween(a, b Face) EdgeRef {
	for _, e := range g.edges {
		if e.Touches(a, b) {
			return e
		}
	}
	panic(fmt.Sprintf("nxncube: no edge between %s and %s", a, b))
}

// OrthogonalCenterRing returns the center-grid cells on a neighbor face that
// move when the layer of turnFace at the given depth turns. Outer layers
// (depth 0 or n-1) touch no center cells on neighbors and yield nil.
func (g *Geometry) OrthogonalCenterRing(turnFace, onFace Face, depth int) []Coord {
	n := g.n
	k := -1
	for i, f := range layerCycle[turnFace] {
		if f == onFace {
			k = i
		}
	}
	if k < 0 {
		panic(fmt.Sprintf("nxncube: face %s is not a neighbor of %s", onFace, turnFace))
	}
	var out []Coord
	for j := 0; j < n; j++ {
		r, c := stripCell(turnFace, k, n, depth, j)
		if r >= 1 && r <= n-2 && c >= 1 && c <= n-2 {
			out = append(out, Coord{Row: r - 1, Col: c - 1})
		}
	}
	return out
}
