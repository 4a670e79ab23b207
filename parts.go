package nxncube

import "fmt"

// Static descriptors for the cube's composite pieces. An edge of an NxN cube
// carries N-2 wing pieces between its two corners; a corner is always a
// single piece with three stickers. The descriptors are pure coordinate
// tables: they name where a piece's stickers sit, never what colors are
// there right now.

// PartSticker locates one sticker of a piece on the full face grid.
type PartSticker struct {
	Face Face
	Row  int
	Col  int
}

// EdgeSide is one of the two faces an edge touches, together with the
// coordinate rule for its wing cells. The rule takes the cube size and a
// 1-based position t along the edge (1..n-2) and yields a full-grid cell.
// Both sides of an edge use the same t for the same physical wing, so the
// pair (A.cell(n,t), B.cell(n,t)) always addresses one piece.
type EdgeSide struct {
	Face Face
	cell func(n, t int) (row, col int)
}

// Cell returns the full-grid cell of wing w (0-based, 0..n-3) on this side.
func (s EdgeSide) Cell(n, w int) (row, col int) {
	return s.cell(n, w+1)
}

// EdgeRef describes one of the twelve edges.
type EdgeRef struct {
	Name string
	A, B EdgeSide
}

// Faces returns the two faces the edge touches.
func (e EdgeRef) Faces() [2]Face {
	return [2]Face{e.A.Face, e.B.Face}
}

// Wings returns how many wing pieces the edge carries on a cube of size n.
func (e EdgeRef) Wings(n int) int {
	return n - 2
}

// Piece returns the two sticker locations of wing w.
func (e EdgeRef) Piece(n, w int) [2]PartSticker {
	ar, ac := e.A.Cell(n, w)
	br, bc := e.B.Cell(n, w)
	return [2]PartSticker{
		{Face: e.A.Face, Row: ar, Col: ac},
		{Face: e.B.Face, Row: br, Col: bc},
	}
}

// Touches reports whether the edge lies between the two given faces.
func (e EdgeRef) Touches(a, b Face) bool {
	return (e.A.Face == a && e.B.Face == b) || (e.A.Face == b && e.B.Face == a)
}

// CornerCell locates one sticker of a corner.
type CornerCell struct {
	Face Face
	cell func(n int) (row, col int)
}

// CornerRef describes one of the eight corners.
type CornerRef struct {
	Name  string
	Cells [3]CornerCell
}

// Piece returns the three sticker locations of the corner.
func (c CornerRef) Piece(n int) [3]PartSticker {
	var out [3]PartSticker
	for i, cc := range c.Cells {
		r, col := cc.cell(n)
		out[i] = PartSticker{Face: cc.Face, Row: r, Col: col}
	}
	return out
}

func buildEdges() []EdgeRef {
	side := func(f Face, cell func(n, t int) (row, col int)) EdgeSide {
		return EdgeSide{Face: f, cell: cell}
	}
	return []EdgeRef{
		{Name: "UF",
			A: side(FaceU, func(n, t int) (int, int) { return n - 1, t }),
			B: side(FaceF, func(n, t int) (int, int) { return 0, t })},
		{Name: "UR",
			A: side(FaceU, func(n, t int) (int, int) { return n - 1 - t, n - 1 }),
			B: side(FaceR, func(n, t int) (int, int) { return 0, t })},
		{Name: "UB",
			A: side(FaceU, func(n, t int) (int, int) { return 0, t }),
			B: side(FaceB, func(n, t int) (int, int) { return 0, n - 1 - t })},
		{Name: "UL",
			A: side(FaceU, func(n, t int) (int, int) { return t, 0 }),
			B: side(FaceL, func(n, t int) (int, int) { return 0, t })},
		{Name: "DF",
			A: side(FaceD, func(n, t int) (int, int) { return 0, t }),
			B: side(FaceF, func(n, t int) (int, int) { return n - 1, t })},
		{Name: "DR",
			A: side(FaceD, func(n, t int) (int, int) { return t, n - 1 }),
			B: side(FaceR, func(n, t int) (int, int) { return n - 1, t })},
		{Name: "DB",
			A: side(FaceD, func(n, t int) (int, int) { return n - 1, t }),
			B: side(FaceB, func(n, t int) (int, int) { return n - 1, n - 1 - t })},
		{Name: "DL",
			A: side(FaceD, func(n, t int) (int, int) { return t, 0 }),
			B: side(FaceL, func(n, t int) (int, int) { return n - 1, n - 1 - t })},
		{Name: "FR",
			A: side(FaceF, func(n, t int) (int, int) { return t, n - 1 }),
			B: side(FaceR, func(n, t int) (int, int) { return t, 0 })},
		{Name: "FL",
			A: side(FaceF, func(n, t int) (int, int) { return t, 0 }),
			B: side(FaceL, func(n, t int) (int, int) { return t, n - 1 })},
		{Name: "BR",
			A: side(FaceB, func(n, t int) (int, int) { return t, 0 }),
			B: side(FaceR, func(n, t int) (int, int) { return t, n - 1 })},
		{Name: "BL",
			A: side(FaceB, func(n, t int) (int, int) { return t, n - 1 }),
			B: side(FaceL, func(n, t int) (int, int) { return t, 0 })},
	}
}

func buildCorners() []CornerRef {
	cell := func(f Face, fn func(n int) (row, col int)) CornerCell {
		return CornerCell{Face: f, cell: fn}
	}
	return []CornerRef{
		{Name: "UFR", Cells: [3]CornerCell{
			cell(FaceU, func(n int) (int, int) { return n - 1, n - 1 }),
			cell(FaceF, func(n int) (int, int) { return 0, n - 1 }),
			cell(FaceR, func(n int) (int, int) { return 0, 0 }),
		}},
		{Name: "UFL", Cells: [3]CornerCell{
			cell(FaceU, func(n int) (int, int) { return n - 1, 0 }),
			cell(FaceF, func(n int) (int, int) { return 0, 0 }),
			cell(FaceL, func(n int) (int, int) { return 0, n - 1 }),
		}},
		{Name: "UBR", Cells: [3]CornerCell{
			cell(FaceU, func(n int) (int, int) { return 0, n - 1 }),
			cell(FaceB, func(n int) (int, int) { return 0, 0 }),
			cell(FaceR, func(n int) (int, int) { return 0, n - 1 }),
		}},
		{Name: "UBL", Cells: [3]CornerCell{
			cell(FaceU, func(n int) (int, int) { return 0, 0 }),
			cell(FaceB, func(n int) (int, int) { return 0, n - 1 }),
			cell(FaceL, func(n int) (int, int) { return 0, 0 }),
		}},
		{Name: "DFR", Cells: [3]CornerCell{
			cell(FaceD, func(n int) (int, int) { return 0, n - 1 }),
			cell(FaceF, func(n int) (int, int) { return n - 1, n - 1 }),
			cell(FaceR, func(n int) (int, int) { return n - 1, 0 }),
		}},
		{Name: "DFL", Cells: [3]CornerCell{
			cell(FaceD, func(n int) (int, int) { return 0, 0 }),
			cell(FaceF, func(n int) (int, int) { return n - 1, 0 }),
			cell(FaceL, func(n int) (int, int) { return n - 1, n - 1 }),
		}},
		{Name: "DBR", Cells: [3]CornerCell{
			cell(FaceD, func(n int) (int, int) { return n - 1, n - 1 }),
			cell(FaceB, func(n int) (int, int) { return n - 1, 0 }),
			cell(FaceR, func(n int) (int, int) { return n - 1, n - 1 }),
		}},
		{Name: "DBL", Cells: [3]CornerCell{
			cell(FaceD, func(n int) (int, int) { return n - 1, 0 }),
			cell(FaceB, func(n int) (int, int) { return n - 1, n - 1 }),
			cell(FaceL, func(n int) (int, int) { return n - 1, 0 }),
		}},
	}
}

// EdgeBetween returns the edge descriptor lying between two adjacent faces.
func (c *Cube) EdgeBetween(a, b Face) EdgeRef {
	for _, e := range c.edges {
		if e.Touches(a, b) {
			return e
		}
	}
	panic(fmt.Sprintf("nxncube: no edge between %s and %s", a, b))
}

// EdgeWingColors returns the two sticker colors of wing w on the given edge,
// in descriptor side order.
func (c *Cube) EdgeWingColors(e EdgeRef, w int) [2]Color {
	p := e.Piece(c.n, w)
	return [2]Color{
		c.ColorAt(p[0].Face, p[0].Row, p[0].Col),
		c.ColorAt(p[1].Face, p[1].Row, p[1].Col),
	}
}

// CornerColors returns the three sticker colors of the corner, in descriptor
// cell order.
func (c *Cube) CornerColors(cr CornerRef) [3]Color {
	p := cr.Piece(c.n)
	return [3]Color{
		c.ColorAt(p[0].Face, p[0].Row, p[0].Col),
		c.ColorAt(p[1].Face, p[1].Row, p[1].Col),
		c.ColorAt(p[2].Face, p[2].Row, p[2].Col),
	}
}
