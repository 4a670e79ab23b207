package nxncube

import (
	"fmt"
	"strings"
)

// TagKind identifies a sticker tag channel. The set is closed: each consumer
// owns one kind, which keeps unrelated subsystems from colliding on keys.
type TagKind uint8

const (
	TagTracker TagKind = iota // face trackers marking a center sticker
	TagDebug                  // ad-hoc diagnostics
	TagProbe                  // test harness markers
)

// Sticker is a single colored cell. Tags ride along with the sticker through
// every rotation; the map is allocated lazily since almost all stickers are
// untagged.
type Sticker struct {
	Color Color
	tags  map[TagKind]string
}

// SetTag attaches a payload to the given tag channel.
func (s *Sticker) SetTag(k TagKind, v string) {
	if s.tags == nil {
		s.tags = make(map[TagKind]string, 1)
	}
	s.tags[k] = v
}

// Tag returns the payload on the given channel, if any.
func (s *Sticker) Tag(k TagKind) (string, bool) {
	v, ok := s.tags[k]
	return v, ok
}

// ClearTag removes the payload on the given channel.
func (s *Sticker) ClearTag(k TagKind) {
	delete(s.tags, k)
}

// Cube is an NxN cube held as a flat sticker arena: six faces of N*N
// stickers each, row-major, plus static edge and corner descriptors.
// Every mutating move bumps the modify counter, which downstream caches
// (face trackers in particular) use for invalidation.
type Cube struct {
	n        int
	stickers [6][]Sticker
	modCount uint64
	edges    []EdgeRef
	corners  []CornerRef
}

// NewCube creates a solved cube of the given size in standard orientation
// (White up, Green front). Panics if n < 2.
func NewCube(n int) *Cube {
	if n < 2 {
		panic(fmt.Sprintf("nxncube: cube size must be at least 2, got %d", n))
	}
	c := &Cube{n: n}
	for _, f := range AllFaces {
		cells := make([]Sticker, n*n)
		color := SolvedColor(f)
		for i := range cells {
			cells[i].Color = color
		}
		c.stickers[f] = cells
	}
	c.edges = buildEdges()
	c.corners = buildCorners()
	return c
}

// Size returns the cube dimension N.
func (c *Cube) Size() int { return c.n }

// CenterSize returns the dimension of each face's center grid (N-2).
func (c *Cube) CenterSize() int { return c.n - 2 }

// ModCount returns the mutation counter. It increases by exactly one for
// every applied move.
func (c *Cube) ModCount() uint64 { return c.modCount }

func (c *Cube) at(f Face, row, col int) *Sticker {
	return &c.stickers[f][row*c.n+col]
}

// ColorAt returns the color at a full-grid cell of a face.
func (c *Cube) ColorAt(f Face, row, col int) Color {
	return c.at(f, row, col).Color
}

// CenterSticker returns the sticker at a center-grid cell of a face.
func (c *Cube) CenterSticker(f Face, p Coord) *Sticker {
	return c.at(f, p.Row+1, p.Col+1)
}

// CenterColor returns the color at a center-grid cell of a face.
func (c *Cube) CenterColor(f Face, p Coord) Color {
	return c.CenterSticker(f, p).Color
}

// MiddleColor returns the color of the fixed middle sticker of a face.
// Only meaningful on odd cubes, where that sticker never moves off the face.
func (c *Cube) MiddleColor(f Face) Color {
	return c.at(f, c.n/2, c.n/2).Color
}

// CenterMonochrome reports whether every cell of a face's center grid holds
// the same color, and returns that color. A 1x1 (or empty) grid is trivially
// monochrome.
func (c *Cube) CenterMonochrome(f Face) (Color, bool) {
	m := c.CenterSize()
	if m <= 0 {
		return SolvedColor(f), true
	}
	first := c.CenterColor(f, Coord{0, 0})
	for r := 0; r < m; r++ {
		for col := 0; col < m; col++ {
			if c.CenterColor(f, Coord{r, col}) != first {
				return first, false
			}
		}
	}
	return first, true
}

// CentersReduced reports whether all six center grids are monochrome and
// their colors form a permutation of the six canonical colors with valid
// opposite pairs.
func (c *Cube) CentersReduced() bool {
	var colors [6]Color
	for _, f := range AllFaces {
		col, ok := c.CenterMonochrome(f)
		if !ok {
			return false
		}
		colors[f] = col
	}
	seen := make(map[Color]bool, 6)
	for _, f := range AllFaces {
		if seen[colors[f]] {
			return false
		}
		seen[colors[f]] = true
	}
	for _, f := range AllFaces {
		if colors[Opposite(f)] != OppositeColor(colors[f]) {
			return false
		}
	}
	return true
}

// IsSolved reports whether every face is entirely one color and the six
// face colors form a valid scheme. Whole-cube rotations of a solved cube
// still count as solved.
func (c *Cube) IsSolved() bool {
	var colors [6]Color
	for _, f := range AllFaces {
		first := c.ColorAt(f, 0, 0)
		for i := range c.stickers[f] {
			if c.stickers[f][i].Color != first {
				return false
			}
		}
		colors[f] = first
	}
	for _, f := range AllFaces {
		if colors[Opposite(f)] != OppositeColor(colors[f]) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the cube, including sticker tags.
func (c *Cube) Clone() *Cube {
	clone := &Cube{n: c.n, modCount: c.modCount, edges: c.edges, corners: c.corners}
	for _, f := range AllFaces {
		cells := make([]Sticker, len(c.stickers[f]))
		copy(cells, c.stickers[f])
		for i := range cells {
			if cells[i].tags != nil {
				tags := make(map[TagKind]string, len(cells[i].tags))
				for k, v := range cells[i].tags {
					tags[k] = v
				}
				cells[i].tags = tags
			}
		}
		clone.stickers[f] = cells
	}
	return clone
}

// Edges returns the cube's twelve static edge descriptors.
func (c *Cube) Edges() []EdgeRef { return c.edges }

// Corners returns the cube's eight static corner descriptors.
func (c *Cube) Corners() []CornerRef { return c.corners }

// ColorCounts returns how many stickers of each color the cube holds.
// Legal moves never change this histogram.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 6)
	for _, f := range AllFaces {
		for i := range c.stickers[f] {
			counts[c.stickers[f][i].Color]++
		}
	}
	return counts
}

// String renders the cube as an unfolded net: U on top, then L F R B side
// by side, then D.
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat(" ", 2*c.n)
	writeRow := func(f Face, row int) {
		for col := 0; col < c.n; col++ {
			b.WriteString(c.ColorAt(f, row, col).String())
			b.WriteByte(' ')
		}
	}
	for row := 0; row < c.n; row++ {
		b.WriteString(indent)
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		b.WriteString(indent)
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}
	return b.String()
}
