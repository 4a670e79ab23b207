package nxncube

import "fmt"

// Layer rotation is driven by one table: for each rotation face, the four
// neighbor faces in content-flow order for a clockwise turn, and the cell
// each (depth, slot) position occupies on each of those neighbors. The
// geometry layer derives its walking info from this same table, so the
// coordinate math and the actual rotations can never disagree.

// layerCycle lists the four faces a layer of the given rotation face cuts
// across, in content-flow order for a clockwise turn: content on the face at
// position k moves to the face at position k+1.
var layerCycle = [6][4]Face{
	FaceU: {FaceF, FaceL, FaceB, FaceR},
	FaceD: {FaceF, FaceR, FaceB, FaceL},
	FaceF: {FaceU, FaceR, FaceD, FaceL},
	FaceB: {FaceU, FaceL, FaceD, FaceR},
	FaceR: {FaceU, FaceB, FaceD, FaceF},
	FaceL: {FaceU, FaceF, FaceD, FaceB},
}

// stripCell returns the full-grid cell on layerCycle[f][k] occupied by slot
// j of the layer at depth d (0 = the layer at face f itself). Slots are
// aligned across the four faces: one clockwise step of the layer moves the
// sticker at (f, k, d, j) to the identical (d, j) position at k+1.
func stripCell(f Face, k, n, d, j int) (row, col int) {
	switch f {
	case FaceU:
		return d, j
	case FaceD:
		return n - 1 - d, j
	case FaceF:
		switch k {
		case 0: // U
			return n - 1 - d, j
		case 1: // R
			return j, d
		case 2: // D
			return d, n - 1 - j
		default: // L
			return n - 1 - j, n - 1 - d
		}
	case FaceB:
		switch k {
		case 0: // U
			return d, n - 1 - j
		case 1: // L
			return j, d
		case 2: // D
			return n - 1 - d, j
		default: // R
			return n - 1 - j, n - 1 - d
		}
	case FaceR:
		switch k {
		case 0: // U
			return j, n - 1 - d
		case 1: // B
			return n - 1 - j, d
		case 2: // D
			return j, n - 1 - d
		default: // F
			return j, n - 1 - d
		}
	case FaceL:
		switch k {
		case 0: // U
			return j, d
		case 1: // F
			return j, d
		case 2: // D
			return j, d
		default: // B
			return n - 1 - j, n - 1 - d
		}
	default:
		panic(fmt.Sprintf("nxncube: unknown face %d", int(f)))
	}
}

// rotateLayer turns the layer at the given depth of face f by count quarter
// turns clockwise (negative counts turn counter-clockwise). Depth 0 also
// rotates f's own grid; depth n-1 rotates the opposite face's grid the other
// way, which is what makes whole-cube rotations come out right.
func (c *Cube) rotateLayer(f Face, depth, count int) {
	cnt := ((count % 4) + 4) % 4
	for i := 0; i < cnt; i++ {
		c.rotateLayerOnce(f, depth)
	}
}

func (c *Cube) rotateLayerOnce(f Face, depth int) {
	n := c.n
	cycle := layerCycle[f]
	for j := 0; j < n; j++ {
		r3, c3 := stripCell(f, 3, n, depth, j)
		saved := *c.at(cycle[3], r3, c3)
		for k := 3; k > 0; k-- {
			rk, ck := stripCell(f, k, n, depth, j)
			rp, cp := stripCell(f, k-1, n, depth, j)
			*c.at(cycle[k], rk, ck) = *c.at(cycle[k-1], rp, cp)
		}
		r0, c0 := stripCell(f, 0, n, depth, j)
		*c.at(cycle[0], r0, c0) = saved
	}
	if depth == 0 {
		c.rotateGridCW(f)
	}
	if depth == n-1 {
		c.rotateGridCCW(Opposite(f))
	}
}

func (c *Cube) rotateGridCW(f Face) {
	n := c.n
	old := make([]Sticker, n*n)
	copy(old, c.stickers[f])
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			c.stickers[f][r*n+col] = old[(n-1-col)*n+r]
		}
	}
}

func (c *Cube) rotateGridCCW(f Face) {
	n := c.n
	old := make([]Sticker, n*n)
	copy(old, c.stickers[f])
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			c.stickers[f][r*n+col] = old[col*n+(n-1-r)]
		}
	}
}

// Apply performs a single move on the cube and bumps the modify counter.
// Slice indices are validated; an out-of-range index is a programmer error.
func (c *Cube) Apply(m Move) {
	switch m.Kind {
	case FaceTurn:
		c.rotateLayer(m.Face, 0, m.Count)
	case SliceTurn:
		if m.Index < 1 || m.Index > c.n-2 {
			panic(fmt.Sprintf("nxncube: slice index %d out of range for size %d", m.Index, c.n))
		}
		c.rotateLayer(ReferenceFace(m.Slice), m.Index, m.Count)
	case CubeRotation:
		var f Face
		switch m.Axis {
		case AxisX:
			f = FaceR
		case AxisY:
			f = FaceU
		case AxisZ:
			f = FaceF
		default:
			panic(fmt.Sprintf("nxncube: unknown axis %d", int(m.Axis)))
		}
		for d := 0; d < c.n; d++ {
			c.rotateLayer(f, d, m.Count)
		}
	default:
		panic(fmt.Sprintf("nxncube: unknown move kind %d", int(m.Kind)))
	}
	c.modCount++
}

// ApplyAlg applies a sequence of moves in order.
func (c *Cube) ApplyAlg(alg Algorithm) {
	for _, m := range alg {
		c.Apply(m)
	}
}
