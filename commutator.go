package nxncube

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// SearchMode selects what counts as a usable source block.
type SearchMode int

const (
	// CompleteBlock requires every source cell feeding the block to hold
	// the wanted color.
	CompleteBlock SearchMode = iota
	// ExactMatch additionally requires every target cell of the block to
	// lack the color, so the move wastes nothing.
	ExactMatch
	// BigThanSource accepts any rotation where the source delivers strictly
	// more wanted cells than the target block already shows.
	BigThanSource
)

func (m SearchMode) String() string {
	switch m {
	case CompleteBlock:
		return "complete"
	case ExactMatch:
		return "exact"
	case BigThanSource:
		return "bigger"
	default:
		return "?"
	}
}

// Block is an inclusive rectangle of center-grid cells.
type Block struct {
	R1, C1 int
	R2, C2 int
}

// BlockAt returns the 1x1 block holding a single cell.
func BlockAt(p Coord) Block {
	return Block{R1: p.Row, C1: p.Col, R2: p.Row, C2: p.Col}
}

// Size returns the number of cells in the block.
func (b Block) Size() int {
	return (b.R2 - b.R1 + 1) * (b.C2 - b.C1 + 1)
}

// Cells lists the block's cells in row-major order.
func (b Block) Cells() []Coord {
	out := make([]Coord, 0, b.Size())
	for r := b.R1; r <= b.R2; r++ {
		for c := b.C1; c <= b.C2; c++ {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// Contains reports whether the cell lies inside the block.
func (b Block) Contains(p Coord) bool {
	return p.Row >= b.R1 && p.Row <= b.R2 && p.Col >= b.C1 && p.Col <= b.C2
}

// Rotate maps the block through a grid rotation on an m-sized center grid.
func (b Block) Rotate(m int, t TransformType) Block {
	p := t.ApplyCenter(m, Coord{Row: b.R1, Col: b.C1})
	q := t.ApplyCenter(m, Coord{Row: b.R2, Col: b.C2})
	return Block{
		R1: min(p.Row, q.Row), C1: min(p.Col, q.Col),
		R2: max(p.Row, q.Row), C2: max(p.Col, q.Col),
	}
}

// Engine builds and executes block commutators: 8-move sequences that
// 3-cycle a rectangular block of center stickers from a source face onto a
// target face while leaving every other sticker of the cube untouched. That
// locality is what lets the center solver run without breaking anything it
// has already built.
type Engine struct {
	player *Player
	cube   *Cube
	geo    *Geometry
	trans  *Translator
	cfg    config
	stats  map[int]int
}

// NewEngine creates an engine playing through the given player.
func NewEngine(p *Player, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	geo := NewGeometry(p.Cube().Size())
	return &Engine{
		player: p,
		cube:   p.Cube(),
		geo:    geo,
		trans:  NewTranslator(geo),
		cfg:    cfg,
		stats:  make(map[int]int),
	}
}

// Translator exposes the engine's coordinate translator.
func (e *Engine) Translator() *Translator { return e.trans }

// Geometry exposes the engine's geometry tables.
func (e *Engine) Geometry() *Geometry { return e.geo }

// sourceCell returns the center cell on the source face whose content the
// translation delivers to target cell p, before any setup rotation.
func (e *Engine) sourceCell(source, target Face, p Coord) Coord {
	return e.trans.Translate(source, target, p).SourceCoord
}

// SearchBlock looks for a setup rotation of the source face under which the
// source delivers the wanted color into the target block. It returns the
// number of clockwise quarter turns to apply to the source face first.
func (e *Engine) SearchBlock(target, source Face, color Color, mode SearchMode, block Block) (rotation int, ok bool) {
	m := e.cube.CenterSize()
	cells := block.Cells()
	have := 0
	if mode == BigThanSource {
		for _, p := range cells {
			if e.cube.CenterColor(target, p) == color {
				have++
			}
		}
	}
	for r := 0; r < 4; r++ {
		matched := 0
		allSource := true
		anyTargetHit := false
		for _, p := range cells {
			sp := e.sourceCell(source, target, p)
			for i := 0; i < r; i++ {
				sp = TransformCCW.ApplyCenter(m, sp)
			}
			if e.cube.CenterColor(source, sp) == color {
				matched++
			} else {
				allSource = false
			}
			if e.cube.CenterColor(target, p) == color {
				anyTargetHit = true
			}
		}
		switch mode {
		case CompleteBlock:
			if allSource {
				return r, true
			}
		case ExactMatch:
			if allSource && !anyTargetHit {
				return r, true
			}
		case BigThanSource:
			if matched > have {
				return r, true
			}
		}
	}
	return 0, false
}

// SearchBigBlock finds the maximal monochrome rectangles of the color on a
// face's center grid, largest first. Ties keep row-major discovery order.
func (e *Engine) SearchBigBlock(f Face, color Color) []Block {
	m := e.cube.CenterSize()
	if m <= 0 {
		return nil
	}
	// 2D prefix sums over the color indicator.
	sum := make([][]int, m+1)
	for r := 0; r <= m; r++ {
		sum[r] = make([]int, m+1)
	}
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			v := 0
			if e.cube.CenterColor(f, Coord{r, c}) == color {
				v = 1
			}
			sum[r+1][c+1] = v + sum[r][c+1] + sum[r+1][c] - sum[r][c]
		}
	}
	full := func(b Block) bool {
		area := b.Size()
		got := sum[b.R2+1][b.C2+1] - sum[b.R1][b.C2+1] - sum[b.R2+1][b.C1] + sum[b.R1][b.C1]
		return got == area
	}
	var out []Block
	for r1 := 0; r1 < m; r1++ {
		for c1 := 0; c1 < m; c1++ {
			for r2 := r1; r2 < m; r2++ {
				for c2 := c1; c2 < m; c2++ {
					b := Block{R1: r1, C1: c1, R2: r2, C2: c2}
					if !full(b) {
						continue
					}
					// Keep only rectangles that no neighbor extends.
					if r1 > 0 && full(Block{r1 - 1, c1, r2, c2}) {
						continue
					}
					if c1 > 0 && full(Block{r1, c1 - 1, r2, c2}) {
						continue
					}
					if r2 < m-1 && full(Block{r1, c1, r2 + 1, c2}) {
						continue
					}
					if c2 < m-1 && full(Block{r1, c1, r2, c2 + 1}) {
						continue
					}
					out = append(out, b)
				}
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Size() > out[j].Size()
	})
	return out
}

// blockDepths returns the set of inner-layer depths the block occupies on
// the target face along the given slice.
func (e *Engine) blockDepths(s SliceName, target Face, b Block) map[int]bool {
	depths := make(map[int]bool)
	for _, p := range b.Cells() {
		d, _ := e.geo.Locate(s, target, p.Row+1, p.Col+1)
		depths[d] = true
	}
	return depths
}

// chooseFaceTurn picks the target-face turn direction whose rotated block
// occupies inner layers disjoint from the original block's. The two halves
// of the commutator must move different layers or the 3-cycle collapses.
func (e *Engine) chooseFaceTurn(s SliceName, target Face, b Block) (turn int, err error) {
	m := e.cube.CenterSize()
	d1 := e.blockDepths(s, target, b)
	for _, turn := range []int{1, -1} {
		t := TransformCW
		if turn < 0 {
			t = TransformCCW
		}
		d2 := e.blockDepths(s, target, b.Rotate(m, t))
		disjoint := true
		for d := range d2 {
			if d1[d] {
				disjoint = false
				break
			}
		}
		if disjoint {
			return turn, nil
		}
	}
	return 0, fmt.Errorf("%w: block %+v on %s", ErrCommutatorOverlap, b, target)
}

// CanCommutate reports whether a commutator for this block is geometrically
// possible, without executing anything.
func (e *Engine) CanCommutate(source, target Face, b Block) bool {
	s := SlicesBetween(source, target)[0]
	_, err := e.chooseFaceTurn(s, target, b)
	return err == nil
}

// ExecOptions tune a single commutator execution.
type ExecOptions struct {
	// PreserveState appends the inverse setup rotation so the source face
	// orientation is restored after the cycle.
	PreserveState bool
	// DryRun builds the algorithm without playing it.
	DryRun bool
}

// BuildCommutator constructs the full move sequence cycling the wanted
// content into the target block: an optional setup rotation of the source
// face, then the 8-move core A B A2 B' A' B A2' B'. A is the slice turn
// group covering the block, A2 the group covering the block after the face
// turn B; because their layers are disjoint the net effect is a pure
// 3-cycle touching only the block on the target face and two block images
// on the source face.
func (e *Engine) BuildCommutator(source, target Face, block Block, rotation int, opts ExecOptions) (Algorithm, error) {
	s := SlicesBetween(source, target)[0]
	turn, err := e.chooseFaceTurn(s, target, block)
	if err != nil {
		return nil, err
	}
	m := e.cube.CenterSize()
	rotT := TransformCW
	if turn < 0 {
		rotT = TransformCCW
	}

	count := e.trans.Translate(source, target, Coord{Row: block.R1, Col: block.C1}).SliceAlgorithms[0].Count

	sliceGroup := func(b Block) Algorithm {
		depths := e.blockDepths(s, target, b)
		sorted := make([]int, 0, len(depths))
		for d := range depths {
			sorted = append(sorted, d)
		}
		sort.Ints(sorted)
		var alg Algorithm
		for _, d := range sorted {
			alg = append(alg, NewSliceTurn(s, d, count))
		}
		return alg
	}

	a := sliceGroup(block)
	a2 := sliceGroup(block.Rotate(m, rotT))
	b := Algorithm{NewFaceTurn(target, turn)}

	var setup Algorithm
	if rotation%4 != 0 {
		setup = Algorithm{NewFaceTurn(source, rotation)}
	}

	core := Concat(a, b, a2, b.Inverse(), a.Inverse(), b, a2.Inverse(), b.Inverse())
	alg := Concat(setup, core)
	if opts.PreserveState && len(setup) > 0 {
		alg = Concat(alg, setup.Inverse())
	}
	return alg, nil
}

// ExecuteCommutator builds and plays the commutator for the block, updating
// the block statistics. With DryRun set it only returns the algorithm.
func (e *Engine) ExecuteCommutator(ctx context.Context, source, target Face, block Block, rotation int, opts ExecOptions) (Algorithm, error) {
	alg, err := e.BuildCommutator(source, target, block, rotation, opts)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		return alg, nil
	}
	var before map[Color]int
	if e.cfg.sanityChecks {
		before = e.cube.ColorCounts()
	}
	if err := e.player.Play(ctx, alg); err != nil {
		return nil, err
	}
	if e.cfg.sanityChecks {
		after := e.cube.ColorCounts()
		for _, c := range AllColors {
			if before[c] != after[c] {
				panic(fmt.Sprintf("nxncube: commutator changed %s sticker count %d -> %d", c, before[c], after[c]))
			}
		}
	}
	e.stats[block.Size()]++
	e.cfg.log.Debug("commutator",
		zap.Stringer("source", source),
		zap.Stringer("target", target),
		zap.Int("block", block.Size()),
		zap.Int("rotation", rotation),
		zap.Int("moves", len(alg)))
	return alg, nil
}

// TrySliceSwap attempts the 4-move whole-line exchange A B A' B' between an
// adjacent source and target. It moves an entire inner line of the source
// face onto the target in four turns but scrambles the edge wings it passes
// through, so it is gated behind WithCompleteSliceSwap and only applied when
// it strictly increases the wanted color count on the target face.
func (e *Engine) TrySliceSwap(ctx context.Context, source, target Face, color Color) (bool, error) {
	if !e.cfg.completeSliceSwap {
		return false, nil
	}
	if !Adjacent(source, target) {
		return false, nil
	}
	s := SlicesBetween(source, target)[0]
	count := e.trans.Translate(source, target, Coord{Row: 0, Col: 0}).SliceAlgorithms[0].Count
	n := e.cube.Size()

	countColor := func() int {
		got := 0
		m := e.cube.CenterSize()
		for r := 0; r < m; r++ {
			for c := 0; c < m; c++ {
				if e.cube.CenterColor(target, Coord{r, c}) == color {
					got++
				}
			}
		}
		return got
	}

	for d := 1; d <= n-2; d++ {
		a := Algorithm{NewSliceTurn(s, d, count)}
		b := Algorithm{NewFaceTurn(target, 1)}
		alg := Concat(a, b, a.Inverse(), b.Inverse())

		before := countColor()
		restore := e.player.Begin()
		if err := e.player.Play(ctx, alg); err != nil {
			restore()
			return false, err
		}
		gain := countColor() - before
		if gain <= 0 {
			restore()
			continue
		}
		e.cfg.log.Debug("slice swap",
			zap.Stringer("source", source),
			zap.Stringer("target", target),
			zap.Int("depth", d),
			zap.Int("gain", gain))
		return true, nil
	}
	return false, nil
}

// BlockStatistics returns how many commutators ran per block size.
func (e *Engine) BlockStatistics() map[int]int {
	out := make(map[int]int, len(e.stats))
	for k, v := range e.stats {
		out[k] = v
	}
	return out
}
