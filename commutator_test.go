package nxncube

import (
	"context"
	"errors"
	"testing"
)

func newTestEngine(c *Cube) *Engine {
	return NewEngine(NewPlayer(c, nil))
}

func TestSearchBigBlockSolvedFace(t *testing.T) {
	c := NewCube(5)
	e := newTestEngine(c)
	blocks := e.SearchBigBlock(FaceF, Green)
	if len(blocks) != 1 {
		t.Fatalf("expected one maximal block, got %d", len(blocks))
	}
	if blocks[0] != (Block{R1: 0, C1: 0, R2: 2, C2: 2}) {
		t.Errorf("expected the full center grid, got %+v", blocks[0])
	}
	if e.SearchBigBlock(FaceF, White) != nil {
		t.Error("solved F face should have no white blocks")
	}
}

func TestSearchBigBlockOrdering(t *testing.T) {
	c := NewCube(6)
	// Turn an inner layer so F's center grid holds a green 4x3 region and a
	// yellow column (from D via M' at index 1... use a simple known state).
	c.Apply(NewSliceTurn(SliceM, 1, 1))
	e := newTestEngine(c)
	blocks := e.SearchBigBlock(FaceF, Green)
	if len(blocks) == 0 {
		t.Fatal("expected at least one green block on F")
	}
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Size() > blocks[i-1].Size() {
			t.Errorf("blocks not sorted by size: %d before %d", blocks[i-1].Size(), blocks[i].Size())
		}
	}
	// M at index 1 moves F's center column 0 away, so the biggest remaining
	// green block is the 4x3 columns 1..3.
	if blocks[0] != (Block{R1: 0, C1: 1, R2: 3, C2: 3}) {
		t.Errorf("biggest block = %+v", blocks[0])
	}
}

func TestSearchBlockModes(t *testing.T) {
	c := NewCube(5)
	e := newTestEngine(c)
	b := BlockAt(Coord{0, 0})

	if _, ok := e.SearchBlock(FaceU, FaceF, Green, CompleteBlock, b); !ok {
		t.Error("solved F should provide green for any block")
	}
	if _, ok := e.SearchBlock(FaceU, FaceF, Green, ExactMatch, b); !ok {
		t.Error("exact match should succeed: U holds no green yet")
	}
	if _, ok := e.SearchBlock(FaceU, FaceF, Green, BigThanSource, b); !ok {
		t.Error("bigger-than should succeed: source beats an empty target")
	}
	if _, ok := e.SearchBlock(FaceU, FaceF, White, CompleteBlock, b); ok {
		t.Error("solved F has no white to offer")
	}
	// The target already shows white everywhere, so nothing beats it.
	if _, ok := e.SearchBlock(FaceU, FaceF, White, BigThanSource, b); ok {
		t.Error("bigger-than should fail when the target is already full")
	}
}

func TestCommutatorMovesBlock(t *testing.T) {
	c := NewCube(5)
	e := newTestEngine(c)
	b := BlockAt(Coord{0, 0})

	if _, err := e.ExecuteCommutator(context.Background(), FaceF, FaceU, b, 0, ExecOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := c.CenterColor(FaceU, Coord{0, 0}); got != Green {
		t.Errorf("target cell holds %s, want G", got)
	}
	if stats := e.BlockStatistics(); stats[1] != 1 {
		t.Errorf("expected one 1-cell commutator in stats, got %v", stats)
	}
}

func TestCommutatorLocality(t *testing.T) {
	// Everything outside the target block and the source face's centers
	// must be untouched: all edges, all corners, every other face.
	c := NewCube(5)
	before := c.Clone()
	e := newTestEngine(c)
	b := Block{R1: 0, C1: 0, R2: 1, C2: 0}

	if _, err := e.ExecuteCommutator(context.Background(), FaceF, FaceU, b, 0, ExecOptions{}); err != nil {
		t.Fatal(err)
	}

	n := c.Size()
	for _, f := range AllFaces {
		for r := 0; r < n; r++ {
			for col := 0; col < n; col++ {
				inCenter := r >= 1 && r <= n-2 && col >= 1 && col <= n-2
				if inCenter && (f == FaceF || f == FaceU) {
					continue
				}
				if c.ColorAt(f, r, col) != before.ColorAt(f, r, col) {
					t.Errorf("cell %s (%d,%d) changed: %s -> %s",
						f, r, col, before.ColorAt(f, r, col), c.ColorAt(f, r, col))
				}
			}
		}
	}
	// On the target face itself, only the block changed.
	m := c.CenterSize()
	for r := 0; r < m; r++ {
		for col := 0; col < m; col++ {
			p := Coord{Row: r, Col: col}
			if b.Contains(p) {
				continue
			}
			if c.CenterColor(FaceU, p) != before.CenterColor(FaceU, p) {
				t.Errorf("U center %v outside the block changed", p)
			}
		}
	}
}

func TestCommutatorIsThreeCycle(t *testing.T) {
	// A pure 3-cycle applied three times is the identity.
	c := NewCube(5)
	reference := c.Clone()
	e := newTestEngine(c)
	b := BlockAt(Coord{0, 1})

	alg, err := e.BuildCommutator(FaceF, FaceU, b, 0, ExecOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		c.ApplyAlg(alg)
	}
	if !cubesEqual(c, reference) {
		t.Error("commutator applied three times should be the identity")
		t.Log(c.String())
	}
}

func TestCommutatorOppositeFaces(t *testing.T) {
	c := NewCube(5)
	before := c.Clone()
	e := newTestEngine(c)
	b := BlockAt(Coord{0, 0})

	if _, err := e.ExecuteCommutator(context.Background(), FaceD, FaceU, b, 0, ExecOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := c.CenterColor(FaceU, Coord{0, 0}); got != Yellow {
		t.Errorf("target cell holds %s, want Y", got)
	}
	// Faces off the M axis pair must be untouched outside their borders.
	for _, f := range []Face{FaceR, FaceL} {
		n := c.Size()
		for r := 0; r < n; r++ {
			for col := 0; col < n; col++ {
				if c.ColorAt(f, r, col) != before.ColorAt(f, r, col) {
					t.Errorf("cell %s (%d,%d) changed", f, r, col)
				}
			}
		}
	}
}

func TestCommutatorOverlapMiddleCell(t *testing.T) {
	// On an odd cube the fixed middle cell maps onto itself under both turn
	// directions, so no commutator can target it.
	c := NewCube(5)
	e := newTestEngine(c)
	b := BlockAt(Coord{1, 1})
	if e.CanCommutate(FaceF, FaceU, b) {
		t.Error("the middle center cell should be impossible to commutate")
	}
	if _, err := e.BuildCommutator(FaceF, FaceU, b, 0, ExecOptions{}); !errors.Is(err, ErrCommutatorOverlap) {
		t.Errorf("expected ErrCommutatorOverlap, got %v", err)
	}
}

func TestCommutatorPreserveStateRestoresSetup(t *testing.T) {
	c := NewCube(5)
	e := newTestEngine(c)
	b := BlockAt(Coord{0, 0})

	plain, err := e.BuildCommutator(FaceF, FaceU, b, 1, ExecOptions{})
	if err != nil {
		t.Fatal(err)
	}
	preserved, err := e.BuildCommutator(FaceF, FaceU, b, 1, ExecOptions{PreserveState: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(preserved) != len(plain)+1 {
		t.Fatalf("preserve should add the inverse setup move: %d vs %d", len(preserved), len(plain))
	}
	if preserved[len(preserved)-1] != plain[0].Inverse() {
		t.Errorf("last move %s should invert the setup %s", preserved[len(preserved)-1], plain[0])
	}
}

func TestPreserveStateKeepsEdgesAndCorners(t *testing.T) {
	// With PreserveState set, only center stickers may change: every edge
	// wing and every corner sticker must read back exactly as before, even
	// when the transfer needed a setup rotation of the source face.
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 19, 60))
	e := newTestEngine(c)

	target := FaceU
	m := c.CenterSize()
	var (
		source   Face
		block    Block
		rotation int
		found    bool
	)
	for _, src := range []Face{FaceF, FaceR, FaceB, FaceL} {
		for _, color := range AllColors {
			for r := 0; r < m && !found; r++ {
				for col := 0; col < m && !found; col++ {
					b := BlockAt(Coord{Row: r, Col: col})
					rot, ok := e.SearchBlock(target, src, color, CompleteBlock, b)
					if ok && rot != 0 && e.CanCommutate(src, target, b) {
						source, block, rotation, found = src, b, rot, true
					}
				}
			}
		}
	}
	if !found {
		t.Fatal("no transfer needing a setup rotation found on this scramble")
	}

	var wingsBefore [][2]Color
	for _, ed := range c.Edges() {
		for w := 0; w < ed.Wings(c.Size()); w++ {
			wingsBefore = append(wingsBefore, c.EdgeWingColors(ed, w))
		}
	}
	var cornersBefore [][3]Color
	for _, cr := range c.Corners() {
		cornersBefore = append(cornersBefore, c.CornerColors(cr))
	}

	if _, err := e.ExecuteCommutator(context.Background(), source, target, block, rotation, ExecOptions{PreserveState: true}); err != nil {
		t.Fatal(err)
	}

	i := 0
	for _, ed := range c.Edges() {
		for w := 0; w < ed.Wings(c.Size()); w++ {
			if got := c.EdgeWingColors(ed, w); got != wingsBefore[i] {
				t.Errorf("edge %s wing %d changed: %v -> %v", ed.Name, w, wingsBefore[i], got)
			}
			i++
		}
	}
	for j, cr := range c.Corners() {
		if got := c.CornerColors(cr); got != cornersBefore[j] {
			t.Errorf("corner %s changed: %v -> %v", cr.Name, cornersBefore[j], got)
		}
	}
}

func TestCommutatorDryRun(t *testing.T) {
	c := NewCube(5)
	before := c.Clone()
	e := newTestEngine(c)
	b := BlockAt(Coord{0, 0})

	alg, err := e.ExecuteCommutator(context.Background(), FaceF, FaceU, b, 0, ExecOptions{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(alg) == 0 {
		t.Fatal("dry run should still return the algorithm")
	}
	if !cubesEqual(c, before) {
		t.Error("dry run must not touch the cube")
	}
	if len(e.BlockStatistics()) != 0 {
		t.Error("dry run must not count in the statistics")
	}
}

func TestSliceSwapDisabledByDefault(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 3, 40))
	e := newTestEngine(c)
	swapped, err := e.TrySliceSwap(context.Background(), FaceF, FaceU, White)
	if err != nil {
		t.Fatal(err)
	}
	if swapped {
		t.Error("slice swap must be off unless explicitly enabled")
	}
}

func TestSliceSwapGainsCells(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 8, 60))
	p := NewPlayer(c, nil)
	e := NewEngine(p, WithCompleteSliceSwap())

	m := c.CenterSize()
	count := func() int {
		got := 0
		for r := 0; r < m; r++ {
			for col := 0; col < m; col++ {
				if c.CenterColor(FaceU, Coord{r, col}) == White {
					got++
				}
			}
		}
		return got
	}
	before := count()
	swapped, err := e.TrySliceSwap(context.Background(), FaceF, FaceU, White)
	if err != nil {
		t.Fatal(err)
	}
	if swapped && count() <= before {
		t.Error("an applied slice swap must strictly gain wanted cells")
	}
	if !swapped && p.MoveCount() != 0 {
		t.Error("a rejected slice swap must leave no moves behind")
	}
}
