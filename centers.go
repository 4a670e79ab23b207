package nxncube

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Solver reduces the centers of an NxN cube: after Solve, every face's
// center grid is monochrome and the six colors form a valid scheme with
// opposite colors on opposite faces. It works color by color, rotating the
// tracked face for each color to the top and pulling matching blocks up
// from the other five faces with commutators. Because each commutator only
// touches its own blocks, faces finished earlier stay finished.
type Solver struct {
	cube   *Cube
	player *Player
	engine *Engine
	cfg    config
}

// faceState describes how far one face's center has come.
type faceState int

const (
	faceUnsatisfied faceState = iota // no wanted cells yet
	facePartial                      // some wanted cells
	faceSolved                       // monochrome
)

func (s faceState) String() string {
	switch s {
	case faceUnsatisfied:
		return "unsatisfied"
	case facePartial:
		return "partial"
	case faceSolved:
		return "solved"
	default:
		return "?"
	}
}

// NewSolver creates a solver owning a fresh player over the cube.
func NewSolver(cube *Cube, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := NewPlayer(cube, cfg.log)
	return &Solver{
		cube:   cube,
		player: p,
		engine: NewEngine(p, opts...),
		cfg:    cfg,
	}
}

// Player returns the player holding the full solution transcript.
func (s *Solver) Player() *Player { return s.player }

// BlockStatistics returns how many commutators ran per block size.
func (s *Solver) BlockStatistics() map[int]int { return s.engine.BlockStatistics() }

// Solved reports whether the cube's centers are reduced.
func (s *Solver) Solved() bool { return s.cube.CentersReduced() }

// IsCubeSolved reports whether every sticker of the cube shows the color
// tracked on its face. This is stricter than Cube.IsSolved: it ties the
// face colors to the tracker scheme instead of accepting any valid scheme.
func IsCubeSolved(c *Cube, holder *TrackerHolder) (bool, error) {
	colors, err := holder.FaceColors()
	if err != nil {
		return false, err
	}
	n := c.Size()
	for _, f := range AllFaces {
		want := colors[f]
		for r := 0; r < n; r++ {
			for col := 0; col < n; col++ {
				if c.ColorAt(f, r, col) != want {
					return false, nil
				}
			}
		}
	}
	return true, nil
}

// rotationToTop returns the whole-cube rotation bringing the face to U.
func rotationToTop(f Face) (Move, bool) {
	switch f {
	case FaceU:
		return Move{}, false
	case FaceF:
		return X, true
	case FaceB:
		return XPrime, true
	case FaceD:
		return X2, true
	case FaceL:
		return Z, true
	case FaceR:
		return ZPrime, true
	default:
		panic(fmt.Sprintf("nxncube: unknown face %d", int(f)))
	}
}

// Solve reduces all six centers. Cubes of size 3 and below have single-cell
// or empty centers and need no moves at all.
func (s *Solver) Solve(ctx context.Context, holder *TrackerHolder) error {
	if s.cube.Size() <= 3 {
		return nil
	}
	if s.cfg.oddFaceSwap && s.cube.Size()%2 == 1 {
		return ErrFaceSwapDisabled
	}
	for _, color := range AllColors {
		if err := s.solveColor(ctx, holder, color); err != nil {
			return err
		}
	}
	return nil
}

// SolveSingleFace reduces one color's face only, restoring the cube's
// orientation and every setup rotation afterwards so the rest of the cube
// state is exactly what the commutators' 3-cycles imply and nothing more.
func (s *Solver) SolveSingleFace(ctx context.Context, holder *TrackerHolder, color Color) error {
	if s.cube.Size() <= 3 {
		return nil
	}
	mark := s.player.Mark()
	if err := s.solveColorOpts(ctx, holder, color, ExecOptions{PreserveState: true}); err != nil {
		return err
	}
	// Undo the reorientation without undoing the commutators: replay the
	// inverse of the single whole-cube rotation if one was played.
	hist := s.player.History()[mark:]
	if len(hist) > 0 && hist[0].Kind == CubeRotation {
		s.player.PlayMove(hist[0].Inverse())
	}
	return nil
}

func (s *Solver) solveColor(ctx context.Context, holder *TrackerHolder, color Color) error {
	return s.solveColorOpts(ctx, holder, color, ExecOptions{})
}

func (s *Solver) solveColorOpts(ctx context.Context, holder *TrackerHolder, color Color, opts ExecOptions) error {
	f, err := holder.TrackedFace(color)
	if err != nil {
		return err
	}
	if s.faceComplete(f, color) {
		return nil
	}
	if rot, ok := rotationToTop(f); ok {
		s.player.PlayMove(rot)
	}
	if got, err := holder.TrackedFace(color); err != nil {
		return err
	} else if got != FaceU {
		return fmt.Errorf("%w: %s tracked on %s after reorientation", ErrTrackerAssignment, color, got)
	}

	target := FaceU
	before := s.stateOf(target, color)
	for {
		if s.faceComplete(target, color) {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrPlaybackAborted, ctx.Err())
		default:
		}
		progressed := false
		for _, source := range []Face{FaceF, FaceR, FaceB, FaceL, FaceD} {
			moved, err := s.gatherFrom(ctx, holder, color, source, target, opts)
			if err != nil {
				return err
			}
			if moved {
				progressed = true
				break
			}
		}
		if !progressed {
			return fmt.Errorf("%w: color %s", ErrSolverStuck, color)
		}
	}
	s.cfg.log.Info("center face done",
		zap.Stringer("color", color),
		zap.Stringer("from", before),
		zap.Stringer("to", s.stateOf(target, color)),
		zap.Int("moves", s.player.MoveCount()))
	return nil
}

// gatherFrom makes at most one improving transfer from source to target:
// the whole-line swap when enabled and profitable, else the biggest source
// block that lands on an empty spot, else a single cell into any hole.
// The tracker guard is restored on every exit, error paths included, so an
// aborted transfer never leaves a marker stranded on the wrong face.
func (s *Solver) gatherFrom(ctx context.Context, holder *TrackerHolder, color Color, source, target Face, opts ExecOptions) (moved bool, err error) {
	restore, err := holder.PreservePhysicalFaces()
	if err != nil {
		return false, err
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			moved = false
			err = rerr
		}
	}()
	return s.gatherOnce(ctx, color, source, target, opts)
}

func (s *Solver) gatherOnce(ctx context.Context, color Color, source, target Face, opts ExecOptions) (bool, error) {
	if !opts.PreserveState {
		if swapped, err := s.engine.TrySliceSwap(ctx, source, target, color); err != nil || swapped {
			return swapped, err
		}
	}

	m := s.cube.CenterSize()
	axis := SlicesBetween(source, target)[0]
	kind := s.engine.Geometry().TransformKind(axis, source, target)

	for _, sb := range s.engine.SearchBigBlock(source, color) {
		if sb.Size() == 1 {
			break // sorted by size; the hole fallback covers singles
		}
		rb := sb
		for r := 0; r < 4; r++ {
			if r > 0 {
				rb = rb.Rotate(m, TransformCW)
			}
			tb := rb.Rotate(m, kind)
			if s.blockTouchesColor(target, tb, color) {
				continue
			}
			if !s.engine.CanCommutate(source, target, tb) {
				continue
			}
			if _, err := s.engine.ExecuteCommutator(ctx, source, target, tb, r, opts); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	for _, p := range s.holes(target, color) {
		b := BlockAt(p)
		rot, ok := s.engine.SearchBlock(target, source, color, CompleteBlock, b)
		if !ok {
			continue
		}
		if !s.engine.CanCommutate(source, target, b) {
			continue
		}
		if _, err := s.engine.ExecuteCommutator(ctx, source, target, b, rot, opts); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *Solver) faceComplete(f Face, color Color) bool {
	got, ok := s.cube.CenterMonochrome(f)
	return ok && got == color
}

func (s *Solver) blockTouchesColor(f Face, b Block, color Color) bool {
	for _, p := range b.Cells() {
		if s.cube.CenterColor(f, p) == color {
			return true
		}
	}
	return false
}

// holes lists the target cells still missing the color, row-major.
func (s *Solver) holes(f Face, color Color) []Coord {
	m := s.cube.CenterSize()
	var out []Coord
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			p := Coord{Row: r, Col: c}
			if s.cube.CenterColor(f, p) != color {
				out = append(out, p)
			}
		}
	}
	return out
}

func (s *Solver) stateOf(f Face, color Color) faceState {
	m := s.cube.CenterSize()
	count := 0
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			if s.cube.CenterColor(f, Coord{r, c}) == color {
				count++
			}
		}
	}
	switch count {
	case 0:
		return faceUnsatisfied
	case m * m:
		return faceSolved
	default:
		return facePartial
	}
}
