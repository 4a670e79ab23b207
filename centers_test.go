package nxncube

import (
	"context"
	"errors"
	"testing"
)

func TestSolveThreeByThreeIsNoOp(t *testing.T) {
	c := NewCube(3)
	c.ApplyAlg(Scramble(3, 1, 40))
	h := mustHolder(t, c)
	s := NewSolver(c)
	if err := s.Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if s.Player().MoveCount() != 0 {
		t.Errorf("3x3 centers are single cells; expected 0 moves, got %d", s.Player().MoveCount())
	}
	if !c.CentersReduced() {
		t.Error("3x3 centers should be trivially reduced")
	}
}

func TestSolveFiveByFive(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 42, 60))
	h := mustHolder(t, c)
	s := NewSolver(c)
	if err := s.Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if !c.CentersReduced() {
		t.Fatal("5x5 centers should be reduced")
	}
	for _, f := range AllFaces {
		color, ok := c.CenterMonochrome(f)
		if !ok {
			t.Errorf("face %s center not monochrome", f)
		}
		if color != c.MiddleColor(f) {
			t.Errorf("face %s center color %s disagrees with its fixed middle %s", f, color, c.MiddleColor(f))
		}
	}
	if len(s.BlockStatistics()) == 0 {
		t.Error("a scrambled 5x5 solve should have executed commutators")
	}
}

func TestSolveFourByFour(t *testing.T) {
	c := NewCube(4)
	c.ApplyAlg(Scramble(4, 7, 50))
	h := mustHolder(t, c)
	if _, err := h.FaceColors(); err != nil {
		t.Fatalf("tracker bijection broken before solve: %v", err)
	}
	s := NewSolver(c)
	if err := s.Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if !c.CentersReduced() {
		t.Fatal("4x4 centers should be reduced")
	}
	if _, err := h.FaceColors(); err != nil {
		t.Errorf("tracker bijection broken after solve: %v", err)
	}
}

func TestIsCubeSolved(t *testing.T) {
	c := NewCube(4)
	h := mustHolder(t, c)
	ok, err := IsCubeSolved(c, h)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("a fresh cube should be solved against its trackers")
	}

	c.Apply(X) // rotations keep every face monochrome on its tracked color
	ok, err = IsCubeSolved(c, h)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("a whole-cube rotation should keep the cube solved")
	}

	c.Apply(R)
	ok, err = IsCubeSolved(c, h)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("R should leave the cube unsolved")
	}
}

func TestSolveTranscriptReplays(t *testing.T) {
	// The recorded history applied to an identically scrambled cube must
	// reproduce the reduced state.
	c := NewCube(5)
	scramble := Scramble(5, 42, 60)
	c.ApplyAlg(scramble)
	h := mustHolder(t, c)
	s := NewSolver(c)
	if err := s.Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}

	replay := NewCube(5)
	replay.ApplyAlg(scramble)
	replay.ApplyAlg(s.Player().History())
	if !cubesEqual(c, replay) {
		t.Error("replaying the transcript should reproduce the solved state")
	}
}

func TestSolveIsIdempotent(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 13, 60))
	h := mustHolder(t, c)
	if err := NewSolver(c).Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if !c.CentersReduced() {
		t.Fatal("first solve should reduce centers")
	}

	h2 := mustHolder(t, c)
	s2 := NewSolver(c)
	if err := s2.Solve(context.Background(), h2); err != nil {
		t.Fatal(err)
	}
	if s2.Player().MoveCount() != 0 {
		t.Errorf("solving a reduced cube should cost 0 moves, got %d", s2.Player().MoveCount())
	}
	if !c.CentersReduced() {
		t.Error("centers should remain reduced")
	}
}

func TestSolveSingleFace(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 21, 60))
	h := mustHolder(t, c)
	s := NewSolver(c)
	if err := s.SolveSingleFace(context.Background(), h, White); err != nil {
		t.Fatal(err)
	}
	f, err := h.TrackedFace(White)
	if err != nil {
		t.Fatal(err)
	}
	color, ok := c.CenterMonochrome(f)
	if !ok || color != White {
		t.Errorf("white face %s center should be monochrome white, got %s %v", f, color, ok)
	}
}

func TestSolveLargerEvenCube(t *testing.T) {
	c := NewCube(6)
	c.ApplyAlg(Scramble(6, 5, 80))
	h := mustHolder(t, c)
	if err := NewSolver(c).Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if !c.CentersReduced() {
		t.Error("6x6 centers should be reduced")
	}
}

// stepCancelContext cancels itself after a fixed number of Done checks,
// which lands the cancellation in the middle of a move sequence.
type stepCancelContext struct {
	context.Context
	remaining int
	done      chan struct{}
	closed    bool
}

func newStepCancelContext(steps int) *stepCancelContext {
	return &stepCancelContext{
		Context:   context.Background(),
		remaining: steps,
		done:      make(chan struct{}),
	}
}

func (c *stepCancelContext) Done() <-chan struct{} {
	if c.remaining > 0 {
		c.remaining--
		return c.done
	}
	if !c.closed {
		c.closed = true
		close(c.done)
	}
	return c.done
}

func (c *stepCancelContext) Err() error {
	if c.closed {
		return context.Canceled
	}
	return nil
}

func TestGatherRestoresTrackersOnAbort(t *testing.T) {
	// Cancelling mid-commutator leaves a half-played move sequence that has
	// carried marked stickers onto other faces. The guard around the transfer
	// must put every marker back even though the transfer failed.
	c := NewCube(4)
	h := mustHolder(t, c)
	before, err := h.FaceColors()
	if err != nil {
		t.Fatal(err)
	}
	s := NewSolver(c)

	ctx := newStepCancelContext(3) // abort after 3 of the 8 commutator moves
	_, gerr := s.gatherFrom(ctx, h, Green, FaceF, FaceU, ExecOptions{})
	if !errors.Is(gerr, ErrPlaybackAborted) {
		t.Fatalf("expected ErrPlaybackAborted, got %v", gerr)
	}

	after, err := h.FaceColors()
	if err != nil {
		t.Fatalf("bijection broken after aborted transfer: %v", err)
	}
	for _, f := range AllFaces {
		if after[f] != before[f] {
			t.Errorf("face %s tracks %s after abort, want %s", f, after[f], before[f])
		}
	}
}

func TestSolveCancelled(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 9, 60))
	h := mustHolder(t, c)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewSolver(c).Solve(ctx, h)
	if !errors.Is(err, ErrPlaybackAborted) {
		t.Errorf("expected ErrPlaybackAborted, got %v", err)
	}
}

func TestOddFaceSwapNotImplemented(t *testing.T) {
	c := NewCube(5)
	h := mustHolder(t, c)
	err := NewSolver(c, WithOddFaceSwap()).Solve(context.Background(), h)
	if !errors.Is(err, ErrFaceSwapDisabled) {
		t.Errorf("expected ErrFaceSwapDisabled, got %v", err)
	}
}

func TestSolveWithSliceSwapStillReduces(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 17, 60))
	h := mustHolder(t, c)
	if err := NewSolver(c, WithCompleteSliceSwap()).Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if !c.CentersReduced() {
		t.Error("solve with slice swap enabled should still reduce centers")
	}
}

func TestSolveWithSanityChecks(t *testing.T) {
	c := NewCube(4)
	c.ApplyAlg(Scramble(4, 2, 40))
	h := mustHolder(t, c)
	if err := NewSolver(c, WithSanityChecks()).Solve(context.Background(), h); err != nil {
		t.Fatal(err)
	}
	if !c.CentersReduced() {
		t.Error("solve with sanity checks should still reduce centers")
	}
}
