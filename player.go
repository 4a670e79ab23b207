package nxncube

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Player executes moves against a cube and records everything it plays.
// All higher layers (translator, commutator engine, solver) route their moves
// through a Player, so the full history is the complete solution transcript.
type Player struct {
	cube    *Cube
	log     *zap.Logger
	history Algorithm
}

// NewPlayer wraps a cube. A nil logger disables logging.
func NewPlayer(cube *Cube, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{cube: cube, log: log}
}

// Cube returns the cube being played on.
func (p *Player) Cube() *Cube { return p.cube }

// PlayMove applies a single move and records it.
func (p *Player) PlayMove(m Move) {
	p.cube.Apply(m)
	p.history = append(p.history, m)
	p.log.Debug("move", zap.Stringer("notation", m), zap.Int("total", len(p.history)))
}

// Play applies a move sequence, checking the context between moves. On
// cancellation it stops mid-sequence and reports how far it got via the
// history; moves already played are not undone.
func (p *Player) Play(ctx context.Context, alg Algorithm) error {
	for _, m := range alg {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrPlaybackAborted, ctx.Err())
		default:
		}
		p.PlayMove(m)
	}
	return nil
}

// History returns a copy of every move played so far, in order.
func (p *Player) History() Algorithm {
	out := make(Algorithm, len(p.history))
	copy(out, p.history)
	return out
}

// MoveCount returns how many moves have been played.
func (p *Player) MoveCount() int { return len(p.history) }

// Mark returns a checkpoint into the history for a later UndoToMark.
func (p *Player) Mark() int { return len(p.history) }

// UndoToMark rewinds the cube to the state it had at the checkpoint by
// playing the inverse of everything since, then truncates the history so the
// undone moves leave no trace in the transcript.
func (p *Player) UndoToMark(mark int) {
	if mark < 0 || mark > len(p.history) {
		panic(fmt.Sprintf("nxncube: undo mark %d out of range [0,%d]", mark, len(p.history)))
	}
	suffix := Algorithm(p.history[mark:])
	for _, m := range suffix.Inverse() {
		p.cube.Apply(m)
	}
	p.history = p.history[:mark]
}

// Begin opens a speculative scope: every move played until the returned
// function is called is undone and erased from the history. Used for
// try-and-measure probes that must not leak into the solution.
func (p *Player) Begin() (restore func()) {
	mark := p.Mark()
	return func() { p.UndoToMark(mark) }
}
