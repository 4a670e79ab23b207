package nxncube

import (
	"testing"
)

func TestScrambleDeterministic(t *testing.T) {
	a := Scramble(5, 42, 60)
	b := Scramble(5, 42, 60)
	if a.Notation() != b.Notation() {
		t.Error("same seed should give the same scramble")
	}
	c := Scramble(5, 43, 60)
	if a.Notation() == c.Notation() {
		t.Error("different seeds should give different scrambles")
	}
}

func TestScrambleLengthAndRange(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7} {
		alg := Scramble(n, 1, 50)
		if len(alg) != 50 {
			t.Fatalf("n=%d: expected 50 moves, got %d", n, len(alg))
		}
		for _, m := range alg {
			switch m.Kind {
			case FaceTurn, CubeRotation:
			case SliceTurn:
				if n <= 3 {
					t.Errorf("n=%d: scramble emitted a slice turn %s", n, m)
				}
				if m.Index < 1 || m.Index > n-2 {
					t.Errorf("n=%d: slice index %d out of range", n, m.Index)
				}
			}
		}
	}
}

func TestScrambleActuallyScrambles(t *testing.T) {
	c := NewCube(5)
	c.ApplyAlg(Scramble(5, 42, 60))
	if c.IsSolved() {
		t.Error("a 60-move scramble should not leave the cube solved")
	}
	if c.CentersReduced() {
		t.Error("a 60-move scramble should break the centers")
	}
}
