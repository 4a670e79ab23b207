package nxncube

import (
	"strconv"
	"strings"
)

// MoveKind distinguishes the three families of moves.
type MoveKind int

const (
	FaceTurn     MoveKind = iota // outer face turn (R, U, ...)
	SliceTurn                    // inner layer turn (M, 2E', ...)
	CubeRotation                 // whole-cube rotation (x, y, z)
)

// Move represents a single move: a face turn, an inner slice turn, or a
// whole-cube rotation, with a signed quarter-turn count. Count 1 is a
// clockwise quarter turn (as seen from the governing face), -1 counter-
// clockwise, 2 a half turn.
type Move struct {
	Kind  MoveKind
	Face  Face      // FaceTurn only
	Slice SliceName // SliceTurn only
	Index int       // SliceTurn only; 1-based inner layer, 1..N-2
	Axis  Axis      // CubeRotation only
	Count int
}

// NewFaceTurn builds a face turn move.
func NewFaceTurn(f Face, count int) Move {
	return Move{Kind: FaceTurn, Face: f, Count: count}
}

// NewSliceTurn builds an inner slice turn. The index is 1-based, counted
// inward from the slice's reference face.
func NewSliceTurn(s SliceName, index, count int) Move {
	return Move{Kind: SliceTurn, Slice: s, Index: index, Count: count}
}

// NewCubeRotation builds a whole-cube rotation.
func NewCubeRotation(a Axis, count int) Move {
	return Move{Kind: CubeRotation, Axis: a, Count: count}
}

// Inverse returns the move undoing this one.
func (m Move) Inverse() Move {
	m.Count = -m.Count
	return m
}

// normCount folds a signed count into {0, 1, 2, -1}.
func normCount(count int) int {
	c := ((count % 4) + 4) % 4
	if c == 3 {
		return -1
	}
	return c
}

// Notation returns the notation string for this move. Face turns use the
// standard letters (R, R', R2); slice turns carry a leading 1-based index
// when it is not 1 (2M', 3E2); whole-cube rotations use lowercase x, y, z.
func (m Move) Notation() string {
	var b strings.Builder
	switch m.Kind {
	case FaceTurn:
		b.WriteString(m.Face.String())
	case SliceTurn:
		if m.Index != 1 {
			b.WriteString(strconv.Itoa(m.Index))
		}
		b.WriteString(m.Slice.String())
	case CubeRotation:
		b.WriteString(m.Axis.String())
	}
	switch normCount(m.Count) {
	case -1:
		b.WriteString("'")
	case 2:
		b.WriteString("2")
	}
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single move in the notation produced by Notation.
// Examples: R, R', U2, M, 2M', 3S2, x, y', z2.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, ErrInvalidNotation
	}

	// Optional leading slice index.
	index := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		index = index*10 + int(s[i]-'0')
		i++
	}
	if i == len(s) {
		return Move{}, ErrInvalidNotation
	}

	var m Move
	switch s[i] {
	case 'R':
		m = NewFaceTurn(FaceR, 1)
	case 'L':
		m = NewFaceTurn(FaceL, 1)
	case 'U':
		m = NewFaceTurn(FaceU, 1)
	case 'D':
		m = NewFaceTurn(FaceD, 1)
	case 'F':
		m = NewFaceTurn(FaceF, 1)
	case 'B':
		m = NewFaceTurn(FaceB, 1)
	case 'M':
		m = NewSliceTurn(SliceM, 1, 1)
	case 'E':
		m = NewSliceTurn(SliceE, 1, 1)
	case 'S':
		m = NewSliceTurn(SliceS, 1, 1)
	case 'x':
		m = NewCubeRotation(AxisX, 1)
	case 'y':
		m = NewCubeRotation(AxisY, 1)
	case 'z':
		m = NewCubeRotation(AxisZ, 1)
	default:
		return Move{}, ErrInvalidNotation
	}
	if index != 0 {
		if m.Kind != SliceTurn {
			return Move{}, ErrInvalidNotation
		}
		m.Index = index
	}

	switch s[i+1:] {
	case "":
	case "'", "`":
		m.Count = -1
	case "2":
		m.Count = 2
	case "2'", "2`":
		m.Count = 2
	default:
		return Move{}, ErrInvalidNotation
	}
	return m, nil
}

// ParseAlg parses a space-separated move sequence.
// Example: "R U 2M' U' R'"
func ParseAlg(s string) (Algorithm, error) {
	parts := strings.Fields(s)
	alg := make(Algorithm, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		alg = append(alg, m)
	}
	return alg, nil
}

// Algorithm is an ordered move sequence.
type Algorithm []Move

// Inverse returns the algorithm that undoes this one: the moves reversed
// and each inverted. Playing an algorithm followed by its inverse leaves
// the cube exactly as it was.
func (a Algorithm) Inverse() Algorithm {
	inv := make(Algorithm, len(a))
	for i, m := range a {
		inv[len(a)-1-i] = m.Inverse()
	}
	return inv
}

// Notation returns the space-separated notation for the sequence.
func (a Algorithm) Notation() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// String returns the notation string (alias for Notation).
func (a Algorithm) String() string {
	return a.Notation()
}

// Concat joins several algorithms into one.
func Concat(algs ...Algorithm) Algorithm {
	var out Algorithm
	for _, a := range algs {
		out = append(out, a...)
	}
	return out
}
