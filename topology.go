package nxncube

import "fmt"

// This file holds the size-independent adjacency facts of a cube: which
// faces oppose each other, which face defines each slice's rotation
// direction, and the order content flows around a slice. Everything here is
// pure data derived from the standard orientation; none of it depends on the
// cube size.

// Opposite returns the face on the opposite side of the cube.
func Opposite(f Face) Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	default:
		panic(fmt.Sprintf("nxncube: unknown face %d", int(f)))
	}
}

// Adjacent reports whether two distinct faces share an edge.
func Adjacent(a, b Face) bool {
	return a != b && Opposite(a) != b
}

// ReferenceFace returns the face that defines a slice's positive rotation
// direction: M turns like L, E like D, S like F.
func ReferenceFace(s SliceName) Face {
	switch s {
	case SliceM:
		return FaceL
	case SliceE:
		return FaceD
	case SliceS:
		return FaceF
	default:
		panic(fmt.Sprintf("nxncube: unknown slice %d", int(s)))
	}
}

// CycleOrder returns the four faces a slice spans, in content-flow order for
// a positive rotation: content on the first face moves to the second, and so
// on around the cycle.
func CycleOrder(s SliceName) [4]Face {
	switch s {
	case SliceM:
		return [4]Face{FaceU, FaceF, FaceD, FaceB}
	case SliceE:
		return [4]Face{FaceF, FaceR, FaceB, FaceL}
	case SliceS:
		return [4]Face{FaceU, FaceR, FaceD, FaceL}
	default:
		panic(fmt.Sprintf("nxncube: unknown slice %d", int(s)))
	}
}

// CutAxis tells whether a slice index selects a row or a column on a face.
type CutAxis int

const (
	CutRow CutAxis = iota
	CutCol
)

func (c CutAxis) String() string {
	if c == CutRow {
		return "ROW"
	}
	return "COL"
}

// Cuts returns whether the named slice's index selects a row or a column on
// the given face. The face must lie on the slice's cycle.
func Cuts(s SliceName, f Face) CutAxis {
	if !onCycle(s, f) {
		panic(fmt.Sprintf("nxncube: face %s is not on slice %s", f, s))
	}
	switch s {
	case SliceM:
		return CutCol
	case SliceE:
		return CutRow
	default: // SliceS cuts rows on U/D and columns on R/L
		if f == FaceU || f == FaceD {
			return CutRow
		}
		return CutCol
	}
}

func onCycle(s SliceName, f Face) bool {
	for _, cf := range CycleOrder(s) {
		if cf == f {
			return true
		}
	}
	return false
}

// SlicesBetween returns the slices whose cycles contain both faces, in
// deterministic M, E, S order. Adjacent faces share exactly one slice,
// opposite faces share two (either axis is a valid path between them).
func SlicesBetween(a, b Face) []SliceName {
	if a == b {
		panic("nxncube: no slice connects a face to itself")
	}
	var out []SliceName
	for _, s := range []SliceName{SliceM, SliceE, SliceS} {
		if onCycle(s, a) && onCycle(s, b) {
			out = append(out, s)
		}
	}
	return out
}
