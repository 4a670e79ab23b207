package nxncube

import "fmt"

// Translator answers the central question of center solving: to bring
// content from a source face to a given center cell on a target face, which
// inner layer must turn, by how much, and which source cell feeds the target
// cell. It also reports the whole-cube rotation with the same face-to-face
// effect, which the solver uses to reorient without disturbing anything.
type Translator struct {
	geo *Geometry
}

// NewTranslator builds a translator over the given geometry.
func NewTranslator(geo *Geometry) *Translator {
	return &Translator{geo: geo}
}

// SliceAlgorithm is one way of moving content between two faces: a single
// inner-layer turn along one slice axis.
type SliceAlgorithm struct {
	Slice SliceName
	Index int // 1-based inner layer
	Count int // signed quarter turns, positive = reference-face clockwise
	Moves Algorithm
	// SourceCoord is the center cell on the source face whose content this
	// turn delivers to the requested target cell.
	SourceCoord Coord
}

// TranslationResult holds every way of feeding one target center cell from a
// source face. Adjacent faces share one slice axis and get one algorithm;
// opposite faces share two axes and get two, with possibly different source
// cells. The top-level SourceCoord and WholeCubeRotation always describe the
// first algorithm.
type TranslationResult struct {
	Source      Face
	Target      Face
	TargetCoord Coord
	SourceCoord Coord
	// WholeCubeRotation reorients the whole cube with the same
	// source-face-to-target-face effect as the first slice algorithm.
	WholeCubeRotation Move
	SliceAlgorithms   []SliceAlgorithm
}

// Translate resolves how to feed the target center cell from the source
// face. Source and target must differ; translating a face onto itself is a
// programmer error and panics.
func (t *Translator) Translate(source, target Face, p Coord) TranslationResult {
	if source == target {
		panic(fmt.Sprintf("nxncube: cannot translate face %s onto itself", source))
	}
	res := TranslationResult{Source: source, Target: target, TargetCoord: p}
	for _, s := range SlicesBetween(source, target) {
		ia := t.geo.cyclePos(s, source)
		ib := t.geo.cyclePos(s, target)
		count := normCount(ib - ia)
		d, j := t.geo.Locate(s, target, p.Row+1, p.Col+1)
		sr, sc := t.geo.Point(s, source, d, j)
		res.SliceAlgorithms = append(res.SliceAlgorithms, SliceAlgorithm{
			Slice:       s,
			Index:       d,
			Count:       count,
			Moves:       Algorithm{NewSliceTurn(s, d, count)},
			SourceCoord: Coord{Row: sr - 1, Col: sc - 1},
		})
	}
	first := res.SliceAlgorithms[0]
	res.SourceCoord = first.SourceCoord
	res.WholeCubeRotation = wholeCubeEquivalent(first.Slice, first.Count)
	return res
}

// TranslateTargetFromSource is the inverse direction: it returns the target
// center cell that the given axis's slice algorithm feeds from source cell q,
// so Translate(source, target, result) reports q as that algorithm's
// SourceCoord. Opposite faces have two valid axes; the slice must lie
// between the two faces.
func (t *Translator) TranslateTargetFromSource(source, target Face, q Coord, s SliceName) Coord {
	if source == target {
		panic(fmt.Sprintf("nxncube: cannot translate face %s onto itself", source))
	}
	if !onCycle(s, source) || !onCycle(s, target) {
		panic(fmt.Sprintf("nxncube: slice %s does not connect %s and %s", s, source, target))
	}
	d, j := t.geo.Locate(s, source, q.Row+1, q.Col+1)
	r, c := t.geo.Point(s, target, d, j)
	return Coord{Row: r - 1, Col: c - 1}
}

// TransformKind reports how content is rotated in the face plane when it
// travels from source to target along the first shared slice axis.
func (t *Translator) TransformKind(source, target Face) TransformType {
	s := SlicesBetween(source, target)[0]
	return t.geo.TransformKind(s, source, target)
}

// wholeCubeEquivalent maps a slice turn to the whole-cube rotation moving
// face contents the same way. A positive M follows L, so it matches x'; a
// positive E follows D and matches y'; a positive S follows F and matches z.
func wholeCubeEquivalent(s SliceName, count int) Move {
	switch s {
	case SliceM:
		return NewCubeRotation(AxisX, normCount(-count))
	case SliceE:
		return NewCubeRotation(AxisY, normCount(-count))
	case SliceS:
		return NewCubeRotation(AxisZ, normCount(count))
	default:
		panic(fmt.Sprintf("nxncube: unknown slice %d", int(s)))
	}
}
