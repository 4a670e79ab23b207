package nxncube

// Face identifies one of the six spatial face slots in standard orientation.
// Rotations move sticker contents between slots; the slot identity itself
// never changes, so a Face value is a stable handle across any move sequence.
type Face int

const (
	FaceU Face = iota // Up
	FaceD             // Down
	FaceF             // Front
	FaceB             // Back
	FaceR             // Right
	FaceL             // Left
)

// AllFaces lists every face slot in canonical order.
var AllFaces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Axis identifies a whole-cube rotation axis.
type Axis int

const (
	AxisX Axis = iota // Rotates like R
	AxisY             // Rotates like U
	AxisZ             // Rotates like F
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// SliceName identifies one of the three inner-layer groups.
// A positive rotation of a slice turns it the same way as a clockwise turn
// of its reference face (M follows L, E follows D, S follows F).
type SliceName int

const (
	SliceM SliceName = iota // Between L and R
	SliceE                  // Between D and U
	SliceS                  // Between F and B
)

func (s SliceName) String() string {
	switch s {
	case SliceM:
		return "M"
	case SliceE:
		return "E"
	case SliceS:
		return "S"
	default:
		return "?"
	}
}

// Coord addresses a cell inside a face's center grid. Row 0 is the top row
// and col 0 the left column when the face is viewed head-on in standard
// orientation.
type Coord struct {
	Row int
	Col int
}
