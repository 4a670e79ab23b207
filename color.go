package nxncube

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// AllColors lists every color in canonical order.
var AllColors = [6]Color{White, Yellow, Green, Blue, Red, Orange}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// SolvedColor returns the color a face carries in the default BOY scheme:
// White up, Yellow down, Green front, Blue back, Red right, Orange left.
func SolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return White
	}
}

// OppositeColor returns the color on the opposite face in the BOY scheme.
// The pairs White-Yellow, Green-Blue and Red-Orange are fixed regardless of
// how the cube is oriented.
func OppositeColor(c Color) Color {
	switch c {
	case White:
		return Yellow
	case Yellow:
		return White
	case Green:
		return Blue
	case Blue:
		return Green
	case Red:
		return Orange
	case Orange:
		return Red
	default:
		return c
	}
}
