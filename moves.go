package nxncube

// Predefined face turns and whole-cube rotations. Slice turns carry a layer
// index, so they get constructor helpers instead of constants.
var (
	U      = NewFaceTurn(FaceU, 1)
	UPrime = NewFaceTurn(FaceU, -1)
	U2     = NewFaceTurn(FaceU, 2)
	D      = NewFaceTurn(FaceD, 1)
	DPrime = NewFaceTurn(FaceD, -1)
	D2     = NewFaceTurn(FaceD, 2)
	F      = NewFaceTurn(FaceF, 1)
	FPrime = NewFaceTurn(FaceF, -1)
	F2     = NewFaceTurn(FaceF, 2)
	B      = NewFaceTurn(FaceB, 1)
	BPrime = NewFaceTurn(FaceB, -1)
	B2     = NewFaceTurn(FaceB, 2)
	R      = NewFaceTurn(FaceR, 1)
	RPrime = NewFaceTurn(FaceR, -1)
	R2     = NewFaceTurn(FaceR, 2)
	L      = NewFaceTurn(FaceL, 1)
	LPrime = NewFaceTurn(FaceL, -1)
	L2     = NewFaceTurn(FaceL, 2)

	X      = NewCubeRotation(AxisX, 1)
	XPrime = NewCubeRotation(AxisX, -1)
	X2     = NewCubeRotation(AxisX, 2)
	Y      = NewCubeRotation(AxisY, 1)
	YPrime = NewCubeRotation(AxisY, -1)
	Y2     = NewCubeRotation(AxisY, 2)
	Z      = NewCubeRotation(AxisZ, 1)
	ZPrime = NewCubeRotation(AxisZ, -1)
	Z2     = NewCubeRotation(AxisZ, 2)
)

// M returns a positive quarter turn of the i-th M layer (1-based from L).
func M(i int) Move { return NewSliceTurn(SliceM, i, 1) }

// E returns a positive quarter turn of the i-th E layer (1-based from D).
func E(i int) Move { return NewSliceTurn(SliceE, i, 1) }

// S returns a positive quarter turn of the i-th S layer (1-based from F).
func S(i int) Move { return NewSliceTurn(SliceS, i, 1) }

// SliceMove returns a turn of the i-th layer of the named slice by the given
// signed quarter-turn count.
func SliceMove(s SliceName, i, count int) Move {
	return NewSliceTurn(s, i, count)
}
