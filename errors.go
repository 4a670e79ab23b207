package nxncube

import "errors"

// Sentinel errors for the nxncube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("nxncube: invalid move notation")

	// Geometry and commutator errors. These indicate a broken invariant and
	// are never retried by this package.
	ErrCommutatorOverlap = errors.New("nxncube: block overlaps its own rotation in both turn directions")

	// Tracker errors
	ErrTrackerAssignment = errors.New("nxncube: tracker colors do not form a valid face permutation")
	ErrMarkerLost        = errors.New("nxncube: marked tracker sticker not found on any face")

	// Solver errors
	ErrSolverStuck      = errors.New("nxncube: center solver made no progress")
	ErrFaceSwapDisabled = errors.New("nxncube: odd-cube whole-face swap is not implemented")
	ErrPlaybackAborted  = errors.New("nxncube: move playback aborted")
)
