// Package nxncube models NxN Rubik's cubes and reduces their centers.
//
// The package is built in layers. Cube is a plain sticker arena with a
// generic layer-rotation table that works for any size. Geometry and
// Translator answer coordinate questions about the inner slices: where a
// layer position lands on each face of its cycle, and which source cell
// feeds a given target cell. Engine turns those answers into block
// commutators, 8-move sequences that 3-cycle a rectangle of center stickers
// between two faces without touching anything else. Solver drives the
// engine color by color until every center is monochrome, using
// TrackerHolder to know which physical face each color belongs to even on
// even cubes, where nothing is fixed.
//
// A typical run:
//
//	cube := nxncube.NewCube(5)
//	cube.ApplyAlg(nxncube.Scramble(5, 42, 60))
//
//	holder, err := nxncube.NewTrackerHolder(cube)
//	if err != nil {
//		return err
//	}
//	defer holder.Cleanup()
//
//	solver := nxncube.NewSolver(cube)
//	if err := solver.Solve(ctx, holder); err != nil {
//		return err
//	}
//	solution := solver.Player().History()
package nxncube
