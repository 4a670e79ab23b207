package nxncube

import "math/rand"

// Scramble generates a deterministic random move sequence for a cube of
// size n: face turns and, when the cube has inner layers, slice turns.
// The same seed always yields the same sequence, which keeps solver runs
// reproducible.
func Scramble(n int, seed int64, length int) Algorithm {
	rng := rand.New(rand.NewSource(seed))
	counts := []int{1, -1, 2}
	alg := make(Algorithm, 0, length)
	for i := 0; i < length; i++ {
		count := counts[rng.Intn(len(counts))]
		if n > 3 && rng.Intn(3) == 0 {
			slices := []SliceName{SliceM, SliceE, SliceS}
			s := slices[rng.Intn(len(slices))]
			index := 1 + rng.Intn(n-2)
			alg = append(alg, NewSliceTurn(s, index, count))
			continue
		}
		f := AllFaces[rng.Intn(len(AllFaces))]
		alg = append(alg, NewFaceTurn(f, count))
	}
	return alg
}
