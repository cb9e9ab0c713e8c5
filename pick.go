package deltarcm

import "fmt"

// RandomPick draws one direction index from a normalized weight vector,
// consuming exactly one uniform draw from s. The cumulative sum runs in
// fixed stencil order (0..8), and the smallest index whose cumulative sum
// reaches the draw is returned, so replaying a seed replays the walk.
//
// The result is undefined when the vector is degenerate (sums to zero);
// callers check WeightVector.Degenerate first.
func RandomPick(w *WeightVector, s *Stream) int {
	u := s.Uniform()
	csum := 0.
	for k := 0; k < NDir; k++ {
		csum += w.W[k]
		if csum >= u {
			return k
		}
	}
	return NDir - 1 // cumulative sum short of 1 by rounding
}

// SampleStartPositions samples n entry cells for new parcels from the inlet
// distribution. Weights are normalized once, then each start consumes one
// draw through the same cumulative-search procedure as RandomPick; repeated
// draws of the same inlet cell are expected.
func SampleStartPositions(inlet []int, inletWeights []float64, n int, s *Stream) ([]int, error) {
	if len(inlet) == 0 {
		return nil, fmt.Errorf("SampleStartPositions: no inlet cells")
	}
	if len(inlet) != len(inletWeights) {
		return nil, fmt.Errorf("SampleStartPositions: %d inlet cells but %d weights", len(inlet), len(inletWeights))
	}
	sum := 0.
	for _, w := range inletWeights {
		if w < 0. {
			return nil, fmt.Errorf("SampleStartPositions: negative inlet weight %f", w)
		}
		sum += w
	}
	if sum <= 0. {
		return nil, fmt.Errorf("SampleStartPositions: inlet weights sum to zero")
	}

	norm := make([]float64, len(inletWeights))
	for i, w := range inletWeights {
		norm[i] = w / sum
	}

	starts := make([]int, n)
	for i := 0; i < n; i++ {
		u := s.Uniform()
		csum, idx := 0., len(norm)-1
		for j, w := range norm {
			csum += w
			if csum >= u {
				idx = j
				break
			}
		}
		starts[i] = inlet[idx]
	}
	return starts, nil
}
