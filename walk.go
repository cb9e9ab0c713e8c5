package deltarcm

import "math"

// The routing stencil is a row-major 3x3 neighborhood about the source cell,
// the source itself at index 4:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Rows increase downstream (the inlet sits on row 0). This ordering is shared
// by the weight builder, the sampler and the step resolver; direction k means
// the same physical offset everywhere.
const (
	NDir    = 9 // stencil size, including the self direction
	SelfDir = 4 // the stay-in-place direction
)

var (
	// Iwalk holds per-direction column offsets, Jwalk row offsets.
	Iwalk = [NDir]int{-1, 0, 1, -1, 0, 1, -1, 0, 1}
	Jwalk = [NDir]int{-1, -1, -1, 0, 0, 0, 1, 1, 1}

	// Distances are the Euclidean step lengths; Distances[SelfDir] is zero
	// and must never be divided by.
	Distances [NDir]float64

	// Ivec and Jvec are unit direction components (column, row) used to
	// project a discharge vector onto each direction; zero at SelfDir.
	Ivec, Jvec [NDir]float64
)

func init() {
	for k := 0; k < NDir; k++ {
		d := math.Sqrt(float64(Iwalk[k]*Iwalk[k] + Jwalk[k]*Jwalk[k]))
		Distances[k] = d
		if d > 0. {
			Ivec[k] = float64(Iwalk[k]) / d
			Jvec[k] = float64(Jwalk[k]) / d
		}
	}
}
