package deltarcm

import "math"

// CellType classifies a grid cell for routing purposes.
type CellType int8

const (
	CellEdge    CellType = -2 // domain boundary or wall, never routable
	CellLand    CellType = -1
	CellOcean   CellType = 0
	CellChannel CellType = 1
)

// Hydraulics carries the source cell's own state per parcel-step.
type Hydraulics struct {
	Stage  float64
	Qx, Qy float64
}

// Neighborhood holds the 9 stencil samples about a source cell.
type Neighborhood struct {
	Stage    [NDir]float64
	Depth    [NDir]float64
	CellType [NDir]CellType

	// AtInletRow marks a source cell on row 0: the upstream stencil row
	// lies outside the simulated domain and is excluded outright.
	AtInletRow bool
}

// WeightVector is a routing distribution over the 9 directions. Excluded
// directions carry an explicit flag rather than a NaN sentinel; their weight
// is always zero. When at least one direction is valid the valid weights sum
// to one; otherwise the vector is all-zero and the parcel is trapped.
type WeightVector struct {
	W     [NDir]float64
	Valid [NDir]bool
}

// Degenerate reports whether no direction can be selected. Callers must
// check this before RandomPick; a trapped parcel is the caller's to handle.
func (w *WeightVector) Degenerate() bool {
	for k := 0; k < NDir; k++ {
		if w.Valid[k] && w.W[k] > 0. {
			return false
		}
	}
	return true
}

// weightSurfaces computes the two raw weight surfaces for a source cell:
// the hydraulic-slope surface rewards downhill stage drop, the inertial
// surface rewards alignment with the cell's discharge vector. Both are
// floored at zero; the self direction (zero distance) is guarded, not
// divided.
func weightSurfaces(src Hydraulics, nbr *Neighborhood) (sfc, inr [NDir]float64) {
	for k := 0; k < NDir; k++ {
		if k == SelfDir {
			continue
		}
		sfc[k] = math.Max(0., (src.Stage-nbr.Stage[k])/Distances[k])
		inr[k] = math.Max(0., (src.Qx*Ivec[k]+src.Qy*Jvec[k])/Distances[k])
	}
	return sfc, inr
}

// BuildWeights resolves the routing distribution for one parcel-step:
// dry/wall masking, independent normalization of the slope and inertial
// surfaces, gamma blending, depth^theta modulation, and renormalization with
// a uniform fallback over the valid directions when every blended weight
// vanishes. gamma, theta and dryDepth are assumed pre-validated (see
// Parameters.Check).
func BuildWeights(src Hydraulics, nbr *Neighborhood, gamma, theta, dryDepth float64) WeightVector {
	sfc, inr := weightSurfaces(src, nbr)

	var w WeightVector
	for k := 0; k < NDir; k++ {
		w.Valid[k] = nbr.Depth[k] > dryDepth && nbr.CellType[k] != CellEdge
	}
	if nbr.AtInletRow {
		w.Valid[0], w.Valid[1], w.Valid[2] = false, false, false
	}

	normalize := func(s *[NDir]float64) {
		sum := 0.
		for k := 0; k < NDir; k++ {
			if w.Valid[k] {
				sum += s[k]
			}
		}
		if sum > 0. {
			for k := 0; k < NDir; k++ {
				s[k] /= sum
			}
		}
	}
	normalize(&sfc)
	normalize(&inr)

	sum, nvalid := 0., 0
	for k := 0; k < NDir; k++ {
		if !w.Valid[k] {
			continue
		}
		wk := gamma*sfc[k] + (1.-gamma)*inr[k]
		wk *= math.Pow(nbr.Depth[k], theta)
		w.W[k] = wk
		sum += wk
		nvalid++
	}

	switch {
	case sum > 0.:
		for k := 0; k < NDir; k++ {
			if w.Valid[k] {
				w.W[k] /= sum
			}
		}
	case nvalid > 0:
		// every wettable direction carries zero preference
		u := 1. / float64(nvalid)
		for k := 0; k < NDir; k++ {
			if w.Valid[k] {
				w.W[k] = u
			}
		}
	}
	// no valid direction leaves the all-zero vector: a trapped parcel
	return w
}
