package deltarcm

import "fmt"

// Domain is the read-only snapshot of the delta surface parcels walk over.
// Field arrays are row-major of length Shape[0]*Shape[1]; the router never
// mutates them. Inlet lists the flat indices where new parcels may enter,
// paired with unnormalized entry weights.
type Domain struct {
	Shape                [2]int
	Stage, Depth, Qx, Qy []float64
	CellType             []CellType
	Inlet                []int
	InletWeights         []float64
}

// Check validates array extents once, before a run.
func (d *Domain) Check() error {
	nc := d.Shape[0] * d.Shape[1]
	if nc <= 0 {
		return fmt.Errorf("Domain.Check: bad shape %v", d.Shape)
	}
	if len(d.Stage) != nc || len(d.Depth) != nc || len(d.Qx) != nc || len(d.Qy) != nc || len(d.CellType) != nc {
		return fmt.Errorf("Domain.Check: field arrays do not cover the %dx%d grid", d.Shape[0], d.Shape[1])
	}
	if len(d.Inlet) != len(d.InletWeights) {
		return fmt.Errorf("Domain.Check: %d inlet cells but %d weights", len(d.Inlet), len(d.InletWeights))
	}
	for _, c := range d.Inlet {
		if c < 0 || c >= nc {
			return fmt.Errorf("Domain.Check: inlet cell %d outside grid", c)
		}
	}
	return nil
}

// Neighborhood gathers the 9-cell stencil about flat index ind, together
// with the source cell's own hydraulics. Stencil cells beyond the lattice
// read as edge cells and are never routable.
func (d *Domain) Neighborhood(ind int) (Hydraulics, Neighborhood, error) {
	row, col, err := Unravel(ind, d.Shape)
	if err != nil {
		return Hydraulics{}, Neighborhood{}, err
	}

	src := Hydraulics{Stage: d.Stage[ind], Qx: d.Qx[ind], Qy: d.Qy[ind]}

	var nbr Neighborhood
	nbr.AtInletRow = row == 0
	for k := 0; k < NDir; k++ {
		r, c := row+Jwalk[k], col+Iwalk[k]
		if r < 0 || r >= d.Shape[0] || c < 0 || c >= d.Shape[1] {
			nbr.CellType[k] = CellEdge
			continue
		}
		j := r*d.Shape[1] + c
		nbr.Stage[k] = d.Stage[j]
		nbr.Depth[k] = d.Depth[j]
		nbr.CellType[k] = d.CellType[j]
	}
	return src, nbr, nil
}

// Parameters configures a routing run. Validated once by Check; the kernel
// assumes pre-validated values per call.
type Parameters struct {
	Gamma    float64 // slope vs momentum mixing, [0,1]
	Theta    float64 // depth-modulation exponent
	DryDepth float64 // wet/dry threshold [m]
	Nparcels int     // parcels to launch
	StepMax  int     // step budget per parcel
	Seed     int64
}

// Check validates parameter ranges.
func (p *Parameters) Check() error {
	if p.Gamma < 0. || p.Gamma > 1. {
		return fmt.Errorf("Parameters.Check: gamma %f outside [0,1]", p.Gamma)
	}
	if p.Theta < 0. {
		return fmt.Errorf("Parameters.Check: theta %f negative", p.Theta)
	}
	if p.DryDepth < 0. {
		return fmt.Errorf("Parameters.Check: dry depth %f negative", p.DryDepth)
	}
	if p.Nparcels <= 0 || p.StepMax <= 0 {
		return fmt.Errorf("Parameters.Check: need positive parcel count and step budget")
	}
	return nil
}
