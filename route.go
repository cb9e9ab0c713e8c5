package deltarcm

// RouteResult accumulates where parcels travelled over one routing pass.
type RouteResult struct {
	Visits  []int32   // per-cell visit counts, start cells included
	Wet     []float64 // visit counts normalized by parcel count
	Stalled int       // parcels trapped before exhausting their step budget
	Steps   int       // total steps taken, self-direction picks included
}

func newRouteResult(nc int) *RouteResult {
	return &RouteResult{Visits: make([]int32, nc), Wet: make([]float64, nc)}
}

func (r *RouteResult) merge(o *RouteResult) {
	for i, v := range o.Visits {
		r.Visits[i] += v
	}
	r.Stalled += o.Stalled
	r.Steps += o.Steps
}

func (r *RouteResult) finalize(nparcels int) {
	fn := float64(nparcels)
	for i, v := range r.Visits {
		r.Wet[i] = float64(v) / fn
	}
}

// Route runs the reference serial routing pass: par.Nparcels start draws
// followed by each parcel's walk draws in launch order, all on one stream
// seeded from par.Seed. Replaying the seed replays every path exactly.
func (d *Domain) Route(par Parameters) (*RouteResult, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	if err := par.Check(); err != nil {
		return nil, err
	}

	rng := NewStream(par.Seed)
	starts, err := SampleStartPositions(d.Inlet, d.InletWeights, par.Nparcels, rng)
	if err != nil {
		return nil, err
	}

	res := newRouteResult(d.Shape[0] * d.Shape[1])
	for _, ind := range starts {
		if err := d.walk(ind, &par, rng, res); err != nil {
			return nil, err
		}
	}
	res.finalize(par.Nparcels)
	return res, nil
}

// walk steps one parcel from its entry cell until its step budget runs out
// or no valid direction remains.
func (d *Domain) walk(ind int, par *Parameters, rng *Stream, res *RouteResult) error {
	res.Visits[ind]++
	for n := 0; n < par.StepMax; n++ {
		src, nbr, err := d.Neighborhood(ind)
		if err != nil {
			return err
		}
		w := BuildWeights(src, &nbr, par.Gamma, par.Theta, par.DryDepth)
		if w.Degenerate() {
			res.Stalled++
			return nil
		}
		dir := RandomPick(&w, rng)
		st, err := ResolveStep(dir)
		if err != nil {
			return err
		}
		res.Steps++
		if !st.Moving {
			continue
		}
		row, col, err := Unravel(ind, d.Shape)
		if err != nil {
			return err
		}
		ind, err = Ravel(row+st.Drow, col+st.Dcol, d.Shape)
		if err != nil {
			return err
		}
		res.Visits[ind]++
	}
	return nil
}
