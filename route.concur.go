package deltarcm

import "sync"

// RouteConcurrent fans the parcels of one routing pass over nwrkrs workers.
// Each parcel walks on an independent sub-stream derived from par.Seed and
// its launch index, so results are reproducible for a given seed but the
// draw order differs from the serial reference in Route. Start positions
// are still drawn serially, before fan-out.
func (d *Domain) RouteConcurrent(par Parameters, nwrkrs int) (*RouteResult, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	if err := par.Check(); err != nil {
		return nil, err
	}
	if nwrkrs < 1 {
		nwrkrs = 1
	}

	base := NewStream(par.Seed)
	starts, err := SampleStartPositions(d.Inlet, d.InletWeights, par.Nparcels, base)
	if err != nil {
		return nil, err
	}

	nc := d.Shape[0] * d.Shape[1]
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		werr error
	)
	res := newRouteResult(nc)
	jobs := make(chan int, nwrkrs)

	wg.Add(nwrkrs)
	for w := 0; w < nwrkrs; w++ {
		go func() {
			defer wg.Done()
			local := newRouteResult(nc)
			for k := range jobs {
				if err := d.walk(starts[k], &par, NewStream(par.Seed).SubStream(k), local); err != nil {
					mu.Lock()
					if werr == nil {
						werr = err
					}
					mu.Unlock()
					continue
				}
			}
			mu.Lock()
			res.merge(local)
			mu.Unlock()
		}()
	}
	for k := range starts {
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	if werr != nil {
		return nil, werr
	}
	res.finalize(par.Nparcels)
	return res, nil
}
