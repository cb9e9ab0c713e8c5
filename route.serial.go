package deltarcm

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// RouteSerial is the interactive single-run entry point: the reference
// serial pass of Route with a progress bar, optionally saving the visit and
// wetted-frequency fields to outdirprfx+"visits.bin"/"wet.bin".
func (d *Domain) RouteSerial(par Parameters, outdirprfx string) (*RouteResult, error) {
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

	uiprogress.Start()
	bar := uiprogress.AddBar(par.Nparcels).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf(" routing %d parcels", par.Nparcels)
	})

	res := newRouteResult(d.Shape[0] * d.Shape[1])
	for _, ind := range starts {
		if err := d.walk(ind, &par, rng, res); err != nil {
			uiprogress.Stop()
			return nil, err
		}
		bar.Incr()
	}
	uiprogress.Stop()
	res.finalize(par.Nparcels)

	if len(outdirprfx) > 0 {
		writeInts(outdirprfx+"visits.bin", res.Visits)
		writeFloats(outdirprfx+"wet.bin", res.Wet)
	}
	return res, nil
}
