package deltarcm

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

const nSmplDim = 3 // gamma, theta, dry depth

// CalibrateRouting fits the routing parameters to an observed
// wetted-frequency field using shuffled complex evolution, scoring
// candidates by Kling-Gupta efficiency. Returns the fitted parameters and
// their final skill.
func (d *Domain) CalibrateRouting(obs []float64, nparcels, stepmax int, seed int64) (Parameters, float64) {
	if len(obs) != d.Shape[0]*d.Shape[1] {
		log.Fatalf(" CalibrateRouting error: observation field has %d cells, grid has %d", len(obs), d.Shape[0]*d.Shape[1])
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	gen := func(u []float64) float64 {
		par := SampleParameters(u, nparcels, stepmax, seed)
		res, err := d.RouteConcurrent(par, runtime.GOMAXPROCS(0))
		if err != nil {
			log.Fatalf(" CalibrateRouting error: %v", err)
		}
		return 1. - objfunc.KGE(obs, res.Wet)
	}

	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), nSmplDim, rng, gen, true)

	fmt.Printf("\nfinal sample: %v\n", uFinal)
	par := SampleParameters(uFinal, nparcels, stepmax, seed)
	res, err := d.RouteConcurrent(par, runtime.GOMAXPROCS(0))
	if err != nil {
		log.Fatalf(" CalibrateRouting error: %v", err)
	}
	return par, objfunc.KGE(obs, res.Wet)
}
