package deltarcm

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// GenerateSamples runs a Latin hypercube ensemble of n routing passes over a
// p-dimensional parameter space. gen maps each unit-hypercube sample to the
// run's Parameters. The sample space is written to outdir as a batch-stamped
// CSV, and every sample's wetted-frequency field to its own .bin.
func (d *Domain) GenerateSamples(gen func(u []float64) Parameters, n, p, nwrkrs int, outdir string) {
	tt := mmio.NewTimer()

	// build sampling plan
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, p, false)

	outdirbatch := outdir + time.Now().Format("060102150405") // batch number = date
	func() { // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < p; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirbatch+".samplespace.csv", lns)
	}()

	// set up workers
	var wg sync.WaitGroup
	jobs := make(chan int, nwrkrs)
	wg.Add(nwrkrs)
	for w := 0; w < nwrkrs; w++ {
		go func() {
			defer wg.Done()
			for k := range jobs {
				ut := make([]float64, p)
				for j := 0; j < p; j++ {
					ut[j] = sp.U[j][k]
				}
				res, err := d.Route(gen(ut))
				if err != nil {
					fmt.Printf(" sample %d failed: %v\n", k, err)
					continue
				}
				writeFloats(fmt.Sprintf("%s.%d.wet.bin", outdirbatch, k), res.Wet)
			}
		}()
	}

	for k := 0; k < n; k++ {
		fmt.Printf(" >> releasing sample %d\n", k+1)
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	tt.Lap("ensemble complete")
}
