package deltarcm

import "github.com/maseology/mmaths"

// SampleParameters maps a unit-hypercube sample to routing parameters:
// u[0] gamma, u[1] theta, u[2] dry depth.
func SampleParameters(u []float64, nparcels, stepmax int, seed int64) Parameters {
	return Parameters{
		Gamma:    mmaths.LinearTransform(0., 1., u[0]),
		Theta:    mmaths.LinearTransform(0., 2., u[1]),
		DryDepth: mmaths.LogLinearTransform(.0001, 1., u[2]), // [m]
		Nparcels: nparcels,
		StepMax:  stepmax,
		Seed:     seed,
	}
}
