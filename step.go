package deltarcm

import (
	"fmt"
	"math"
)

// Step is the grid move implied by one chosen direction.
type Step struct {
	Drow, Dcol int
	Dist       float64
	Moving     bool // false only for the self direction
}

// ResolveStep looks up the row/column deltas and travel distance for a
// chosen direction index.
func ResolveStep(dir int) (Step, error) {
	if dir < 0 || dir >= NDir {
		return Step{}, fmt.Errorf("ResolveStep: direction %d out of range", dir)
	}
	ist, jst := Iwalk[dir], Jwalk[dir]
	d := math.Sqrt(float64(ist*ist + jst*jst))
	return Step{Drow: jst, Dcol: ist, Dist: d, Moving: d != 0.}, nil
}

// GetSteps resolves a batch of chosen directions.
func GetSteps(dirs []int) ([]Step, error) {
	steps := make([]Step, len(dirs))
	for i, dir := range dirs {
		st, err := ResolveStep(dir)
		if err != nil {
			return nil, err
		}
		steps[i] = st
	}
	return steps, nil
}
