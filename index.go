package deltarcm

import "fmt"

// Ravel converts a (row, col) coordinate to a linear row-major index within
// shape. Out-of-range coordinates fail; the kernel never wraps or clamps.
func Ravel(row, col int, shape [2]int) (int, error) {
	if row < 0 || row >= shape[0] || col < 0 || col >= shape[1] {
		return 0, fmt.Errorf("Ravel: (%d,%d) out of bounds of %dx%d grid", row, col, shape[0], shape[1])
	}
	return row*shape[1] + col, nil
}

// Unravel converts a linear row-major index back to (row, col). Exact
// inverse of Ravel over the valid domain.
func Unravel(ind int, shape [2]int) (row, col int, err error) {
	if ind < 0 || ind >= shape[0]*shape[1] {
		return 0, 0, fmt.Errorf("Unravel: index %d out of bounds of %dx%d grid", ind, shape[0], shape[1])
	}
	return ind / shape[1], ind % shape[1], nil
}
