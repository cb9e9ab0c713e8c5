package deltarcm

import (
	"math"
	"testing"
)

func fixedVector(ws ...float64) WeightVector {
	var w WeightVector
	for k, v := range ws {
		w.W[k] = v
		w.Valid[k] = v > 0.
	}
	return w
}

func TestRandomPickDeterminism(t *testing.T) {
	w := fixedVector(.25, .75)
	a, b := NewStream(7), NewStream(7)
	for i := 0; i < 50; i++ {
		if ka, kb := RandomPick(&w, a), RandomPick(&w, b); ka != kb {
			t.Fatalf("pick %d diverged: %d vs %d", i, ka, kb)
		}
	}
}

func TestRandomPickSingleDrawPerCall(t *testing.T) {
	w := fixedVector(.25, .75)
	a, b := NewStream(7), NewStream(7)
	for i := 0; i < 20; i++ {
		RandomPick(&w, a)
		b.Uniform()
	}
	// streams advanced identically iff each pick consumed one draw
	if a.Uniform() != b.Uniform() {
		t.Fatal("RandomPick consumed more than one draw per call")
	}
}

func TestRandomPickDistribution(t *testing.T) {
	w := fixedVector(.5, .5)
	s := NewStream(1)
	const n = 200000
	var counts [NDir]int
	for i := 0; i < n; i++ {
		counts[RandomPick(&w, s)]++
	}
	for _, k := range []int{0, 1} {
		f := float64(counts[k]) / n
		if math.Abs(f-.5) > .01 {
			t.Errorf("index %d frequency %f, want ~0.5", k, f)
		}
	}
	for k := 2; k < NDir; k++ {
		if counts[k] != 0 {
			t.Errorf("zero-weight index %d drawn %d times", k, counts[k])
		}
	}
}

func TestRandomPickDegenerateMass(t *testing.T) {
	w := fixedVector(0, 0, 0, 0, 0, 0, 0, 1)
	s := NewStream(3)
	for i := 0; i < 100; i++ {
		if k := RandomPick(&w, s); k != 7 {
			t.Fatalf("full-mass index not drawn: got %d", k)
		}
	}
}

func TestSampleStartPositions(t *testing.T) {
	s := NewStream(11)
	starts, err := SampleStartPositions([]int{10, 20, 30}, []float64{0, 0, 2}, 25, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(starts) != 25 {
		t.Fatalf("got %d starts, want 25", len(starts))
	}
	for _, c := range starts {
		if c != 30 {
			t.Fatalf("drew inlet cell %d from a single-mass distribution", c)
		}
	}

	// repeated draws of the same inlet cell are expected
	starts, err = SampleStartPositions([]int{10, 20}, []float64{1, 1}, 50, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(starts) != 50 {
		t.Fatalf("got %d starts, want 50", len(starts))
	}
}

func TestSampleStartPositionsErrors(t *testing.T) {
	s := NewStream(1)
	if _, err := SampleStartPositions(nil, nil, 1, s); err == nil {
		t.Error("empty inlet accepted")
	}
	if _, err := SampleStartPositions([]int{1, 2}, []float64{1}, 1, s); err == nil {
		t.Error("mismatched weights accepted")
	}
	if _, err := SampleStartPositions([]int{1, 2}, []float64{0, 0}, 1, s); err == nil {
		t.Error("zero-sum weights accepted")
	}
	if _, err := SampleStartPositions([]int{1, 2}, []float64{1, -1}, 1, s); err == nil {
		t.Error("negative weight accepted")
	}
}
