package deltarcm

import (
	"math"
	"testing"
)

func TestResolveStep(t *testing.T) {
	st, err := ResolveStep(SelfDir)
	if err != nil {
		t.Fatal(err)
	}
	if st.Moving || st.Dist != 0. || st.Drow != 0 || st.Dcol != 0 {
		t.Fatalf("self direction resolved to a move: %+v", st)
	}

	sqrt2 := math.Sqrt(2.)
	for k := 0; k < NDir; k++ {
		if k == SelfDir {
			continue
		}
		st, err := ResolveStep(k)
		if err != nil {
			t.Fatal(err)
		}
		if !st.Moving {
			t.Errorf("direction %d not moving", k)
		}
		want := 1.
		if st.Drow != 0 && st.Dcol != 0 {
			want = sqrt2
		}
		if st.Dist != want {
			t.Errorf("direction %d: distance %f, want %f", k, st.Dist, want)
		}
		if st.Drow != Jwalk[k] || st.Dcol != Iwalk[k] {
			t.Errorf("direction %d: deltas (%d,%d) disagree with the stencil", k, st.Drow, st.Dcol)
		}
	}
}

func TestResolveStepBounds(t *testing.T) {
	for _, k := range []int{-1, NDir, 100} {
		if _, err := ResolveStep(k); err == nil {
			t.Errorf("direction %d accepted", k)
		}
	}
}

func TestGetSteps(t *testing.T) {
	steps, err := GetSteps([]int{0, 4, 8})
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 3 || steps[1].Moving || !steps[2].Moving {
		t.Fatalf("unexpected batch result: %+v", steps)
	}
	if _, err := GetSteps([]int{0, 9}); err == nil {
		t.Error("out-of-range batch accepted")
	}
}
