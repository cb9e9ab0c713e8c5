package deltarcm

import (
	"math"
	"testing"
)

func TestScaleModelTime(t *testing.T) {
	for _, c := range []struct {
		t, intermittency float64
		units            string
		want             float64
	}{
		{3600., 1., Seconds, 3600.},
		{86400., 1., Days, 1.},
		{86400., .1, Days, 10.},
		{86400. * 365.25, 1., Years, 1.},
		{86400. * 365.25, .5, Years, 2.},
	} {
		got, err := ScaleModelTime(c.t, c.intermittency, c.units)
		if err != nil {
			t.Fatalf("ScaleModelTime(%v,%v,%s): %v", c.t, c.intermittency, c.units, err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ScaleModelTime(%v,%v,%s) = %v, want %v", c.t, c.intermittency, c.units, got, c.want)
		}
	}
}

func TestScaleModelTimeErrors(t *testing.T) {
	for _, f := range []float64{0., -.5, 1.5} {
		if _, err := ScaleModelTime(1., f, Seconds); err == nil {
			t.Errorf("intermittency %v accepted", f)
		}
	}
	if _, err := ScaleModelTime(1., 1., "fortnights"); err == nil {
		t.Error("bad units accepted")
	}
}
