package deltarcm

import "fmt"

// Time units accepted by ScaleModelTime.
const (
	Seconds = "seconds"
	Days    = "days"
	Years   = "years"
)

// ScaleModelTime converts model time to real-world time under an assumed
// intermittency factor, the fraction of unit time the river is flooding:
//
//	t_real = t / (If * Sf)
//
// where Sf converts seconds to the requested units. Model time is executed
// under assumed flood conditions, so If scales it up to calendar time.
func ScaleModelTime(t, intermittency float64, units string) (float64, error) {
	sf, err := scaleFactor(intermittency, units)
	if err != nil {
		return 0., err
	}
	return t / sf, nil
}

func scaleFactor(intermittency float64, units string) (float64, error) {
	if intermittency <= 0. || intermittency > 1. {
		return 0., fmt.Errorf("intermittency %f is not 0 < If <= 1", intermittency)
	}
	const (
		secInDay = 86400.
		dayInYr  = 365.25
	)
	switch units {
	case Seconds:
		return intermittency, nil
	case Days:
		return intermittency * secInDay, nil
	case Years:
		return intermittency * secInDay * dayInYr, nil
	default:
		return 0., fmt.Errorf("bad value for units: %q", units)
	}
}
