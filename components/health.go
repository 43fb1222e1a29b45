package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Ratio is the displayed fill, clamped to [0, 1]
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	if r > 1 {
		return 1
	}
	return r
}

type LifeBarData struct {
	// Width in pixels, recomputed on every damage application.
	Width float64
}

var Health = donburi.NewComponentType[HealthData]()
var LifeBar = donburi.NewComponentType[LifeBarData]()
