package components

import "github.com/yohamta/donburi"

type LocomotionData struct {
	Speed  float64 // world units per second
	Moving bool
	Target Target
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
