package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	// Position is the world X/Z point at the center of the screen
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
