package factory

import (
	"github.com/automoto/bladewood/archetypes"
	"github.com/automoto/bladewood/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centers the camera on the given world X/Z point
func CreateCamera(w donburi.World, x, z float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, z),
	})
	return camera
}
