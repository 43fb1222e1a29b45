package systems

import (
	"math"

	"github.com/automoto/bladewood/components"
	"github.com/automoto/bladewood/config"
)

// UpdateCamera eases the camera toward the hero, kept inside the arena so
// the ground always fills the screen
func UpdateCamera(gs *GameState) {
	cameraEntry, ok := components.Camera.First(gs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	hero := components.Transform.Get(gs.Hero).Position

	halfW := float64(config.C.Width) / 2 / config.Camera.PixelsPerUnit
	halfH := float64(config.C.Height) / 2 / config.Camera.PixelsPerUnit
	targetX := clampAxis(hero.X, halfW, gs.Arena.Width)
	targetZ := clampAxis(hero.Z, halfH, gs.Arena.Depth)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetZ - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps v within [half, size-half]. Arenas smaller than the view
// stay centered.
func clampAxis(v, half, size float64) float64 {
	if size <= half*2 {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// WorldToScreen projects a ground point. The camera looks straight down;
// world +X is screen right and world +Z is screen down.
func WorldToScreen(camera *components.CameraData, x, z float64) (float64, float64) {
	ppu := config.Camera.PixelsPerUnit
	sx := (x-camera.Position.X)*ppu + float64(config.C.Width)/2
	sy := (z-camera.Position.Y)*ppu + float64(config.C.Height)/2
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen
func ScreenToWorld(camera *components.CameraData, sx, sy float64) (float64, float64) {
	ppu := config.Camera.PixelsPerUnit
	x := (sx-float64(config.C.Width)/2)/ppu + camera.Position.X
	z := (sy-float64(config.C.Height)/2)/ppu + camera.Position.Y
	return x, z
}
