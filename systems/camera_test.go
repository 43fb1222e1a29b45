package systems

import (
	"testing"

	"github.com/automoto/bladewood/components"
	"github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestScreenWorldRoundTrip(t *testing.T) {
	cam := &components.CameraData{Position: math.NewVec2(7, 3)}

	sx, sy := WorldToScreen(cam, 7, 3)
	assert.InDelta(t, float64(config.C.Width)/2, sx, 1e-9)
	assert.InDelta(t, float64(config.C.Height)/2, sy, 1e-9)

	x, z := ScreenToWorld(cam, 10, 300)
	sx, sy = WorldToScreen(cam, x, z)
	assert.InDelta(t, 10, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)
}

func TestClampAxis(t *testing.T) {
	assert.Equal(t, 5.0, clampAxis(1, 5, 40))
	assert.Equal(t, 35.0, clampAxis(39, 5, 40))
	assert.Equal(t, 12.0, clampAxis(12, 5, 40))
	assert.Equal(t, 4.0, clampAxis(1, 5, 8), "small arenas are centered")
}

func TestCameraFollowsTheHero(t *testing.T) {
	a := baseArena()
	a.Width, a.Depth = 200, 200
	a.Ground.W, a.Ground.D = 200, 200
	gs, _ := newTestState(t, a)

	camEntry, ok := components.Camera.First(gs.World)
	require.True(t, ok)
	cam := components.Camera.Get(camEntry)

	components.Transform.Get(gs.Hero).Position = gamemath.V3(50, 0, 60)
	for i := 0; i < 200; i++ {
		UpdateCamera(gs)
	}
	assert.InDelta(t, 50, cam.Position.X, 1e-3)
	assert.InDelta(t, 60, cam.Position.Y, 1e-3)
}
