package systems

import (
	"testing"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/automoto/bladewood/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChaseHysteresis(t *testing.T) {
	a := baseArena()
	a.Enemies = []leveldata.Spawn{{ID: "enemy-1", X: 13, Z: 10}}
	gs, _ := newTestState(t, a)
	e := gs.Enemies["enemy-1"]
	chase := components.Chase.Get(e)
	anim := components.Animation.Get(e)
	hero := components.Transform.Get(gs.Hero)

	// dt of zero so only the state changes, not positions
	UpdateChase(gs, 0)
	require.True(t, chase.Moving, "distance 3 is inside the engage radius")
	assert.Equal(t, cfg.Running, anim.Current)

	hero.Position = gamemath.V3(2, 0, 10)
	UpdateChase(gs, 0)
	assert.False(t, chase.Moving, "distance 11 is past the leash")
	assert.Equal(t, cfg.Idle, anim.Current)

	UpdateChase(gs, 0)
	assert.False(t, chase.Moving, "stays idle while far away")

	hero.Position = gamemath.V3(10, 0, 10)
	UpdateChase(gs, 0)
	require.True(t, chase.Moving)

	hero.Position = gamemath.V3(12.5, 0, 10)
	UpdateChase(gs, 0)
	assert.False(t, chase.Moving, "distance 0.5 is inside melee range")
	assert.Equal(t, cfg.Idle, anim.Current)

	UpdateChase(gs, 0)
	assert.False(t, chase.Moving, "does not restart in melee range")
}

func TestChaseKeepsGoingBetweenEngageAndLeash(t *testing.T) {
	a := baseArena()
	a.Enemies = []leveldata.Spawn{{ID: "enemy-1", X: 13, Z: 10, Speed: 2}}
	gs, _ := newTestState(t, a)
	e := gs.Enemies["enemy-1"]

	UpdateChase(gs, 0)
	require.True(t, components.Chase.Get(e).Moving)

	// Hero walks away to 7 units, outside engage but inside the leash
	components.Transform.Get(gs.Hero).Position = gamemath.V3(6, 0, 10)
	UpdateChase(gs, 0.5)
	assert.True(t, components.Chase.Get(e).Moving)

	pos := components.Transform.Get(e).Position
	assert.InDelta(t, 12.0, pos.X, 1e-9)
	assert.InDelta(t, 10.0, pos.Z, 1e-9)
	assert.InDelta(t, gamemath.YawTowards(pos, gamemath.V3(6, 0, 10)), components.Transform.Get(e).Yaw, 1e-9)
}

func TestEnemyOutsideEngageRadiusStaysIdle(t *testing.T) {
	a := baseArena()
	a.Enemies = []leveldata.Spawn{{ID: "enemy-1", X: 15, Z: 10}}
	gs, _ := newTestState(t, a)

	UpdateChase(gs, 1)
	e := gs.Enemies["enemy-1"]
	assert.False(t, components.Chase.Get(e).Moving)
	assert.Equal(t, gamemath.V3(15, 0, 10), components.Transform.Get(e).Position)
	assert.Equal(t, cfg.Idle, components.Animation.Get(e).Current)
}

func TestCorpsesDoNotChase(t *testing.T) {
	a := baseArena()
	a.Enemies = []leveldata.Spawn{{ID: "enemy-1", X: 10.5, Z: 10, Health: 1}}
	gs, _ := newTestState(t, a)
	e := gs.Enemies["enemy-1"]

	ApplyPick(gs, pickAt("enemy", "enemy-1", 10.5, 10))
	gs.Clock.Advance(cfg.Combat.DamageDelay)
	require.NotContains(t, gs.Enemies, "enemy-1")

	components.Transform.Get(gs.Hero).Position = gamemath.V3(13, 0, 10)
	UpdateChase(gs, 1)
	assert.False(t, components.Chase.Get(e).Moving)
	assert.Equal(t, cfg.Dying, components.Animation.Get(e).Current)
}
