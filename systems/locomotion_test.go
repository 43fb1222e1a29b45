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

func TestMoveToGroundThenStop(t *testing.T) {
	gs, _ := newTestState(t, baseArena())

	ApplyPick(gs, pickAt("ground", "", 13, 10))
	loc := components.Locomotion.Get(gs.Hero)
	require.True(t, loc.Moving)
	assert.Equal(t, cfg.Running, heroAnim(gs))
	assert.InDelta(t, gamemath.YawTowards(heroPos(gs), gamemath.V3(13, 0, 10)), components.Transform.Get(gs.Hero).Yaw, 1e-9)

	run(gs, 500*ms)
	assert.InDelta(t, 12.0, heroPos(gs).X, 1e-6)
	assert.InDelta(t, 10.0, heroPos(gs).Z, 1e-6)

	run(gs, 500*ms)
	assert.InDelta(t, 13.0, heroPos(gs).X, 1e-6, "never past the clicked point")
	run(gs, 100*ms)
	assert.False(t, loc.Moving)
	assert.True(t, loc.Target.IsNone())
	assert.Equal(t, cfg.Idle, heroAnim(gs))
}

func TestClickingWhereTheHeroStandsDoesNothing(t *testing.T) {
	gs, _ := newTestState(t, baseArena())

	ApplyPick(gs, pickAt("ground", "", 10.05, 10))
	assert.False(t, components.Locomotion.Get(gs.Hero).Moving)
	assert.Equal(t, cfg.Idle, heroAnim(gs))
}

func TestLerpLocomotion(t *testing.T) {
	saved := cfg.Locomotion.Mode
	cfg.Locomotion.Mode = cfg.LocomotionLerp
	t.Cleanup(func() { cfg.Locomotion.Mode = saved })

	gs, _ := newTestState(t, baseArena())
	Move(gs, components.GroundTarget(gamemath.V3(14, 0, 10)))

	UpdateLocomotion(gs, 1)
	assert.InDelta(t, 12.0, heroPos(gs).X, 1e-9)
	UpdateLocomotion(gs, 1)
	assert.InDelta(t, 13.0, heroPos(gs).X, 1e-9)
	assert.Equal(t, cfg.Hero.Height, heroPos(gs).Y)
}

func TestWalkingUpToATreeStartsTheAttack(t *testing.T) {
	a := baseArena()
	a.Trees = []leveldata.Spawn{{ID: "tree-1", X: 15, Z: 10}}
	gs, _ := newTestState(t, a)

	ApplyPick(gs, pickAt("tree", "tree-1", 15, 10))
	require.True(t, components.Locomotion.Get(gs.Hero).Moving)
	require.False(t, attacking(gs))

	run(gs, 1500*ms)
	assert.True(t, attacking(gs))
	assert.False(t, components.Locomotion.Get(gs.Hero).Moving)
	assert.Less(t, gamemath.Distance(heroPos(gs), gamemath.V3(15, 0, 10)), cfg.Locomotion.TreeReach)
	assert.Greater(t, gamemath.Distance(heroPos(gs), gamemath.V3(15, 0, 10)), cfg.Locomotion.TreeReach-0.5)
}

func TestEnemyIsEngagedFromFurtherAway(t *testing.T) {
	a := baseArena()
	a.Enemies = []leveldata.Spawn{{ID: "enemy-1", X: 17, Z: 10, Speed: 0.001}}
	gs, _ := newTestState(t, a)

	ApplyPick(gs, pickAt("enemy", "enemy-1", 17, 10))
	require.True(t, components.Locomotion.Get(gs.Hero).Moving)

	for i := 0; i < 30 && !attacking(gs); i++ {
		Tick(gs, 100*ms)
	}
	require.True(t, attacking(gs))
	enemy := components.Transform.Get(gs.Enemies["enemy-1"]).Position
	d := gamemath.Distance(heroPos(gs), enemy)
	assert.LessOrEqual(t, d, cfg.Locomotion.EnemyEngageRange)
	assert.Greater(t, d, cfg.Locomotion.ClickReach)
}

func TestMovingTowardAnEnemyFollowsIt(t *testing.T) {
	a := baseArena()
	a.Enemies = []leveldata.Spawn{{ID: "enemy-1", X: 18, Z: 10}}
	gs, _ := newTestState(t, a)

	ApplyPick(gs, pickAt("enemy", "enemy-1", 18, 10))
	components.Transform.Get(gs.Enemies["enemy-1"]).Position = gamemath.V3(10, 0, 18)

	UpdateLocomotion(gs, 0.1)
	loc := components.Locomotion.Get(gs.Hero)
	assert.Equal(t, gamemath.V3(10, cfg.Hero.Height, 18), loc.Target.Point)
	assert.InDelta(t, 10.4, heroPos(gs).Z, 1e-9)
}

func TestMovingTowardAVanishedTreeStops(t *testing.T) {
	a := baseArena()
	a.Trees = []leveldata.Spawn{{ID: "tree-1", X: 18, Z: 10}}
	gs, hook := newTestState(t, a)

	ApplyPick(gs, pickAt("tree", "tree-1", 18, 10))
	delete(gs.Trees, "tree-1")

	UpdateLocomotion(gs, 0.1)
	assert.False(t, components.Locomotion.Get(gs.Hero).Moving)
	assert.Equal(t, cfg.Idle, heroAnim(gs))
	assert.Contains(t, warnings(hook), "target not found, stopping")
}

func TestRoundTimeLimit(t *testing.T) {
	saved := cfg.Round.TimeLimit
	cfg.Round.TimeLimit = 2 * cfg.Combat.TickInterval
	t.Cleanup(func() { cfg.Round.TimeLimit = saved })

	gs, _ := newTestState(t, baseArena())
	ApplyPick(gs, pickAt("ground", "", 18, 10))

	run(gs, cfg.Round.TimeLimit-100*ms)
	assert.False(t, gs.GameOver)
	assert.Equal(t, 100*ms, gs.TimeLeft())

	run(gs, 100*ms)
	assert.True(t, gs.GameOver)
	assert.Equal(t, cfg.Idle, heroAnim(gs))

	// Clicks are ignored once the round is over
	before := heroPos(gs)
	ApplyPick(gs, pickAt("ground", "", 2, 2))
	run(gs, 500*ms)
	assert.Equal(t, before, heroPos(gs))
}
