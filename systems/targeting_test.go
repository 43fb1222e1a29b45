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

func TestClassifyPick(t *testing.T) {
	hero := gamemath.V3(0, 1.5, 0)

	cases := []struct {
		name   string
		pick   PickResult
		lock   string
		kind   components.TargetKind
		action Action
	}{
		{"miss", PickResult{}, "", components.TargetNone, ActionNone},
		{"ground far", pickAt("ground", "", 0, 5), "", components.TargetGround, ActionMove},
		{"ground underfoot", pickAt("ground", "", 0, 0.05), "", components.TargetGround, ActionNone},
		{"tree in reach", pickAt("tree", "t1", 0, 0.9), "", components.TargetTree, ActionAttack},
		{"tree at reach", pickAt("tree", "t1", 0, 1), "", components.TargetTree, ActionMove},
		{"enemy in reach", pickAt("enemy", "e1", 0.5, 0), "", components.TargetEnemy, ActionAttack},
		{"enemy far", pickAt("enemy", "e1", 3, 0), "", components.TargetEnemy, ActionMove},
		{"locked enemy", pickAt("enemy", "e1", 3, 0), "e1", components.TargetEnemy, ActionNone},
		{"other enemy while locked", pickAt("enemy", "e2", 3, 0), "e1", components.TargetEnemy, ActionMove},
		{"unknown object", PickResult{Hit: true, Name: "rock"}, "", components.TargetNone, ActionNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target, action := ClassifyPick(c.pick, hero, c.lock)
			assert.Equal(t, c.kind, target.Kind)
			assert.Equal(t, c.action, action)
			if c.kind != components.TargetNone {
				assert.Equal(t, hero.Y, target.Point.Y, "picked point is snapped to hero height")
			}
		})
	}
}

func enemyArena() *leveldata.Arena {
	a := baseArena()
	a.Enemies = []leveldata.Spawn{
		{ID: "enemy-1", X: 16, Z: 10},
		{ID: "enemy-2", X: 4, Z: 10},
	}
	return a
}

func TestClickingTheLockedEnemyAgainChangesNothing(t *testing.T) {
	gs, _ := newTestState(t, enemyArena())

	ApplyPick(gs, pickAt("enemy", "enemy-1", 16, 10))
	hero := components.Hero.Get(gs.Hero)
	require.Equal(t, "enemy-1", hero.EnemyLock)
	run(gs, 200*ms)

	loc := *components.Locomotion.Get(gs.Hero)
	pos := heroPos(gs)
	ApplyPick(gs, pickAt("enemy", "enemy-1", 16, 11))
	assert.Equal(t, loc, *components.Locomotion.Get(gs.Hero))
	assert.Equal(t, pos, heroPos(gs))

	ApplyPick(gs, pickAt("enemy", "enemy-2", 4, 10))
	assert.Equal(t, "enemy-2", hero.EnemyLock)

	ApplyPick(gs, pickAt("ground", "", 10, 2))
	assert.Empty(t, hero.EnemyLock)
}

func TestRetargetingEndsTheAttack(t *testing.T) {
	a := treeArena()
	a.Trees = append(a.Trees, leveldata.Spawn{ID: "tree-2", X: 10.8, Z: 10})
	gs, _ := newTestState(t, a)

	ApplyPick(gs, pickAt("tree", "tree-1", 10, 10.9))
	first := components.Combat.Get(gs.Hero).Session
	require.NotNil(t, first)

	ApplyPick(gs, pickAt("tree", "tree-2", 10.8, 10))
	second := components.Combat.Get(gs.Hero).Session
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.False(t, gs.Clock.Pending(first.Tick))
	assert.Equal(t, "tree-2", second.Target.ID)
}

func TestHandlePointerPicksThroughTheSpace(t *testing.T) {
	gs, _ := newTestState(t, treeArena())

	HandlePointer(gs, 10, 10.9)
	require.True(t, attacking(gs))
	assert.Equal(t, "tree-1", components.Combat.Get(gs.Hero).Session.Target.ID)
}

func TestClickStopsTheRunningSound(t *testing.T) {
	gs, _ := newTestState(t, baseArena())

	ApplyPick(gs, pickAt("ground", "", 15, 10))
	cues := DrainSounds(gs)
	require.Len(t, cues, 1)
	assert.Equal(t, components.SoundCue{Sound: cfg.SoundRunning}, cues[0])

	// Stop then start again for the new destination
	ApplyPick(gs, pickAt("ground", "", 5, 10))
	assert.Equal(t, []components.SoundCue{
		{Sound: cfg.SoundRunning, Stop: true},
		{Sound: cfg.SoundRunning},
	}, DrainSounds(gs))
	assert.Nil(t, DrainSounds(gs))
}
