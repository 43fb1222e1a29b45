package components

import (
	"testing"

	"github.com/automoto/bladewood/assets/animations"
	"github.com/automoto/bladewood/config"
	"github.com/stretchr/testify/assert"
)

func newHeroClips() *AnimationData {
	return &AnimationData{
		Character: "hero",
		Clips: map[config.AnimState]*animations.Animation{
			config.Idle:      animations.NewAnimation("0Idle", 0, 5, 1, 0, true),
			config.Running:   animations.NewAnimation("running.weapon", 0, 7, 1, 0, true),
			config.Attacking: animations.NewAnimation("slash.0", 0, 4, 1, 0, false),
		},
	}
}

func TestOnlyOneStatePlays(t *testing.T) {
	a := newHeroClips()
	for _, s := range []config.AnimState{config.Idle, config.Running, config.Attacking, config.Idle} {
		a.SetAnimation(s)
		for _, other := range []config.AnimState{config.Idle, config.Running, config.Attacking} {
			assert.Equal(t, other == s, a.Playing(other), "%v while %v", other, s)
		}
		assert.Same(t, a.Clips[s], a.CurrentAnimation)
	}
}

func TestSetAnimationKeepsTheRunningClip(t *testing.T) {
	a := newHeroClips()
	a.SetAnimation(config.Running)
	a.CurrentAnimation.Update()
	a.CurrentAnimation.Update()

	a.SetAnimation(config.Running)
	assert.Equal(t, 2, a.CurrentAnimation.Frame())

	a.Replay(config.Running)
	assert.Equal(t, 0, a.CurrentAnimation.Frame())
}

func TestMissingClipPlaysNothing(t *testing.T) {
	a := newHeroClips()
	a.SetAnimation(config.Idle)
	a.SetAnimation(config.Dying)

	assert.True(t, a.Playing(config.Dying))
	assert.False(t, a.Playing(config.Idle))
	assert.Nil(t, a.CurrentAnimation)
}

func TestStopOnlyEndsThePlayingState(t *testing.T) {
	a := newHeroClips()
	a.SetAnimation(config.Running)

	a.Stop(config.Idle)
	assert.True(t, a.Playing(config.Running))

	a.Stop(config.Running)
	assert.Equal(t, config.StateNone, a.Current)
	assert.Nil(t, a.CurrentAnimation)
}
