package components

import (
	"github.com/automoto/bladewood/assets/animations"
	"github.com/automoto/bladewood/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Character        string
	CurrentAnimation *animations.Animation
	Current          config.AnimState
	Clips            map[config.AnimState]*animations.Animation
}

// SetAnimation makes state the only playing clip. Switching restarts the
// new clip; asking for the current state again is a no-op.
func (a *AnimationData) SetAnimation(state config.AnimState) {
	if a.Current == state && (a.CurrentAnimation != nil || a.Clips[state] == nil) {
		return
	}

	anim, ok := a.Clips[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.Current = state
			a.CurrentAnimation.Restart()
		}
	} else {
		// No clip for this state, nothing plays
		a.CurrentAnimation = nil
		a.Current = state
	}
}

// Replay restarts state from its first frame even if it is already playing
func (a *AnimationData) Replay(state config.AnimState) {
	a.SetAnimation(state)
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Restart()
	}
}

// Stop ends state if it is the one playing
func (a *AnimationData) Stop(state config.AnimState) {
	if a.Current != state {
		return
	}
	a.Current = config.StateNone
	a.CurrentAnimation = nil
}

func (a *AnimationData) Playing(state config.AnimState) bool {
	return a.Current == state
}

var Animation = donburi.NewComponentType[AnimationData]()
