package systems

import (
	"github.com/automoto/bladewood/components"
	"github.com/yohamta/donburi"
)

// UpdateAnimations advances the playing clip of every animated actor
func UpdateAnimations(gs *GameState) {
	components.Animation.Each(gs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
