package systems

import (
	"github.com/automoto/bladewood/components"
	"github.com/yohamta/donburi"
)

// Frames a destructible stays tinted after a hit
const hitFlashFrames = 8

// UpdateEffects processes visual effect components
func UpdateEffects(gs *GameState) {
	updateFlashEffects(gs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(gs *GameState) {
	components.Flash.Each(gs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func startFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(e, components.FlashData{
		Duration: hitFlashFrames,
		R:        1, G: 0.4, B: 0.4,
	})
}
