package components

import "github.com/yohamta/donburi"

// FlashData tracks the hit flash of a destructible that just took damage
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers
}

var Flash = donburi.NewComponentType[FlashData]()
