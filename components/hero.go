package components

import "github.com/yohamta/donburi"

type HeroData struct {
	Level  int
	Damage int
	Name   string

	// Enemy the last click locked onto. Clicking it again is ignored.
	EnemyLock string
	Kills     int
	Trees     int
}

var Hero = donburi.NewComponentType[HeroData]()
