package components

import (
	"github.com/automoto/bladewood/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *leveldata.Arena
	Path  string
}

var Level = donburi.NewComponentType[LevelData]()
