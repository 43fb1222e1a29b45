package factory

import (
	"github.com/automoto/bladewood/archetypes"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/yohamta/donburi"
)

// CreateAudio spawns the singleton that holds queued sound cues
func CreateAudio(w donburi.World) *donburi.Entry {
	e := archetypes.Audio.Spawn(w)
	components.Audio.Set(e, &components.AudioData{
		Playing: make(map[cfg.SoundID]bool),
	})
	return e
}
