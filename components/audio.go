package components

import (
	cfg "github.com/automoto/bladewood/config"
	"github.com/yohamta/donburi"
)

// SoundCue asks the audio layer to start or stop a sound
type SoundCue struct {
	Sound cfg.SoundID
	Stop  bool
}

// AudioData stores the queued cues of a world (singleton component)
type AudioData struct {
	Pending []SoundCue
	Playing map[cfg.SoundID]bool // looped sounds currently on
}

var Audio = donburi.NewComponentType[AudioData]()
