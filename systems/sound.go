package systems

import (
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
)

// PlaySound queues a cue for the audio layer. Looped sounds that are already
// on are not queued twice.
func PlaySound(gs *GameState, id cfg.SoundID) {
	if id == cfg.SoundNone || gs.audio == nil {
		return
	}
	if cfg.Sound.Looped[id] {
		if gs.audio.Playing[id] {
			return
		}
		gs.audio.Playing[id] = true
	}
	gs.audio.Pending = append(gs.audio.Pending, components.SoundCue{Sound: id})
}

// StopSound queues a stop for a looped sound that is playing
func StopSound(gs *GameState, id cfg.SoundID) {
	if id == cfg.SoundNone || gs.audio == nil || !gs.audio.Playing[id] {
		return
	}
	gs.audio.Playing[id] = false
	gs.audio.Pending = append(gs.audio.Pending, components.SoundCue{Sound: id, Stop: true})
}

// DrainSounds hands the queued cues to the caller and empties the queue
func DrainSounds(gs *GameState) []components.SoundCue {
	if gs.audio == nil || len(gs.audio.Pending) == 0 {
		return nil
	}
	cues := gs.audio.Pending
	gs.audio.Pending = nil
	return cues
}

func heroSound(gs *GameState, cue cfg.Cue) cfg.SoundID {
	return gs.HeroAssets.Sound(cue)
}
