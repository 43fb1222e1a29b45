// Package audio plays the sound cues gameplay queues. It owns the single
// ebiten audio context of the process.
package audio

import (
	"sync"

	"github.com/automoto/bladewood/assets"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/logger"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *ebaudio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	loops              = map[cfg.SoundID]*ebaudio.Player{}
	audioInitOnce      sync.Once
)

var log = logger.For("audio")

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = ebaudio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.WithError(err).WithField("sound", id).Warn("preload failed")
		}
	}
}

// PlayCues starts and stops sounds as gameplay asked for them
func PlayCues(cues []components.SoundCue) {
	for _, c := range cues {
		if c.Stop {
			stopLoop(c.Sound)
			continue
		}
		Play(c.Sound)
	}
}

// Play starts a sound. Looped sounds keep going until stopped; starting one
// that is already on does nothing.
func Play(id cfg.SoundID) {
	initGlobalAudio()
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}

	if cfg.Sound.Looped[id] {
		playLoop(id, path)
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("sound not played")
		return
	}
	player.SetVolume(volumeFor(id))
	player.Play()
}

func playLoop(id cfg.SoundID, path string) {
	if p, ok := loops[id]; ok {
		if !p.IsPlaying() {
			p.Play()
		}
		return
	}
	player, err := globalAudioLoader.LoadLoop(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("loop not played")
		return
	}
	player.SetVolume(volumeFor(id))
	player.Play()
	loops[id] = player
}

func stopLoop(id cfg.SoundID) {
	p, ok := loops[id]
	if !ok {
		return
	}
	p.Pause()
	_ = p.Rewind()
}

// StopAll silences every looped sound
func StopAll() {
	for id := range loops {
		stopLoop(id)
	}
}

func volumeFor(id cfg.SoundID) float64 {
	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	return volume
}

// SetSFXVolume changes the effect volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
	for id, p := range loops {
		p.SetVolume(volumeFor(id))
	}
}

func GetSFXVolume() float64 {
	return globalSFXVolume
}
