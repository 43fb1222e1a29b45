package factory

import (
	"sort"

	"github.com/automoto/bladewood/assets/animations"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/sirupsen/logrus"
)

// CharacterAssets is the clip and sound set of one character, resolved from
// names once at load time. It is read-only after LoadCharacterAssets.
type CharacterAssets struct {
	Character string
	Clips     map[cfg.AnimState]cfg.AnimationDef
	Sounds    map[cfg.Cue]cfg.SoundID
}

// LoadCharacterAssets resolves the clip and sound bindings of character.
// Bindings that point at a missing clip or sound file are logged here and
// left out, so playing them later is a silent no-op.
func LoadCharacterAssets(character string, log *logrus.Entry) CharacterAssets {
	a := CharacterAssets{
		Character: character,
		Clips:     make(map[cfg.AnimState]cfg.AnimationDef),
		Sounds:    make(map[cfg.Cue]cfg.SoundID),
	}
	log = log.WithField("character", character)

	clips := cfg.CharacterClips[character]
	for _, state := range sortedStates(cfg.ClipBindings[character]) {
		name := cfg.ClipBindings[character][state]
		def, ok := clips[name]
		if !ok {
			log.WithFields(logrus.Fields{"clip": name, "state": state}).Warn("animation clip not found")
			continue
		}
		a.Clips[state] = def
	}

	for cue, sound := range cfg.SoundBindings[character] {
		if _, ok := cfg.Sound.SFXPaths[sound]; !ok {
			log.WithField("cue", cue).Warn("sound not found")
			continue
		}
		a.Sounds[cue] = sound
	}
	return a
}

// Sound returns the effect bound to cue, or SoundNone
func (a CharacterAssets) Sound(cue cfg.Cue) cfg.SoundID {
	if s, ok := a.Sounds[cue]; ok {
		return s
	}
	return cfg.SoundNone
}

// NewAnimationData builds fresh clip players for one actor. Every actor gets
// its own players so frame counters are not shared.
func (a CharacterAssets) NewAnimationData() *components.AnimationData {
	data := &components.AnimationData{
		Character: a.Character,
		Clips:     make(map[cfg.AnimState]*animations.Animation, len(a.Clips)),
	}
	for state, def := range a.Clips {
		data.Clips[state] = animations.NewAnimation(def.Clip, def.First, def.Last, def.Step, def.Speed, def.Loop)
	}
	data.SetAnimation(cfg.Idle)
	return data
}

func sortedStates(m map[cfg.AnimState]string) []cfg.AnimState {
	states := make([]cfg.AnimState, 0, len(m))
	for s := range m {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}
