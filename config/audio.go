package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundRunning
	SoundAttack
	SoundDeath
	// UI sounds
	SoundMenuSelect
	SoundDialogueNext
)

// Cue is a gameplay moment a character can voice
type Cue int

const (
	CueRun Cue = iota + 1
	CueHit
	CueDeath
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	Looped            map[SoundID]bool // played until explicitly stopped
}

var Audio AudioConfig
var Sound SoundConfig

// SoundBindings maps each character's cues to the effect that plays them.
// Like ClipBindings these are resolved once when a character is created.
var SoundBindings = map[string]map[Cue]SoundID{
	"hero": {
		CueRun: SoundRunning,
		CueHit: SoundAttack,
	},
	"enemy": {
		CueDeath: SoundDeath,
	},
}

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundRunning:      "audio/sfx/running.wav",
			SoundAttack:       "audio/sfx/attack.wav",
			SoundDeath:        "audio/sfx/death.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
			SoundDialogueNext: "audio/sfx/dialogue_next.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundRunning: 0.5,
			SoundDeath:   1.2,
		},
		Looped: map[SoundID]bool{
			SoundRunning: true,
		},
	}
}
