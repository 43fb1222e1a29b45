package config

type AnimationDef struct {
	Clip  string // clip name inside the character asset
	First int
	Last  int
	Step  int
	Speed float32
	Loop  bool
}

// CharacterClips maps a character key to the clips its asset ships with.
var CharacterClips = map[string]map[string]AnimationDef{
	"hero": {
		"0Idle":          {Clip: "0Idle", First: 0, Last: 5, Step: 1, Speed: 8, Loop: true},
		"running.weapon": {Clip: "running.weapon", First: 0, Last: 7, Step: 1, Speed: 5, Loop: true},
		"slash.0":        {Clip: "slash.0", First: 0, Last: 9, Step: 1, Speed: 4},
	},
	"enemy": {
		"0Idle":   {Clip: "0Idle", First: 0, Last: 5, Step: 1, Speed: 8, Loop: true},
		"running": {Clip: "running", First: 0, Last: 7, Step: 1, Speed: 5, Loop: true},
		"attack0": {Clip: "attack0", First: 0, Last: 7, Step: 1, Speed: 5},
		"death":   {Clip: "death", First: 0, Last: 8, Step: 1, Speed: 6},
	},
}

// ClipBindings maps each animation state to the clip name that plays it.
// Bindings are resolved once when a character is created.
var ClipBindings = map[string]map[AnimState]string{
	"hero": {
		Idle:      "0Idle",
		Running:   "running.weapon",
		Attacking: "slash.0",
	},
	"enemy": {
		Idle:      "0Idle",
		Running:   "running",
		Attacking: "attack0",
		Dying:     "death",
	},
}
