package config

import "time"

// CutsceneClip is one sprite-sheet clip of the intro
type CutsceneClip struct {
	Name      string
	LastFrame int // the clip ends once this frame has been shown
}

// CutsceneConfig contains the intro sequence timing
type CutsceneConfig struct {
	Clips          []CutsceneClip
	FrameInterval  time.Duration
	BackdropFrames int // dialogue backdrop loops over this many frames
	BackdropFrame  time.Duration
	DialoguePages  int // number of "next" presses before the last page
	DialogueLines  []string
	FadeDuration   float32 // seconds
	LoadingHint    string
	FrameWidth     int
	FrameHeight    int
}

var Cutscene CutsceneConfig

func init() {
	Cutscene = CutsceneConfig{
		Clips: []CutsceneClip{
			{Name: "beginning", LastFrame: 9},
			{Name: "working", LastFrame: 11},
			{Name: "dropoff", LastFrame: 11},
			{Name: "leaving", LastFrame: 9},
			{Name: "watermelon", LastFrame: 8},
			{Name: "reading", LastFrame: 11},
		},
		FrameInterval:  750 * time.Millisecond,
		BackdropFrames: 4,
		BackdropFrame:  250 * time.Millisecond,
		DialoguePages:  8,
		DialogueLines: []string{
			"The woodcutter left before dawn, as always.",
			"By noon, the forest had gone quiet.",
			"Something moves between the old trees now.",
			"The village asked for someone to go after him.",
			"Nobody stepped forward.",
			"Except you.",
			"Cut a path through the wood.",
			"Whatever stands in the way, cut that down too.",
			"Go.",
		},
		FadeDuration: 0.6,
		LoadingHint:  "Loading...",
		FrameWidth:   320,
		FrameHeight:  180,
	}
}
