package ui

import (
	"fmt"
	"image/color"
)

// Summary is what the lose screen reports about the finished round
type Summary struct {
	Name   string
	Level  int
	Kills  int
	Trees  int
	Damage int
}

// LoseUI is shown once the round is over
type LoseUI struct {
	Screen
	f faces

	OnRestart func()
}

func NewLoseUI(s Summary, onRestart func()) (*LoseUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	lu := &LoseUI{f: f, OnRestart: onRestart}

	root, column := centered(color.RGBA{30, 10, 10, 255}, 8)
	column.AddChild(newLabel("THE FOREST WINS", &lu.f.title, color.RGBA{255, 120, 120, 255}))
	column.AddChild(newLabel(fmt.Sprintf("%s reached level %d", s.Name, s.Level), &lu.f.normal, textWhite))
	column.AddChild(newLabel(fmt.Sprintf("Trees felled: %d   Enemies slain: %d   Damage: %d", s.Trees, s.Kills, s.Damage), &lu.f.small, textWhite))
	column.AddChild(newButton("BACK TO START", &lu.f.normal, primaryButtonImage(), 140, 28, func() {
		if lu.OnRestart != nil {
			lu.OnRestart()
		}
	}))
	lu.Screen = newScreen(root)
	return lu, nil
}
