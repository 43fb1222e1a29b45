package ui

import (
	"image/color"
)

// StartUI is the title screen
type StartUI struct {
	Screen
	f faces

	OnPlay func()
}

func NewStartUI(title string, onPlay func()) (*StartUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	su := &StartUI{f: f, OnPlay: onPlay}

	root, column := centered(background, 12)
	column.AddChild(newLabel(title, &su.f.title, textWhite))
	column.AddChild(newLabel("Click to move. Click a tree or an enemy to attack it.", &su.f.small, color.RGBA{190, 200, 190, 255}))
	column.AddChild(newButton("PLAY", &su.f.normal, primaryButtonImage(), 120, 30, func() {
		if su.OnPlay != nil {
			su.OnPlay()
		}
	}))
	su.Screen = newScreen(root)
	return su, nil
}
