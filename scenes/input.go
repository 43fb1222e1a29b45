package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Action is a logical input of the scenes
type Action int

const (
	ActionNone  Action = iota
	ActionPoint        // click on the arena
	ActionQuit
	ActionSkip
	ActionNext
	ActionCount // Must be last - used for array sizing
)

// InputBinding is every key, mouse or gamepad button that triggers an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var Bindings = map[Action]InputBinding{
	ActionPoint: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	},
	ActionQuit: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionSkip: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionNext: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Input keeps the pressed state of every action for this frame and the last
type Input struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll swaps the buffers and reads the devices. Call it once per Update.
func (in *Input) Poll() {
	in.Previous = in.Current
	in.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[action] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				in.Current[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					in.Current[action] = true
				}
			}
		}
	}
}

// JustPressed reports a press that started this frame
func (in *Input) JustPressed(a Action) bool {
	return in.Current[a] && !in.Previous[a]
}
