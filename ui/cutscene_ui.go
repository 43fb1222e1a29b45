package ui

import (
	"github.com/ebitenui/ebitenui/widget"
)

// CutsceneUI holds the skip and next buttons over the intro. The intro
// itself is drawn by the scene underneath.
type CutsceneUI struct {
	Screen
	f faces

	next *widget.Button
}

func NewCutsceneUI(onSkip, onNext func()) (*CutsceneUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	cu := &CutsceneUI{f: f}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)

	skip := newButton("SKIP", &cu.f.normal, buttonImage(), 60, 22, onSkip)
	skip.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(skip)

	cu.next = newButton("NEXT", &cu.f.normal, primaryButtonImage(), 60, 22, onNext)
	cu.next.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	cu.next.GetWidget().Disabled = true
	root.AddChild(cu.next)

	cu.Screen = newScreen(root)
	return cu, nil
}

// SetDialogue enables the next button once the dialogue is on screen
func (cu *CutsceneUI) SetDialogue(on bool) {
	cu.next.GetWidget().Disabled = !on
}
