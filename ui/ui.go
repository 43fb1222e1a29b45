// Package ui builds the ebitenui screens around a round: the start screen,
// character creation, the cutscene controls and the lose screen.
package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	background = color.RGBA{20, 24, 20, 255}
	textWhite  = color.RGBA{255, 255, 255, 255}
)

// faces are shared by every screen
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() (faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, err
	}
	return faces{
		title:  &text.GoTextFace{Source: src, Size: 24},
		normal: &text.GoTextFace{Source: src, Size: 12},
		small:  &text.GoTextFace{Source: src, Size: 10},
	}, nil
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 70, 60, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 95, 80, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func primaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

func newButton(label string, face *text.Face, img *widget.ButtonImage, w, h int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     textWhite,
			Hover:    color.RGBA{220, 255, 220, 255},
			Pressed:  color.RGBA{180, 200, 180, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newLabel(label string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, face, &widget.LabelColor{Idle: clr}),
	)
}

// centered returns a full-screen root and the vertical column centered in it
func centered(bg color.Color, spacing int) (root, column *widget.Container) {
	root = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	column = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(column)
	return root, column
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

// Screen is a built ebitenui tree
type Screen struct {
	UI *ebitenui.UI
}

func newScreen(root *widget.Container) Screen {
	return Screen{UI: &ebitenui.UI{Container: root}}
}
