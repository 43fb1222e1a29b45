package scenes

import (
	"fmt"
	"image/color"
	"maps"

	"github.com/automoto/bladewood/audio"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/cutscene"
	"github.com/automoto/bladewood/fonts"
	"github.com/automoto/bladewood/logger"
	"github.com/automoto/bladewood/render"
	"github.com/automoto/bladewood/systems"
	"github.com/automoto/bladewood/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type loadResult struct {
	gs  *systems.GameState
	err error
}

// CutsceneScene plays the intro while the round loads in the background
type CutsceneScene struct {
	sceneChanger SceneChanger
	session      *Session
	seq          *cutscene.Sequence
	cutsceneUI   *ui.CutsceneUI
	input        Input

	loaded chan loadResult
	done   bool
}

// Backdrop shades cycled behind the dialogue
var backdrop = []color.RGBA{
	{30, 34, 28, 255},
	{34, 38, 30, 255},
	{38, 42, 33, 255},
	{34, 38, 30, 255},
}

var dialogueColor = color.RGBA{240, 240, 220, 255}

func NewCutsceneScene(sc SceneChanger, s *Session) (*CutsceneScene, error) {
	cs := &CutsceneScene{
		sceneChanger: sc,
		session:      s,
		seq:          cutscene.New(logger.For("cutscene")),
		loaded:       make(chan loadResult, 1),
	}
	cutsceneUI, err := ui.NewCutsceneUI(cs.seq.Skip, cs.next)
	if err != nil {
		return nil, err
	}
	cs.cutsceneUI = cutsceneUI
	cs.input.Poll()

	if cfg.Debug.SkipIntro {
		cs.seq.Skip()
	}

	path, equip := s.ArenaPath, maps.Clone(s.Equipment)
	go func() {
		gs, err := loadGame(path, equip)
		cs.loaded <- loadResult{gs, err}
	}()
	return cs, nil
}

func (cs *CutsceneScene) Update() error {
	if cs.done {
		return nil
	}

	select {
	case r := <-cs.loaded:
		if r.err != nil {
			// The game scene retries and the flow falls back if it fails again
			cs.session.Log.WithError(r.err).Error("background load failed")
		} else {
			cs.session.ready = r.gs
		}
		cs.seq.SetLoaded()
	default:
	}

	cs.seq.Update(frameTime())
	cs.cutsceneUI.SetDialogue(cs.seq.InDialogue())
	cs.cutsceneUI.UI.Update()

	cs.input.Poll()
	switch {
	case cs.input.JustPressed(ActionSkip):
		cs.seq.Skip()
	case cs.input.JustPressed(ActionNext):
		cs.next()
	}

	if cs.seq.Ready() {
		cs.done = true
		cs.sceneChanger.ChangeScene(cfg.EventEnterGame)
	}
	return nil
}

func (cs *CutsceneScene) next() {
	if !cs.seq.InDialogue() {
		return
	}
	audio.Play(cfg.SoundDialogueNext)
	cs.seq.Next()
}

func (cs *CutsceneScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := float32(cfg.Cutscene.FrameWidth), float32(cfg.Cutscene.FrameHeight)
	x, y := (float32(w)-fw)/2, (float32(h)-fh)/2

	switch {
	case cs.seq.Waiting():
		text.Draw(screen, cfg.Cutscene.LoadingHint, fonts.Bold.Get(), int(x), h/2, color.White)
	case cs.seq.InDialogue():
		vector.DrawFilledRect(screen, x, y, fw, fh, backdrop[cs.seq.Backdrop()%len(backdrop)], false)
		text.Draw(screen, cs.seq.Line(), fonts.Regular.Get(), int(x)+12, int(y+fh/2), dialogueColor)
	default:
		if name, frame, ok := cs.seq.Clip(); ok {
			drawClipFrame(screen, name, frame, x, y, fw, fh)
		}
	}

	cs.cutsceneUI.UI.Draw(screen)
	render.DrawFade(screen, float64(1-cs.seq.Alpha()))
}

// drawClipFrame stands in for a sheet cell: a panel with the clip's name and
// a bar for how far through it the frame is
func drawClipFrame(screen *ebiten.Image, name string, frame int, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{24, 40, 28, 255}, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{90, 120, 90, 255}, false)

	last := 1
	for _, c := range cfg.Cutscene.Clips {
		if c.Name == name {
			last = max(c.LastFrame, 1)
		}
	}
	progress := float32(frame) / float32(last)
	vector.DrawFilledRect(screen, x+8, y+h-14, (w-16)*progress, 4, color.RGBA{200, 220, 160, 255}, false)
	text.Draw(screen, fmt.Sprintf("%s  %d/%d", name, frame, last), fonts.Small.Get(), int(x)+8, int(y)+16, color.White)
}

// Dispose leaves a round that loaded after the scene ended to the garbage
// collector. The loader goroutine never blocks on the buffered channel.
func (cs *CutsceneScene) Dispose() {
	cs.done = true
}
