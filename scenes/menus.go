package scenes

import (
	"image/color"

	"github.com/automoto/bladewood/audio"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// StartScene displays the title screen
type StartScene struct {
	sceneChanger SceneChanger
	startUI      *ui.StartUI
}

func NewStartScene(sc SceneChanger, s *Session) (*StartScene, error) {
	ss := &StartScene{sceneChanger: sc}
	startUI, err := ui.NewStartUI("BLADEWOOD", func() {
		audio.Play(cfg.SoundMenuSelect)
		ss.sceneChanger.ChangeScene(cfg.EventCreate)
	})
	if err != nil {
		return nil, err
	}
	ss.startUI = startUI
	return ss, nil
}

func (ss *StartScene) Update() error {
	ss.startUI.UI.Update()
	return nil
}

func (ss *StartScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ss.startUI.UI.Draw(screen)
}

func (ss *StartScene) Dispose() {}

// CreationScene lets the player dress the character. Every change is saved
// when the player moves on.
type CreationScene struct {
	sceneChanger SceneChanger
	session      *Session
	creationUI   *ui.CreationUI
}

func NewCreationScene(sc SceneChanger, s *Session) (*CreationScene, error) {
	cs := &CreationScene{sceneChanger: sc, session: s}
	creationUI, err := ui.NewCreationUI(s.Equipment,
		func() { audio.Play(cfg.SoundMenuSelect) },
		cs.done,
	)
	if err != nil {
		return nil, err
	}
	cs.creationUI = creationUI
	return cs, nil
}

func (cs *CreationScene) done() {
	if err := cs.session.Store.Save(cs.session.Equipment); err != nil {
		cs.session.Log.WithError(err).Warn("equipment not saved")
	}
	audio.Play(cfg.SoundMenuSelect)
	cs.sceneChanger.ChangeScene(cfg.EventPlay)
}

func (cs *CreationScene) Update() error {
	cs.creationUI.UI.Update()
	return nil
}

func (cs *CreationScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cs.creationUI.UI.Draw(screen)
}

func (cs *CreationScene) Dispose() {}

// LoseScene reports the finished round
type LoseScene struct {
	sceneChanger SceneChanger
	loseUI       *ui.LoseUI
}

func NewLoseScene(sc SceneChanger, s *Session) (*LoseScene, error) {
	ls := &LoseScene{sceneChanger: sc}
	loseUI, err := ui.NewLoseUI(s.Last, func() {
		audio.Play(cfg.SoundMenuSelect)
		ls.sceneChanger.ChangeScene(cfg.EventRestart)
	})
	if err != nil {
		return nil, err
	}
	ls.loseUI = loseUI
	return ls, nil
}

func (ls *LoseScene) Update() error {
	ls.loseUI.UI.Update()
	return nil
}

func (ls *LoseScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ls.loseUI.UI.Draw(screen)
}

func (ls *LoseScene) Dispose() {}
