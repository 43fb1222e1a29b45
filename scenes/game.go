package scenes

import (
	"image/color"

	"github.com/automoto/bladewood/assets"
	"github.com/automoto/bladewood/audio"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/render"
	"github.com/automoto/bladewood/systems"
	"github.com/automoto/bladewood/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one round in the arena
type GameScene struct {
	ecs          *ecs.ECS
	gs           *systems.GameState
	sceneChanger SceneChanger
	session      *Session
	input        Input

	// Set once the round is being left; gameplay stops and the screen fades
	leaving   string
	fade      *gween.Tween
	fadeAlpha float32
}

func NewGameScene(sc SceneChanger, s *Session) (*GameScene, error) {
	gs, err := s.takeGame()
	if err != nil {
		return nil, err
	}
	g := &GameScene{gs: gs, sceneChanger: sc, session: s}
	// Keys still held from the previous scene do not count as presses
	g.input.Poll()

	if err := assets.LoadShaders(); err != nil {
		// Hit flash falls back to color scaling
		gs.Log.WithError(err).Warn("shaders not loaded")
	}
	audio.PreloadAllSFX()

	g.ecs = ecs.NewECS(gs.World)

	g.ecs.AddSystem(g.updateInput)
	g.ecs.AddSystem(g.updateRound)
	g.ecs.AddSystem(g.updateAudio)

	g.ecs.AddRenderer(layerDefault, g.drawer(render.DrawGround))
	g.ecs.AddRenderer(layerDefault, g.drawer(render.DrawTargetMarker))
	g.ecs.AddRenderer(layerDefault, g.drawer(render.DrawActors))
	g.ecs.AddRenderer(layerDefault, g.drawer(render.DrawLifeBars))
	g.ecs.AddRenderer(layerDefault, g.drawer(render.DrawHUD))

	// Snap the camera so the round does not open with a pan
	if e, ok := components.Camera.First(gs.World); ok {
		hero := components.Transform.Get(gs.Hero).Position
		components.Camera.Get(e).Position.X = hero.X
		components.Camera.Get(e).Position.Y = hero.Z
		systems.UpdateCamera(gs)
	}
	return g, nil
}

func (g *GameScene) drawer(draw func(*systems.GameState, *ebiten.Image)) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		draw(g.gs, screen)
	}
}

func (g *GameScene) Update() error {
	g.ecs.Update()

	if g.fade != nil {
		alpha, done := g.fade.Update(float32(frameTime().Seconds()))
		g.fadeAlpha = alpha
		if done {
			g.fade = nil
			g.sceneChanger.ChangeScene(g.leaving)
		}
	}
	return nil
}

func (g *GameScene) updateInput(_ *ecs.ECS) {
	g.input.Poll()
	if g.leaving != "" {
		return
	}
	if g.input.JustPressed(ActionQuit) {
		g.leave(cfg.EventQuit)
		return
	}
	if !g.input.JustPressed(ActionPoint) {
		return
	}
	cameraEntry, ok := components.Camera.First(g.gs.World)
	if !ok {
		return
	}
	sx, sy := ebiten.CursorPosition()
	x, z := systems.ScreenToWorld(components.Camera.Get(cameraEntry), float64(sx), float64(sy))
	systems.HandlePointer(g.gs, x, z)
}

func (g *GameScene) updateRound(_ *ecs.ECS) {
	if g.leaving != "" {
		return
	}
	systems.Tick(g.gs, frameTime())
	systems.UpdateCamera(g.gs)

	if g.gs.GameOver {
		g.session.Last = summarize(g.gs)
		g.leave(cfg.EventLose)
	}
}

func (g *GameScene) updateAudio(_ *ecs.ECS) {
	audio.PlayCues(systems.DrainSounds(g.gs))
}

// leave stops the round and fades out before firing event
func (g *GameScene) leave(event string) {
	g.leaving = event
	if event == cfg.EventQuit {
		systems.SetGameOver(g.gs)
	}
	frames := 1 / cfg.Round.FadeStep
	seconds := float32(frames * frameTime().Seconds())
	g.fade = gween.New(0, 1, seconds, ease.Linear)
	g.gs.Log.WithField("event", event).Info("leaving round")
}

func summarize(gs *systems.GameState) ui.Summary {
	hero := components.Hero.Get(gs.Hero)
	return ui.Summary{
		Name:   hero.Name,
		Level:  hero.Level,
		Kills:  hero.Kills,
		Trees:  hero.Trees,
		Damage: hero.Damage,
	}
}

func (g *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	g.ecs.Draw(screen)
	render.DrawFade(screen, float64(g.fadeAlpha))
}

func (g *GameScene) Dispose() {
	g.gs.Dispose()
	audio.PlayCues(systems.DrainSounds(g.gs))
	audio.StopAll()
}
