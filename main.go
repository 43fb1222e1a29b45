package main

import (
	"context"
	"flag"
	"image"

	"github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/flow"
	"github.com/automoto/bladewood/fonts"
	"github.com/automoto/bladewood/logger"
	"github.com/automoto/bladewood/scenes"
	"github.com/automoto/bladewood/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Game struct {
	bounds  image.Rectangle
	flow    *flow.Machine
	pending []string
	log     *logrus.Entry
}

// ChangeScene queues a flow event for the end of the frame
func (g *Game) ChangeScene(event string) {
	g.pending = append(g.pending, event)
}

func NewGame(session *scenes.Session) (*Game, error) {
	g := &Game{
		bounds: image.Rectangle{},
		log:    logger.For("flow"),
	}

	initial := config.FlowStart
	if config.Debug.SkipIntro {
		initial = config.FlowCharacterCreation
	}

	build := func(state string) (flow.Context, error) {
		scene, err := scenes.New(state, g, session)
		if err != nil {
			return nil, err
		}
		return scene, nil
	}
	m, err := flow.New(initial, build, g.log)
	if err != nil {
		return nil, err
	}
	g.flow = m
	return g, nil
}

func (g *Game) scene() scenes.Scene {
	s, _ := g.flow.Active().(scenes.Scene)
	return s
}

func (g *Game) Update() error {
	if s := g.scene(); s != nil {
		if err := s.Update(); err != nil {
			return err
		}
	}

	for _, event := range g.pending {
		if err := g.flow.Fire(context.Background(), event); err != nil {
			g.log.WithError(err).Warn("transition failed")
		}
	}
	g.pending = g.pending[:0]
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if s := g.scene(); s != nil {
		s.Draw(screen)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML file with gameplay overrides")
	skipIntro := flag.Bool("skip-intro", false, "start at character creation and skip the cutscene")
	logLevel := flag.String("log-level", "", "log level (default LOG_LEVEL or info)")
	flag.Parse()

	logger.Init(*logLevel)
	log := logger.For("main")
	config.Debug.SkipIntro = *skipIntro

	if *tuning != "" {
		if err := config.LoadTuningFile(*tuning); err != nil {
			log.WithError(err).Warn("tuning not applied, using defaults")
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("fonts")
	}

	store, err := systems.OpenEquipmentStore(logger.For("persistence"))
	if err != nil {
		log.WithError(err).Warn("equipment will not be saved")
	}
	equip, err := store.Load()
	if err != nil {
		log.WithError(err).Warn("saved equipment ignored")
	}

	game, err := NewGame(scenes.NewSession(store, equip, logger.For("session")))
	if err != nil {
		log.WithError(err).Fatal("start")
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Bladewood")
	ebiten.SetTPS(config.C.TPS)

	err = ebiten.RunGame(game)
	game.flow.Close()
	if err != nil {
		log.WithError(err).Fatal("run")
	}
}
