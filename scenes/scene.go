package scenes

import (
	"fmt"
	"maps"
	"time"

	"github.com/automoto/bladewood/assets"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/logger"
	"github.com/automoto/bladewood/systems"
	"github.com/automoto/bladewood/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// SceneChanger allows scenes to trigger transitions. The event is fired
// after the current Update returns.
type SceneChanger interface {
	ChangeScene(event string)
}

// Scene is the context of one flow state
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Dispose()
}

// Session is what survives scene changes: the player's equipment, the
// arena to play and the outcome of the last round
type Session struct {
	Log       *logrus.Entry
	Store     *systems.EquipmentStore
	Equipment systems.Equipment
	ArenaPath string
	Last      ui.Summary

	// Round prepared in the background during the cutscene
	ready *systems.GameState
}

func NewSession(store *systems.EquipmentStore, equip systems.Equipment, log *logrus.Entry) *Session {
	return &Session{
		Log:       log,
		Store:     store,
		Equipment: equip,
		ArenaPath: cfg.C.ArenaPath,
	}
}

// loadGame builds a fresh round. It only reads its arguments, so it can
// run off the update loop.
func loadGame(path string, equip systems.Equipment) (*systems.GameState, error) {
	arena, err := assets.LoadArena(path)
	if err != nil {
		return nil, err
	}
	return systems.NewGameState(arena, path, equip, logger.For("game")), nil
}

// takeGame hands over the prepared round, or loads one now
func (s *Session) takeGame() (*systems.GameState, error) {
	if gs := s.ready; gs != nil {
		s.ready = nil
		return gs, nil
	}
	return loadGame(s.ArenaPath, maps.Clone(s.Equipment))
}

// New builds the scene for a flow state
func New(state string, sc SceneChanger, s *Session) (Scene, error) {
	switch state {
	case cfg.FlowStart:
		return NewStartScene(sc, s)
	case cfg.FlowCharacterCreation:
		return NewCreationScene(sc, s)
	case cfg.FlowCutscene:
		return NewCutsceneScene(sc, s)
	case cfg.FlowGame:
		return NewGameScene(sc, s)
	case cfg.FlowLose:
		return NewLoseScene(sc, s)
	}
	return nil, fmt.Errorf("no scene for state %q", state)
}

// frameTime is the game time one Update stands for
func frameTime() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}
