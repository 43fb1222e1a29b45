package systems

import (
	"testing"
	"time"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/automoto/bladewood/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yohamta/donburi"
)

const ms = time.Millisecond

// Hero at (10, 10) in the middle of a 20x20 arena. Trees and enemies are
// added per test.
func baseArena() *leveldata.Arena {
	return &leveldata.Arena{
		Name:      "test",
		Width:     20,
		Depth:     20,
		Ground:    leveldata.Rect{X: 0, Z: 0, W: 20, D: 20},
		HeroSpawn: leveldata.Spawn{ID: "hero", X: 10, Z: 10},
	}
}

func newTestState(t *testing.T, arena *leveldata.Arena) (*GameState, *test.Hook) {
	t.Helper()
	l, hook := test.NewNullLogger()
	gs := NewGameState(arena, "levels/test.tmx", DefaultEquipment(), logrus.NewEntry(l))
	return gs, hook
}

// run ticks the whole game loop in 100ms frames
func run(gs *GameState, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += 100 * ms {
		Tick(gs, 100*ms)
	}
}

func heroPos(gs *GameState) gamemath.Vec3 {
	return components.Transform.Get(gs.Hero).Position
}

func hp(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func attacking(gs *GameState) bool {
	return components.Combat.Get(gs.Hero).Attacking()
}

func heroAnim(gs *GameState) cfg.AnimState {
	return components.Animation.Get(gs.Hero).Current
}

func warnings(hook *test.Hook) []string {
	var msgs []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

func pickAt(kind, id string, x, z float64) PickResult {
	name := kind
	if kind == "enemy" {
		name += ":" + id
	}
	return PickResult{Hit: true, Name: name, ID: id, Point: gamemath.V3(x, 0, z)}
}

func newTestLogEntry() *logrus.Entry {
	l, _ := test.NewNullLogger()
	return logrus.NewEntry(l)
}
