package systems

import (
	"time"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/leveldata"
	"github.com/automoto/bladewood/schedule"
	"github.com/automoto/bladewood/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GameState is everything one round in the arena owns. Every gameplay update
// takes it explicitly; the package keeps no globals of its own.
type GameState struct {
	World donburi.World
	Space *resolv.Space
	Clock *schedule.Scheduler
	Log   *logrus.Entry
	Arena *leveldata.Arena

	Hero *donburi.Entry

	// Live roster. Entities leave these maps the moment they die, so a
	// lookup miss means the target is stale.
	Trees   map[string]*donburi.Entry
	Enemies map[string]*donburi.Entry

	HeroAssets  factory.CharacterAssets
	EnemyAssets factory.CharacterAssets

	GameOver bool

	audio *components.AudioData
}

// NewGameState builds a fresh world for arena and populates it
func NewGameState(arena *leveldata.Arena, path string, equipment Equipment, log *logrus.Entry) *GameState {
	w := donburi.NewWorld()
	assets := factory.ArenaAssets{
		Hero:  factory.LoadCharacterAssets("hero", log),
		Enemy: factory.LoadCharacterAssets("enemy", log),
	}
	roster := factory.CreateArena(w, arena, path, assets, equipment.Name())

	gs := &GameState{
		World:       w,
		Space:       roster.Space,
		Clock:       schedule.New(),
		Log:         log,
		Arena:       arena,
		Hero:        roster.Hero,
		Trees:       roster.Trees,
		Enemies:     roster.Enemies,
		HeroAssets:  assets.Hero,
		EnemyAssets: assets.Enemy,
	}
	if e, ok := components.Audio.First(w); ok {
		gs.audio = components.Audio.Get(e)
	}

	log.WithFields(logrus.Fields{
		"arena":   arena.Name,
		"trees":   len(arena.Trees),
		"enemies": len(arena.Enemies),
	}).Info("arena ready")
	return gs
}

// Tick runs one frame of gameplay. dt is the wall time of the frame.
func Tick(gs *GameState, dt time.Duration) {
	gs.Clock.Advance(dt)
	updateRound(gs)

	seconds := dt.Seconds()
	UpdateLocomotion(gs, seconds)
	UpdateChase(gs, seconds)
	UpdateCorpses(gs, seconds)
	UpdateAnimations(gs)
	UpdateEffects(gs)
}

// Dispose drops every scheduled event so nothing of this round runs again
func (gs *GameState) Dispose() {
	gs.Clock.Clear()
	EndAttack(gs)
	if gs.audio != nil {
		for id, on := range gs.audio.Playing {
			if on {
				StopSound(gs, id)
			}
		}
	}
}

// lookup returns the live entity a destructible target points at
func (gs *GameState) lookup(t components.Target) (*donburi.Entry, bool) {
	var e *donburi.Entry
	var ok bool
	switch t.Kind {
	case components.TargetTree:
		e, ok = gs.Trees[t.ID]
	case components.TargetEnemy:
		e, ok = gs.Enemies[t.ID]
	}
	if !ok || !e.Valid() {
		return nil, false
	}
	return e, true
}

// TimeLeft is the remaining round time, or -1 without a limit
func (gs *GameState) TimeLeft() time.Duration {
	if cfg.Round.TimeLimit <= 0 {
		return -1
	}
	left := cfg.Round.TimeLimit - gs.Clock.Now()
	if left < 0 {
		return 0
	}
	return left
}

func updateRound(gs *GameState) {
	if gs.GameOver || cfg.Round.TimeLimit <= 0 {
		return
	}
	if gs.Clock.Now() >= cfg.Round.TimeLimit {
		gs.Log.WithField("elapsed", gs.Clock.Now()).Info("time is up")
		SetGameOver(gs)
	}
}

// SetGameOver ends the round. The attack tick is cancelled and clicks are
// ignored from here on. Damage already in flight still lands.
func SetGameOver(gs *GameState) {
	if gs.GameOver {
		return
	}
	gs.GameOver = true
	Stop(gs)
}
