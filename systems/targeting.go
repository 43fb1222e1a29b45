package systems

import (
	"strings"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/automoto/bladewood/tags"
	"github.com/sirupsen/logrus"
)

// Action is what a click asks the hero to do
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionAttack
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	}
	return "none"
}

// ClassifyPick turns a pick into a target and the action it calls for.
// This is the only place object names are looked at. lock is the enemy id
// the hero is currently locked onto; clicking that enemy again yields
// ActionNone.
func ClassifyPick(pick PickResult, hero gamemath.Vec3, lock string) (components.Target, Action) {
	if !pick.Hit {
		return components.Target{}, ActionNone
	}

	point := pick.Point.WithY(hero.Y)
	dist := gamemath.Distance(hero, point)

	switch {
	case pick.Name == tags.ResolvGround:
		t := components.GroundTarget(point)
		if dist < cfg.Locomotion.ArrivalRadius {
			return t, ActionNone
		}
		return t, ActionMove

	case pick.Name == tags.ResolvTree:
		t := components.TreeTarget(pick.ID, point)
		if dist < cfg.Locomotion.ClickReach {
			return t, ActionAttack
		}
		return t, ActionMove

	case strings.Contains(pick.Name, tags.ResolvEnemy):
		t := components.EnemyTarget(pick.ID, point)
		if pick.ID == lock {
			return t, ActionNone
		}
		if dist < cfg.Locomotion.ClickReach {
			return t, ActionAttack
		}
		return t, ActionMove
	}
	return components.Target{}, ActionNone
}

// HandlePointer resolves a primary button press at world point (x, z)
func HandlePointer(gs *GameState, x, z float64) {
	if gs.GameOver {
		return
	}
	pick := Pick(gs, x, z)
	if !pick.Hit {
		return
	}
	ApplyPick(gs, pick)
}

// ApplyPick acts on an already resolved pick
func ApplyPick(gs *GameState, pick PickResult) {
	if gs.GameOver || !pick.Hit {
		return
	}

	hero := components.Hero.Get(gs.Hero)
	pos := components.Transform.Get(gs.Hero).Position

	target, action := ClassifyPick(pick, pos, hero.EnemyLock)
	if target.IsNone() {
		return
	}
	log := gs.Log.WithFields(logrus.Fields{"target": target, "action": action})

	switch target.Kind {
	case components.TargetGround:
		hero.EnemyLock = ""
	case components.TargetEnemy:
		if action != ActionNone {
			hero.EnemyLock = target.ID
		}
	}
	if action == ActionNone {
		// Already there, or already locked on
		log.Debug("click ignored")
		return
	}

	StopSound(gs, heroSound(gs, cfg.CueRun))

	// A new target ends the fight with the old one
	if combat := components.Combat.Get(gs.Hero); combat.Attacking() && !combat.Session.Target.Same(target) {
		EndAttack(gs)
	}

	switch action {
	case ActionMove:
		Move(gs, target)
	case ActionAttack:
		if err := InitializeAttack(gs, target); err != nil {
			log.WithError(err).Warn("attack not started")
		}
	}
}
