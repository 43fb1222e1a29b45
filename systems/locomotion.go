package systems

import (
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
)

// Move sends the hero toward target and ends any attack session
func Move(gs *GameState, target components.Target) {
	EndAttack(gs)

	loc := components.Locomotion.Get(gs.Hero)
	tr := components.Transform.Get(gs.Hero)

	target.Point = target.Point.WithY(tr.Position.Y)
	loc.Moving = true
	loc.Target = target
	tr.Face(target.Point)

	components.Animation.Get(gs.Hero).SetAnimation(cfg.Running)
	PlaySound(gs, heroSound(gs, cfg.CueRun))
}

// Stop leaves the hero idle where it stands with no target
func Stop(gs *GameState) {
	EndAttack(gs)

	loc := components.Locomotion.Get(gs.Hero)
	loc.Moving = false
	loc.Target = components.Target{}

	components.Animation.Get(gs.Hero).SetAnimation(cfg.Idle)
	StopSound(gs, heroSound(gs, cfg.CueRun))
}

// UpdateLocomotion advances a moving hero by dt seconds and turns arrival
// into the follow-up: idle on ground, an attack on trees and enemies.
func UpdateLocomotion(gs *GameState, dt float64) {
	if gs.GameOver {
		return
	}
	loc := components.Locomotion.Get(gs.Hero)
	if !loc.Moving || loc.Target.IsNone() {
		return
	}
	tr := components.Transform.Get(gs.Hero)
	target := loc.Target

	if target.Destructible() {
		e, ok := gs.lookup(target)
		if !ok {
			gs.Log.WithField("target", target).Warn("target not found, stopping")
			hero := components.Hero.Get(gs.Hero)
			if hero.EnemyLock == target.ID {
				hero.EnemyLock = ""
			}
			Stop(gs)
			return
		}
		if target.Kind == components.TargetEnemy {
			// Enemies wander, so follow where the enemy is now
			target.Point = components.Transform.Get(e).Position.WithY(tr.Position.Y)
			loc.Target = target
		}
	}

	dist := gamemath.Distance(tr.Position, target.Point)
	switch target.Kind {
	case components.TargetGround:
		if dist < cfg.Locomotion.ArrivalRadius {
			Stop(gs)
			return
		}
	case components.TargetTree:
		if dist < cfg.Locomotion.TreeReach {
			startAttackFromMove(gs, target)
			return
		}
	case components.TargetEnemy:
		if dist <= cfg.Locomotion.EnemyEngageRange {
			startAttackFromMove(gs, target)
			return
		}
	}

	tr.Face(target.Point)
	switch cfg.Locomotion.Mode {
	case cfg.LocomotionLerp:
		t := cfg.Locomotion.LerpRate * dt
		if t > 1 {
			t = 1
		}
		tr.Position = gamemath.Lerp(tr.Position, target.Point, t).WithY(tr.Position.Y)
	default:
		tr.Position = gamemath.StepToward(tr.Position, target.Point, tr.Yaw, loc.Speed*dt)
	}
}

func startAttackFromMove(gs *GameState, target components.Target) {
	if err := InitializeAttack(gs, target); err != nil {
		gs.Log.WithError(err).WithField("target", target).Warn("attack not started")
	}
}
