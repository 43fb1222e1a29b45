package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

var (
	ErrStaleTarget   = errors.New("target not found")
	ErrNotAttackable = errors.New("target cannot be attacked")
	ErrGameOver      = errors.New("game over")
)

// InitializeAttack starts an attack session on a tree or enemy: one strike
// right away, then one every tick interval. Each strike lands its damage
// after the wind-up delay. Attacking the target already under attack is a
// no-op; any other session is ended first.
func InitializeAttack(gs *GameState, target components.Target) error {
	if gs.GameOver {
		return ErrGameOver
	}
	if !target.Destructible() {
		return fmt.Errorf("%w: %s", ErrNotAttackable, target)
	}

	combat := components.Combat.Get(gs.Hero)
	if combat.Attacking() {
		if combat.Session.Target.Same(target) {
			gs.Log.WithField("target", target).Debug("already attacking")
			return nil
		}
		EndAttack(gs)
	}

	if _, ok := gs.lookup(target); !ok {
		Stop(gs)
		return fmt.Errorf("%w: %s", ErrStaleTarget, target)
	}

	loc := components.Locomotion.Get(gs.Hero)
	loc.Moving = false
	loc.Target = target
	StopSound(gs, heroSound(gs, cfg.CueRun))

	session := &components.AttackSession{Target: target}
	combat.Session = session
	strike(gs, session)
	if combat.Session != session {
		return nil
	}
	session.Tick = gs.Clock.Every(cfg.Combat.TickInterval, func() {
		attackTick(gs, session)
	})

	gs.Log.WithField("target", target).Debug("attack started")
	return nil
}

// EndAttack tears down the current session. Damage that is already winding
// up still lands unless Combat.CancelPendingDamage is set.
func EndAttack(gs *GameState) {
	combat := components.Combat.Get(gs.Hero)
	s := combat.Session
	if s == nil {
		return
	}
	gs.Clock.Cancel(s.Tick)
	if cfg.Combat.CancelPendingDamage {
		gs.Clock.Cancel(s.PendingDamage)
	}
	combat.Session = nil
	components.Animation.Get(gs.Hero).Stop(cfg.Attacking)
}

func attackTick(gs *GameState, session *components.AttackSession) {
	if components.Combat.Get(gs.Hero).Session != session {
		gs.Clock.Cancel(session.Tick)
		return
	}
	if gs.GameOver {
		EndAttack(gs)
		return
	}
	strike(gs, session)
}

// strike swings once at the session target and schedules the hit
func strike(gs *GameState, session *components.AttackSession) {
	target := session.Target
	e, ok := gs.lookup(target)
	if !ok {
		gs.Log.WithField("target", target).Warn("attack target not found")
		Stop(gs)
		return
	}

	tr := components.Transform.Get(gs.Hero)
	tr.Face(components.Transform.Get(e).Position)
	components.Animation.Get(gs.Hero).Replay(cfg.Attacking)

	session.Ticks++
	session.PendingDamage = gs.Clock.After(cfg.Combat.DamageDelay, func() {
		applyDamage(gs, target)
	})
}

// applyDamage runs when a strike lands. The target is looked up again since
// it may have died or been disposed during the wind-up.
func applyDamage(gs *GameState, target components.Target) {
	e, ok := gs.lookup(target)
	if !ok {
		gs.Log.WithField("target", target).Warn("hit landed on a stale target")
		if engaged(gs, target) {
			Stop(gs)
		}
		return
	}

	hero := components.Hero.Get(gs.Hero)
	hp := components.Health.Get(e)
	hp.Current -= hero.Damage
	components.LifeBar.Get(e).Width = hp.Ratio() * cfg.Combat.LifeBarFullWidth
	startFlash(e)
	PlaySound(gs, heroSound(gs, cfg.CueHit))

	gs.Log.WithFields(logrus.Fields{
		"target": target,
		"damage": hero.Damage,
		"hp":     hp.Current,
	}).Debug("hit")

	if hp.Current > 0 {
		return
	}
	switch target.Kind {
	case components.TargetTree:
		killTree(gs, e, target)
	case components.TargetEnemy:
		killEnemy(gs, e, target)
	}
}

func killTree(gs *GameState, e *donburi.Entry, target components.Target) {
	delete(gs.Trees, target.ID)
	removePickObject(gs, e)
	gs.World.Remove(e.Entity())

	components.Hero.Get(gs.Hero).Trees++
	gs.Log.WithField("target", target).Info("tree felled")

	if engaged(gs, target) {
		Stop(gs)
	}
}

func killEnemy(gs *GameState, e *donburi.Entry, target components.Target) {
	delete(gs.Enemies, target.ID)
	removePickObject(gs, e)

	components.Chase.Get(e).Moving = false
	components.Animation.Get(e).SetAnimation(cfg.Dying)
	e.AddComponent(tags.Corpse)
	PlaySound(gs, gs.EnemyAssets.Sound(cfg.CueDeath))
	scheduleDisposal(gs, e)

	hero := components.Hero.Get(gs.Hero)
	Reward(hero, components.Health.Get(gs.Hero))
	if hero.EnemyLock == target.ID {
		hero.EnemyLock = ""
	}

	gs.Log.WithFields(logrus.Fields{
		"target": target,
		"level":  hero.Level,
		"damage": hero.Damage,
	}).Info("enemy slain")

	if engaged(gs, target) {
		Stop(gs)
	}
}

// Reward levels the hero up after a kill. The heal overshoots the new
// maximum on purpose.
func Reward(hero *components.HeroData, hp *components.HealthData) {
	hp.Max += cfg.Combat.RewardMaxHealth
	hp.Current = hp.Max + cfg.Combat.RewardHealBonus
	hero.Level += cfg.Combat.RewardLevels
	hero.Damage += cfg.Combat.RewardDamage
	hero.Kills++
}

// engaged reports whether the hero is still busy with target, either
// fighting it or walking to it
func engaged(gs *GameState, target components.Target) bool {
	if combat := components.Combat.Get(gs.Hero); combat.Attacking() && combat.Session.Target.Same(target) {
		return true
	}
	return components.Locomotion.Get(gs.Hero).Target.Same(target)
}
