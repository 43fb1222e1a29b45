package systems

import (
	"sort"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/sirupsen/logrus"
)

// UpdateChase runs the idle/chasing behavior of every live enemy. An idle
// enemy starts chasing once the hero is inside its engage radius but not in
// melee; a chasing one gives up when the hero is leashed away or in melee.
func UpdateChase(gs *GameState, dt float64) {
	heroPos := components.Transform.Get(gs.Hero).Position

	ids := make([]string, 0, len(gs.Enemies))
	for id := range gs.Enemies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		e := gs.Enemies[id]
		if !e.Valid() {
			continue
		}
		chase := components.Chase.Get(e)
		tr := components.Transform.Get(e)
		anim := components.Animation.Get(e)
		d := gamemath.Distance(tr.Position, heroPos.WithY(tr.Position.Y))

		if !chase.Moving && d > cfg.Chase.MinDistance && d <= cfg.Chase.EngageRadius {
			chase.Moving = true
			gs.Log.WithFields(logrus.Fields{"enemy": id, "distance": d}).Debug("enemy gives chase")
		}
		if !chase.Moving {
			continue
		}

		if d >= cfg.Chase.LeashDistance || d < cfg.Chase.MinDistance {
			chase.Moving = false
			anim.SetAnimation(cfg.Idle)
			continue
		}

		tr.Face(heroPos)
		tr.Position = gamemath.StepToward(tr.Position, heroPos.WithY(tr.Position.Y), tr.Yaw, chase.Speed*dt)
		anim.SetAnimation(cfg.Running)
		syncPickObject(e, tr)
	}
}
