package components

import (
	"github.com/automoto/bladewood/schedule"
	"github.com/yohamta/donburi"
)

// AttackSession lives from attack initiation until the target dies or the
// hero moves, re-targets, or the round ends.
type AttackSession struct {
	Target        Target
	Tick          schedule.EventID // repeating attack tick
	PendingDamage schedule.EventID // last delayed damage application
	Ticks         int
}

type CombatData struct {
	Session *AttackSession
}

func (c *CombatData) Attacking() bool {
	return c.Session != nil
}

var Combat = donburi.NewComponentType[CombatData]()
