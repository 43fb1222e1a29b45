package components

import (
	"github.com/automoto/bladewood/schedule"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks a corpse waiting for disposal. The corpse is no longer
// pickable or targetable; Dispose fires when it should leave the world.
type DeathData struct {
	Dispose schedule.EventID

	// The corpse lies still for Hold seconds, then Sink lowers it into the
	// ground. Offset is the current sink depth in [0, 1].
	Hold   float32
	Sink   *gween.Tween
	Offset float32
}

var Death = donburi.NewComponentType[DeathData]()
