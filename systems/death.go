package systems

import (
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// scheduleDisposal turns a dead enemy into a corpse that leaves the world
// once the corpse lifetime is over
func scheduleDisposal(gs *GameState, e *donburi.Entry) {
	life := float32(cfg.Combat.CorpseLifetime.Seconds())
	entity := e.Entity()

	id := gs.Clock.After(cfg.Combat.CorpseLifetime, func() {
		disposeCorpse(gs, entity)
	})
	donburi.Add(e, components.Death, &components.DeathData{
		Dispose: id,
		Hold:    life / 2,
		Sink:    gween.New(0, 1, life/2, ease.InQuad),
	})
}

func disposeCorpse(gs *GameState, entity donburi.Entity) {
	if !gs.World.Valid(entity) {
		gs.Log.Debug("corpse already disposed")
		return
	}
	gs.World.Remove(entity)
}

// UpdateCorpses plays the sink of every corpse. Removal itself is a
// scheduled event, not driven from here.
func UpdateCorpses(gs *GameState, dt float64) {
	step := float32(dt)
	components.Death.Each(gs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Hold > 0 {
			death.Hold -= step
			return
		}
		if death.Sink != nil {
			death.Offset, _ = death.Sink.Update(step)
		}
	})
}

func removePickObject(gs *GameState, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e); obj.Object != nil {
		gs.Space.Remove(obj.Object)
		obj.Object = nil
	}
}
