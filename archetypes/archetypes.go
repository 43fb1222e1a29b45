package archetypes

import (
	"github.com/automoto/bladewood/components"
	"github.com/automoto/bladewood/tags"
	"github.com/yohamta/donburi"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Transform,
		components.Locomotion,
		components.Combat,
		components.Health,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Destructible,
		components.Transform,
		components.Object,
		components.Health,
		components.LifeBar,
		components.Chase,
		components.Animation,
		components.Flash,
	)
	Tree = newArchetype(
		tags.Tree,
		components.Destructible,
		components.Transform,
		components.Object,
		components.Health,
		components.LifeBar,
		components.Flash,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
