package factory

import (
	"github.com/automoto/bladewood/archetypes"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/automoto/bladewood/leveldata"
	"github.com/automoto/bladewood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateTree(w donburi.World, space *resolv.Space, spawn leveldata.Spawn) *donburi.Entry {
	tree := archetypes.Tree.Spawn(w)

	health := spawn.Health
	if health <= 0 {
		health = cfg.Tree.Health
	}

	components.Destructible.SetValue(tree, components.DestructibleData{
		ID:   spawn.ID,
		Kind: components.TargetTree,
	})
	components.Transform.SetValue(tree, components.TransformData{
		Position: gamemath.V3(spawn.X, 0, spawn.Z),
	})
	newPickObject(space, tree, spawn.X, spawn.Z, cfg.Tree.Radius, tags.ResolvTree)

	components.Health.SetValue(tree, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.LifeBar.SetValue(tree, components.LifeBarData{
		Width: cfg.Combat.LifeBarFullWidth,
	})
	components.Flash.SetValue(tree, components.FlashData{R: 1, G: 1, B: 1})

	return tree
}
