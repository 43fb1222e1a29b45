package factory

import (
	"github.com/automoto/bladewood/archetypes"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/automoto/bladewood/leveldata"
	"github.com/yohamta/donburi"
)

func CreateHero(w donburi.World, spawn leveldata.Spawn, assets CharacterAssets, name string) *donburi.Entry {
	hero := archetypes.Hero.Spawn(w)

	if name == "" {
		name = cfg.Wardrobe.DefaultName
	}
	components.Hero.SetValue(hero, components.HeroData{
		Level:  cfg.Hero.Level,
		Damage: cfg.Hero.Damage,
		Name:   name,
	})
	components.Transform.SetValue(hero, components.TransformData{
		Position: gamemath.V3(spawn.X, cfg.Hero.Height, spawn.Z),
	})
	components.Locomotion.SetValue(hero, components.LocomotionData{
		Speed: cfg.Hero.Speed,
	})
	components.Health.SetValue(hero, components.HealthData{
		Current: cfg.Hero.Health,
		Max:     cfg.Hero.Health,
	})
	components.Animation.Set(hero, assets.NewAnimationData())

	return hero
}
