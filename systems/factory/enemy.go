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

// CreateEnemy spawns an idle enemy. Health and speed come from the map
// object when set, otherwise from config.
func CreateEnemy(w donburi.World, space *resolv.Space, spawn leveldata.Spawn, assets CharacterAssets) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	health := spawn.Health
	if health <= 0 {
		health = cfg.Enemy.Health
	}
	speed := spawn.Speed
	if speed <= 0 {
		speed = cfg.Enemy.ChaseSpeed
	}

	components.Destructible.SetValue(enemy, components.DestructibleData{
		ID:   spawn.ID,
		Kind: components.TargetEnemy,
	})
	components.Transform.SetValue(enemy, components.TransformData{
		Position: gamemath.V3(spawn.X, cfg.Hero.Height, spawn.Z),
	})
	newPickObject(space, enemy, spawn.X, spawn.Z, cfg.Enemy.Radius, tags.ResolvEnemy)

	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.LifeBar.SetValue(enemy, components.LifeBarData{
		Width: cfg.Combat.LifeBarFullWidth,
	})
	components.Chase.SetValue(enemy, components.ChaseData{
		Speed: speed,
	})
	components.Animation.Set(enemy, assets.NewAnimationData())

	// Permanently attached to avoid archetype thrashing on every hit
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	return enemy
}
