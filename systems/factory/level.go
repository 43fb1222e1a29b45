package factory

import (
	"github.com/automoto/bladewood/archetypes"
	"github.com/automoto/bladewood/components"
	"github.com/automoto/bladewood/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, arena *leveldata.Arena, path string) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.Set(level, &components.LevelData{
		Arena: arena,
		Path:  path,
	})
	return level
}

// Roster is what CreateArena spawned. Trees and Enemies are keyed by
// destructible id.
type Roster struct {
	Space   *resolv.Space
	Hero    *donburi.Entry
	Trees   map[string]*donburi.Entry
	Enemies map[string]*donburi.Entry
}

// ArenaAssets are the character sets the arena's actors are built from
type ArenaAssets struct {
	Hero  CharacterAssets
	Enemy CharacterAssets
}

// CreateArena spawns everything an arena map describes: level, picking
// space, ground, hero, trees, enemies, camera and the audio queue.
func CreateArena(w donburi.World, arena *leveldata.Arena, path string, assets ArenaAssets, heroName string) Roster {
	CreateLevel(w, arena, path)
	spaceEntry := CreateSpace(w, arena)
	space := components.Space.Get(spaceEntry)

	CreateGround(w, space, arena.Ground)

	r := Roster{
		Space:   space,
		Hero:    CreateHero(w, arena.HeroSpawn, assets.Hero, heroName),
		Trees:   make(map[string]*donburi.Entry, len(arena.Trees)),
		Enemies: make(map[string]*donburi.Entry, len(arena.Enemies)),
	}
	for _, s := range arena.Trees {
		r.Trees[s.ID] = CreateTree(w, space, s)
	}
	for _, s := range arena.Enemies {
		r.Enemies[s.ID] = CreateEnemy(w, space, s, assets.Enemy)
	}

	CreateCamera(w, arena.HeroSpawn.X, arena.HeroSpawn.Z)
	CreateAudio(w)
	return r
}
