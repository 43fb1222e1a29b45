package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object groups read from an arena map
const (
	GroupGround      = "Ground"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupTrees       = "Trees"
	GroupEnemies     = "Enemies"
)

// LoadArena parses a TMX file into an Arena. Pixel coordinates are divided by
// the tile size, so one tile is one world unit. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("TMX %s: tile size must be positive", tmxPath)
	}

	unitX := float64(levelMap.TileWidth)
	unitZ := float64(levelMap.TileHeight)

	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}
	arena.Ground = Rect{W: arena.Width, D: arena.Depth}

	hasSpawn := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.Ground = Rect{X: o.X / unitX, Z: o.Y / unitZ, W: o.Width / unitX, D: o.Height / unitZ}
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				arena.HeroSpawn = Spawn{ID: "hero", X: o.X / unitX, Z: o.Y / unitZ}
				hasSpawn = true
			}
		case GroupTrees, GroupEnemies:
			prefix := "tree"
			if og.Name == GroupEnemies {
				prefix = "enemy"
			}
			for _, o := range og.Objects {
				id := o.Properties.GetString("id")
				if id == "" {
					id = fmt.Sprintf("%s-%d", prefix, o.ID)
				}
				s := Spawn{
					ID:     id,
					X:      o.X / unitX,
					Z:      o.Y / unitZ,
					Health: o.Properties.GetInt("health"),
					Speed:  o.Properties.GetFloat("speed"),
				}
				if og.Name == GroupEnemies {
					arena.Enemies = append(arena.Enemies, s)
				} else {
					arena.Trees = append(arena.Trees, s)
				}
			}
		}
	}

	if !hasSpawn {
		arena.HeroSpawn = Spawn{ID: "hero", X: arena.Ground.X + arena.Ground.W/2, Z: arena.Ground.Z + arena.Ground.D/2}
	}
	if err := arena.validate(); err != nil {
		return nil, fmt.Errorf("TMX %s: %w", tmxPath, err)
	}

	sortSpawns(arena.Trees)
	sortSpawns(arena.Enemies)
	return arena, nil
}

func (a *Arena) validate() error {
	seen := make(map[string]bool, len(a.Trees)+len(a.Enemies))
	for _, group := range [][]Spawn{a.Trees, a.Enemies} {
		for _, s := range group {
			if seen[s.ID] {
				return fmt.Errorf("duplicate id %q", s.ID)
			}
			seen[s.ID] = true
		}
	}
	if !a.Ground.Contains(a.HeroSpawn.X, a.HeroSpawn.Z) {
		return fmt.Errorf("hero spawn (%.1f, %.1f) is off the ground", a.HeroSpawn.X, a.HeroSpawn.Z)
	}
	return nil
}

// Sort spawns by id for a stable creation order
func sortSpawns(s []Spawn) {
	sort.Slice(s, func(i, j int) bool {
		return s[i].ID < s[j].ID
	})
}

// ListArenas returns the stems of every .tmx file in dir, sorted
func ListArenas(fsys fs.FS, dir string) ([]string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
