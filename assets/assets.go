package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/automoto/bladewood/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const LevelsDir = "levels"

// Levels is the bundled level directory tree
func Levels() fs.FS {
	return assetFS
}

// LoadArena reads a bundled arena map, e.g. "levels/arena.tmx"
func LoadArena(path string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(assetFS, path)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return arena, nil
}

// ListArenas returns the names of every bundled arena
func ListArenas() ([]string, error) {
	return leveldata.ListArenas(assetFS, LevelsDir)
}

// ActorLoader draws and caches the flat white shapes actors are rendered
// with. Color comes from the draw options, so one image serves every actor
// of the same size.
type ActorLoader struct {
	discs map[int]*ebiten.Image
}

func NewActorLoader() *ActorLoader {
	return &ActorLoader{
		discs: make(map[int]*ebiten.Image),
	}
}

// Disc returns a white filled circle of the given radius in pixels
func (l *ActorLoader) Disc(radius int) *ebiten.Image {
	if radius < 1 {
		radius = 1
	}
	if img, ok := l.discs[radius]; ok {
		return img
	}
	size := radius*2 + 2
	img := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(img, float32(size)/2, float32(size)/2, float32(radius), color.White, true)
	l.discs[radius] = img
	return img
}

var actorLoader = NewActorLoader()

// GetDisc returns a cached disc from the shared loader
func GetDisc(radius int) *ebiten.Image {
	return actorLoader.Disc(radius)
}
