package factory

import (
	"math"

	"github.com/automoto/bladewood/archetypes"
	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/leveldata"
	"github.com/automoto/bladewood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace sizes the picking space to the arena. resolv's X is world X
// and resolv's Y is world Z, both scaled to whole space units so every
// object spans at least one of them.
func CreateSpace(w donburi.World, arena *leveldata.Arena) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	cell := cfg.Pick.CellSize
	width := int(math.Ceil(ToSpace(arena.Width))) + cell
	depth := int(math.Ceil(ToSpace(arena.Depth))) + cell
	components.Space.Set(space, resolv.NewSpace(width, depth, cell, cell))
	return space
}

// ToSpace converts a world length or coordinate to space units
func ToSpace(v float64) float64 {
	return v * cfg.Pick.Scale
}

// FromSpace converts space units back to world units
func FromSpace(v float64) float64 {
	return v / cfg.Pick.Scale
}

func CreateGround(w donburi.World, space *resolv.Space, ground leveldata.Rect) *donburi.Entry {
	e := archetypes.Ground.Spawn(w)
	gw, gd := ToSpace(ground.W), ToSpace(ground.D)
	obj := resolv.NewObject(ToSpace(ground.X), ToSpace(ground.Z), gw, gd, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, gw, gd))
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return e
}

// newPickObject is a square of side 2*radius centered on (x, z)
func newPickObject(space *resolv.Space, e *donburi.Entry, x, z, radius float64, tag string) *resolv.Object {
	size := ToSpace(radius * 2)
	obj := resolv.NewObject(ToSpace(x-radius), ToSpace(z-radius), size, size, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}

// CenterPickObject moves obj so it is centered on the world point (x, z)
func CenterPickObject(obj *resolv.Object, x, z float64) {
	obj.X = ToSpace(x) - obj.W/2
	obj.Y = ToSpace(z) - obj.H/2
	obj.Update()
}
