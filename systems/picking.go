package systems

import (
	"math"

	"github.com/automoto/bladewood/components"
	cfg "github.com/automoto/bladewood/config"
	"github.com/automoto/bladewood/gamemath"
	"github.com/automoto/bladewood/systems/factory"
	"github.com/automoto/bladewood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PickResult is what a pointer press landed on. Name follows the scene's
// object naming: "ground", "tree", or "enemy:<id>".
type PickResult struct {
	Hit   bool
	Name  string
	ID    string
	Point gamemath.Vec3
}

var pickPriority = map[string]int{
	tags.ResolvEnemy:  3,
	tags.ResolvTree:   2,
	tags.ResolvGround: 1,
}

// Pick finds the top-most pickable object under the world point (x, z).
// Enemies win over trees, trees over ground; among equals the nearest
// center wins. Corpses are no longer in the space and never picked.
func Pick(gs *GameState, x, z float64) PickResult {
	sx, sz := factory.ToSpace(x), factory.ToSpace(z)
	size := factory.ToSpace(cfg.Pick.ProbeSize)
	probe := resolv.NewObject(sx-size/2, sz-size/2, size, size)
	gs.Space.Add(probe)
	defer gs.Space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvEnemy, tags.ResolvTree, tags.ResolvGround)
	if check == nil {
		return PickResult{}
	}

	var best *resolv.Object
	bestRank, bestDist := 0, math.MaxFloat64
	for _, obj := range check.Objects {
		// Cell-level hits only; the point has to be inside the object
		if sx < obj.X || sx > obj.X+obj.W || sz < obj.Y || sz > obj.Y+obj.H {
			continue
		}
		rank := 0
		for tag, r := range pickPriority {
			if obj.HasTags(tag) && r > rank {
				rank = r
			}
		}
		cx, cz := obj.X+obj.W/2, obj.Y+obj.H/2
		dist := math.Hypot(sx-cx, sz-cz)
		if rank > bestRank || (rank == bestRank && dist < bestDist) {
			best, bestRank, bestDist = obj, rank, dist
		}
	}
	if best == nil || bestRank == 0 {
		return PickResult{}
	}
	return pickResultFor(best, x, z)
}

func pickResultFor(obj *resolv.Object, x, z float64) PickResult {
	res := PickResult{Hit: true, Point: gamemath.V3(x, 0, z)}
	switch {
	case obj.HasTags(tags.ResolvGround):
		res.Name = tags.ResolvGround
		return res
	case obj.HasTags(tags.ResolvTree):
		res.Name = tags.ResolvTree
	case obj.HasTags(tags.ResolvEnemy):
		res.Name = tags.ResolvEnemy
	}

	if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() && e.HasComponent(components.Destructible) {
		res.ID = components.Destructible.Get(e).ID
	}
	if res.Name == tags.ResolvEnemy {
		res.Name += ":" + res.ID
	}
	return res
}

// syncPickObject re-centers e's pick square on its transform
func syncPickObject(e *donburi.Entry, tr *components.TransformData) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	factory.CenterPickObject(obj, tr.Position.X, tr.Position.Z)
}
