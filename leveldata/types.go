// Package leveldata parses arena layouts from Tiled maps.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

// Arena holds everything needed to populate a round, in world units.
// Tiled's y axis maps onto the world Z axis.
type Arena struct {
	Name      string
	Width     float64
	Depth     float64
	Ground    Rect
	HeroSpawn Spawn
	Trees     []Spawn
	Enemies   []Spawn
}

// Rect is an axis-aligned area of the ground plane
type Rect struct {
	X, Z, W, D float64
}

func (r Rect) Contains(x, z float64) bool {
	return x >= r.X && x <= r.X+r.W && z >= r.Z && z <= r.Z+r.D
}

// Spawn is a placed entity. Zero Health or Speed means "use the default".
type Spawn struct {
	ID     string
	X, Z   float64
	Health int
	Speed  float64
}
