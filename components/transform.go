package components

import (
	"github.com/automoto/bladewood/gamemath"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64 // radians about Y, zero faces +Z
}

// Face turns the entity toward p without pitching
func (t *TransformData) Face(p gamemath.Vec3) {
	if gamemath.Distance(t.Position.WithY(0), p.WithY(0)) == 0 {
		return
	}
	t.Yaw = gamemath.YawTowards(t.Position, p)
}

var Transform = donburi.NewComponentType[TransformData]()
