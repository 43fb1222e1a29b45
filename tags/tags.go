package tags

import "github.com/yohamta/donburi"

var (
	Hero   = donburi.NewTag().SetName("Hero")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Tree   = donburi.NewTag().SetName("Tree")
	Ground = donburi.NewTag().SetName("Ground")
	Corpse = donburi.NewTag().SetName("Corpse")
)

// Resolv tags for picking. A pick object carries exactly one of these and
// its name decides how a click on it is classified.
const (
	ResolvGround = "ground"
	ResolvTree   = "tree"
	ResolvEnemy  = "enemy"
)
