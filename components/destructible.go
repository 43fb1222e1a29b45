package components

import "github.com/yohamta/donburi"

// DestructibleData marks trees and enemies. ID is unique within a round.
type DestructibleData struct {
	ID   string
	Kind TargetKind
}

var Destructible = donburi.NewComponentType[DestructibleData]()
