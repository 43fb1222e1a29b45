package components

import "github.com/yohamta/donburi"

type ChaseData struct {
	Moving bool
	Speed  float64
}

var Chase = donburi.NewComponentType[ChaseData]()
