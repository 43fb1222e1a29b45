package components

import (
	"fmt"

	"github.com/automoto/bladewood/gamemath"
)

// TargetKind tells what a click landed on
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetGround
	TargetTree
	TargetEnemy
)

func (k TargetKind) String() string {
	switch k {
	case TargetGround:
		return "ground"
	case TargetTree:
		return "tree"
	case TargetEnemy:
		return "enemy"
	}
	return "none"
}

// Target is what the hero is walking to or fighting. ID is empty for
// ground and none targets.
type Target struct {
	Kind  TargetKind
	ID    string
	Point gamemath.Vec3
}

func GroundTarget(p gamemath.Vec3) Target {
	return Target{Kind: TargetGround, Point: p}
}

func TreeTarget(id string, p gamemath.Vec3) Target {
	return Target{Kind: TargetTree, ID: id, Point: p}
}

func EnemyTarget(id string, p gamemath.Vec3) Target {
	return Target{Kind: TargetEnemy, ID: id, Point: p}
}

func (t Target) IsNone() bool {
	return t.Kind == TargetNone
}

// Destructible reports whether the target can be attacked
func (t Target) Destructible() bool {
	return t.Kind == TargetTree || t.Kind == TargetEnemy
}

// Same reports whether t and o name the same object. Points are ignored.
func (t Target) Same(o Target) bool {
	return t.Kind == o.Kind && t.ID == o.ID
}

func (t Target) String() string {
	if t.ID == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.ID)
}
