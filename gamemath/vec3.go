// Package gamemath holds the small amount of 3D math the arena needs.
// Y is height; the ground is the X/Z plane.
package gamemath

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// WithY returns v with its height replaced
func (v Vec3) WithY(y float64) Vec3 {
	v.Y = y
	return v
}

// Distance is the euclidean distance between a and b
func Distance(a, b Vec3) float64 {
	return b.Sub(a).Length()
}

// Lerp returns a + (b-a)*t. t is not clamped.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// YawTowards returns the rotation about the Y axis that faces from -> to.
// A zero yaw faces +Z.
func YawTowards(from, to Vec3) float64 {
	dx := to.X - from.X
	dz := to.Z - from.Z
	if dx == 0 && dz == 0 {
		return 0
	}
	return math.Atan2(dx, dz)
}

// Forward is the unit vector on the ground plane for a yaw
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// StepToward moves from toward to along the facing yaw by step,
// never past the target.
func StepToward(from, to Vec3, yaw, step float64) Vec3 {
	remaining := Distance(from.WithY(0), to.WithY(0))
	if step >= remaining {
		return Vec3{X: to.X, Y: from.Y, Z: to.Z}
	}
	return from.Add(Forward(yaw).Scale(step))
}
