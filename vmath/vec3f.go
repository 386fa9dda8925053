package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units
// Y is up, the arena floor is the XZ plane, -Z is the default forward
type Vec3F struct {
	X, Y, Z float64
}

// V3F builds a vector from a fixed-size triple
func V3F(p [3]float64) Vec3F {
	return Vec3F{p[0], p[1], p[2]}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns the euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FNormalize returns the unit vector of v, zero vector stays zero
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FMulAdd returns p + d*s, the hot path of projectile integration
func V3FMulAdd(p, d Vec3F, s float64) Vec3F {
	return Vec3F{p.X + d.X*s, p.Y + d.Y*s, p.Z + d.Z*s}
}

// V3FFromYaw returns the horizontal unit forward for a heading
// Yaw 0 faces -Z, positive yaw turns toward +X
func V3FFromYaw(yaw float64) Vec3F {
	return Vec3F{X: math.Sin(yaw), Y: 0, Z: -math.Cos(yaw)}
}
