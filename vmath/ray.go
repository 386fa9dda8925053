package vmath

import "math"

// RaySphere intersects a ray with a sphere
// dir must be unit length. Returns the distance along the ray to the first
// intersection in front of the origin, or ok=false on a miss
func RaySphere(origin, dir, center Vec3F, radius float64) (t float64, ok bool) {
	oc := V3FSub(origin, center)
	b := V3FDot(oc, dir)
	c := V3FMagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t = -b - sq
	if t < 0 {
		// Origin inside the sphere
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
