package scene

import (
	"math"

	"github.com/lixenwraith/mini-fps/engine"
	"github.com/lixenwraith/mini-fps/render"
	"github.com/lixenwraith/mini-fps/vmath"
)

// PickTarget casts a ray against the animated pose of every target
// Returns the nearest target within maxRange whose hit sphere the ray crosses
// Cooling targets are still pickable, the session decides whether a hit counts
func PickTarget(origin, dir vmath.Vec3F, targets []engine.TargetView, elapsed, radius, maxRange float64) (id int, dist float64, ok bool) {
	best := math.Inf(1)
	for _, t := range targets {
		pose := render.TargetPose(t.BasePosition, t.ID, elapsed)
		d, hit := vmath.RaySphere(origin, dir, pose.Position, radius)
		if !hit || d > maxRange || d >= best {
			continue
		}
		best, id = d, t.ID
	}
	if id == 0 {
		return 0, 0, false
	}
	return id, best, true
}
