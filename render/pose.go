package render

import (
	"math"

	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/vmath"
)

// Pose is the animated placement of a target
type Pose struct {
	Position vmath.Vec3F
	Yaw      float64 // Spin about the vertical axis, [0, 2π)
}

// TargetPose returns the bobbing, spinning pose of a target at elapsed seconds
// Pure function of its inputs, game state never stores it
// Each target bobs with a phase offset by its id
func TargetPose(base vmath.Vec3F, targetID int, elapsed float64) Pose {
	bob := constants.TargetBobAmplitude * math.Sin(elapsed*constants.TargetBobSpeed+float64(targetID))
	yaw := math.Mod(elapsed*constants.TargetSpinSpeed, 2*math.Pi)
	if yaw < 0 {
		yaw += 2 * math.Pi
	}

	return Pose{
		Position: vmath.Vec3F{X: base.X, Y: base.Y + bob, Z: base.Z},
		Yaw:      yaw,
	}
}

// SpinGlyph returns a glyph that cycles with the target's spin
func SpinGlyph(yaw float64) rune {
	frames := [...]rune{'|', '/', '-', '\\'}
	i := int(yaw/(math.Pi/4)) % len(frames)
	return frames[i]
}
