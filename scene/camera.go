package scene

import (
	"math"
	"sync"

	"github.com/lixenwraith/mini-fps/vmath"
)

// Camera is the player's first-person camera
// Moves on the floor plane at a fixed eye height, heading is a yaw angle
// where yaw 0 looks down -Z and positive yaw turns right
type Camera struct {
	mu       sync.RWMutex
	position vmath.Vec3F
	yaw      float64

	moveStep float64
	turnStep float64
	extent   float64 // |x| and |z| bound
}

// NewCamera creates a camera at start looking down -Z
func NewCamera(start vmath.Vec3F, moveStep, turnStep, extent float64) *Camera {
	return &Camera{
		position: start,
		moveStep: moveStep,
		turnStep: turnStep,
		extent:   extent,
	}
}

// Camera implements engine.CameraSource
func (c *Camera) Camera() (position, forward vmath.Vec3F) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position, vmath.V3FFromYaw(c.yaw)
}

// Pose returns position and yaw
func (c *Camera) Pose() (vmath.Vec3F, float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position, c.yaw
}

// Move steps along the heading and sideways, in units of the move step
func (c *Camera) Move(ahead, strafe float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	forward := vmath.V3FFromYaw(c.yaw)
	right := vmath.Vec3F{X: math.Cos(c.yaw), Z: math.Sin(c.yaw)}

	p := vmath.V3FMulAdd(c.position, forward, ahead*c.moveStep)
	p = vmath.V3FMulAdd(p, right, strafe*c.moveStep)
	p.X = min(max(p.X, -c.extent), c.extent)
	p.Z = min(max(p.Z, -c.extent), c.extent)
	p.Y = c.position.Y
	c.position = p
}

// Turn rotates the heading by steps turn steps, positive turns right
func (c *Camera) Turn(steps float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = math.Remainder(c.yaw+steps*c.turnStep, 2*math.Pi)
}
