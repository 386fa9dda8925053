package render

import (
	"math"

	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/engine"
	"github.com/lixenwraith/mini-fps/notify"
	"github.com/lixenwraith/mini-fps/vmath"
)

// RenderContext provides frame state for renderers, passed by value
//
// The arena is drawn top-down with the player heading pointing up the
// screen, so the forward ray is always the player column above PlayerRow
type RenderContext struct {
	Snapshot *engine.Snapshot

	// Time state
	Elapsed   float64 // Seconds since the scene started, drives bob and spin
	DeltaTime float64

	// Camera pose
	CameraPosition vmath.Vec3F
	CameraYaw      float64

	// Aim along the forward ray, AimTarget is 0 when nothing is in sight
	AimTarget   int
	AimDistance float64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// World to cell scale
	CellsPerUnit float64
	RowsPerUnit  float64

	// Measured frame rate, 0 until the first full second
	FPS float64

	// Completion delivered to this process, zero until then
	Completion notify.Completion
}

// ArenaHeight returns the rows above the HUD
func (c RenderContext) ArenaHeight() int {
	return max(c.ScreenHeight-constants.HUDHeight, 0)
}

// PlayerCol returns the column the player is drawn at
func (c RenderContext) PlayerCol() int {
	return c.ScreenWidth / 2
}

// PlayerRow returns the row the player is drawn at
func (c RenderContext) PlayerRow() int {
	return max(c.ArenaHeight()-2, 0)
}

// Project maps a world point onto the heading-up arena view
// ok is false when the point falls outside the arena rows
func (c RenderContext) Project(p vmath.Vec3F) (x, y int, ok bool) {
	d := vmath.V3FSub(p, c.CameraPosition)
	forward := vmath.V3FFromYaw(c.CameraYaw)
	right := vmath.Vec3F{X: math.Cos(c.CameraYaw), Z: math.Sin(c.CameraYaw)}

	lateral := vmath.V3FDot(d, right)
	ahead := vmath.V3FDot(d, forward)

	x = c.PlayerCol() + int(math.Round(lateral*c.CellsPerUnit))
	y = c.PlayerRow() - int(math.Round(ahead*c.RowsPerUnit))
	ok = x >= 0 && x < c.ScreenWidth && y >= 0 && y < c.ArenaHeight()
	return x, y, ok
}
