package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/engine"
	"github.com/lixenwraith/mini-fps/render"
	"github.com/lixenwraith/mini-fps/vmath"
)

// gridSpacing is the world distance between floor dots
const gridSpacing = 4.0

// FloorRenderer paints the arena background with a world-anchored dot grid
type FloorRenderer struct{}

// NewFloorRenderer creates a floor renderer
func NewFloorRenderer() *FloorRenderer {
	return &FloorRenderer{}
}

// Render implements SystemRenderer
func (f *FloorRenderer) Render(ctx render.RenderContext, canvas render.Canvas) {
	for y := 0; y < ctx.ArenaHeight(); y++ {
		render.FillRow(canvas, y, ' ', render.DefaultStyle)
	}

	gridStyle := render.DefaultStyle.Foreground(render.RgbFloorGrid)
	extent := constants.ArenaHalfExtent
	for gx := -extent; gx <= extent; gx += gridSpacing {
		for gz := -extent; gz <= extent; gz += gridSpacing {
			if x, y, ok := ctx.Project(vmath.Vec3F{X: gx, Z: gz}); ok {
				canvas.SetContent(x, y, '.', nil, gridStyle)
			}
		}
	}
}

// EntityRenderer draws targets, projectiles, the heading ray and the player
type EntityRenderer struct{}

// NewEntityRenderer creates an entity renderer
func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

// Render implements SystemRenderer
func (e *EntityRenderer) Render(ctx render.RenderContext, canvas render.Canvas) {
	px, py := ctx.PlayerCol(), ctx.PlayerRow()

	// Heading ray: the forward direction is straight up in the view
	headingStyle := render.DefaultStyle.Foreground(render.RgbHeading)
	for y := py - 2; y >= 0; y -= 2 {
		canvas.SetContent(px, y, constants.GlyphHeading, nil, headingStyle)
	}

	for _, t := range ctx.Snapshot.Targets {
		e.drawTarget(ctx, canvas, t)
	}

	projectileStyle := render.DefaultStyle.Foreground(render.RgbProjectile)
	for _, p := range ctx.Snapshot.Projectiles {
		if x, y, ok := ctx.Project(p.Position); ok {
			canvas.SetContent(x, y, constants.GlyphProjectile, nil, projectileStyle)
		}
	}

	if py < ctx.ArenaHeight() {
		canvas.SetContent(px, py, constants.GlyphPlayer, nil, render.DefaultStyle.Foreground(render.RgbPlayer).Bold(true))
	}
}

func (e *EntityRenderer) drawTarget(ctx render.RenderContext, canvas render.Canvas, t engine.TargetView) {
	pose := render.TargetPose(t.BasePosition, t.ID, ctx.Elapsed)
	x, y, ok := ctx.Project(pose.Position)
	if !ok {
		return
	}

	var style tcell.Style
	glyph := constants.GlyphTarget
	if t.HitState == engine.HitCooldown {
		glyph = constants.GlyphTargetCool
		style = render.DefaultStyle.Foreground(render.RgbTargetCool)
	} else {
		// Brightness follows bob height
		phase := (pose.Position.Y - t.BasePosition.Y) / constants.TargetBobAmplitude
		c := render.LerpColor(render.RgbTargetLow, render.RgbTargetHigh, (phase+1)/2)
		style = render.DefaultStyle.Foreground(c)
	}

	if t.ID == ctx.AimTarget {
		style = style.Reverse(true)
	}

	canvas.SetContent(x, y, glyph, nil, style)
	// Spin indicator beside the target
	w, _ := canvas.Size()
	if x+1 < w {
		canvas.SetContent(x+1, y, render.SpinGlyph(pose.Yaw), nil, render.DefaultStyle.Foreground(render.RgbStatusDim))
	}
}

// CrosshairRenderer marks the aim point on the forward ray while the pointer is captured
type CrosshairRenderer struct{}

// NewCrosshairRenderer creates a crosshair renderer
func NewCrosshairRenderer() *CrosshairRenderer {
	return &CrosshairRenderer{}
}

// IsVisible implements VisibilityToggle
func (c *CrosshairRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.Captured
}

// Render implements SystemRenderer
func (c *CrosshairRenderer) Render(ctx render.RenderContext, canvas render.Canvas) {
	y := ctx.PlayerRow() - int(math.Round(ctx.AimDistance*ctx.RowsPerUnit))
	y = max(y, 0)

	style := render.DefaultStyle.Foreground(render.RgbCrosshair).Bold(true)
	if ctx.AimTarget != 0 {
		style = render.DefaultStyle.Foreground(render.RgbAimLocked).Bold(true)
	}

	// Drawn one row below a locked target so the target glyph stays visible
	if ctx.AimTarget != 0 && y+1 < ctx.PlayerRow() {
		y++
	}
	canvas.SetContent(ctx.PlayerCol(), y, constants.GlyphCrosshair, nil, style)
}
