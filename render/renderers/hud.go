package renderers

import (
	"fmt"

	"github.com/lixenwraith/mini-fps/render"
)

// HUDRenderer draws score, ammo and session prompts below the arena
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible implements VisibilityToggle
func (h *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.Started
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, canvas render.Canvas) {
	snap := ctx.Snapshot
	sepY := ctx.ArenaHeight()
	statusY := sepY + 1

	dim := render.DefaultStyle.Foreground(render.RgbStatusDim)
	bright := render.DefaultStyle.Foreground(render.RgbStatusBar)

	render.FillRow(canvas, sepY, '─', dim)
	if ctx.FPS > 0 {
		fps := fmt.Sprintf(" %.0f fps ", ctx.FPS)
		w, _ := canvas.Size()
		render.DrawText(canvas, w-len(fps)-1, sepY, fps, dim)
	}
	render.FillRow(canvas, statusY, ' ', render.DefaultStyle)

	x := render.DrawText(canvas, 1, statusY, fmt.Sprintf("SCORE %d", snap.Score), bright.Bold(true))
	x = render.DrawText(canvas, x+3, statusY, fmt.Sprintf("AMMO %d/%d", snap.Ammo, snap.MaxAmmo), bright)

	if snap.Ammo == 0 {
		x = render.DrawText(canvas, x+3, statusY, "RELOAD (R)", render.DefaultStyle.Foreground(render.RgbReloadHint).Bold(true))
	}

	switch {
	case snap.Ended:
		render.DrawText(canvas, x+3, statusY, "SESSION ENDED", dim)
	case !snap.Captured:
		render.DrawText(canvas, x+3, statusY, "click to aim", dim)
	}

	if ctx.Completion.Completed {
		banner := fmt.Sprintf(" BLOCK COMPLETE %d/%d ", ctx.Completion.Score, ctx.Completion.MaxScore)
		w, _ := canvas.Size()
		render.DrawText(canvas, w-len(banner)-1, statusY, banner, render.DefaultStyle.Foreground(render.RgbCompleteBar).Reverse(true))
	}
}

// StartScreenRenderer covers the screen until the session starts
type StartScreenRenderer struct{}

// NewStartScreenRenderer creates a start screen renderer
func NewStartScreenRenderer() *StartScreenRenderer {
	return &StartScreenRenderer{}
}

// IsVisible implements VisibilityToggle
func (s *StartScreenRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.Snapshot.Started
}

// Render implements SystemRenderer
func (s *StartScreenRenderer) Render(ctx render.RenderContext, canvas render.Canvas) {
	_, h := canvas.Size()
	for y := 0; y < h; y++ {
		render.FillRow(canvas, y, ' ', render.DefaultStyle)
	}

	mid := h / 2
	render.DrawCentered(canvas, mid-2, "M I N I   F P S", render.DefaultStyle.Foreground(render.RgbTitle).Bold(true))
	render.DrawCentered(canvas, mid, "click to start", render.DefaultStyle.Foreground(render.RgbStatusBar))
	render.DrawCentered(canvas, mid+2, "WASD move  ←/→ turn  click/space shoot  R reload  Esc release  Ctrl+Q quit",
		render.DefaultStyle.Foreground(render.RgbStatusDim))
}
