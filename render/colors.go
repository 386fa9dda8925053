package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloorGrid  = tcell.NewRGBColor(45, 47, 64)    // Dim grid dots
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHeading    = tcell.NewRGBColor(90, 90, 110)   // Gray heading ray
	RgbCrosshair  = tcell.NewRGBColor(255, 255, 255) // White
	RgbAimLocked  = tcell.NewRGBColor(255, 80, 80)   // Red when a target is in sight
	RgbProjectile = tcell.NewRGBColor(255, 255, 0)   // Bright yellow

	RgbTargetLow  = tcell.NewRGBColor(60, 100, 200)  // Target at bob trough
	RgbTargetHigh = tcell.NewRGBColor(140, 190, 255) // Target at bob crest
	RgbTargetCool = tcell.NewRGBColor(255, 120, 120) // Target cooling down

	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim   = tcell.NewRGBColor(140, 140, 140) // Gray
	RgbReloadHint  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbCompleteBar = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbTitle       = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// DefaultStyle is the background style every renderer draws over
var DefaultStyle = tcell.StyleDefault.Background(RgbBackground)

// LerpColor blends two colors by t in [0, 1]
func LerpColor(a, b tcell.Color, t float64) tcell.Color {
	t = min(max(t, 0), 1)
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	return tcell.NewRGBColor(
		ar+int32(float64(br-ar)*t),
		ag+int32(float64(bg-ag)*t),
		ab+int32(float64(bb-ab)*t),
	)
}

// DrawText writes s starting at x, y, clipped to the canvas width
// Returns the column after the last written cell
func DrawText(canvas Canvas, x, y int, s string, style tcell.Style) int {
	w, h := canvas.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			canvas.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// DrawCentered writes s centered on row y
func DrawCentered(canvas Canvas, y int, s string, style tcell.Style) {
	w, _ := canvas.Size()
	DrawText(canvas, (w-len([]rune(s)))/2, y, s, style)
}

// FillRow paints a full row with the given rune
func FillRow(canvas Canvas, y int, r rune, style tcell.Style) {
	w, _ := canvas.Size()
	for x := 0; x < w; x++ {
		canvas.SetContent(x, y, r, nil, style)
	}
}
