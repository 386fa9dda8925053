package render

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface handed to renderers
// Satisfied by tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// SystemRenderer is implemented by components with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, canvas Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
