package constants

// Arena view layout
const (
	// HUDHeight is the number of rows reserved at the bottom for the HUD
	HUDHeight = 2

	// ArenaCellsPerUnit is the default horizontal terminal cells per world unit
	ArenaCellsPerUnit = 2.0

	// ArenaRowsPerUnit is the default vertical terminal rows per world unit
	ArenaRowsPerUnit = 1.0
)

// Glyphs
const (
	GlyphPlayer     = '@'
	GlyphTarget     = '■'
	GlyphTargetCool = '□'
	GlyphProjectile = '•'
	GlyphCrosshair  = '+'
	GlyphHeading    = '·'
)
