package constants

// Player camera defaults
const (
	// PlayerEyeHeight is the camera height above the arena floor
	PlayerEyeHeight = 1.6

	// PlayerStartZ is the spawn distance in front of the target line
	PlayerStartZ = 5.0

	// PlayerMoveStep is the distance covered per movement key press
	PlayerMoveStep = 0.5

	// PlayerTurnStep is the heading change per turn key press (radians)
	PlayerTurnStep = 0.08

	// ArenaHalfExtent bounds player movement on x and z
	ArenaHalfExtent = 30.0
)
