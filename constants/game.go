package constants

import "time"

// Ammo
const (
	// MaxAmmo is the magazine size, reload always restores exactly this amount
	MaxAmmo = 30
)

// Scoring
const (
	// ScorePerHit is the flat reward for an accepted target hit
	ScorePerHit = 10

	// CompletionScore is the score at which the completion notification fires
	CompletionScore = 50

	// HitCooldown is how long a target rejects hits after an accepted one
	HitCooldown = 1000 * time.Millisecond
)

// Projectiles
const (
	// ProjectileSpeed is in world units per second
	ProjectileSpeed = 50.0

	// ProjectileMaxRange is the traveled distance after which a projectile expires
	ProjectileMaxRange = 100.0
)

// Targets
const (
	// TargetCount is the number of preset targets
	TargetCount = 5

	// TargetHitRadius is the pick radius around a target's current pose
	TargetHitRadius = 0.75

	// TargetBobAmplitude is the vertical bob half-height in world units
	TargetBobAmplitude = 0.5

	// TargetBobSpeed is the bob angular speed in radians per second
	TargetBobSpeed = 2.0

	// TargetSpinSpeed is the y-axis spin in radians per second
	TargetSpinSpeed = 1.0
)

// TargetPositions are the fixed base positions of targets 1..5 (x, y, z)
var TargetPositions = [TargetCount][3]float64{
	{-8, 1.5, -12},
	{-4, 1.5, -18},
	{0, 1.5, -22},
	{4, 1.5, -18},
	{8, 1.5, -12},
}

// Completion Notification
const (
	// CompletionMessageType is the type field of the completion message
	CompletionMessageType = "BLOCK_COMPLETION"

	// BlockID identifies this mini-game to the embedding environment
	BlockID = "mini-fps-game"
)

// Completion delivery endpoint defaults
const (
	// NotifyAddr is the listen address of the parent-scope websocket endpoint
	NotifyAddr = "127.0.0.1:7650"

	// NotifyPath is the websocket upgrade path
	NotifyPath = "/completion"
)
