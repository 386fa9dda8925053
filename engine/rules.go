package engine

import (
	"time"

	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/vmath"
)

// Rules holds the static configuration of one session
// Set once at session creation, never mutated
type Rules struct {
	MaxAmmo            int
	ScorePerHit        int
	CompletionScore    int
	HitCooldown        time.Duration
	ProjectileSpeed    float64
	ProjectileMaxRange float64
	BlockID            string

	// TargetPositions are the base positions of targets, target i has ID i+1
	TargetPositions []vmath.Vec3F
}

// DefaultRules returns the rules built from package constants
func DefaultRules() Rules {
	positions := make([]vmath.Vec3F, 0, len(constants.TargetPositions))
	for _, p := range constants.TargetPositions {
		positions = append(positions, vmath.V3F(p))
	}
	return Rules{
		MaxAmmo:            constants.MaxAmmo,
		ScorePerHit:        constants.ScorePerHit,
		CompletionScore:    constants.CompletionScore,
		HitCooldown:        constants.HitCooldown,
		ProjectileSpeed:    constants.ProjectileSpeed,
		ProjectileMaxRange: constants.ProjectileMaxRange,
		BlockID:            constants.BlockID,
		TargetPositions:    positions,
	}
}
