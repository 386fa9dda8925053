package engine

import "github.com/lixenwraith/mini-fps/vmath"

// ProjectileView is the presentation view of a live projectile
type ProjectileView struct {
	ID       int
	Position vmath.Vec3F
}

// TargetView is the presentation view of a target
type TargetView struct {
	ID           int
	BasePosition vmath.Vec3F
	HitState     HitState
}

// Snapshot is a read-only copy of session state for the presentation layer
// Republished after every accepted event, never mutated after publication
type Snapshot struct {
	SessionID   string
	Score       int
	Ammo        int
	MaxAmmo     int
	Projectiles []ProjectileView
	Targets     []TargetView

	Started   bool
	Captured  bool
	Completed bool
	Ended     bool
}

// newSnapshot copies the presentation-relevant parts of a state
func newSnapshot(sessionID string, s GameState) *Snapshot {
	snap := &Snapshot{
		SessionID:   sessionID,
		Score:       s.Score,
		Ammo:        s.Ammo,
		MaxAmmo:     s.MaxAmmo(),
		Projectiles: make([]ProjectileView, len(s.Projectiles)),
		Targets:     make([]TargetView, len(s.Targets)),
	}
	for i, p := range s.Projectiles {
		snap.Projectiles[i] = ProjectileView{ID: p.ID, Position: p.Position}
	}
	for i, t := range s.Targets {
		snap.Targets[i] = TargetView{ID: t.ID, BasePosition: t.BasePosition, HitState: t.HitState}
	}
	return snap
}
