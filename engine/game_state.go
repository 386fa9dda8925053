package engine

import (
	"slices"

	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/vmath"
)

// HitState is the hit lifecycle of a target
type HitState uint8

const (
	// HitIdle accepts a new hit
	HitIdle HitState = iota
	// HitCooldown rejects hits until the cooldown expiry is processed
	HitCooldown
)

func (h HitState) String() string {
	switch h {
	case HitIdle:
		return "Idle"
	case HitCooldown:
		return "HitCooldown"
	default:
		return "Unknown"
	}
}

// defaultForward is used when a shot is fired with a degenerate direction
var defaultForward = vmath.Vec3F{X: 0, Y: 0, Z: -1}

// Projectile is a fired shot tracked until it exceeds maximum range
type Projectile struct {
	ID        int
	Origin    vmath.Vec3F // Fixed at creation
	Position  vmath.Vec3F // Advanced every tick
	Direction vmath.Vec3F // Unit length, fixed at creation
}

// Traveled returns the distance covered since creation
func (p Projectile) Traveled() float64 {
	return vmath.V3FDist(p.Position, p.Origin)
}

// Target is a fixed-position object that registers one hit, then cools down
type Target struct {
	ID           int
	BasePosition vmath.Vec3F
	HitState     HitState
}

// GameState is the authoritative score, ammo, projectile and target model
//
// All operations have value receivers and return the next state, the receiver
// is never modified. Slices are copied on write so a previous state stays
// valid after any operation. Precondition violations are silent no-ops
// reported through the returned boolean or nil projectile
type GameState struct {
	Score       int
	Ammo        int
	Projectiles []Projectile // Firing order
	Targets     []Target     // Preset order

	// NextProjectileID is assigned to the next projectile, never reused
	NextProjectileID int

	maxAmmo     int
	scorePerHit int
}

// NewGameState creates the initial state: zero score, full ammo, all targets idle
func NewGameState(rules Rules) GameState {
	targets := make([]Target, len(rules.TargetPositions))
	for i, pos := range rules.TargetPositions {
		targets[i] = Target{
			ID:           i + 1,
			BasePosition: pos,
			HitState:     HitIdle,
		}
	}

	return GameState{
		Score:            0,
		Ammo:             rules.MaxAmmo,
		Projectiles:      []Projectile{},
		Targets:          targets,
		NextProjectileID: 1,
		maxAmmo:          rules.MaxAmmo,
		scorePerHit:      rules.ScorePerHit,
	}
}

// MaxAmmo returns the magazine size the state was created with
func (s GameState) MaxAmmo() int {
	return s.maxAmmo
}

// ===== PLAYER ACTIONS =====

// Shoot fires one projectile from the camera along its forward direction
// With zero ammo the state is returned unchanged and no projectile is created
func (s GameState) Shoot(cameraPosition, cameraForward vmath.Vec3F) (GameState, *Projectile) {
	if s.Ammo <= 0 {
		return s, nil
	}

	dir := vmath.V3FNormalize(cameraForward)
	if dir == (vmath.Vec3F{}) {
		dir = defaultForward
	}

	p := Projectile{
		ID:        s.NextProjectileID,
		Origin:    cameraPosition,
		Position:  cameraPosition,
		Direction: dir,
	}

	next := s
	next.Ammo--
	next.NextProjectileID++
	next.Projectiles = make([]Projectile, len(s.Projectiles), len(s.Projectiles)+1)
	copy(next.Projectiles, s.Projectiles)
	next.Projectiles = append(next.Projectiles, p)

	return next, &p
}

// Reload sets ammo to the magazine size regardless of the current value
func (s GameState) Reload() GameState {
	next := s
	next.Ammo = s.maxAmmo
	return next
}

// ===== PROJECTILES =====

// Tick advances one projectile by direction*speed*dt
// expired reports whether its traveled distance now exceeds maxRange, the
// projectile stays in the state until RemoveProjectile is called
// Distance is measured from the accumulated position, so with arbitrary dt it
// can differ from speed*sum(dt) by a few ULPs right at the range boundary
// Unknown ids leave the state unchanged and never expire
func (s GameState) Tick(projectileID int, dt, speed, maxRange float64) (GameState, bool) {
	i := s.projectileIndex(projectileID)
	if i < 0 {
		return s, false
	}

	next := s
	next.Projectiles = slices.Clone(s.Projectiles)
	p := &next.Projectiles[i]
	p.Position = vmath.V3FMulAdd(p.Position, p.Direction, speed*dt)

	return next, p.Traveled() > maxRange
}

// TickDefault is Tick with the default projectile speed and range
func (s GameState) TickDefault(projectileID int, dt float64) (GameState, bool) {
	return s.Tick(projectileID, dt, constants.ProjectileSpeed, constants.ProjectileMaxRange)
}

// TickAll advances every projectile against the same pre-frame state
// Returns the ids that expired this frame in firing order, none are removed
func (s GameState) TickAll(dt, speed, maxRange float64) (GameState, []int) {
	if len(s.Projectiles) == 0 {
		return s, nil
	}

	next := s
	next.Projectiles = slices.Clone(s.Projectiles)

	var expired []int
	for i := range next.Projectiles {
		p := &next.Projectiles[i]
		p.Position = vmath.V3FMulAdd(p.Position, p.Direction, speed*dt)
		if p.Traveled() > maxRange {
			expired = append(expired, p.ID)
		}
	}

	return next, expired
}

// RemoveProjectile drops the projectile with the given id, absent ids are a no-op
func (s GameState) RemoveProjectile(projectileID int) GameState {
	i := s.projectileIndex(projectileID)
	if i < 0 {
		return s
	}

	next := s
	next.Projectiles = make([]Projectile, 0, len(s.Projectiles)-1)
	next.Projectiles = append(next.Projectiles, s.Projectiles[:i]...)
	next.Projectiles = append(next.Projectiles, s.Projectiles[i+1:]...)
	return next
}

// Projectile returns the projectile with the given id
func (s GameState) Projectile(projectileID int) (Projectile, bool) {
	i := s.projectileIndex(projectileID)
	if i < 0 {
		return Projectile{}, false
	}
	return s.Projectiles[i], true
}

func (s GameState) projectileIndex(projectileID int) int {
	return slices.IndexFunc(s.Projectiles, func(p Projectile) bool {
		return p.ID == projectileID
	})
}

// ===== TARGETS =====

// RegisterHit scores a hit on an idle target and puts it into cooldown
// A hit on a cooling or unknown target is ignored: accepted=false, state unchanged
// Scheduling the cooldown expiry is the caller's job
func (s GameState) RegisterHit(targetID int) (GameState, bool) {
	i := s.targetIndex(targetID)
	if i < 0 || s.Targets[i].HitState != HitIdle {
		return s, false
	}

	next := s
	next.Targets = slices.Clone(s.Targets)
	next.Targets[i].HitState = HitCooldown
	next.Score += s.scorePerHit

	return next, true
}

// TargetCooldownExpired returns the target to Idle unconditionally
func (s GameState) TargetCooldownExpired(targetID int) GameState {
	i := s.targetIndex(targetID)
	if i < 0 || s.Targets[i].HitState == HitIdle {
		return s
	}

	next := s
	next.Targets = slices.Clone(s.Targets)
	next.Targets[i].HitState = HitIdle
	return next
}

// Target returns the target with the given id
func (s GameState) Target(targetID int) (Target, bool) {
	i := s.targetIndex(targetID)
	if i < 0 {
		return Target{}, false
	}
	return s.Targets[i], true
}

func (s GameState) targetIndex(targetID int) int {
	return slices.IndexFunc(s.Targets, func(t Target) bool {
		return t.ID == targetID
	})
}
