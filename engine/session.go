package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/lixenwraith/mini-fps/notify"
	"github.com/lixenwraith/mini-fps/vmath"
)

// CameraSource provides the current camera pose when a shot is fired
// Implemented by the scene driver's player camera
type CameraSource interface {
	Camera() (position, forward vmath.Vec3F)
}

// CompletionNotifier delivers the completion message to every scope
// Implemented by *notify.Dispatcher
type CompletionNotifier interface {
	Deliver(c notify.Completion)
}

// Session is the single writer of one play-through
//
// Every inbound event is applied under one mutex in arrival order, so the
// state is never mutated concurrently even when producers run on several
// goroutines. Readers use Snapshot, which is lock-free
type Session struct {
	id       string
	rules    Rules
	camera   CameraSource
	notifier CompletionNotifier
	clock    TimeProvider
	logger   *slog.Logger

	mu        sync.Mutex
	state     GameState
	cooldowns CooldownSchedule

	started            bool // Start screen dismissed, never reverts
	captured           bool // Most recent pointer capture report
	completionSignaled bool // Completion emitted, never re-emitted
	ended              bool

	snapshot atomic.Pointer[Snapshot]
}

// NewSession creates a session in the start-screen state
// notifier, clock and logger may be nil
func NewSession(rules Rules, camera CameraSource, notifier CompletionNotifier, clock TimeProvider, logger *slog.Logger) *Session {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		id:       uuid.NewString(),
		rules:    rules,
		camera:   camera,
		notifier: notifier,
		clock:    clock,
		state:    NewGameState(rules),
	}
	s.logger = logger.With("session_id", s.id)
	s.publishLocked()
	return s
}

// ID returns the unique session id
func (s *Session) ID() string {
	return s.id
}

// Rules returns the session rules
func (s *Session) Rules() Rules {
	return s.rules
}

// Snapshot returns the most recently published read-only view
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// State returns a copy of the authoritative state
func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ===== LIFECYCLE =====

// Start dismisses the start screen, repeated calls are no-ops
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.ended {
		return
	}
	s.started = true
	s.logger.Info("session started")
	s.publishLocked()
}

// End discards projectiles and pending cooldowns and ignores later events
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.ended = true
	s.captured = false
	s.cooldowns.Clear()
	s.state.Projectiles = []Projectile{}
	s.logger.Info("session ended", "score", s.state.Score)
	s.publishLocked()
}

// ===== INBOUND EVENT FEED =====

// OnPointerCaptureChanged records the capture state that gates shooting
func (s *Session) OnPointerCaptureChanged(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended || s.captured == active {
		return
	}
	s.captured = active
	s.logger.Debug("pointer capture changed", "active", active)
	s.publishLocked()
}

// OnShootInput fires from the current camera pose
// Returns the created projectile, or nil when the session has not started,
// capture is inactive or the magazine is empty
func (s *Session) OnShootInput() *Projectile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() || !s.captured || s.camera == nil {
		return nil
	}

	pos, forward := s.camera.Camera()
	next, p := s.state.Shoot(pos, forward)
	if p == nil {
		s.logger.Debug("shoot ignored, out of ammo")
		return nil
	}
	s.state = next
	s.logger.Debug("shot fired", "projectile_id", p.ID, "ammo", s.state.Ammo)
	s.publishLocked()
	return p
}

// OnReloadInput restores full ammo, returns false before the session starts
func (s *Session) OnReloadInput() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.live() {
		return false
	}
	s.state = s.state.Reload()
	s.logger.Debug("reloaded", "ammo", s.state.Ammo)
	s.publishLocked()
	return true
}

// OnTargetPicked registers a hit on the picked target
// Returns false when the target is cooling down, unknown, or the session is not live
// An accepted hit schedules the cooldown expiry and may emit the completion
func (s *Session) OnTargetPicked(targetID int) bool {
	s.mu.Lock()
	if !s.live() {
		s.mu.Unlock()
		return false
	}

	now := s.clock.Now()
	s.expireCooldownsLocked()

	next, accepted := s.state.RegisterHit(targetID)
	if !accepted {
		s.mu.Unlock()
		s.logger.Debug("hit rejected", "target_id", targetID)
		return false
	}
	s.state = next
	s.cooldowns.Schedule(targetID, now.Add(s.rules.HitCooldown))
	s.logger.Debug("hit accepted", "target_id", targetID, "score", s.state.Score)

	completion, emit := s.checkCompletionLocked()
	s.publishLocked()
	s.mu.Unlock()

	if emit && s.notifier != nil {
		s.notifier.Deliver(completion)
	}
	return true
}

// OnFrame is the per-frame tick
// Due cooldowns expire first, then every projectile advances by dt against
// the pre-frame state, then the projectiles that passed max range are removed
// Returns the ids removed this frame
func (s *Session) OnFrame(elapsed, dt float64) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return nil
	}
	if dt < 0 {
		dt = 0
	}

	changed := s.expireCooldownsLocked()

	var expired []int
	if len(s.state.Projectiles) > 0 {
		s.state, expired = s.state.TickAll(dt, s.rules.ProjectileSpeed, s.rules.ProjectileMaxRange)
		for _, id := range expired {
			s.state = s.state.RemoveProjectile(id)
		}
		changed = true
	}

	if changed {
		s.publishLocked()
	}
	return expired
}

// ===== INTERNALS (caller holds mu) =====

func (s *Session) live() bool {
	return s.started && !s.ended
}

// expireCooldownsLocked returns every due target to Idle
func (s *Session) expireCooldownsLocked() bool {
	due := s.cooldowns.Due(s.clock.Now())
	for _, id := range due {
		s.state = s.state.TargetCooldownExpired(id)
	}
	return len(due) > 0
}

// checkCompletionLocked decides whether this score change emits the completion
func (s *Session) checkCompletionLocked() (notify.Completion, bool) {
	if s.completionSignaled || s.state.Score < s.rules.CompletionScore {
		return notify.Completion{}, false
	}
	s.completionSignaled = true
	s.logger.Info("completion reached", "score", s.state.Score, "max_score", s.rules.CompletionScore)
	return notify.NewCompletion(s.rules.BlockID, s.state.Score, s.rules.CompletionScore), true
}

func (s *Session) publishLocked() {
	snap := newSnapshot(s.id, s.state)
	snap.Started = s.started
	snap.Captured = s.captured
	snap.Completed = s.completionSignaled
	snap.Ended = s.ended
	s.snapshot.Store(snap)
}
