package engine

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/mini-fps/events"
	"github.com/lixenwraith/mini-fps/notify"
	"github.com/lixenwraith/mini-fps/notify/mocks"
	"github.com/lixenwraith/mini-fps/vmath"
	"go.uber.org/mock/gomock"
)

// fixedCamera implements CameraSource with a settable pose
type fixedCamera struct {
	pos, forward vmath.Vec3F
}

func (c *fixedCamera) Camera() (vmath.Vec3F, vmath.Vec3F) {
	return c.pos, c.forward
}

type sessionFixture struct {
	session *Session
	clock   *MockTimeProvider
	camera  *fixedCamera
}

func newTestSession(t *testing.T, notifier CompletionNotifier) *sessionFixture {
	t.Helper()
	clock := NewMockTimeProvider(time.Unix(1700000000, 0))
	camera := &fixedCamera{pos: testCamera, forward: testForward}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewSession(DefaultRules(), camera, notifier, clock, logger)
	return &sessionFixture{session: s, clock: clock, camera: camera}
}

// startCaptured dismisses the start screen and acquires pointer capture
func (f *sessionFixture) startCaptured() {
	f.session.Start()
	f.session.OnPointerCaptureChanged(true)
}

func TestSession_InputsIgnoredBeforeStart(t *testing.T) {
	f := newTestSession(t, nil)
	f.session.OnPointerCaptureChanged(true)

	if p := f.session.OnShootInput(); p != nil {
		t.Error("Shoot accepted before start")
	}
	if f.session.OnReloadInput() {
		t.Error("Reload accepted before start")
	}
	if f.session.OnTargetPicked(1) {
		t.Error("Hit accepted before start")
	}

	snap := f.session.Snapshot()
	if snap.Started || snap.Score != 0 || snap.Ammo != 30 {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestSession_ShootRequiresCapture(t *testing.T) {
	f := newTestSession(t, nil)
	f.session.Start()

	if p := f.session.OnShootInput(); p != nil {
		t.Fatal("Shoot accepted without capture")
	}

	f.session.OnPointerCaptureChanged(true)
	if p := f.session.OnShootInput(); p == nil {
		t.Fatal("Shoot rejected with capture")
	}

	f.session.OnPointerCaptureChanged(false)
	if p := f.session.OnShootInput(); p != nil {
		t.Fatal("Shoot accepted after capture release")
	}

	if got := f.session.Snapshot().Ammo; got != 29 {
		t.Errorf("Expected ammo 29, got %d", got)
	}
}

func TestSession_ShootUsesCamera(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()

	f.camera.pos = vmath.Vec3F{X: 3, Y: 1.6, Z: 0}
	f.camera.forward = vmath.Vec3F{X: 2, Y: 0, Z: 0}

	p := f.session.OnShootInput()
	if p == nil {
		t.Fatal("Expected projectile")
	}
	if p.Origin != f.camera.pos || p.Direction != (vmath.Vec3F{X: 1}) {
		t.Errorf("Projectile does not follow camera: %+v", p)
	}

	snap := f.session.Snapshot()
	if len(snap.Projectiles) != 1 || snap.Projectiles[0].ID != p.ID {
		t.Errorf("Snapshot missing projectile: %+v", snap.Projectiles)
	}
}

func TestSession_HitCooldownWindow(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()

	if !f.session.OnTargetPicked(1) {
		t.Fatal("First hit rejected")
	}

	// Repeated picks inside the window are all rejected
	for _, d := range []time.Duration{0, 100 * time.Millisecond, 899 * time.Millisecond} {
		f.clock.Advance(d)
		if f.session.OnTargetPicked(1) {
			t.Fatalf("Hit accepted %v into cooldown", d)
		}
	}

	// 999ms since acceptance
	if f.session.OnTargetPicked(1) {
		t.Fatal("Hit accepted before cooldown elapsed")
	}
	if got := f.session.Snapshot().Targets[0].HitState; got != HitCooldown {
		t.Errorf("Expected HitCooldown, got %v", got)
	}

	f.clock.Advance(1 * time.Millisecond)
	if !f.session.OnTargetPicked(1) {
		t.Fatal("Hit rejected at cooldown expiry")
	}
	if got := f.session.Snapshot().Score; got != 20 {
		t.Errorf("Expected score 20, got %d", got)
	}
}

func TestSession_FrameExpiresCooldown(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()
	f.session.OnTargetPicked(3)

	f.clock.Advance(500 * time.Millisecond)
	f.session.OnFrame(0.5, 0.5)
	if got := f.session.Snapshot().Targets[2].HitState; got != HitCooldown {
		t.Fatalf("Expected cooldown at 500ms, got %v", got)
	}

	f.clock.Advance(500 * time.Millisecond)
	f.session.OnFrame(1.0, 0.5)
	if got := f.session.Snapshot().Targets[2].HitState; got != HitIdle {
		t.Errorf("Expected idle after frame at 1000ms, got %v", got)
	}
}

func TestSession_FrameRemovesExpiredProjectiles(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()

	first := f.session.OnShootInput()
	f.session.OnFrame(1.0, 1.0) // first at 50
	second := f.session.OnShootInput()

	if expired := f.session.OnFrame(2.0, 1.0); len(expired) != 0 {
		t.Fatalf("Nothing should expire at 100, got %v", expired)
	}

	expired := f.session.OnFrame(2.5, 0.5) // first at 125, second at 75
	if len(expired) != 1 || expired[0] != first.ID {
		t.Fatalf("Expected [%d] expired, got %v", first.ID, expired)
	}

	snap := f.session.Snapshot()
	if len(snap.Projectiles) != 1 || snap.Projectiles[0].ID != second.ID {
		t.Errorf("Expected only projectile %d, got %+v", second.ID, snap.Projectiles)
	}
	want := vmath.V3FMulAdd(testCamera, testForward, 75)
	if snap.Projectiles[0].Position != want {
		t.Errorf("Expected position %v, got %v", want, snap.Projectiles[0].Position)
	}
}

func TestSession_CompletionFiresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	current := mocks.NewMockListener(ctrl)
	parent := mocks.NewMockListener(ctrl)

	want := notify.Completion{
		Type:      "BLOCK_COMPLETION",
		BlockID:   "mini-fps-game",
		Completed: true,
		Score:     50,
		MaxScore:  50,
	}
	current.EXPECT().OnCompletion(want).Times(1)
	parent.EXPECT().OnCompletion(want).Times(1)

	f := newTestSession(t, notify.NewDispatcher(current, parent))
	f.startCaptured()

	// 40 -> 50 -> 60 -> ... crosses the threshold repeatedly
	for i := 0; i < 4; i++ {
		f.session.OnTargetPicked(i + 1)
	}
	if f.session.Snapshot().Completed {
		t.Fatal("Completed before threshold")
	}

	f.session.OnTargetPicked(5) // 50
	if !f.session.Snapshot().Completed {
		t.Fatal("Expected completed at 50")
	}

	f.clock.Advance(time.Second)
	f.session.OnTargetPicked(1) // 60
	f.clock.Advance(time.Second)
	f.session.OnTargetPicked(1) // 70

	if got := f.session.Snapshot().Score; got != 70 {
		t.Errorf("Expected score 70, got %d", got)
	}
}

func TestSession_End(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()
	f.session.OnShootInput()
	f.session.OnTargetPicked(2)

	f.session.End()

	snap := f.session.Snapshot()
	if !snap.Ended || snap.Captured || len(snap.Projectiles) != 0 {
		t.Errorf("Unexpected snapshot after end: %+v", snap)
	}
	if f.session.OnShootInput() != nil || f.session.OnReloadInput() || f.session.OnTargetPicked(1) {
		t.Error("Events accepted after end")
	}
	if f.session.OnFrame(1, 1) != nil {
		t.Error("Frame processed after end")
	}
}

// TestSession_ScenarioHitCooldown is the register/reject/expire/register scenario
func TestSession_ScenarioHitCooldown(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()

	f.session.OnTargetPicked(1)
	snap := f.session.Snapshot()
	if snap.Score != 10 || snap.Targets[0].HitState != HitCooldown {
		t.Fatalf("After first hit: %+v", snap)
	}

	f.session.OnTargetPicked(1)
	if got := f.session.Snapshot().Score; got != 10 {
		t.Fatalf("Immediate second hit changed score to %d", got)
	}

	f.clock.Advance(time.Second)
	f.session.OnFrame(1, 1)
	f.session.OnTargetPicked(1)
	if got := f.session.Snapshot().Score; got != 20 {
		t.Errorf("Expected score 20, got %d", got)
	}
}

func TestSession_SnapshotIsolation(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()
	f.session.OnShootInput()

	before := f.session.Snapshot()
	f.session.OnFrame(0.1, 0.1)
	after := f.session.Snapshot()

	if before == after {
		t.Fatal("Expected a new snapshot after an accepted frame")
	}
	if before.Projectiles[0].Position == after.Projectiles[0].Position {
		t.Error("Earlier snapshot was mutated or frame did not advance")
	}
}

// TestSession_ConcurrentProducers applies events from several goroutines
// The single-writer session must keep the ammo and score invariants
func TestSession_ConcurrentProducers(t *testing.T) {
	f := newTestSession(t, nil)
	f.startCaptured()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				switch i % 4 {
				case 0:
					f.session.OnShootInput()
				case 1:
					f.session.OnFrame(float64(i), 0.016)
				case 2:
					f.session.OnTargetPicked(g%5 + 1)
				case 3:
					if i%12 == 3 {
						f.session.OnReloadInput()
					}
				}
				_ = f.session.Snapshot()
			}
		}(g)
	}
	wg.Wait()

	s := f.session.State()
	if s.Ammo < 0 || s.Ammo > 30 {
		t.Errorf("Ammo out of bounds: %d", s.Ammo)
	}
	// No clock advance: each target can score at most once
	if s.Score > 50 || s.Score%10 != 0 {
		t.Errorf("Unexpected score %d", s.Score)
	}
}

func TestSessionHandler_RoutesQueuedEvents(t *testing.T) {
	f := newTestSession(t, nil)
	eq := events.NewEventQueue()
	router := events.NewRouter[*Session](eq)
	router.Register(SessionHandler{})

	eq.Push(events.GameEvent{Type: events.EventStart})
	eq.Push(events.GameEvent{Type: events.EventPointerCaptureChanged, Payload: &events.PointerCapturePayload{Active: true}})
	eq.Push(events.GameEvent{Type: events.EventShootInput})
	eq.Push(events.GameEvent{Type: events.EventTargetPicked, Payload: &events.TargetPickedPayload{TargetID: 4}})
	eq.Push(events.GameEvent{Type: events.EventFrame, Payload: &events.FramePayload{Elapsed: 0.5, Delta: 0.5}})
	eq.Push(events.GameEvent{Type: events.EventTargetPicked}) // Missing payload, dropped

	if n := router.DispatchAll(f.session); n != 6 {
		t.Fatalf("Expected 6 events dispatched, got %d", n)
	}

	snap := f.session.Snapshot()
	if !snap.Started || !snap.Captured {
		t.Errorf("Lifecycle events not applied: %+v", snap)
	}
	if snap.Ammo != 29 || snap.Score != 10 || len(snap.Projectiles) != 1 {
		t.Errorf("Unexpected state: ammo=%d score=%d projectiles=%d", snap.Ammo, snap.Score, len(snap.Projectiles))
	}
	if snap.Projectiles[0].Position != vmath.V3FMulAdd(testCamera, testForward, 25) {
		t.Errorf("Frame not applied: %v", snap.Projectiles[0].Position)
	}

	eq.Push(events.GameEvent{Type: events.EventReloadInput})
	eq.Push(events.GameEvent{Type: events.EventEnd})
	router.DispatchAll(f.session)
	if snap := f.session.Snapshot(); snap.Ammo != 30 || !snap.Ended {
		t.Errorf("Reload/End not applied: %+v", snap)
	}
}
