// Package scene is the terminal scene driver: it owns the screen, turns
// terminal input into session events, keeps the player camera and frame
// clock, and renders session snapshots
package scene

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/engine"
	"github.com/lixenwraith/mini-fps/events"
	"github.com/lixenwraith/mini-fps/input"
	"github.com/lixenwraith/mini-fps/notify"
	"github.com/lixenwraith/mini-fps/render"
	"github.com/lixenwraith/mini-fps/render/renderers"
	"github.com/lixenwraith/mini-fps/status"
)

// Options configures a Driver, zero values fall back to package constants
type Options struct {
	FrameInterval time.Duration
	CellsPerUnit  float64
	RowsPerUnit   float64
	KeyTable      *input.KeyTable
	Clock         engine.TimeProvider
	Logger        *slog.Logger
	Status        *status.Registry
}

// Driver feeds one session from a tcell screen
//
// Two goroutines touch it while running: the input poller (HandleEvent) and
// the frame loop (Frame). Both only push onto the event queue, the frame loop
// is the single consumer applying queued events to the session
type Driver struct {
	screen       tcell.Screen
	session      *engine.Session
	camera       *Camera
	machine      *input.Machine
	queue        *events.EventQueue
	router       *events.Router[*engine.Session]
	orchestrator *render.RenderOrchestrator
	clock        engine.TimeProvider
	logger       *slog.Logger

	frameInterval time.Duration
	cellsPerUnit  float64
	rowsPerUnit   float64

	// Input poller state
	started  bool
	captured bool

	// Frame loop state
	lastFrame   time.Time
	fpsWindow   time.Time
	fpsFrames   int
	statFrames  *atomic.Int64
	statFPS     *status.AtomicFloat
	statElapsed *status.AtomicFloat // Read by the poller for ray picks
	statEvents  *atomic.Int64

	// Input poller counters
	statShots    *atomic.Int64
	statPicks    *atomic.Int64
	statCaptured *atomic.Bool

	// Set from the notification goroutine, read by the frame loop
	completion     atomic.Pointer[notify.Completion]
	statCompleted  *atomic.Bool
	statBlockScore *atomic.Int64
}

// NewDriver creates a driver with the standard renderer set
func NewDriver(screen tcell.Screen, session *engine.Session, camera *Camera, opts Options) *Driver {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.FrameUpdateInterval
	}
	if opts.CellsPerUnit <= 0 {
		opts.CellsPerUnit = constants.ArenaCellsPerUnit
	}
	if opts.RowsPerUnit <= 0 {
		opts.RowsPerUnit = constants.ArenaRowsPerUnit
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	now := opts.Clock.Now()

	queue := events.NewEventQueue()
	router := events.NewRouter[*engine.Session](queue)
	router.Register(engine.SessionHandler{})

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(renderers.NewFloorRenderer(), render.PriorityBackground)
	orchestrator.Register(renderers.NewEntityRenderer(), render.PriorityEntities)
	orchestrator.Register(renderers.NewCrosshairRenderer(), render.PriorityCrosshair)
	orchestrator.Register(renderers.NewHUDRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewStartScreenRenderer(), render.PriorityOverlay)

	return &Driver{
		screen:        screen,
		session:       session,
		camera:        camera,
		machine:       input.NewMachine(opts.KeyTable),
		queue:         queue,
		router:        router,
		orchestrator:  orchestrator,
		clock:         opts.Clock,
		logger:        opts.Logger,
		frameInterval: opts.FrameInterval,
		cellsPerUnit:  opts.CellsPerUnit,
		rowsPerUnit:   opts.RowsPerUnit,
		lastFrame:     now,
		fpsWindow:     now,
		statFrames:    opts.Status.Ints.Get(status.FramesRendered),
		statFPS:       opts.Status.Floats.Get(status.FramesPerSecond),
		statElapsed:   opts.Status.Floats.Get(status.SceneElapsed),
		statEvents:    opts.Status.Ints.Get(status.EventsDispatched),
		statShots:     opts.Status.Ints.Get(status.ShotsRequested),
		statPicks:     opts.Status.Ints.Get(status.TargetsPicked),
		statCaptured:  opts.Status.Bools.Get(status.PointerCaptured),

		statCompleted:  opts.Status.Bools.Get(status.BlockCompleted),
		statBlockScore: opts.Status.Ints.Get(status.BlockScore),
	}
}

// Run drives the session until ctx is cancelled or the player quits
// The session is ended before returning
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	d.screen.EnableFocus()
	d.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				cancel()
				return
			}
			if !d.HandleEvent(ev) {
				d.logger.Info("quit requested")
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(d.frameInterval)
	defer ticker.Stop()

	d.lastFrame = d.clock.Now()
	d.fpsWindow = d.lastFrame
	d.Frame(d.lastFrame)

	for {
		select {
		case <-ctx.Done():
			d.queue.Push(events.GameEvent{Type: events.EventEnd, Timestamp: d.clock.Now()})
			d.router.DispatchAll(d.session)
			return nil
		case <-ticker.C:
			d.Frame(d.clock.Now())
		}
	}
}

// HandleEvent translates one terminal event, returns false on quit
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	intent := d.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		d.orchestrator.Resize()

	case input.IntentConfirm:
		if !d.started {
			d.start()
		}

	case input.IntentClick:
		switch {
		case !d.started:
			d.start()
		case !d.captured:
			d.setCaptured(true)
		default:
			d.shoot()
		}

	case input.IntentShoot:
		if d.started && d.captured {
			d.shoot()
		}

	case input.IntentEscape:
		d.setCaptured(false)

	case input.IntentFocus:
		if !intent.Active {
			d.setCaptured(false)
		}

	case input.IntentReload:
		if d.started {
			d.push(events.EventReloadInput, nil)
		}

	case input.IntentMoveForward, input.IntentMoveBackward, input.IntentStrafeLeft, input.IntentStrafeRight:
		if d.started {
			d.move(intent.Type)
		}

	case input.IntentTurnLeft:
		if d.started {
			d.camera.Turn(-1)
		}
	case input.IntentTurnRight:
		if d.started {
			d.camera.Turn(1)
		}
	case input.IntentLook:
		if d.started && d.captured {
			d.camera.Turn(float64(intent.DX))
		}
	}
	return true
}

// Frame advances the frame clock, applies queued events and renders
func (d *Driver) Frame(now time.Time) {
	dt := now.Sub(d.lastFrame).Seconds()
	d.lastFrame = now
	dt = min(max(dt, 0), constants.MaxFrameDelta)

	elapsed := d.statElapsed.Add(dt)

	d.push(events.EventFrame, &events.FramePayload{Elapsed: elapsed, Delta: dt})
	d.statEvents.Add(int64(d.router.DispatchAll(d.session)))

	d.statFrames.Add(1)
	d.fpsFrames++
	if window := now.Sub(d.fpsWindow); window >= time.Second {
		d.statFPS.Set(float64(d.fpsFrames) / window.Seconds())
		d.fpsFrames = 0
		d.fpsWindow = now
	}

	snap := d.session.Snapshot()
	pos, yaw := d.camera.Pose()
	w, h := d.screen.Size()

	ctx := render.RenderContext{
		Snapshot:       snap,
		Elapsed:        elapsed,
		DeltaTime:      dt,
		CameraPosition: pos,
		CameraYaw:      yaw,
		AimDistance:    d.session.Rules().ProjectileMaxRange,
		ScreenWidth:    w,
		ScreenHeight:   h,
		CellsPerUnit:   d.cellsPerUnit,
		RowsPerUnit:    d.rowsPerUnit,
		FPS:            d.statFPS.Get(),
	}
	if c := d.completion.Load(); c != nil {
		ctx.Completion = *c
	}
	if id, dist, ok := d.pick(snap); ok {
		ctx.AimTarget = id
		ctx.AimDistance = dist
	}

	d.orchestrator.RenderFrame(ctx)
}

// OnCompletion records a delivered completion for the HUD banner
// Passed as the in-process callback of the current-scope log listener
func (d *Driver) OnCompletion(c notify.Completion) {
	d.completion.Store(&c)
	d.statCompleted.Store(c.Completed)
	d.statBlockScore.Store(int64(c.Score))
}

// Elapsed returns the scene time in seconds
func (d *Driver) Elapsed() float64 {
	return d.statElapsed.Get()
}

// Camera returns the player camera
func (d *Driver) Camera() *Camera {
	return d.camera
}

func (d *Driver) start() {
	d.started = true
	d.push(events.EventStart, nil)
	d.setCaptured(true)
}

func (d *Driver) setCaptured(active bool) {
	if d.captured == active || !d.started {
		return
	}
	d.captured = active
	d.statCaptured.Store(active)
	d.machine.Reset()
	d.push(events.EventPointerCaptureChanged, &events.PointerCapturePayload{Active: active})
}

// shoot queues the shot and, when the forward ray crosses a target, the pick
func (d *Driver) shoot() {
	d.push(events.EventShootInput, nil)
	d.statShots.Add(1)
	if id, _, ok := d.pick(d.session.Snapshot()); ok {
		d.statPicks.Add(1)
		d.push(events.EventTargetPicked, &events.TargetPickedPayload{TargetID: id})
	}
}

func (d *Driver) pick(snap *engine.Snapshot) (int, float64, bool) {
	pos, forward := d.camera.Camera()
	return PickTarget(pos, forward, snap.Targets, d.Elapsed(), constants.TargetHitRadius, d.session.Rules().ProjectileMaxRange)
}

func (d *Driver) move(t input.IntentType) {
	switch t {
	case input.IntentMoveForward:
		d.camera.Move(1, 0)
	case input.IntentMoveBackward:
		d.camera.Move(-1, 0)
	case input.IntentStrafeLeft:
		d.camera.Move(0, -1)
	case input.IntentStrafeRight:
		d.camera.Move(0, 1)
	}
}

func (d *Driver) push(t events.EventType, payload any) {
	d.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: d.clock.Now()})
}
