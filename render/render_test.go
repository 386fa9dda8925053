package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mini-fps/constants"
	"github.com/lixenwraith/mini-fps/engine"
	"github.com/lixenwraith/mini-fps/vmath"
)

func TestTargetPose_Pure(t *testing.T) {
	base := vmath.Vec3F{X: -4, Y: 1.5, Z: -18}

	a := TargetPose(base, 2, 3.25)
	b := TargetPose(base, 2, 3.25)
	if a != b {
		t.Fatalf("Same inputs produced different poses: %+v vs %+v", a, b)
	}

	for _, elapsed := range []float64{0, 0.5, 1, 7.3, 100} {
		p := TargetPose(base, 2, elapsed)
		if p.Position.X != base.X || p.Position.Z != base.Z {
			t.Errorf("Bob moved target off its column at %v: %v", elapsed, p.Position)
		}
		if math.Abs(p.Position.Y-base.Y) > constants.TargetBobAmplitude+1e-9 {
			t.Errorf("Bob exceeded amplitude at %v: %v", elapsed, p.Position.Y)
		}
		if p.Yaw < 0 || p.Yaw >= 2*math.Pi {
			t.Errorf("Yaw out of range at %v: %v", elapsed, p.Yaw)
		}
	}
}

func TestTargetPose_PhaseByID(t *testing.T) {
	base := vmath.Vec3F{Y: 1.5}
	if TargetPose(base, 1, 0).Position.Y == TargetPose(base, 2, 0).Position.Y {
		t.Error("Targets should bob out of phase")
	}
}

func TestSpinGlyph(t *testing.T) {
	seen := make(map[rune]bool)
	for i := 0; i < 8; i++ {
		seen[SpinGlyph(float64(i)*math.Pi/4+0.01)] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected 4 spin frames, got %d", len(seen))
	}
}

func testContext() RenderContext {
	return RenderContext{
		Snapshot:       &engine.Snapshot{Started: true},
		CameraPosition: vmath.Vec3F{X: 0, Y: 1.6, Z: 5},
		ScreenWidth:    80,
		ScreenHeight:   40,
		CellsPerUnit:   2,
		RowsPerUnit:    1,
	}
}

func TestProject(t *testing.T) {
	ctx := testContext()
	px, py := ctx.PlayerCol(), ctx.PlayerRow()
	if px != 40 || py != 36 {
		t.Fatalf("Unexpected player cell %d,%d", px, py)
	}

	tests := []struct {
		name   string
		yaw    float64
		point  vmath.Vec3F
		wx, wy int
	}{
		{"camera cell", 0, vmath.Vec3F{X: 0, Z: 5}, 40, 36},
		{"straight ahead", 0, vmath.Vec3F{X: 0, Z: -5}, 40, 26},
		{"to the right", 0, vmath.Vec3F{X: 3, Z: 5}, 46, 36},
		{"turned right, east is ahead", math.Pi / 2, vmath.Vec3F{X: 10, Z: 5}, 40, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.CameraYaw = tt.yaw
			x, y, ok := ctx.Project(tt.point)
			if !ok || x != tt.wx || y != tt.wy {
				t.Errorf("Expected %d,%d visible, got %d,%d ok=%v", tt.wx, tt.wy, x, y, ok)
			}
		})
	}

	ctx.CameraYaw = 0
	if _, _, ok := ctx.Project(vmath.Vec3F{Z: -100}); ok {
		t.Error("Far point should be clipped")
	}
}

// recorder appends its name to a shared log when rendered
type recorder struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recorder) Render(RenderContext, Canvas)   { *r.log = append(*r.log, r.name) }
func (r *recorder) IsVisible(RenderContext) bool { return r.visible }

func TestOrchestrator_PriorityOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	var log []string
	o := NewRenderOrchestrator(screen)
	o.Register(&recorder{name: "ui", log: &log, visible: true}, PriorityUI)
	o.Register(&recorder{name: "floor", log: &log, visible: true}, PriorityBackground)
	o.Register(&recorder{name: "hidden", log: &log, visible: false}, PriorityEntities)
	o.Register(&recorder{name: "ui2", log: &log, visible: true}, PriorityUI)
	o.Register(&recorder{name: "entities", log: &log, visible: true}, PriorityEntities)

	o.RenderFrame(testContext())

	want := []string{"floor", "entities", "ui", "ui2"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], log[i])
		}
	}

	// No snapshot, nothing rendered
	log = log[:0]
	o.RenderFrame(RenderContext{})
	if len(log) != 0 {
		t.Errorf("Rendered without snapshot: %v", log)
	}
}

func TestDrawText_Clips(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(5, 2)

	end := DrawText(screen, 2, 0, "abcdef", DefaultStyle)
	if end != 5 {
		t.Errorf("Expected clip at 5, got %d", end)
	}
	if r, _, _, _ := screen.GetContent(4, 0); r != 'c' {
		t.Errorf("Expected c at column 4, got %q", r)
	}
}
