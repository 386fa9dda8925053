// Package status holds lock-free runtime counters shared between the scene
// goroutines and read by the HUD and the shutdown log
package status

import (
	"log/slog"
	"sync/atomic"
)

// Scene metric keys
const (
	FramesRendered   = "frames.rendered"
	FramesPerSecond  = "frames.fps"
	SceneElapsed     = "scene.elapsed"
	EventsDispatched = "events.dispatched"
	ShotsRequested   = "input.shots"
	TargetsPicked    = "input.picks"
	PointerCaptured  = "input.captured"
	BlockCompleted   = "block.completed"
	BlockScore       = "block.score"
)

// Registry groups metrics by value type
// Writers cache the pointer once, then update the atomic directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// LogValue implements slog.LogValuer, one attribute per metric in key order
func (r *Registry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		attrs = append(attrs, slog.Bool(k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		attrs = append(attrs, slog.Int64(k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		attrs = append(attrs, slog.Float64(k, v.Get()))
	})
	return slog.GroupValue(attrs...)
}
