// Package gesture classifies device button presses into double and triple
// press gestures.
package gesture

import (
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/model"
)

const (
	// Window is how long a press stays eligible to join a gesture.
	Window = 600 * time.Millisecond
	// Grace is how long a double press waits for a third press.
	Grace = 250 * time.Millisecond
)

// Detector tracks recent presses. It is not safe for concurrent use; the
// scheduler must run callbacks on the caller's goroutine.
type Detector struct {
	sched    clock.Scheduler
	logger   *zap.Logger
	window   []time.Duration
	pending  clock.Task
	onDouble func()
	onTriple func()
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the detector logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// OnDouble sets the action fired when a double press survives the grace period.
func OnDouble(fn func()) Option {
	return func(d *Detector) { d.onDouble = fn }
}

// OnTriple sets the action fired on a triple press.
func OnTriple(fn func()) Option {
	return func(d *Detector) { d.onTriple = fn }
}

// New returns a Detector scheduling its deferred checks on sched.
func New(sched clock.Scheduler, opts ...Option) *Detector {
	d := &Detector{sched: sched, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RecordPress adds a press at the given monotonic timestamp and returns the
// immediate classification.
func (d *Detector) RecordPress(at time.Duration) model.Gesture {
	kept := d.window[:0]
	for _, t := range d.window {
		if at-t < Window {
			kept = append(kept, t)
		}
	}
	d.window = append(kept, at)

	switch len(d.window) {
	case 2:
		snapshot := slices.Clone(d.window)
		d.cancelPending()
		d.pending = d.sched.AfterFunc(Grace, func() { d.resolve(snapshot) })
		d.logger.Debug("double press pending", zap.Durations("window", snapshot))
		return model.GesturePendingDouble
	case 3:
		d.window = nil
		d.cancelPending()
		d.logger.Debug("triple press", zap.Duration("at", at))
		if d.onTriple != nil {
			d.onTriple()
		}
		return model.GestureTriple
	default:
		return model.GestureNone
	}
}

// Presses returns a copy of the retained window.
func (d *Detector) Presses() []time.Duration {
	return slices.Clone(d.window)
}

// Reset clears the window and cancels any pending double check.
func (d *Detector) Reset() {
	d.window = nil
	d.cancelPending()
}

func (d *Detector) cancelPending() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *Detector) resolve(snapshot []time.Duration) {
	if !slices.Equal(snapshot, d.window) {
		d.logger.Debug("double press superseded", zap.Durations("snapshot", snapshot))
		return
	}
	d.window = nil
	d.pending = nil
	d.logger.Debug("double press", zap.Durations("window", snapshot))
	if d.onDouble != nil {
		d.onDouble()
	}
}
