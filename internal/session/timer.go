// Package session provides the countdown timer shared by all drills.
package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/speechdrill/internal/clock"
)

const (
	// DefaultSeconds replaces missing, non-numeric or non-positive durations.
	DefaultSeconds = 60
	// PracticeFloor is the minimum practice drill length.
	PracticeFloor = 5
	// GameFloor is the minimum game drill length.
	GameFloor = 30
)

// Configured parses a raw duration, replacing missing, non-numeric or
// non-positive values with DefaultSeconds. Fractions truncate. No floor is
// applied; feedback rates are computed over this value.
func Configured(raw string) int {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		if whole := int(v); whole > 0 {
			return whole
		}
	}
	return DefaultSeconds
}

// Normalize parses a raw duration and applies the default and floor. The
// result is how long the countdown runs.
func Normalize(raw string, floor int) int {
	return max(floor, Configured(raw))
}

// FormatClock renders seconds as MM:SS.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// Timer is a one-second countdown. At most one run is active; callbacks of a
// replaced run never fire.
type Timer struct {
	sched     clock.Scheduler
	remaining int
	running   bool
	task      clock.Task
	gen       uint64
}

// NewTimer returns an idle timer.
func NewTimer(sched clock.Scheduler) *Timer {
	return &Timer{sched: sched}
}

// Start begins a countdown from seconds, replacing any active run. onTick
// receives the remaining seconds after each decrement; onExpire runs once
// when the countdown reaches zero.
func (t *Timer) Start(seconds int, onTick func(remaining int), onExpire func()) {
	t.Stop()
	t.gen++
	t.remaining = max(seconds, 0)
	t.running = true
	t.schedule(t.gen, onTick, onExpire)
}

// Stop cancels the active run without calling onExpire.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.running = false
	if t.task != nil {
		t.task.Stop()
		t.task = nil
	}
}

// Running reports whether a countdown is active.
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the seconds left in the current or last run.
func (t *Timer) Remaining() int {
	return t.remaining
}

func (t *Timer) schedule(gen uint64, onTick func(int), onExpire func()) {
	t.task = t.sched.AfterFunc(time.Second, func() {
		t.tick(gen, onTick, onExpire)
	})
}

func (t *Timer) tick(gen uint64, onTick func(int), onExpire func()) {
	if gen != t.gen || !t.running {
		return
	}
	t.task = nil
	t.remaining--
	expired := t.remaining <= 0
	if expired {
		t.remaining = 0
		t.running = false
	}
	if onTick != nil {
		onTick(t.remaining)
	}
	// onTick may have restarted or stopped the timer.
	if gen != t.gen {
		return
	}
	if expired {
		if onExpire != nil {
			onExpire()
		}
		return
	}
	if t.running {
		t.schedule(gen, onTick, onExpire)
	}
}
