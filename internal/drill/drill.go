// Package drill implements the timed practice and game drills.
//
// Each controller owns its timer and counters. Controllers are not safe for
// concurrent use; the scheduler they are built with must run callbacks on
// the goroutine that drives the controller.
package drill

import (
	"errors"

	"go.uber.org/zap"

	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/model"
	"github.com/verte-zerg/speechdrill/internal/score"
	"github.com/verte-zerg/speechdrill/internal/session"
)

var (
	// ErrNotReady is returned when a reaction drill starts without a ready acknowledgment.
	ErrNotReady = errors.New("click ready first")
	// ErrEmptyWordList is returned when a word-recall drill has no words.
	ErrEmptyWordList = errors.New("please enter at least one word")
	// ErrRunning is returned when a drill is reconfigured mid-run.
	ErrRunning = errors.New("drill is running")
)

// State is a controller lifecycle state.
type State int

// Controller states.
const (
	Idle State = iota
	Ready
	Running
	Expired
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Expired:
		return "expired"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// EventKind says which field of an Event changed.
type EventKind int

// Event kinds.
const (
	EventState EventKind = iota
	EventTick
	EventScore
	EventFeedback
	EventWord
	EventPrompt
)

// Event reports a controller change to the UI.
type Event struct {
	Mode   model.Mode
	Kind   EventKind
	State  State
	Clock  string
	Score  int
	Text   string
	Word   string
	Result *model.DrillResult
}

// Sink receives controller events.
type Sink func(Event)

// Option configures a controller.
type Option func(*base)

// WithLogger sets the controller logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithSink sets the event sink.
func WithSink(sink Sink) Option {
	return func(b *base) {
		if sink != nil {
			b.sink = sink
		}
	}
}

// base holds the lifecycle shared by every mode.
type base struct {
	mode    model.Mode
	state   State
	timer   *session.Timer
	seconds int
	// configured is the requested duration before the floor; feedback is
	// rated over it.
	configured int
	// doneMessage replaces the tier message on expiry when set.
	doneMessage string
	result      *model.DrillResult
	sink        Sink
	logger      *zap.Logger
}

func newBase(mode model.Mode, sched clock.Scheduler, opts []Option) base {
	b := base{
		mode:   mode,
		timer:  session.NewTimer(sched),
		sink:   func(Event) {},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	b.logger = b.logger.With(zap.Stringer("mode", mode))
	return b
}

// State returns the lifecycle state.
func (b *base) State() State {
	return b.state
}

// Running reports whether a countdown is active.
func (b *base) Running() bool {
	return b.state == Running
}

// Remaining returns the seconds left on the clock.
func (b *base) Remaining() int {
	return b.timer.Remaining()
}

// Seconds returns the effective duration of the current or last run.
func (b *base) Seconds() int {
	return b.seconds
}

// Configured returns the requested duration of the current or last run,
// before the floor was applied.
func (b *base) Configured() int {
	return b.configured
}

// Result returns the outcome of the last run that expired, if any.
func (b *base) Result() (model.DrillResult, bool) {
	if b.result == nil {
		return model.DrillResult{}, false
	}
	return *b.result, true
}

func (b *base) emit(ev Event) {
	ev.Mode = b.mode
	ev.State = b.state
	b.sink(ev)
}

func (b *base) setState(s State) {
	if b.state == s {
		return
	}
	b.logger.Debug("state change", zap.Stringer("from", b.state), zap.Stringer("to", s))
	b.state = s
	b.emit(Event{Kind: EventState})
}

// launch starts a countdown of rawSeconds, raised to floor. scoreFn is read
// at expiry.
func (b *base) launch(rawSeconds string, floor int, scoreFn func() int) {
	b.timer.Stop()
	seconds := session.Normalize(rawSeconds, floor)
	b.seconds = seconds
	b.configured = session.Configured(rawSeconds)
	b.result = nil
	b.setState(Running)
	b.logger.Info("drill started", zap.Int("seconds", seconds), zap.Int("configured", b.configured))
	b.emit(Event{Kind: EventTick, Clock: session.FormatClock(seconds)})
	b.timer.Start(seconds,
		func(remaining int) {
			b.emit(Event{Kind: EventTick, Clock: session.FormatClock(remaining)})
		},
		func() { b.expire(scoreFn()) },
	)
}

func (b *base) expire(points int) {
	tier := score.TierFor(points, b.configured)
	feedback := tier.Message()
	if b.doneMessage != "" {
		feedback = b.doneMessage
	}
	b.result = &model.DrillResult{
		Mode:            b.mode,
		Score:           points,
		DurationSeconds: b.configured,
		Tier:            tier.String(),
		Feedback:        feedback,
	}
	b.setState(Expired)
	b.logger.Info("drill expired",
		zap.Int("score", points),
		zap.Int("seconds", b.configured),
		zap.Stringer("tier", tier),
	)
	b.emit(Event{Kind: EventFeedback, Text: feedback, Score: points, Result: b.result})
}

// Stop halts the countdown without feedback. It is a no-op unless running.
func (b *base) Stop() {
	if b.state != Running {
		return
	}
	b.timer.Stop()
	b.setState(Stopped)
	b.logger.Info("drill stopped", zap.Int("remaining", b.timer.Remaining()))
}
