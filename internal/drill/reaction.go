package drill

import (
	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/model"
	"github.com/verte-zerg/speechdrill/internal/score"
	"github.com/verte-zerg/speechdrill/internal/session"
)

// Reaction scores one point per device touch until the clock runs out.
type Reaction struct {
	base
	counter score.Clamped
}

// NewReaction returns a reaction drill waiting for a ready acknowledgment.
func NewReaction(sched clock.Scheduler, opts ...Option) *Reaction {
	return &Reaction{base: newBase(model.ModeReaction, sched, opts)}
}

// Ready acknowledges the drill so it can start.
func (r *Reaction) Ready() error {
	if r.Running() {
		return ErrRunning
	}
	r.setState(Ready)
	r.emit(Event{Kind: EventFeedback, Text: score.ReadyMessage})
	return nil
}

// Start runs the countdown. It fails with ErrNotReady before Ready.
func (r *Reaction) Start(rawSeconds string) error {
	if r.state == Idle {
		return ErrNotReady
	}
	r.counter.Reset()
	r.emit(Event{Kind: EventScore, Score: 0})
	r.emit(Event{Kind: EventFeedback})
	r.launch(rawSeconds, session.GameFloor, r.counter.Value)
	return nil
}

// Touch scores a point while running.
func (r *Reaction) Touch() int {
	if !r.Running() {
		return r.counter.Value()
	}
	v := r.counter.Correct()
	r.emit(Event{Kind: EventScore, Score: v})
	return v
}

// Score returns the points.
func (r *Reaction) Score() int {
	return r.counter.Value()
}
