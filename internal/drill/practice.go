package drill

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/model"
	"github.com/verte-zerg/speechdrill/internal/score"
	"github.com/verte-zerg/speechdrill/internal/session"
)

// Practice drills one articulation sound with a counter capped at ten.
type Practice struct {
	base
	counter score.Bounded
	prompt  string
}

// NewPractice returns an idle practice drill.
func NewPractice(sched clock.Scheduler, opts ...Option) *Practice {
	p := &Practice{base: newBase(model.ModePractice, sched, opts)}
	p.doneMessage = score.PracticeDoneMessage
	return p
}

// Start prompts for sound and runs the countdown. Practice needs no ready
// step, so Start never fails.
func (p *Practice) Start(sound, rawSeconds string) {
	sound = strings.TrimSpace(sound)
	if sound == "" {
		sound = "..."
	}
	p.prompt = fmt.Sprintf("Say “%s”", sound)
	p.emit(Event{Kind: EventPrompt, Text: p.prompt})
	p.emit(Event{Kind: EventFeedback})
	p.counter.Reset()
	p.emit(Event{Kind: EventScore, Score: 0})
	p.launch(rawSeconds, session.PracticeFloor, p.counter.Value)
}

// Correct counts a correct repetition. The perfect message is emitted once,
// when the counter reaches the cap.
func (p *Practice) Correct() int {
	if !p.Running() {
		return p.counter.Value()
	}
	before := p.counter.Value()
	v, perfect := p.counter.Increment()
	if v != before {
		p.emit(Event{Kind: EventScore, Score: v})
	}
	if perfect {
		p.emit(Event{Kind: EventFeedback, Text: score.PerfectMessage, Score: v})
	}
	return v
}

// Wrong shows encouragement without changing the counter.
func (p *Practice) Wrong() {
	if !p.Running() {
		return
	}
	p.emit(Event{Kind: EventFeedback, Text: score.WrongMessage, Score: p.counter.Wrong()})
}

// Shutdown stops the drill and says goodbye.
func (p *Practice) Shutdown() {
	p.Stop()
	p.emit(Event{Kind: EventFeedback, Text: score.FarewellMessage})
}

// Score returns the counter.
func (p *Practice) Score() int {
	return p.counter.Value()
}

// Prompt returns the current prompt.
func (p *Practice) Prompt() string {
	return p.prompt
}
