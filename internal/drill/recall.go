package drill

import (
	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/model"
	"github.com/verte-zerg/speechdrill/internal/score"
	"github.com/verte-zerg/speechdrill/internal/session"
	"github.com/verte-zerg/speechdrill/internal/wordlist"
)

// WordRecall walks a word list; correct answers add a point and wrong ones
// take a point away.
type WordRecall struct {
	base
	counter score.Clamped
	words   *wordlist.List
}

// NewWordRecall returns a word-recall drill waiting for a word list.
func NewWordRecall(sched clock.Scheduler, opts ...Option) *WordRecall {
	return &WordRecall{base: newBase(model.ModeWordRecall, sched, opts)}
}

// Ready parses newline-separated words and rewinds to the first one.
func (w *WordRecall) Ready(rawText string) error {
	if w.Running() {
		return ErrRunning
	}
	list, err := wordlist.New(wordlist.Parse(rawText))
	if err != nil {
		return ErrEmptyWordList
	}
	w.words = list
	w.setState(Ready)
	w.emit(Event{Kind: EventWord, Word: list.Current()})
	w.emit(Event{Kind: EventFeedback, Text: score.ReadyMessage})
	return nil
}

// Start runs the countdown. It fails with ErrEmptyWordList before Ready.
func (w *WordRecall) Start(rawSeconds string) error {
	if w.state == Idle || w.words == nil {
		return ErrEmptyWordList
	}
	w.counter.Reset()
	w.emit(Event{Kind: EventScore, Score: 0})
	w.emit(Event{Kind: EventFeedback})
	w.launch(rawSeconds, session.GameFloor, w.counter.Value)
	return nil
}

// Correct adds a point and moves to the next word.
func (w *WordRecall) Correct() int {
	if !w.Running() {
		return w.counter.Value()
	}
	v := w.counter.Correct()
	w.emit(Event{Kind: EventScore, Score: v})
	w.advance()
	return v
}

// Wrong takes a point away, never below zero, and moves to the next word.
func (w *WordRecall) Wrong() int {
	if !w.Running() {
		return w.counter.Value()
	}
	v := w.counter.Wrong()
	w.emit(Event{Kind: EventScore, Score: v})
	w.advance()
	return v
}

// Word returns the current word, or "" before Ready.
func (w *WordRecall) Word() string {
	if w.words == nil {
		return ""
	}
	return w.words.Current()
}

// Words returns the number of loaded words.
func (w *WordRecall) Words() int {
	if w.words == nil {
		return 0
	}
	return w.words.Len()
}

// Score returns the points.
func (w *WordRecall) Score() int {
	return w.counter.Value()
}

func (w *WordRecall) advance() {
	w.emit(Event{Kind: EventWord, Word: w.words.Advance()})
}
