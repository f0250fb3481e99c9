// Package model defines shared data structures.
package model

import "time"

// Config defines drill settings resolved from flags and the config file.
type Config struct {
	PracticeSeconds string
	GameSeconds     string
	Sounds          []string
	SeedWords       []string
}

// Patient is a roster entry.
type Patient struct {
	ID        string
	Name      string
	Age       int
	Problem   string
	CreatedAt time.Time
}

// Mode identifies a drill.
type Mode int

// Drill modes.
const (
	ModePractice Mode = iota
	ModeReaction
	ModeWordRecall
)

func (m Mode) String() string {
	switch m {
	case ModePractice:
		return "practice"
	case ModeReaction:
		return "reaction"
	case ModeWordRecall:
		return "word-recall"
	default:
		return "unknown"
	}
}

// Gesture is the classification of device button presses.
type Gesture int

// Gesture outcomes. GestureDouble is only ever delivered asynchronously,
// after the pending double has survived its grace period.
const (
	GestureNone Gesture = iota
	GesturePendingDouble
	GestureDouble
	GestureTriple
)

func (g Gesture) String() string {
	switch g {
	case GestureNone:
		return "none"
	case GesturePendingDouble:
		return "pending-double"
	case GestureDouble:
		return "double"
	case GestureTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// DrillResult captures a drill that ran to expiry.
type DrillResult struct {
	Mode            Mode
	Score           int
	DurationSeconds int
	Tier            string
	Feedback        string
}
