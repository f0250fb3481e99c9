// Package score tracks drill counters and maps results to feedback tiers.
package score

// PerfectCap is the practice counter ceiling.
const PerfectCap = 10

// Feedback messages that do not depend on a tier.
const (
	PerfectMessage  = "Perfect, you are doing great!"
	WrongMessage    = "Keep trying!"
	ReadyMessage    = "Ready!"
	FarewellMessage = "THANKS FOR USING ME"

	// PracticeDoneMessage is shown when a practice run expires.
	PracticeDoneMessage = "YOU DID GREAT"
)

// Bounded is the practice counter. It stops at PerfectCap.
type Bounded struct {
	value int
}

// Increment raises the counter unless it is at the cap. perfect is true only
// on the call that reaches the cap.
func (b *Bounded) Increment() (value int, perfect bool) {
	if b.value >= PerfectCap {
		return b.value, false
	}
	b.value++
	return b.value, b.value == PerfectCap
}

// Wrong records a miss. The counter never changes.
func (b *Bounded) Wrong() int {
	return b.value
}

// Value returns the counter.
func (b *Bounded) Value() int {
	return b.value
}

// Reset sets the counter to zero.
func (b *Bounded) Reset() {
	b.value = 0
}

// Clamped is the game counter: unbounded above, never below zero.
type Clamped struct {
	value int
}

// Correct increments the counter.
func (c *Clamped) Correct() int {
	c.value++
	return c.value
}

// Wrong decrements the counter, stopping at zero.
func (c *Clamped) Wrong() int {
	if c.value > 0 {
		c.value--
	}
	return c.value
}

// Value returns the counter.
func (c *Clamped) Value() int {
	return c.value
}

// Reset sets the counter to zero.
func (c *Clamped) Reset() {
	c.value = 0
}
