// Package clock abstracts deferred callbacks so timing logic can run on a
// single event loop and be driven deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Task is a scheduled callback.
type Task interface {
	// Stop cancels the task. It reports whether the task was still pending.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// Loop is a real-time Scheduler whose callbacks never run on timer
// goroutines. Fired callbacks are posted to Events and run by whoever drains
// the channel, which keeps every callback on the owner's goroutine.
type Loop struct {
	events chan func()
	done   chan struct{}
	once   sync.Once
}

// NewLoop returns a Loop with the given event buffer size.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{events: make(chan func(), buffer), done: make(chan struct{})}
}

// Close stops delivery. Callbacks that fire afterwards are dropped instead of
// blocking their timer goroutine on an undrained channel.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Events returns the channel of fired callbacks.
func (l *Loop) Events() <-chan func() {
	return l.events
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Task {
	t := &loopTask{fn: fn}
	t.timer = time.AfterFunc(d, func() {
		select {
		case <-l.done:
			return
		default:
		}
		select {
		case l.events <- t.run:
		case <-l.done:
		}
	})
	return t
}

type loopTask struct {
	timer   *time.Timer
	fn      func()
	stopped bool
	done    bool
}

// run executes on the draining goroutine, the same one that calls Stop.
func (t *loopTask) run() {
	if t.stopped || t.done {
		return
	}
	t.done = true
	t.fn()
}

func (t *loopTask) Stop() bool {
	if t.stopped || t.done {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}
