package clock

import (
	"testing"
	"time"
)

func TestManualRunsDueTasksInOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(200 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected order after 200ms: %v", got)
	}
	if m.Now() != 200*time.Millisecond {
		t.Fatalf("expected now=200ms, got %v", m.Now())
	}
	m.Advance(100 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("expected c to fire at 300ms: %v", got)
	}
}

func TestManualRunsTasksScheduledByCallbacks(t *testing.T) {
	m := NewManual()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		m.AfterFunc(time.Second, tick)
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(5 * time.Second)
	if ticks != 5 {
		t.Fatalf("expected 5 ticks, got %d", ticks)
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	fired := false
	task := m.AfterFunc(time.Second, func() { fired = true })
	if !task.Stop() {
		t.Fatalf("expected stop to report a pending task")
	}
	if task.Stop() {
		t.Fatalf("expected second stop to report false")
	}
	m.Advance(2 * time.Second)
	if fired {
		t.Fatalf("stopped task fired")
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", m.Pending())
	}
}

func TestLoopStopBeforeDrain(t *testing.T) {
	l := NewLoop(1)
	fired := false
	task := l.AfterFunc(time.Millisecond, func() { fired = true })
	fn := <-l.Events()
	if !task.Stop() {
		t.Fatalf("expected task to be pending until drained")
	}
	fn()
	if fired {
		t.Fatalf("callback ran after stop")
	}
}

func TestLoopDeliversOnDrain(t *testing.T) {
	l := NewLoop(1)
	fired := 0
	task := l.AfterFunc(time.Millisecond, func() { fired++ })
	fn := <-l.Events()
	fn()
	fn()
	if fired != 1 {
		t.Fatalf("expected exactly one run, got %d", fired)
	}
	if task.Stop() {
		t.Fatalf("expected stop after run to report false")
	}
}

func TestLoopDropsCallbacksAfterClose(t *testing.T) {
	l := NewLoop(1)
	l.Close()
	l.Close()
	fired := false
	l.AfterFunc(0, func() { fired = true })
	time.Sleep(20 * time.Millisecond)
	select {
	case fn := <-l.Events():
		fn()
		t.Fatalf("expected no delivery after close, fired=%v", fired)
	default:
	}
}
