package clock

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of tasks not yet fired or stopped.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{owner: m, due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves virtual time forward by d, running every task that becomes
// due in due-time order. Tasks scheduled by callbacks run too when they fall
// inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.remove(next)
		m.now = next.due
		next.fn()
	}
	m.now = target
}

// AdvanceTo moves virtual time to at. Earlier times are ignored.
func (m *Manual) AdvanceTo(at time.Duration) {
	if at <= m.now {
		return
	}
	m.Advance(at - m.now)
}

func (m *Manual) nextDue(limit time.Duration) *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due == m.tasks[j].due {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].due < m.tasks[j].due
	})
	if m.tasks[0].due > limit {
		return nil
	}
	return m.tasks[0]
}

func (m *Manual) remove(t *manualTask) bool {
	for i, candidate := range m.tasks {
		if candidate == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}

type manualTask struct {
	owner *Manual
	due   time.Duration
	seq   int
	fn    func()
}

func (t *manualTask) Stop() bool {
	return t.owner.remove(t)
}
