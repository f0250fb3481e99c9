package gesture

import (
	"testing"
	"time"

	"github.com/verte-zerg/speechdrill/internal/clock"
	"github.com/verte-zerg/speechdrill/internal/model"
)

type recorder struct {
	doubles int
	triples int
}

func newDetector(t *testing.T) (*Detector, *clock.Manual, *recorder) {
	t.Helper()
	m := clock.NewManual()
	rec := &recorder{}
	d := New(m,
		OnDouble(func() { rec.doubles++ }),
		OnTriple(func() { rec.triples++ }),
	)
	return d, m, rec
}

// press advances the manual clock to at before recording, so deferred
// checks due earlier run first.
func press(d *Detector, m *clock.Manual, ms int) model.Gesture {
	at := time.Duration(ms) * time.Millisecond
	m.AdvanceTo(at)
	return d.RecordPress(at)
}

func TestDoublePressFiresAfterGrace(t *testing.T) {
	d, m, rec := newDetector(t)
	if got := press(d, m, 0); got != model.GestureNone {
		t.Fatalf("expected none on first press, got %v", got)
	}
	if got := press(d, m, 100); got != model.GesturePendingDouble {
		t.Fatalf("expected pending double, got %v", got)
	}
	m.AdvanceTo(349 * time.Millisecond)
	if rec.doubles != 0 {
		t.Fatalf("double fired before grace period elapsed")
	}
	m.AdvanceTo(350 * time.Millisecond)
	if rec.doubles != 1 {
		t.Fatalf("expected double to fire, got %d", rec.doubles)
	}
	if len(d.Presses()) != 0 {
		t.Fatalf("expected window cleared after double, got %v", d.Presses())
	}
}

func TestTriplePressPreemptsDouble(t *testing.T) {
	d, m, rec := newDetector(t)
	press(d, m, 0)
	press(d, m, 100)
	if got := press(d, m, 200); got != model.GestureTriple {
		t.Fatalf("expected triple, got %v", got)
	}
	if rec.triples != 1 {
		t.Fatalf("expected triple to fire immediately, got %d", rec.triples)
	}
	m.Advance(time.Second)
	if rec.doubles != 0 {
		t.Fatalf("pending double fired after triple")
	}
}

func TestSupersededSnapshotIsNoop(t *testing.T) {
	m := clock.NewManual()
	doubles := 0
	d := New(m, OnDouble(func() { doubles++ }))
	d.RecordPress(0)
	d.RecordPress(100 * time.Millisecond)
	// Mutate the window without going through a triple so that only the
	// snapshot comparison can suppress the first check.
	d.window = append(d.window, 150*time.Millisecond)
	d.pending = nil
	m.Advance(time.Second)
	if doubles != 0 {
		t.Fatalf("expected snapshot mismatch to suppress double")
	}
	if len(d.Presses()) != 3 {
		t.Fatalf("expected window untouched by no-op check, got %v", d.Presses())
	}
}

func TestStalePressesEvicted(t *testing.T) {
	d, m, rec := newDetector(t)
	press(d, m, 0)
	if got := press(d, m, 700); got != model.GestureNone {
		t.Fatalf("expected none after eviction, got %v", got)
	}
	m.Advance(2 * time.Second)
	if rec.doubles != 0 || rec.triples != 0 {
		t.Fatalf("expected no gestures, got doubles=%d triples=%d", rec.doubles, rec.triples)
	}
	if presses := d.Presses(); len(presses) != 1 || presses[0] != 700*time.Millisecond {
		t.Fatalf("unexpected window: %v", presses)
	}
}

func TestWindowBoundaryIsExclusive(t *testing.T) {
	d, m, _ := newDetector(t)
	press(d, m, 0)
	if got := press(d, m, 599); got != model.GesturePendingDouble {
		t.Fatalf("expected 599ms apart to pair, got %v", got)
	}
	d.Reset()
	press(d, m, 1000)
	if got := press(d, m, 1600); got != model.GestureNone {
		t.Fatalf("expected 600ms apart not to pair, got %v", got)
	}
}

func TestResetCancelsPendingDouble(t *testing.T) {
	d, m, rec := newDetector(t)
	press(d, m, 0)
	press(d, m, 100)
	d.Reset()
	m.Advance(time.Second)
	if rec.doubles != 0 {
		t.Fatalf("double fired after reset")
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", m.Pending())
	}
}

func TestSecondGestureAfterDouble(t *testing.T) {
	d, m, rec := newDetector(t)
	press(d, m, 0)
	press(d, m, 100)
	m.AdvanceTo(400 * time.Millisecond)
	press(d, m, 1000)
	press(d, m, 1100)
	press(d, m, 1200)
	if rec.doubles != 1 || rec.triples != 1 {
		t.Fatalf("expected one double and one triple, got doubles=%d triples=%d", rec.doubles, rec.triples)
	}
}
