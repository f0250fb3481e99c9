package session

import (
	"testing"
	"time"

	"github.com/verte-zerg/speechdrill/internal/clock"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw   string
		floor int
		want  int
	}{
		{"", PracticeFloor, 60},
		{"abc", PracticeFloor, 60},
		{"0", PracticeFloor, 60},
		{"-5", PracticeFloor, 60},
		{"NaN", PracticeFloor, 60},
		{"3", PracticeFloor, 5},
		{" 45 ", PracticeFloor, 45},
		{"7.9", PracticeFloor, 7},
		{"0.5", PracticeFloor, 60},
		{"10", GameFloor, 30},
		{"90", GameFloor, 90},
		{"", GameFloor, 60},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw, tc.floor); got != tc.want {
			t.Fatalf("Normalize(%q, %d) = %d, want %d", tc.raw, tc.floor, got, tc.want)
		}
	}
}

func TestConfiguredSkipsFloor(t *testing.T) {
	cases := map[string]int{
		"":    60,
		"x":   60,
		"-1":  60,
		"3":   3,
		"10":  10,
		"7.9": 7,
	}
	for raw, want := range cases {
		if got := Configured(raw); got != want {
			t.Fatalf("Configured(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		60:   "01:00",
		61:   "01:01",
		3599: "59:59",
		6000: "100:00",
		-3:   "00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTimerTicksAndExpiresOnce(t *testing.T) {
	m := clock.NewManual()
	timer := NewTimer(m)
	var ticks []int
	expired := 0
	timer.Start(3, func(r int) { ticks = append(ticks, r) }, func() { expired++ })

	m.Advance(2 * time.Second)
	if len(ticks) != 2 || ticks[0] != 2 || ticks[1] != 1 {
		t.Fatalf("unexpected ticks: %v", ticks)
	}
	if !timer.Running() {
		t.Fatalf("expected timer running")
	}
	m.Advance(10 * time.Second)
	if len(ticks) != 3 || ticks[2] != 0 {
		t.Fatalf("expected final tick of 0, got %v", ticks)
	}
	if expired != 1 {
		t.Fatalf("expected one expiry, got %d", expired)
	}
	if timer.Running() {
		t.Fatalf("expected timer stopped after expiry")
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending ticks, got %d", m.Pending())
	}
}

func TestTimerStopSuppressesExpiry(t *testing.T) {
	m := clock.NewManual()
	timer := NewTimer(m)
	expired := 0
	timer.Start(5, nil, func() { expired++ })
	m.Advance(2 * time.Second)
	timer.Stop()
	timer.Stop()
	m.Advance(time.Minute)
	if expired != 0 {
		t.Fatalf("expected no expiry after stop, got %d", expired)
	}
	if timer.Remaining() != 3 {
		t.Fatalf("expected remaining frozen at 3, got %d", timer.Remaining())
	}
}

func TestTimerStopWhenIdle(t *testing.T) {
	timer := NewTimer(clock.NewManual())
	timer.Stop()
	if timer.Running() {
		t.Fatalf("expected idle timer to stay idle")
	}
}

func TestTimerRestartCancelsPriorRun(t *testing.T) {
	m := clock.NewManual()
	timer := NewTimer(m)
	firstTicks, firstExpiry := 0, 0
	timer.Start(2, func(int) { firstTicks++ }, func() { firstExpiry++ })
	m.Advance(1500 * time.Millisecond)

	secondExpiry := 0
	var secondTicks []int
	timer.Start(3, func(r int) { secondTicks = append(secondTicks, r) }, func() { secondExpiry++ })
	m.Advance(10 * time.Second)

	if firstTicks != 1 {
		t.Fatalf("expected stale run to stop ticking, got %d ticks", firstTicks)
	}
	if firstExpiry != 0 {
		t.Fatalf("stale run expired")
	}
	if secondExpiry != 1 {
		t.Fatalf("expected new run to expire once, got %d", secondExpiry)
	}
	if len(secondTicks) != 3 || secondTicks[0] != 2 {
		t.Fatalf("unexpected ticks for new run: %v", secondTicks)
	}
}

func TestTimerRestartFromTick(t *testing.T) {
	m := clock.NewManual()
	timer := NewTimer(m)
	expiries := 0
	restarted := false
	var onTick func(int)
	onTick = func(r int) {
		if r == 0 && !restarted {
			restarted = true
			timer.Start(1, onTick, func() { expiries++ })
		}
	}
	timer.Start(1, onTick, func() { expiries++ })
	m.Advance(5 * time.Second)
	if expiries != 1 {
		t.Fatalf("expected a single expiry across restart, got %d", expiries)
	}
}
