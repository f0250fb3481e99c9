package score

import "testing"

func TestBoundedCapsAtTen(t *testing.T) {
	var b Bounded
	perfects := 0
	for i := 1; i <= PerfectCap; i++ {
		v, perfect := b.Increment()
		if v != i {
			t.Fatalf("increment %d: expected %d, got %d", i, i, v)
		}
		if perfect {
			perfects++
			if i != PerfectCap {
				t.Fatalf("perfect fired early on increment %d", i)
			}
		}
	}
	v, perfect := b.Increment()
	if v != PerfectCap || perfect {
		t.Fatalf("expected 11th increment to be a no-op, got %d perfect=%v", v, perfect)
	}
	if perfects != 1 {
		t.Fatalf("expected perfect exactly once, got %d", perfects)
	}
}

func TestBoundedWrongKeepsValue(t *testing.T) {
	var b Bounded
	b.Increment()
	b.Increment()
	if got := b.Wrong(); got != 2 {
		t.Fatalf("expected wrong to keep 2, got %d", got)
	}
	b.Reset()
	if b.Value() != 0 {
		t.Fatalf("expected reset to zero")
	}
	_, perfect := b.Increment()
	if perfect {
		t.Fatalf("perfect fired after reset on first increment")
	}
}

func TestClampedNeverNegative(t *testing.T) {
	var c Clamped
	for i := 0; i < 5; i++ {
		if got := c.Wrong(); got != 0 {
			t.Fatalf("expected 0 after wrong, got %d", got)
		}
	}
	c.Correct()
	c.Correct()
	if got := c.Wrong(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	for i := 0; i < 20; i++ {
		c.Correct()
	}
	if c.Value() != 21 {
		t.Fatalf("expected unbounded growth to 21, got %d", c.Value())
	}
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		score   int
		seconds int
		want    Tier
	}{
		{30, 60, WellDone},
		{20, 60, RoomForImprovement},
		{59, 60, WellDone},
		{60, 60, Expert},
		{10, 60, CanImprove},
		{9, 60, KeepGoing},
		{0, 60, KeepGoing},
		{15, 30, WellDone},
		{5, 30, CanImprove},
		{25, 0, RoomForImprovement},
		{60, 0, Expert},
		{1, 7, KeepGoing},
	}
	for _, tc := range cases {
		if got := TierFor(tc.score, tc.seconds); got != tc.want {
			t.Fatalf("TierFor(%d, %d) = %v, want %v", tc.score, tc.seconds, got, tc.want)
		}
	}
}

func TestTierLabels(t *testing.T) {
	if WellDone.String() != "well done" {
		t.Fatalf("unexpected label %q", WellDone.String())
	}
	if RoomForImprovement.String() != "room for improvement" {
		t.Fatalf("unexpected label %q", RoomForImprovement.String())
	}
	if Expert.Message() != "YOU ARE AN EXPERT NOW!" {
		t.Fatalf("unexpected message %q", Expert.Message())
	}
}
