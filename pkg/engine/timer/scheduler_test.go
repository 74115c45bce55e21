package timer

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScheduler_FiresWhenDue(t *testing.T) {
	s := NewScheduler(epoch)
	fired := 0
	h := s.After(20*time.Millisecond, func(time.Time) { fired++ })

	if n := s.Advance(epoch.Add(10 * time.Millisecond)); n != 0 || fired != 0 {
		t.Fatalf("fired early: ran=%d fired=%d", n, fired)
	}
	if !h.Pending() {
		t.Error("handle should still be pending")
	}
	if n := s.Advance(epoch.Add(20 * time.Millisecond)); n != 1 || fired != 1 {
		t.Fatalf("Advance() ran=%d fired=%d, want 1,1", n, fired)
	}
	if h.Pending() {
		t.Error("handle should not be pending after firing")
	}
	s.Advance(epoch.Add(time.Second))
	if fired != 1 {
		t.Errorf("one-shot fired %d times", fired)
	}
}

func TestScheduler_CancelPreventsFiring(t *testing.T) {
	s := NewScheduler(epoch)
	fired := false
	h := s.After(time.Millisecond, func(time.Time) { fired = true })
	h.Cancel()
	h.Cancel()
	s.Advance(epoch.Add(time.Second))
	if fired {
		t.Error("cancelled callback fired")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	var nilHandle *Handle
	nilHandle.Cancel()
	if nilHandle.Pending() {
		t.Error("nil handle reports pending")
	}
}

func TestScheduler_RunsInDueOrder(t *testing.T) {
	s := NewScheduler(epoch)
	var order []int
	s.After(30*time.Millisecond, func(time.Time) { order = append(order, 3) })
	s.After(10*time.Millisecond, func(time.Time) { order = append(order, 1) })
	s.After(20*time.Millisecond, func(time.Time) { order = append(order, 2) })
	s.Advance(epoch.Add(time.Second))
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestScheduler_ChainedCallbacks(t *testing.T) {
	s := NewScheduler(epoch)
	steps := 0
	var step func(time.Time)
	step = func(time.Time) {
		steps++
		if steps < 3 {
			s.After(20*time.Millisecond, step)
		}
	}
	s.After(20*time.Millisecond, step)

	for i := 1; i <= 5; i++ {
		s.Advance(epoch.Add(time.Duration(i*20) * time.Millisecond))
	}
	if steps != 3 {
		t.Errorf("steps = %d, want 3", steps)
	}
}

func TestScheduler_CatchesUpMissedPeriods(t *testing.T) {
	s := NewScheduler(epoch)
	var seen []time.Time
	var tick func(time.Time)
	tick = func(now time.Time) {
		seen = append(seen, now)
		s.After(time.Second, tick)
	}
	s.After(time.Second, tick)

	if n := s.Advance(epoch.Add(3*time.Second + 500*time.Millisecond)); n != 3 {
		t.Fatalf("Advance() ran %d callbacks, want 3", n)
	}
	for i, got := range seen {
		if want := epoch.Add(time.Duration(i+1) * time.Second); !got.Equal(want) {
			t.Errorf("tick %d ran at %v, want %v", i, got, want)
		}
	}
	if want := epoch.Add(3*time.Second + 500*time.Millisecond); !s.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", s.Now(), want)
	}

	s.Advance(epoch.Add(4 * time.Second))
	if len(seen) != 4 {
		t.Errorf("ticks after 4s = %d, want 4", len(seen))
	}
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler(epoch)
	fired := 0
	a := s.After(time.Millisecond, func(time.Time) { fired++ })
	b := s.After(time.Hour, func(time.Time) { fired++ })
	s.CancelAll()
	s.Advance(epoch.Add(2 * time.Hour))
	if fired != 0 || a.Pending() || b.Pending() {
		t.Errorf("CancelAll left work behind: fired=%d", fired)
	}
}

func TestScheduler_IgnoresClockGoingBackwards(t *testing.T) {
	s := NewScheduler(epoch)
	s.Advance(epoch.Add(time.Second))
	if n := s.Advance(epoch); n != 0 {
		t.Errorf("Advance(past) ran %d callbacks", n)
	}
	if !s.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v, want unchanged", s.Now())
	}
}
