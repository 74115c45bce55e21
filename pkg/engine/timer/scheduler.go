// Package timer provides one-shot callbacks driven by the host loop's clock.
// Nothing here starts goroutines: callbacks run inside Advance, on the
// caller's goroutine, so they may touch game state freely.
package timer

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero value and nil are both
// inert.
type Handle struct {
	id        uint64
	due       time.Time
	fn        func(now time.Time)
	cancelled bool
	fired     bool
}

// Cancel stops the callback from firing. Safe to call more than once and on
// a nil handle.
func (h *Handle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Pending reports whether the callback is still waiting to fire.
func (h *Handle) Pending() bool {
	return h != nil && !h.cancelled && !h.fired
}

// Scheduler owns a set of pending one-shot callbacks.
type Scheduler struct {
	now     time.Time
	nextID  uint64
	pending []*Handle
}

// NewScheduler creates a scheduler whose clock starts at now.
func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Now is the time of the last Advance, or the due time of the callback
// currently running.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After schedules fn to run once delay has elapsed on the scheduler's clock.
func (s *Scheduler) After(delay time.Duration, fn func(now time.Time)) *Handle {
	s.nextID++
	h := &Handle{id: s.nextID, due: s.now.Add(delay), fn: fn}
	s.pending = append(s.pending, h)
	return h
}

// Advance moves the clock to now and runs every due callback in due order.
// Each callback sees the clock at its own due time, so work it schedules is
// timed from there and runs in the same call if that is already due.
func (s *Scheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		return 0
	}

	ran := 0
	for {
		h := s.popDue(now)
		if h == nil {
			break
		}
		s.now = h.due
		h.fired = true
		h.fn(h.due)
		ran++
	}
	s.now = now
	return ran
}

// popDue removes and returns the earliest live handle due by now, dropping
// cancelled ones on the way.
func (s *Scheduler) popDue(now time.Time) *Handle {
	live := s.pending[:0]
	for _, h := range s.pending {
		if !h.cancelled {
			live = append(live, h)
		}
	}
	s.pending = live

	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due.Equal(s.pending[j].due) {
			return s.pending[i].id < s.pending[j].id
		}
		return s.pending[i].due.Before(s.pending[j].due)
	})

	if len(s.pending) == 0 || s.pending[0].due.After(now) {
		return nil
	}
	h := s.pending[0]
	s.pending = s.pending[1:]
	return h
}

// CancelAll cancels every pending callback.
func (s *Scheduler) CancelAll() {
	for _, h := range s.pending {
		h.cancelled = true
	}
	s.pending = nil
}

// Len is the number of live pending callbacks.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.pending {
		if !h.cancelled {
			n++
		}
	}
	return n
}
