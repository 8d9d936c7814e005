package timer

import "time"

// Scheduler runs single-shot callbacks against a host-driven clock.
// Nothing fires outside Advance, so callbacks run inside the game tick.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// Timer is a pending callback
type Timer struct {
	due   time.Duration
	seq   uint64
	fn    func()
	owner *Scheduler
	done  bool
}

// NewScheduler creates a scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d after the current time
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn, owner: s}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward and fires every timer that came due,
// earliest first. Timers with equal due times fire in scheduling order.
func (s *Scheduler) Advance(dt time.Duration) {
	s.now += dt
	for {
		t := s.nextDue()
		if t == nil {
			return
		}
		s.remove(t)
		t.done = true
		t.fn()
	}
}

// Pending returns the number of timers that have not fired or been cancelled
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// CancelAll drops every pending timer
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.done = true
	}
	s.timers = nil
}

func (s *Scheduler) nextDue() *Timer {
	var next *Timer
	for _, t := range s.timers {
		if t.due > s.now {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *Scheduler) remove(t *Timer) {
	for i, p := range s.timers {
		if p == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Cancel stops the timer. Returns false if it already fired or was
// cancelled.
func (t *Timer) Cancel() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	t.owner.remove(t)
	return true
}

// Due returns the scheduled fire time
func (t *Timer) Due() time.Duration {
	return t.due
}
