package engine

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled callback, zero is never issued
type TimerID uint64

type timer struct {
	id    TimerID
	due   time.Duration
	gen   uint64
	fn    func()
	index int
}

// timerHeap orders timers by due time, ties by scheduling order
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].id < h[j].id
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler runs deferred callbacks against game time advanced by the tick loop
// All callbacks fire synchronously inside Advance, on the tick goroutine
// Not safe for concurrent use; the owner of the tick owns the scheduler
type Scheduler struct {
	now        time.Duration
	nextID     TimerID
	generation uint64
	pending    timerHeap
}

// NewScheduler creates an empty scheduler at game time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once game time has advanced by d
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	heap.Push(&s.pending, &timer{
		id:  s.nextID,
		due: s.now + d,
		gen: s.generation,
		fn:  fn,
	})
	return s.nextID
}

// Cancel removes a pending callback, returns false if it already fired or was cancelled
func (s *Scheduler) Cancel(id TimerID) bool {
	for _, t := range s.pending {
		if t.id == id {
			heap.Remove(&s.pending, t.index)
			return true
		}
	}
	return false
}

// Pending reports whether the callback is still scheduled
func (s *Scheduler) Pending(id TimerID) bool {
	for _, t := range s.pending {
		if t.id == id {
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback
// Callbacks already selected by an in-progress Advance are invalidated as well
func (s *Scheduler) CancelAll() {
	s.generation++
	clear(s.pending)
	s.pending = s.pending[:0]
}

// Len returns the number of pending callbacks
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Now returns the elapsed game time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves game time forward and fires due callbacks in due order
// Callbacks scheduled by a firing callback run in the same call if already due
// Returns the number of callbacks fired
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	fired := 0
	for {
		t := s.popDue()
		if t == nil {
			return fired
		}
		if t.gen != s.generation {
			continue
		}
		t.fn()
		fired++
	}
}

// popDue removes and returns the earliest due callback, ties broken by scheduling order
func (s *Scheduler) popDue() *timer {
	if len(s.pending) == 0 || s.pending[0].due > s.now {
		return nil
	}
	return heap.Pop(&s.pending).(*timer)
}
