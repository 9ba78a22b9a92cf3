package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickFunc runs one fixed step, returning false ends the loop
type TickFunc func(dt time.Duration) bool

// ClockScheduler drives a TickFunc on a fixed interval from a single goroutine
// Deadlines advance by exactly one interval per tick for drift correction
type ClockScheduler struct {
	timeProvider TimeProvider
	tickInterval time.Duration
	tick         TickFunc

	nextTickDeadline time.Time
	tickCount        atomic.Uint64

	// Control channels
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	crashHandler func(any)
}

// NewClockScheduler creates a new clock scheduler with the specified tick interval
func NewClockScheduler(tickInterval time.Duration, tick TickFunc) *ClockScheduler {
	return &ClockScheduler{
		timeProvider: NewMonotonicTimeProvider(),
		tickInterval: tickInterval,
		tick:         tick,
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// SetCrashHandler installs a handler for panics raised by the tick, must be called before Start
// Without a handler the panic propagates and crashes the process
func (cs *ClockScheduler) SetCrashHandler(fn func(any)) {
	cs.crashHandler = fn
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go cs.schedulerLoop()
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick to finish
// Must not be called from inside the tick; return false from the TickFunc instead
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
	cs.wg.Wait()
}

// Done is closed once the loop has exited for any reason
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.doneChan
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()
	defer close(cs.doneChan)
	defer cs.running.Store(false)

	if cs.crashHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				cs.crashHandler(r)
			}
		}()
	}

	cs.nextTickDeadline = cs.timeProvider.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		// Stop requested while waiting takes priority over a due tick
		select {
		case <-cs.stopChan:
			return
		default:
		}

		if !cs.tick(cs.tickInterval) {
			return
		}
		cs.tickCount.Add(1)

		now := cs.timeProvider.Now()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

		// Skip ahead rather than bursting when more than two ticks behind
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}

		sleep := cs.nextTickDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
