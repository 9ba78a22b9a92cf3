package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/engine"
)

// HoldWindow is how long an aim key counts as held after its last press or repeat
// Terminals report no key release, so held state is inferred from autorepeat
const HoldWindow = 120 * time.Millisecond

// Sampler folds asynchronous key events into one arcade.Input per tick
// Edge actions are latched until sampled, aim keys are level triggered
type Sampler struct {
	mu    sync.Mutex
	keys  *KeyTable
	clock engine.TimeProvider
	hold  time.Duration

	leftUntil  time.Time
	rightUntil time.Time

	fire   bool
	toggle bool
	replay bool
	back   bool
}

// NewSampler creates a sampler over the given key table and clock
func NewSampler(keys *KeyTable, clock engine.TimeProvider) *Sampler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Sampler{keys: keys, clock: clock, hold: HoldWindow}
}

// HandleEvent records a terminal event and returns the resolved action
// Non-key events resolve to ActionNone
func (s *Sampler) HandleEvent(ev tcell.Event) Action {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	a := s.keys.Lookup(kev)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	switch a {
	case ActionFire:
		s.fire = true
	case ActionToggleAmmo:
		s.toggle = true
	case ActionReplay:
		s.replay = true
	case ActionBack:
		s.back = true
	case ActionAimLeft:
		s.leftUntil = now.Add(s.hold)
		s.rightUntil = time.Time{}
	case ActionAimRight:
		s.rightUntil = now.Add(s.hold)
		s.leftUntil = time.Time{}
	}
	return a
}

// Sample returns the input for the current tick and clears latched edges
func (s *Sampler) Sample() arcade.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	in := arcade.Input{
		Fire:         s.fire,
		ToggleAmmo:   s.toggle,
		ReplayPrompt: s.replay,
		Back:         s.back,
		AimLeft:      now.Before(s.leftUntil),
		AimRight:     now.Before(s.rightUntil),
	}
	s.fire, s.toggle, s.replay, s.back = false, false, false, false
	return in
}

// Reset drops all pending and held input
func (s *Sampler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leftUntil, s.rightUntil = time.Time{}, time.Time{}
	s.fire, s.toggle, s.replay, s.back = false, false, false, false
}
