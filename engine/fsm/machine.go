package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state and runs its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.timeInState = 0
	m.run(ctx, func() {
		for _, action := range node.OnEnter {
			action(ctx)
		}
	})
	return nil
}

// Update advances time in state, runs OnUpdate actions and evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.run(ctx, func() {
		m.timeInState += dt

		node := m.nodes[m.activeStateID]
		for _, action := range node.OnUpdate {
			action(ctx)
		}
		m.handle(ctx, EventTick)
	})
}

// HandleEvent routes an event to the active state
// Events raised by actions during a transition are queued and processed in order afterwards
// Returns true if the event was processed immediately and caused a transition
func (m *Machine[T]) HandleEvent(ctx T, ev EventType) bool {
	if m.busy {
		m.queue = append(m.queue, ev)
		return false
	}

	handled := false
	m.run(ctx, func() {
		handled = m.handle(ctx, ev)
	})
	return handled
}

// run executes fn with the busy latch held, then drains queued events
func (m *Machine[T]) run(ctx T, fn func()) {
	if m.busy {
		fn()
		return
	}
	m.busy = true
	fn()
	for len(m.queue) > 0 {
		ev := m.queue[0]
		m.queue = m.queue[1:]
		m.handle(ctx, ev)
	}
	m.busy = false
}

func (m *Machine[T]) handle(ctx T, ev EventType) bool {
	if m.activeStateID == StateNone {
		return false
	}

	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event == ev && (trans.Guard == nil || trans.Guard(ctx, m)) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	for _, trans := range m.global {
		if trans.Event == ev && (trans.Guard == nil || trans.Guard(ctx, m)) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition performs the state change, self-transitions are ignored
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	if current, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range current.OnExit {
			action(ctx)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Reset exits the active state and re-enters the initial state, dropping queued events
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range node.OnExit {
			action(ctx)
		}
	}
	m.queue = m.queue[:0]
	m.activeStateID = StateNone
	return m.Init(ctx)
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active state name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
