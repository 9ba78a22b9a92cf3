// Package fsm is a small generic finite state machine driven by discrete events and ticks
package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// EventType identifies an input to the machine, 0 is reserved for tick transitions
type EventType int

// EventTick is the pseudo-event evaluated on every Update
const EventTick EventType = 0

// Machine is the flat state machine runtime
// T is the context type passed to actions and guards
type Machine[T any] struct {
	nodes map[StateID]*Node[T]

	InitialStateID StateID

	activeStateID StateID
	timeInState   time.Duration

	// Transitions valid from every state, evaluated after the active node's own
	global []Transition[T]

	// Events raised from inside actions are queued until the current transition completes
	busy  bool
	queue []EventType
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventTick = auto-transition on Update
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, m *Machine[T]) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
