package fsm

import "time"

// AddState adds a node to the machine, the first node added becomes the initial state
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	if m.InitialStateID == StateNone {
		m.InitialStateID = id
	}
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// AddGlobalTransition adds a transition accepted from any active state
func (m *Machine[T]) AddGlobalTransition(t Transition[T]) {
	m.global = append(m.global, t)
}

// Enter appends an OnEnter action
func (n *Node[T]) Enter(fn ActionFunc[T]) *Node[T] {
	n.OnEnter = append(n.OnEnter, fn)
	return n
}

// Update appends an OnUpdate action
func (n *Node[T]) Update(fn ActionFunc[T]) *Node[T] {
	n.OnUpdate = append(n.OnUpdate, fn)
	return n
}

// Exit appends an OnExit action
func (n *Node[T]) Exit(fn ActionFunc[T]) *Node[T] {
	n.OnExit = append(n.OnExit, fn)
	return n
}

// On adds an unguarded event transition
func (n *Node[T]) On(ev EventType, target StateID) *Node[T] {
	n.Transitions = append(n.Transitions, Transition[T]{TargetID: target, Event: ev})
	return n
}

// StateTimeExceeds returns a guard that passes once the active state is older than d
func StateTimeExceeds[T any](d time.Duration) GuardFunc[T] {
	return func(_ T, m *Machine[T]) bool {
		return m.timeInState >= d
	}
}
