package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityCannon
	PriorityBalloon
	PriorityProjectile
	PriorityEffect
	PriorityUI
	PriorityOverlay
)
