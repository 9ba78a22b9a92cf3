package constants

// Arena geometry in logical units, independent of terminal size
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
)

// Spawn band for balloons
const (
	SpawnMargin       = 50.0 // Inset from the left/right/top edges
	SpawnBandRatio    = 0.35 // Fraction of arena height available below the top margin
	SpawnSeparation   = 110.0
	SpawnRelaxed      = 80.0
	SpawnAttempts     = 100
	SpawnRelaxedTries = 50
)

// Balloon flight bounds
const (
	BalloonMargin     = 40.0 // Inset from left/right/top edges
	BalloonFloorRatio = 0.45 // Lower bound as a fraction of arena height
	BalloonVelXSpread = 2.0  // Base vx drawn from [-1, 1)
	BalloonVelYSpread = 1.0  // Base vy drawn from [-0.5, 0.5)
)

// Round composition
const (
	ConfusableDistractors = 2
	RandomDistractors     = 3
	// DistractorRetryCap bounds rejection sampling of random distractors
	DistractorRetryCap    = 1000
)

// Cannon
const (
	CannonBaseOffset   = 40.0 // Base centre distance above the arena floor
	CannonBarrelOffset = 10.0 // Barrel pivot above the base centre
	BarrelLength       = 80.0
	BarrelRotSpeed     = 0.02 // Radians per tick while aiming
	ProjectileSpeed    = 12.0
)
