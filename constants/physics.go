package constants

// Impulse behaviour
const (
	ImpulseDecay     = 0.95
	ImpulseSnap      = 0.1
	BounceImpulseMul = -0.5
)

// Collision
const (
	HitRadius       = 45.0
	HitCenterOffset = 10.0 // Hit centre sits this far above the balloon anchor
	AreaRadius      = 250.0
	AreaForceDiv    = 25.0 // Push magnitude is (AreaRadius - d) / AreaForceDiv
	RepelForce      = 10.0
)

// Scoring
const (
	ScoreBase     = 10
	ScoreComboMul = 2
)
