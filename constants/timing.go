package constants

import "time"

// Tick
const (
	DefaultTickRate = 60
	TickInterval    = time.Second / DefaultTickRate
)

// Round flow
const (
	HintDuration       = 1500 * time.Millisecond
	NextRoundDelay     = 1 * time.Second
	JamDuration        = 1 * time.Second
	// CorrectionAckDelay is the pause between the symbol audio and the acknowledgment tone
	CorrectionAckDelay = 500 * time.Millisecond
)

// Face animation, counted in ticks
const (
	BlinkStartTicks   = 200
	BlinkEndTicks     = 210
	ExpressionTicks   = 120
	FaceTimerMaxStart = 200
)

// Effect lifetimes
const (
	ExplosionParticles = 30
	ParticleFade       = 0.02
	DizzyFade          = 0.02
	ShockwaveGrowth    = 0.2
	ShockwaveFade      = 0.05
	ShockwaveAlpha     = 0.8
	ShakeTicks         = 30
)

// Quiz
const (
	QuizFeedbackDelay = 1 * time.Second
	QuizRoundsToWin   = 10
	QuizMinOptions    = 5
	QuizMaxOptions    = 10
)
