package arcade

import (
	"math"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

const (
	shakeAmplitude  = 5.0
	shakeRadPerTick = 0.1 * 1000 / constants.DefaultTickRate
)

// StepTarget advances one balloon by a single tick: face animation, drift, impulse decay, bounds
func StepTarget(t *Target, a Arena) {
	stepFace(t)

	t.Pos = t.Pos.Add(t.Vel).Add(t.Impulse)
	t.Impulse = vmath.SnapToZero(t.Impulse.Scale(constants.ImpulseDecay), constants.ImpulseSnap)

	lo, hi := a.BalloonBounds()
	if t.Pos.X < lo.X || t.Pos.X > hi.X {
		t.Vel = vmath.ReflectAxisX(t.Vel)
		t.Impulse.X *= constants.BounceImpulseMul
		t.Pos.X = vmath.Clamp(t.Pos.X, lo.X, hi.X)
	}
	if t.Pos.Y < lo.Y || t.Pos.Y > hi.Y {
		t.Vel = vmath.ReflectAxisY(t.Vel)
		t.Impulse.Y *= constants.BounceImpulseMul
		t.Pos.Y = vmath.Clamp(t.Pos.Y, lo.Y, hi.Y)
	}

	if t.ShakeTicks > 0 {
		t.ShakeTicks--
	}
}

func stepFace(t *Target) {
	t.FaceTimer++
	switch t.Expression {
	case Normal:
		if t.FaceTimer > constants.BlinkStartTicks {
			t.Blink = true
			if t.FaceTimer > constants.BlinkEndTicks {
				t.FaceTimer = 0
				t.Blink = false
			}
		}
	default:
		if t.FaceTimer > constants.ExpressionTicks {
			t.Expression = Normal
			t.FaceTimer = 0
			t.Blink = false
		}
	}
}

// setExpression switches the face and restarts its timer
func (t *Target) setExpression(e Expression) {
	t.Expression = e
	t.FaceTimer = 0
	t.Blink = false
}

// ShakeOffset returns the horizontal wobble applied when drawing
func (t *Target) ShakeOffset() float64 {
	if t.ShakeTicks <= 0 {
		return 0
	}
	elapsed := float64(constants.ShakeTicks - t.ShakeTicks)
	return shakeAmplitude * math.Sin(elapsed*shakeRadPerTick)
}

// StepProjectiles moves shots and drops those that left the field, reusing the slice
func StepProjectiles(ps []Projectile, a Arena) []Projectile {
	kept := ps[:0]
	for _, p := range ps {
		p.Pos = p.Pos.Add(p.Vel)
		if a.Contains(p.Pos) {
			kept = append(kept, p)
		}
	}
	return kept
}
