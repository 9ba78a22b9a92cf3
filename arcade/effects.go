package arcade

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// EffectKind identifies a short-lived visual record
type EffectKind uint8

const (
	EffectParticle  EffectKind = iota // Explosion debris from a popped balloon
	EffectShockwave                   // Expanding ring at an area impact
	EffectDizzy                       // Spiral rising from a wrongly hit balloon
)

// Effect is purely cosmetic; gameplay never reads it
type Effect struct {
	Kind  EffectKind
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Scale float64
	Alpha float64
	Color uint32
	Star  bool // Particle glyph variant
}

func newShockwave(pos vmath.Vec2) Effect {
	return Effect{Kind: EffectShockwave, Pos: pos, Scale: 1, Alpha: constants.ShockwaveAlpha}
}

func newDizzy(pos vmath.Vec2) Effect {
	return Effect{Kind: EffectDizzy, Pos: pos, Scale: 1, Alpha: 1}
}

// appendExplosion adds a burst of particles scattering from pos
func appendExplosion(out []Effect, rng *rand.Rand, pos vmath.Vec2, color uint32) []Effect {
	for range constants.ExplosionParticles {
		speed := rng.Float64()*8 + 3
		out = append(out, Effect{
			Kind:  EffectParticle,
			Pos:   pos,
			Vel:   vmath.FromAngle(rng.Float64() * 2 * math.Pi).Scale(speed),
			Scale: 1,
			Alpha: 1,
			Color: color,
			Star:  rng.Float64() > 0.3,
		})
	}
	return out
}

// StepEffects ages every effect by one tick and drops expired ones, reusing the slice
func StepEffects(effects []Effect) []Effect {
	kept := effects[:0]
	for _, e := range effects {
		switch e.Kind {
		case EffectParticle:
			e.Pos = e.Pos.Add(e.Vel)
			e.Alpha -= constants.ParticleFade
			e.Scale = e.Alpha
		case EffectShockwave:
			e.Scale += constants.ShockwaveGrowth
			e.Alpha -= constants.ShockwaveFade
		case EffectDizzy:
			e.Pos.Y--
			e.Alpha -= constants.DizzyFade
		}
		if e.Alpha > 0 {
			kept = append(kept, e)
		}
	}
	return kept
}
