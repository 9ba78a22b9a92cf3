package arcade

import (
	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// HitBy reports whether p is within striking distance of t
func HitBy(t *Target, p Projectile) bool {
	return p.Pos.DistSq(t.HitCenter()) < constants.HitRadius*constants.HitRadius
}

// resolveCollisions applies every projectile-balloon contact for this tick
// Each balloon takes at most one hit per tick, the oldest projectile wins
func (e *Engine) resolveCollisions() {
	if len(e.projectiles) == 0 {
		return
	}

	popped := make(map[*Target]bool)
	for _, t := range e.round.Targets {
		if popped[t] {
			continue
		}
		for i, p := range e.projectiles {
			if !HitBy(t, p) {
				continue
			}
			e.projectiles = append(e.projectiles[:i], e.projectiles[i+1:]...)
			switch {
			case p.Kind == Area:
				e.areaBlast(p.Pos, popped)
			case symbol.Valid(t.Symbol) && t.Symbol == e.round.Target:
				popped[t] = true
				e.correctHit(t)
			default:
				e.wrongHit(t, p)
			}
			break
		}
		if len(e.projectiles) == 0 {
			break
		}
	}

	if len(popped) > 0 {
		live := e.round.Targets[:0]
		for _, t := range e.round.Targets {
			if !popped[t] {
				live = append(live, t)
			}
		}
		e.round.Targets = live
	}
}

// areaBlast pushes every balloon within range away from the impact point
func (e *Engine) areaBlast(at vmath.Vec2, popped map[*Target]bool) {
	for _, t := range e.round.Targets {
		if popped[t] {
			continue
		}
		d := at.Dist(t.Pos)
		if d >= constants.AreaRadius {
			continue
		}
		force := (constants.AreaRadius - d) / constants.AreaForceDiv
		t.Impulse = t.Impulse.Add(vmath.Direction(at, t.Pos).Scale(force))
		if t.Expression != Dizzy {
			t.setExpression(Surprised)
		}
	}
	e.effects = append(e.effects, newShockwave(at))
	e.tones.Play(core.ToneShoot)
}

func (e *Engine) correctHit(t *Target) {
	r := e.round
	gain := constants.ScoreBase + r.Combo*constants.ScoreComboMul
	r.Score += gain
	r.Combo++

	e.effects = appendExplosion(e.effects, e.rng, t.Pos, t.Color)
	e.tones.Play(core.ToneCorrect)
	e.log.Info("correct hit", "symbol", t.Symbol.String(), "gain", gain, "score", r.Score, "combo", r.Combo)

	e.machine.HandleEvent(e, evCorrectHit)
}

func (e *Engine) wrongHit(t *Target, p Projectile) {
	r := e.round
	r.Combo = 0

	t.setExpression(Dizzy)
	t.ShakeTicks = constants.ShakeTicks
	t.Impulse = t.Impulse.Add(vmath.Direction(t.HitCenter(), p.Pos).Scale(-constants.RepelForce))
	e.effects = append(e.effects, newDizzy(vmath.V(t.Pos.X, t.Pos.Y-50)))

	e.jam()
	e.tones.Play(core.ToneWrong)
	e.voice.correct(t.Symbol)
	e.log.Info("wrong hit", "symbol", t.Symbol.String(), "target", r.Target.String())

	e.machine.HandleEvent(e, evWrongHit)
}
