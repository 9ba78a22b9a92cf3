package arcade

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/zhuyin-fighter/symbol"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// Snapshot is a read-only copy of everything the renderer draws
// It shares no memory with the engine
type Snapshot struct {
	State       State
	Arena       Arena
	RoundID     uuid.UUID
	RoundNumber int
	Score       int
	Combo       int
	Target      symbol.Symbol
	HintVisible bool
	Jammed      bool
	Ammo        Kind
	Aim         float64
	Pivot       vmath.Vec2

	Targets     []Target
	Projectiles []Projectile
	Effects     []Effect
}

// Snapshot copies the current state
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:       e.State(),
		Arena:       e.arena,
		HintVisible: e.hintVisible,
		Aim:         e.aim,
		Pivot:       e.arena.CannonPivot(),
		Target:      symbol.None,
	}
	if r := e.round; r != nil {
		s.RoundID = r.ID
		s.RoundNumber = r.Number
		s.Score = r.Score
		s.Combo = r.Combo
		s.Target = r.Target
		s.Jammed = r.Jammed
		s.Ammo = r.Ammo
		s.Targets = make([]Target, len(r.Targets))
		for i, t := range r.Targets {
			s.Targets[i] = *t
		}
	}
	s.Projectiles = append([]Projectile(nil), e.projectiles...)
	s.Effects = append([]Effect(nil), e.effects...)
	return s
}

// BarrelTip returns the muzzle position for the snapshot's aim
func (s Snapshot) BarrelTip(length float64) vmath.Vec2 {
	return s.Pivot.Add(vmath.FromAngle(s.Aim).Scale(length))
}
