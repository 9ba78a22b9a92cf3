// Package arcade implements the Sound Hunter shooting gallery: round generation,
// per-tick balloon and projectile simulation, collision scoring and the round state machine
package arcade

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// Kind is the projectile type loaded in the cannon
type Kind uint8

const (
	Piercing Kind = iota // Pops the correct balloon, jams on a wrong one
	Area                 // Pushes nearby balloons, never scores
)

func (k Kind) String() string {
	if k == Area {
		return "area"
	}
	return "piercing"
}

// Toggle returns the other projectile kind
func (k Kind) Toggle() Kind {
	if k == Piercing {
		return Area
	}
	return Piercing
}

// Expression is the balloon face state
type Expression uint8

const (
	Normal Expression = iota
	Surprised
	Dizzy
)

func (e Expression) String() string {
	switch e {
	case Surprised:
		return "surprised"
	case Dizzy:
		return "dizzy"
	default:
		return "normal"
	}
}

// Projectile is a cannon shot in flight
type Projectile struct {
	Pos  vmath.Vec2
	Vel  vmath.Vec2
	Kind Kind
}

// Target is a floating balloon carrying one symbol
type Target struct {
	ID      int
	Symbol  symbol.Symbol
	Color   uint32
	Pos     vmath.Vec2
	Vel     vmath.Vec2 // Steady drift, reflected at bounds
	Impulse vmath.Vec2 // Transient push, decays every tick

	Expression Expression
	FaceTimer  int  // Ticks since the last expression change or blink cycle
	Blink      bool // Eyes closed this tick

	ShakeTicks int // Remaining wobble ticks after a wrong hit
}

// HitCenter returns the point projectiles are measured against
func (t *Target) HitCenter() vmath.Vec2 {
	return vmath.V(t.Pos.X, t.Pos.Y-constants.HitCenterOffset)
}

// Round is one find-the-symbol round
// Score, Combo, Ammo and Jammed carry over from the previous round
type Round struct {
	ID      uuid.UUID
	Number  int
	Target  symbol.Symbol
	Targets []*Target // Render order, the correct balloon last

	Score  int
	Combo  int
	Ammo   Kind
	Jammed bool

	// Placements records how each spawn point was found, in draw order
	Placements []Placement
}

// CountSymbol returns how many live targets carry s
func (r *Round) CountSymbol(s symbol.Symbol) int {
	n := 0
	for _, t := range r.Targets {
		if t.Symbol == s {
			n++
		}
	}
	return n
}

// Input is the per-tick sample of player intent
// Fire, ToggleAmmo, ReplayPrompt and Back are edges, aim flags are levels
type Input struct {
	Fire         bool
	AimLeft      bool
	AimRight     bool
	ToggleAmmo   bool
	ReplayPrompt bool
	Back         bool
}

// Arena describes the logical play field
type Arena struct {
	Width  float64
	Height float64
}

// DefaultArena returns the 800x600 field
func DefaultArena() Arena {
	return Arena{Width: constants.ArenaWidth, Height: constants.ArenaHeight}
}

// SpawnPoint maps unit samples u, v in [0, 1) into the spawn band
func (a Arena) SpawnPoint(u, v float64) vmath.Vec2 {
	return vmath.V(
		u*(a.Width-2*constants.SpawnMargin)+constants.SpawnMargin,
		v*(a.Height*constants.SpawnBandRatio)+constants.SpawnMargin,
	)
}

// BalloonBounds returns the inclusive rectangle balloons bounce within
func (a Arena) BalloonBounds() (lo, hi vmath.Vec2) {
	m := constants.BalloonMargin
	return vmath.V(m, m), vmath.V(a.Width-m, a.Height*constants.BalloonFloorRatio)
}

// Contains reports whether p lies on the field, edges included
func (a Arena) Contains(p vmath.Vec2) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// CannonPivot returns the barrel rotation centre
func (a Arena) CannonPivot() vmath.Vec2 {
	return vmath.V(a.Width/2, a.Height-constants.CannonBaseOffset-constants.CannonBarrelOffset)
}
