package arcade

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// Placement records which pass of the spawn search produced a position
type Placement uint8

const (
	PlacementStrict   Placement = iota // Cleared the full separation
	PlacementRelaxed                   // Cleared the reduced separation
	PlacementFallback                  // Accepted unconditionally
)

func (p Placement) String() string {
	switch p {
	case PlacementStrict:
		return "strict"
	case PlacementRelaxed:
		return "relaxed"
	default:
		return "fallback"
	}
}

// Generator builds rounds from the symbol catalog
type Generator struct {
	arena  Arena
	rng    *rand.Rand
	log    *slog.Logger
	nextID int
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(arena Arena, rng *rand.Rand, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{arena: arena, rng: rng, log: log}
}

// StartRound picks a target and distractors and places every balloon
// Score, combo, ammo and jam state carry over from prev when present
func (g *Generator) StartRound(prev *Round) *Round {
	target := symbol.At(g.rng.IntN(symbol.Count))
	return g.build(prev, target, g.pickDistractors(target))
}

// pickDistractors returns confusable symbols and distinct random ones in shuffled order
func (g *Generator) pickDistractors(target symbol.Symbol) []symbol.Symbol {
	out := symbol.ConfusableWith(target, constants.ConfusableDistractors)
	want := len(out) + constants.RandomDistractors

	taken := func(s symbol.Symbol) bool {
		if s == target {
			return true
		}
		for _, d := range out {
			if d == s {
				return true
			}
		}
		return false
	}

	for tries := 0; len(out) < want && tries < constants.DistractorRetryCap; tries++ {
		s := symbol.At(g.rng.IntN(symbol.Count))
		if !taken(s) {
			out = append(out, s)
		}
	}
	if len(out) < want {
		g.log.Warn("distractor sampling capped, topping up in catalog order",
			"target", target.String(), "have", len(out), "want", want)
		for _, s := range symbol.All() {
			if len(out) == want {
				break
			}
			if !taken(s) {
				out = append(out, s)
			}
		}
	}
	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// build instantiates balloons for target and distractors
// Distractors are created first so the correct balloon renders on top
func (g *Generator) build(prev *Round, target symbol.Symbol, distractors []symbol.Symbol) *Round {
	r := &Round{
		ID:     uuid.New(),
		Target: target,
	}
	if prev != nil {
		r.Number = prev.Number
		r.Score = prev.Score
		r.Combo = prev.Combo
		r.Ammo = prev.Ammo
		r.Jammed = prev.Jammed
	}
	r.Number++

	symbols := make([]symbol.Symbol, 0, len(distractors)+1)
	symbols = append(symbols, target)
	symbols = append(symbols, distractors...)

	// The target reserves the first, best-spaced position
	positions := make([]vmath.Vec2, 0, len(symbols))
	for range symbols {
		pos, how := g.place(positions)
		positions = append(positions, pos)
		r.Placements = append(r.Placements, how)
	}

	add := func(s symbol.Symbol, pos vmath.Vec2) {
		t, err := g.spawn(s, pos)
		if err != nil {
			g.log.Error("balloon spawn failed", "symbol", s.String(), "error", err)
			return
		}
		r.Targets = append(r.Targets, t)
	}
	for i, s := range distractors {
		add(s, positions[i+1])
	}
	add(target, positions[0])

	g.log.Debug("round generated",
		"round", r.ID.String(),
		"number", r.Number,
		"target", target.String(),
		"balloons", len(r.Targets),
	)
	return r
}

// place draws a spawn point, preferring ones far from everything already placed
func (g *Generator) place(placed []vmath.Vec2) (vmath.Vec2, Placement) {
	for i := 0; i < constants.SpawnAttempts; i++ {
		p := g.arena.SpawnPoint(g.rng.Float64(), g.rng.Float64())
		if clearOf(p, placed, constants.SpawnSeparation) {
			return p, PlacementStrict
		}
	}
	for i := 0; i < constants.SpawnRelaxedTries; i++ {
		p := g.arena.SpawnPoint(g.rng.Float64(), g.rng.Float64())
		if clearOf(p, placed, constants.SpawnRelaxed) {
			return p, PlacementRelaxed
		}
	}
	return g.arena.SpawnPoint(g.rng.Float64(), g.rng.Float64()), PlacementFallback
}

func clearOf(p vmath.Vec2, placed []vmath.Vec2, minDist float64) bool {
	limit := minDist * minDist
	for _, q := range placed {
		if p.DistSq(q) < limit {
			return false
		}
	}
	return true
}

// spawn creates one balloon; a panic while building it is reported as an error
func (g *Generator) spawn(s symbol.Symbol, pos vmath.Vec2) (t *Target, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("balloon %q: %v", s.String(), r)
		}
	}()

	if !symbol.Valid(s) {
		return nil, fmt.Errorf("balloon %q: symbol not in catalog", s.String())
	}
	palette := symbol.Palette(symbol.CategoryOf(s))

	g.nextID++
	return &Target{
		ID:     g.nextID,
		Symbol: s,
		Color:  palette[g.rng.IntN(len(palette))],
		Pos:    pos,
		Vel: vmath.V(
			(g.rng.Float64()-0.5)*constants.BalloonVelXSpread,
			(g.rng.Float64()-0.5)*constants.BalloonVelYSpread,
		),
		FaceTimer: g.rng.IntN(constants.FaceTimerMaxStart),
	}, nil
}
