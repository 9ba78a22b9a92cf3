// Package quiz implements the listening quiz: hear a symbol, pick it from a grid of options
package quiz

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/engine"
	"github.com/lixenwraith/zhuyin-fighter/engine/fsm"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
)

// Phase is the quiz lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota + 1
	PhaseAsking
	PhaseCorrect // Showing the correct mark
	PhaseWrong   // Showing the wrong mark, a life was lost
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAsking:
		return "Asking"
	case PhaseCorrect:
		return "Correct"
	case PhaseWrong:
		return "Wrong"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Finished reports whether the game reached a terminal phase
func (p Phase) Finished() bool {
	return p == PhaseWon || p == PhaseLost
}

const (
	evStart fsm.EventType = iota + 1
	evCorrect
	evWrong
	evFeedbackDone
)

// ErrNotAsking is returned for answers given outside the asking phase
var ErrNotAsking = errors.New("quiz: not accepting answers")

// Settings selects difficulty and pacing
type Settings struct {
	Difficulty  int // 1..3
	Timer       bool
	RoundsToWin int
}

// Lives returns the starting lives for a difficulty
func Lives(difficulty int) int {
	switch difficulty {
	case 2:
		return 3
	case 3:
		return 1
	default:
		return 5
	}
}

// TimeLimit returns the per-question answer window for a difficulty
func TimeLimit(difficulty int) time.Duration {
	switch difficulty {
	case 2:
		return 10 * time.Second
	case 3:
		return 5 * time.Second
	default:
		return 20 * time.Second
	}
}

// Options wires collaborators; nil fields take silent defaults
type Options struct {
	Rand   *rand.Rand
	Logger *slog.Logger
	Voice  core.Pronouncer
	Tones  core.ToneService
}

// Game is a single quiz session, driven by Tick from one goroutine
type Game struct {
	settings Settings
	rng      *rand.Rand
	log      *slog.Logger
	voice    core.Pronouncer
	tones    core.ToneService
	sched    *engine.Scheduler
	machine  *fsm.Machine[*Game]

	lives    int
	score    int
	target   symbol.Symbol
	options  []symbol.Symbol
	timeLeft time.Duration
	fresh    bool // Next asking phase draws a new question
	speaking <-chan error
}

// New creates an idle quiz
func New(settings Settings, opts Options) *Game {
	if settings.RoundsToWin <= 0 {
		settings.RoundsToWin = constants.QuizRoundsToWin
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Voice == nil {
		opts.Voice = core.NopPronouncer{}
	}
	if opts.Tones == nil {
		opts.Tones = core.NopToneService{}
	}

	g := &Game{
		settings: settings,
		rng:      opts.Rand,
		log:      opts.Logger.With("component", "quiz"),
		voice:    opts.Voice,
		tones:    opts.Tones,
		sched:    engine.NewScheduler(),
	}
	g.machine = g.buildMachine()
	if err := g.machine.Init(g); err != nil {
		panic(err)
	}
	return g
}

func (g *Game) buildMachine() *fsm.Machine[*Game] {
	m := fsm.NewMachine[*Game]()
	id := func(p Phase) fsm.StateID { return fsm.StateID(p) }

	won := func(g *Game, _ *fsm.Machine[*Game]) bool { return g.score >= g.settings.RoundsToWin }
	lost := func(g *Game, _ *fsm.Machine[*Game]) bool { return g.lives <= 0 }

	m.AddState(id(PhaseIdle), PhaseIdle.String()).
		On(evStart, id(PhaseAsking))

	m.AddState(id(PhaseAsking), PhaseAsking.String()).
		Enter((*Game).ask).
		On(evCorrect, id(PhaseCorrect)).
		On(evWrong, id(PhaseWrong))

	m.AddState(id(PhaseCorrect), PhaseCorrect.String()).
		Enter((*Game).scheduleFeedbackEnd)
	m.AddTransition(id(PhaseCorrect), fsm.Transition[*Game]{TargetID: id(PhaseWon), Event: evFeedbackDone, Guard: won})
	m.AddTransition(id(PhaseCorrect), fsm.Transition[*Game]{TargetID: id(PhaseAsking), Event: evFeedbackDone})

	m.AddState(id(PhaseWrong), PhaseWrong.String()).
		Enter((*Game).scheduleFeedbackEnd)
	m.AddTransition(id(PhaseWrong), fsm.Transition[*Game]{TargetID: id(PhaseLost), Event: evFeedbackDone, Guard: lost})
	m.AddTransition(id(PhaseWrong), fsm.Transition[*Game]{TargetID: id(PhaseAsking), Event: evFeedbackDone})

	m.AddState(id(PhaseWon), PhaseWon.String()).
		Enter(func(g *Game) {
			g.tones.Play(core.ToneWin)
			g.log.Info("quiz won", "score", g.score, "lives", g.lives)
		})
	m.AddState(id(PhaseLost), PhaseLost.String()).
		Enter(func(g *Game) {
			g.tones.Play(core.ToneLose)
			g.log.Info("quiz lost", "score", g.score)
		})

	return m
}

// Start resets the score and lives and asks the first question
func (g *Game) Start() {
	g.stop()
	g.lives = Lives(g.settings.Difficulty)
	g.score = 0
	g.target = symbol.None
	g.options = nil
	g.fresh = true
	_ = g.machine.Reset(g)
	g.log.Info("quiz started", "difficulty", g.settings.Difficulty, "timer", g.settings.Timer, "lives", g.lives)
	g.machine.HandleEvent(g, evStart)
}

// Stop abandons the game, silencing audio and cancelling pending feedback
func (g *Game) Stop() {
	g.stop()
	_ = g.machine.Reset(g)
}

func (g *Game) stop() {
	g.sched.CancelAll()
	if g.speaking != nil {
		g.voice.Stop()
		g.speaking = nil
	}
}

// ask enters the asking phase; a wrong answer retries the same question
func (g *Game) ask() {
	if g.fresh {
		g.nextQuestion()
	}
	g.fresh = false
}

func (g *Game) nextQuestion() {
	g.target = symbol.At(g.rng.IntN(symbol.Count))
	n := constants.QuizMinOptions + g.rng.IntN(constants.QuizMaxOptions-constants.QuizMinOptions+1)
	g.options = GenerateOptions(g.rng, g.target, n)
	g.timeLeft = TimeLimit(g.settings.Difficulty)
	g.log.Debug("question", "target", g.target.String(), "options", len(g.options))
	g.speak()
}

func (g *Game) speak() {
	if g.speaking != nil {
		g.voice.Stop()
	}
	g.speaking = g.voice.Pronounce(g.target)
}

// Replay repeats the current symbol unless it is still playing
func (g *Game) Replay() {
	if g.Phase() != PhaseAsking || g.speaking != nil {
		return
	}
	g.speak()
}

// Answer submits a choice
func (g *Game) Answer(s symbol.Symbol) error {
	if g.Phase() != PhaseAsking {
		return ErrNotAsking
	}
	if s == g.target {
		g.score++
		g.fresh = true
		g.tones.Play(core.ToneCorrect)
		g.machine.HandleEvent(g, evCorrect)
		return nil
	}
	g.loseLife("wrong answer", s)
	return nil
}

func (g *Game) loseLife(reason string, s symbol.Symbol) {
	g.lives--
	g.tones.Play(core.ToneWrong)
	g.log.Info(reason, "target", g.target.String(), "answer", s.String(), "lives", g.lives)
	g.machine.HandleEvent(g, evWrong)
}

func (g *Game) scheduleFeedbackEnd() {
	g.sched.After(constants.QuizFeedbackDelay, func() {
		g.machine.HandleEvent(g, evFeedbackDone)
	})
}

// Tick advances timers by dt
func (g *Game) Tick(dt time.Duration) {
	if g.speaking != nil {
		select {
		case err := <-g.speaking:
			if err != nil {
				g.log.Warn("pronounce failed", "error", err)
			}
			g.speaking = nil
		default:
		}
	}

	// A question that opens during this tick starts its countdown next tick
	asking := g.Phase() == PhaseAsking
	g.sched.Advance(dt)

	if asking && g.settings.Timer {
		g.timeLeft -= dt
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.fresh = true
			g.loseLife("time out", symbol.None)
		}
	}
}

// Phase returns the current lifecycle phase
func (g *Game) Phase() Phase {
	return Phase(g.machine.Current())
}

// View is a copy of everything the quiz screen shows
type View struct {
	Phase       Phase
	Lives       int
	Score       int
	RoundsToWin int
	Target      symbol.Symbol // Hidden by the screen while asking
	Options     []symbol.Symbol
	TimeLeft    time.Duration
	Timer       bool
	Speaking    bool
}

// View returns the current display state
func (g *Game) View() View {
	return View{
		Phase:       g.Phase(),
		Lives:       g.lives,
		Score:       g.score,
		RoundsToWin: g.settings.RoundsToWin,
		Target:      g.target,
		Options:     append([]symbol.Symbol(nil), g.options...),
		TimeLeft:    g.timeLeft,
		Timer:       g.settings.Timer,
		Speaking:    g.speaking != nil,
	}
}

// GenerateOptions returns n distinct symbols including target in random order
// n is clamped to the catalog size
func GenerateOptions(rng *rand.Rand, target symbol.Symbol, n int) []symbol.Symbol {
	n = min(max(n, 1), symbol.Count)
	out := []symbol.Symbol{target}
	seen := map[symbol.Symbol]bool{target: true}
	for _, i := range rng.Perm(symbol.Count) {
		if len(out) == n {
			break
		}
		s := symbol.At(i)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
