package arcade

import (
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/engine"
	"github.com/lixenwraith/zhuyin-fighter/engine/fsm"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// State is the round lifecycle phase
type State int

const (
	StateIdle State = iota + 1
	StateSpawning
	StateAwaitingHint
	StateActive
	StateResolvingCorrect
	StateResolvingIncorrect
)

var stateNames = map[State]string{
	StateIdle:               "Idle",
	StateSpawning:           "Spawning",
	StateAwaitingHint:       "AwaitingHint",
	StateActive:             "Active",
	StateResolvingCorrect:   "ResolvingCorrect",
	StateResolvingIncorrect: "ResolvingIncorrect",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

const (
	evStart fsm.EventType = iota + 1
	evRoundReady
	evCorrectHit
	evWrongHit
	evJamCleared
	evNextRoundDue
	evBack
)

// ErrNotIdle is returned when starting a session that is already running
var ErrNotIdle = errors.New("arcade: session already running")

// Options configures a new Engine, zero fields take defaults
type Options struct {
	Arena        Arena
	TickInterval time.Duration
	Rand         *rand.Rand
	Logger       *slog.Logger
	Voice        core.Pronouncer
	Tones        core.ToneService
}

// Engine owns all Sound Hunter state and is driven by a single ticking goroutine
// It is not safe for concurrent use
type Engine struct {
	arena    Arena
	interval time.Duration
	rng      *rand.Rand
	baseLog  *slog.Logger
	log      *slog.Logger

	gen     *Generator
	sched   *engine.Scheduler
	machine *fsm.Machine[*Engine]
	voice   *voiceQueue
	tones   core.ToneService

	session     uuid.UUID
	round       *Round
	projectiles []Projectile
	effects     []Effect
	aim         float64
	hintVisible bool

	jamTimer  engine.TimerID
	nextTimer engine.TimerID
}

// New builds an idle engine
func New(opts Options) *Engine {
	if opts.Arena.Width <= 0 || opts.Arena.Height <= 0 {
		opts.Arena = DefaultArena()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = constants.TickInterval
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

	e := &Engine{
		arena:    opts.Arena,
		interval: opts.TickInterval,
		rng:      opts.Rand,
		baseLog:  opts.Logger,
		log:      opts.Logger,
		gen:      NewGenerator(opts.Arena, opts.Rand, opts.Logger),
		sched:    engine.NewScheduler(),
		voice:    newVoiceQueue(opts.Voice, opts.Tones, opts.Logger),
		tones:    opts.Tones,
		aim:      -math.Pi / 2,
	}
	e.machine = buildMachine()
	if err := e.machine.Init(e); err != nil {
		// Idle is registered first, Init cannot fail
		panic(err)
	}
	return e
}

func buildMachine() *fsm.Machine[*Engine] {
	m := fsm.NewMachine[*Engine]()
	id := func(s State) fsm.StateID { return fsm.StateID(s) }

	m.AddState(id(StateIdle), StateIdle.String()).
		Enter((*Engine).teardown).
		On(evStart, id(StateSpawning))

	m.AddState(id(StateSpawning), StateSpawning.String()).
		Enter((*Engine).spawnRound).
		On(evRoundReady, id(StateAwaitingHint))

	m.AddState(id(StateAwaitingHint), StateAwaitingHint.String()).
		Enter((*Engine).showHint).
		Exit(func(e *Engine) { e.hintVisible = false })
	m.AddTransition(id(StateAwaitingHint), fsm.Transition[*Engine]{
		TargetID: id(StateActive),
		Event:    fsm.EventTick,
		Guard:    fsm.StateTimeExceeds[*Engine](constants.HintDuration),
	})

	m.AddState(id(StateActive), StateActive.String()).
		On(evCorrectHit, id(StateResolvingCorrect)).
		On(evWrongHit, id(StateResolvingIncorrect))

	m.AddState(id(StateResolvingCorrect), StateResolvingCorrect.String()).
		Enter((*Engine).scheduleNextRound).
		On(evNextRoundDue, id(StateSpawning))

	m.AddState(id(StateResolvingIncorrect), StateResolvingIncorrect.String()).
		On(evJamCleared, id(StateActive)).
		On(evCorrectHit, id(StateResolvingCorrect))

	m.AddGlobalTransition(fsm.Transition[*Engine]{TargetID: id(StateIdle), Event: evBack})
	return m
}

// State returns the current lifecycle phase
func (e *Engine) State() State {
	return State(e.machine.Current())
}

// Round returns the live round, nil while idle
func (e *Engine) Round() *Round {
	return e.round
}

// Start begins a new session from Idle
func (e *Engine) Start() error {
	if e.State() != StateIdle {
		return ErrNotIdle
	}
	e.session = uuid.New()
	e.log = e.baseLog.With("session", e.session.String())
	e.log.Info("sound hunter session started")
	e.machine.HandleEvent(e, evStart)
	return nil
}

// Back abandons the session and returns to Idle, cancelling every pending wait
func (e *Engine) Back() {
	if e.State() == StateIdle {
		return
	}
	e.log.Info("sound hunter session ended", "score", e.round.scoreOrZero())
	e.machine.HandleEvent(e, evBack)
}

// Tick advances the game by one fixed step and returns the resulting view
func (e *Engine) Tick(in Input) Snapshot {
	if e.State() == StateIdle {
		return e.Snapshot()
	}
	if in.Back {
		e.Back()
		return e.Snapshot()
	}

	e.applyInput(in)

	e.projectiles = StepProjectiles(e.projectiles, e.arena)
	for _, t := range e.round.Targets {
		StepTarget(t, e.arena)
	}
	e.effects = StepEffects(e.effects)

	e.resolveCollisions()

	e.sched.Advance(e.interval)
	e.machine.Update(e, e.interval)
	e.voice.poll(e.interval)

	return e.Snapshot()
}

func (e *Engine) applyInput(in Input) {
	if in.AimLeft != in.AimRight {
		step := constants.BarrelRotSpeed
		if in.AimLeft {
			step = -step
		}
		e.aim = vmath.Clamp(e.aim+step, -math.Pi, 0)
	}
	if in.ToggleAmmo {
		e.round.Ammo = e.round.Ammo.Toggle()
	}
	if in.ReplayPrompt {
		e.voice.prompt(e.round.Target)
	}
	if in.Fire {
		e.fire()
	}
}

// fire launches a projectile from the barrel tip; ignored unless aiming is live and unjammed
func (e *Engine) fire() {
	if e.State() != StateActive || e.round.Jammed {
		return
	}
	dir := vmath.FromAngle(e.aim)
	e.projectiles = append(e.projectiles, Projectile{
		Pos:  e.arena.CannonPivot().Add(dir.Scale(constants.BarrelLength)),
		Vel:  dir.Scale(constants.ProjectileSpeed),
		Kind: e.round.Ammo,
	})
	e.tones.Play(core.ToneShoot)
}

// teardown clears the session when entering Idle
func (e *Engine) teardown() {
	e.sched.CancelAll()
	e.voice.interrupt()
	e.round = nil
	e.projectiles = nil
	e.effects = nil
	e.hintVisible = false
	e.aim = -math.Pi / 2
	e.jamTimer, e.nextTimer = 0, 0
}

func (e *Engine) spawnRound() {
	e.projectiles = e.projectiles[:0]
	e.round = e.gen.StartRound(e.round)
	e.log.Info("round started",
		"round", e.round.ID.String(),
		"number", e.round.Number,
		"target", e.round.Target.String(),
	)
	e.machine.HandleEvent(e, evRoundReady)
}

func (e *Engine) showHint() {
	e.hintVisible = true
	e.voice.prompt(e.round.Target)
}

// scheduleNextRound arms the single pending transition to the next round
func (e *Engine) scheduleNextRound() {
	if e.sched.Pending(e.nextTimer) {
		return
	}
	e.nextTimer = e.sched.After(constants.NextRoundDelay, func() {
		e.machine.HandleEvent(e, evNextRoundDue)
	})
}

// jam blocks firing and re-arms the release timer
func (e *Engine) jam() {
	e.round.Jammed = true
	e.sched.Cancel(e.jamTimer)
	e.jamTimer = e.sched.After(constants.JamDuration, func() {
		if e.round != nil {
			e.round.Jammed = false
		}
		e.machine.HandleEvent(e, evJamCleared)
	})
}

func (r *Round) scoreOrZero() int {
	if r == nil {
		return 0
	}
	return r.Score
}

// Target returns the symbol to find, symbol.None while idle
func (e *Engine) Target() symbol.Symbol {
	if e.round == nil {
		return symbol.None
	}
	return e.round.Target
}
