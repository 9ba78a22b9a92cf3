// Package app hosts the terminal UI: main menu, activity screens and the tick loop driving them
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/config"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/engine"
	"github.com/lixenwraith/zhuyin-fighter/input"
	"github.com/lixenwraith/zhuyin-fighter/quiz"
	"github.com/lixenwraith/zhuyin-fighter/render"
	"github.com/lixenwraith/zhuyin-fighter/render/renderers"
	"github.com/lixenwraith/zhuyin-fighter/status"
)

// Activity is the screen currently owning the tick
type Activity uint8

const (
	ActivityMenu Activity = iota
	ActivityArcade
	ActivityQuiz
	ActivityLibrary
)

func (a Activity) String() string {
	switch a {
	case ActivityArcade:
		return "arcade"
	case ActivityQuiz:
		return "quiz"
	case ActivityLibrary:
		return "library"
	default:
		return "menu"
	}
}

// Muter is the mute switch of the sound backend
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// Options configures the application, zero fields take defaults
type Options struct {
	Config config.Config
	Logger *slog.Logger
	Voice  core.Pronouncer
	Tones  core.ToneService
	Muter  Muter
	Keys   *input.KeyTable
	Clock  engine.TimeProvider
	Rand   *rand.Rand
	Screen tcell.Screen // Nil lets tview create the terminal screen
	Stats  *status.Registry
}

// App wires the activities to the terminal
// Engine state is guarded by mu; the tick goroutine and tview callbacks both take it
type App struct {
	cfg   config.Config
	base  *slog.Logger
	log   *slog.Logger
	voice core.Pronouncer
	tones core.ToneService
	muter Muter
	keys  *input.KeyTable
	rng   *rand.Rand
	stats *status.Registry

	tv      *tview.Application
	pages   *tview.Pages
	menu    *tview.List
	library *tview.List
	setup   *tview.Form

	sampler *input.Sampler
	layers  *render.Orchestrator

	mu         sync.Mutex
	activity   Activity
	arcade     *arcade.Engine
	snap       arcade.Snapshot
	quiz       *quiz.Game
	quizView   quiz.View
	selected   int
	gameOver   bool
	difficulty int
	timer      bool

	running atomic.Bool
}

// New builds the application and its pages without touching the terminal
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Voice == nil {
		opts.Voice = core.NopPronouncer{}
	}
	if opts.Tones == nil {
		opts.Tones = core.NopToneService{}
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}
	if opts.Config.TickRate <= 0 {
		opts.Config = config.Default()
	}

	a := &App{
		cfg:        opts.Config,
		base:       opts.Logger,
		log:        opts.Logger.With("component", "app"),
		voice:      opts.Voice,
		tones:      opts.Tones,
		muter:      opts.Muter,
		keys:       opts.Keys,
		rng:        opts.Rand,
		stats:      opts.Stats,
		tv:         tview.NewApplication(),
		sampler:    input.NewSampler(opts.Keys, opts.Clock),
		layers:     render.NewOrchestrator(),
		difficulty: opts.Config.Quiz.Difficulty,
		timer:      opts.Config.Quiz.Timer,
	}
	if opts.Screen != nil {
		a.tv.SetScreen(opts.Screen)
	}
	renderers.RegisterArcade(a.layers, a.muted)
	a.buildPages()
	a.tv.SetRoot(a.pages, true).SetInputCapture(a.handleKey)
	return a
}

// TickInterval is the fixed step derived from the configured tick rate
func (a *App) TickInterval() time.Duration {
	return time.Second / time.Duration(a.cfg.TickRate)
}

// Run drives the UI event loop and the tick loop until the user quits or ctx ends
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.running.Store(true)
	defer a.running.Store(false)

	clock := engine.NewClockScheduler(a.TickInterval(), a.tick)
	clock.SetCrashHandler(core.HandleCrash)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		if err := a.tv.Run(); err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		clock.Start()
		select {
		case <-ctx.Done():
			clock.Stop()
		case <-clock.Done():
			a.tv.Stop()
		}
		a.stopActivity()
		a.log.Info("tick loop stopped", "ticks", clock.TickCount())
		return nil
	})

	err := eg.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Activity returns the active screen
func (a *App) Activity() Activity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activity
}

// tick advances the active engine by one step
// UI work is queued after the lock is released so a slow UI loop cannot hold engine state
func (a *App) tick(dt time.Duration) bool {
	var after func()
	a.mu.Lock()
	redraw := true
	switch a.activity {
	case ActivityArcade:
		in := a.sampler.Sample()
		prev := a.snap
		a.snap = a.arcade.Tick(in)
		a.recordArcade(in, prev, a.snap)
		if a.arcade.State() == arcade.StateIdle {
			a.log.Info("arcade ended", "score", a.snap.Score)
			a.arcade = nil
			a.activity = ActivityMenu
			after = a.showMenu
		}
	case ActivityQuiz:
		a.quiz.Tick(dt)
		a.refreshQuizLocked()
		if a.quizView.Phase.Finished() && !a.gameOver {
			a.gameOver = true
			after = a.showGameOver
		}
	default:
		redraw = false
	}
	a.mu.Unlock()

	switch {
	case after != nil:
		a.ui(after)
	case redraw && a.running.Load():
		a.tv.Draw()
	}
	return true
}

// ui runs f on the UI goroutine while running, inline otherwise
func (a *App) ui(f func()) {
	if a.running.Load() {
		a.tv.QueueUpdateDraw(f)
		return
	}
	f()
}

// startArcade begins a Sound Hunter session, caller holds no lock
func (a *App) startArcade() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()
	a.sampler.Reset()
	a.arcade = arcade.New(arcade.Options{
		Arena:        arcade.Arena{Width: a.cfg.Arena.Width, Height: a.cfg.Arena.Height},
		TickInterval: a.TickInterval(),
		Rand:         a.rng,
		Logger:       a.base.With("component", "arcade"),
		Voice:        a.voice,
		Tones:        a.tones,
	})
	if err := a.arcade.Start(); err != nil {
		a.log.Error("arcade start failed", "error", err)
		a.arcade = nil
		return
	}
	a.snap = a.arcade.Snapshot()
	a.stats.Int(StatArcadeSessions).Add(1)
	a.recordArcade(arcade.Input{}, arcade.Snapshot{}, a.snap)
	a.activity = ActivityArcade
	a.pages.SwitchToPage(pageArcade)
}

// startQuiz begins a listening quiz with the chosen settings
func (a *App) startQuiz() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()
	a.quiz = quiz.New(quiz.Settings{
		Difficulty:  a.difficulty,
		Timer:       a.timer,
		RoundsToWin: a.cfg.Quiz.RoundsToWin,
	}, quiz.Options{
		Rand:   a.rng,
		Logger: a.base,
		Voice:  a.voice,
		Tones:  a.tones,
	})
	a.quiz.Start()
	a.quizView = a.quiz.View()
	a.selected = 0
	a.gameOver = false
	a.stats.Int(StatQuizSessions).Add(1)
	a.activity = ActivityQuiz
	a.pages.SwitchToPage(pageQuiz)
}

// stopActivity ends whatever is running and returns to the menu state
func (a *App) stopActivity() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *App) stopLocked() {
	if a.arcade != nil {
		a.arcade.Back()
		a.arcade = nil
	}
	if a.quiz != nil {
		a.quiz.Stop()
		a.quiz = nil
	}
	a.voice.Stop()
	a.activity = ActivityMenu
}

// toggleMute flips the sound backend mute switch
func (a *App) toggleMute() {
	if a.muter == nil {
		return
	}
	a.muter.SetMuted(!a.muter.Muted())
	a.log.Info("mute toggled", "muted", a.muter.Muted())
}

func (a *App) muted() bool {
	return a.muter != nil && a.muter.Muted()
}
