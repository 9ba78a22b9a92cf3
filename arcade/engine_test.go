package arcade

import (
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/core"
	"github.com/lixenwraith/zhuyin-fighter/core/mocks"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// recorder captures everything the engine asks the sound services to do
type recorder struct {
	voice  *mocks.MockPronouncer
	tones  *mocks.MockToneService
	spoken []string
	played []core.Tone
	stops  int
}

func newRecorder(t *testing.T) *recorder {
	ctrl := gomock.NewController(t)
	r := &recorder{
		voice: mocks.NewMockPronouncer(ctrl),
		tones: mocks.NewMockToneService(ctrl),
	}
	r.voice.EXPECT().Phrase(gomock.Any()).DoAndReturn(func(p core.Phrase) <-chan error {
		r.spoken = append(r.spoken, p.String())
		return core.Completed(nil)
	}).AnyTimes()
	r.voice.EXPECT().Pronounce(gomock.Any()).DoAndReturn(func(s symbol.Symbol) <-chan error {
		r.spoken = append(r.spoken, s.String())
		return core.Completed(nil)
	}).AnyTimes()
	r.voice.EXPECT().Stop().Do(func() { r.stops++ }).AnyTimes()
	r.tones.EXPECT().Play(gomock.Any()).Do(func(tone core.Tone) {
		r.played = append(r.played, tone)
	}).AnyTimes()
	return r
}

func (r *recorder) playedTone(tone core.Tone) bool {
	for _, p := range r.played {
		if p == tone {
			return true
		}
	}
	return false
}

func newTestEngine(t *testing.T) (*Engine, *recorder) {
	t.Helper()
	rec := newRecorder(t)
	e := New(Options{
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Logger: slog.New(slog.DiscardHandler),
		Voice:  rec.voice,
		Tones:  rec.tones,
	})
	return e, rec
}

// tickFor runs enough empty ticks for d of game time to elapse
func tickFor(e *Engine, d time.Duration) Snapshot {
	n := int(d/e.interval) + 1
	var s Snapshot
	for i := 0; i < n; i++ {
		s = e.Tick(Input{})
	}
	return s
}

// activate starts a session and waits out the hint
func activate(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s := tickFor(e, constants.HintDuration); s.State != StateActive {
		t.Fatalf("state after hint = %v, want Active", s.State)
	}
}

// stage replaces the generated round with still balloons at known positions
func stage(e *Engine, target symbol.Symbol, balloons ...*Target) {
	e.round.Target = target
	e.round.Targets = balloons
}

func still(id int, s symbol.Symbol, x, y float64) *Target {
	return &Target{ID: id, Symbol: s, Pos: vmath.V(x, y)}
}

func (e *Engine) inject(p Projectile) {
	e.projectiles = append(e.projectiles, p)
}

func TestEngine_StartsIdle(t *testing.T) {
	e, _ := newTestEngine(t)
	s := e.Tick(Input{Fire: true, ToggleAmmo: true})

	if s.State != StateIdle {
		t.Fatalf("state = %v, want Idle", s.State)
	}
	if len(s.Targets) != 0 || len(s.Projectiles) != 0 || s.Target != symbol.None {
		t.Errorf("idle snapshot not empty: %+v", s)
	}
}

func TestEngine_StartShowsHint(t *testing.T) {
	e, rec := newTestEngine(t)
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := e.Start(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("second start err = %v, want ErrNotIdle", err)
	}

	s := e.Snapshot()
	if s.State != StateAwaitingHint || !s.HintVisible {
		t.Fatalf("state = %v hint = %v, want AwaitingHint with hint", s.State, s.HintVisible)
	}
	if len(s.Targets) != 6 || s.RoundNumber != 1 {
		t.Errorf("got %d balloons round %d", len(s.Targets), s.RoundNumber)
	}

	// Firing is ignored while the hint is up
	s = e.Tick(Input{Fire: true})
	if len(s.Projectiles) != 0 {
		t.Error("projectile launched during hint")
	}

	s = tickFor(e, constants.HintDuration)
	if s.State != StateActive || s.HintVisible {
		t.Errorf("state = %v hint = %v, want Active without hint", s.State, s.HintVisible)
	}
	if len(rec.spoken) < 2 || rec.spoken[0] != "find" || rec.spoken[1] != s.Target.String() {
		t.Errorf("prompt = %v, want [find %s]", rec.spoken, s.Target)
	}
}

func TestEngine_AimAndFire(t *testing.T) {
	e, rec := newTestEngine(t)
	activate(t, e)
	stage(e, 'ㄅ')

	s := e.Tick(Input{ToggleAmmo: true})
	if s.Ammo != Area {
		t.Fatalf("ammo = %v, want area", s.Ammo)
	}

	for i := 0; i < 200; i++ {
		s = e.Tick(Input{AimLeft: true})
	}
	if s.Aim != -math.Pi {
		t.Errorf("aim = %v, want clamp at -pi", s.Aim)
	}
	for i := 0; i < 200; i++ {
		s = e.Tick(Input{AimRight: true})
	}
	if s.Aim != 0 {
		t.Errorf("aim = %v, want clamp at 0", s.Aim)
	}

	s = e.Tick(Input{Fire: true})
	if len(s.Projectiles) != 1 || s.Projectiles[0].Kind != Area {
		t.Fatalf("projectiles = %+v, want one area shot", s.Projectiles)
	}
	if !rec.playedTone(core.ToneShoot) {
		t.Error("shoot tone not played")
	}
}

func TestEngine_CorrectHit(t *testing.T) {
	e, rec := newTestEngine(t)
	activate(t, e)
	stage(e, 'ㄅ', still(1, 'ㄆ', 200, 200), still(2, 'ㄅ', 400, 200))
	e.inject(Projectile{Pos: vmath.V(400, 190), Kind: Piercing})

	s := e.Tick(Input{})
	if s.State != StateResolvingCorrect {
		t.Fatalf("state = %v, want ResolvingCorrect", s.State)
	}
	if s.Score != 10 || s.Combo != 1 {
		t.Errorf("score=%d combo=%d, want 10/1", s.Score, s.Combo)
	}
	if len(s.Targets) != 1 || s.Targets[0].Symbol != 'ㄆ' {
		t.Errorf("correct balloon should be destroyed, have %+v", s.Targets)
	}
	if len(s.Projectiles) != 0 {
		t.Error("projectile should be consumed")
	}
	if !rec.playedTone(core.ToneCorrect) {
		t.Error("correct tone not played")
	}
	if len(s.Effects) != constants.ExplosionParticles {
		t.Errorf("got %d effects, want explosion", len(s.Effects))
	}

	prevID := s.RoundID
	s = tickFor(e, constants.NextRoundDelay)
	if s.State != StateAwaitingHint {
		t.Fatalf("state = %v, want next round hint", s.State)
	}
	if s.RoundID == prevID || s.RoundNumber != 2 {
		t.Errorf("expected fresh round 2, got %d", s.RoundNumber)
	}
	if s.Score != 10 || s.Combo != 1 {
		t.Errorf("score/combo not carried: %d/%d", s.Score, s.Combo)
	}
}

func TestEngine_ComboScoring(t *testing.T) {
	e, _ := newTestEngine(t)
	activate(t, e)

	want := 0
	for combo := 0; combo < 3; combo++ {
		stage(e, 'ㄅ', still(1, 'ㄅ', 400, 200))
		e.inject(Projectile{Pos: vmath.V(400, 190), Kind: Piercing})
		e.Tick(Input{})
		want += 10 + 2*combo

		if e.round.Score != want {
			t.Fatalf("hit %d: score = %d, want %d", combo+1, e.round.Score, want)
		}
		tickFor(e, constants.NextRoundDelay+constants.HintDuration)
		if e.State() != StateActive {
			t.Fatalf("state = %v, want Active", e.State())
		}
	}
}

func TestEngine_WrongHitJams(t *testing.T) {
	e, rec := newTestEngine(t)
	activate(t, e)
	e.round.Combo = 3
	stage(e, 'ㄅ', still(1, 'ㄆ', 400, 200), still(2, 'ㄅ', 600, 200))
	e.inject(Projectile{Pos: vmath.V(400, 200), Kind: Piercing})
	rec.spoken = nil

	s := e.Tick(Input{})
	if s.State != StateResolvingIncorrect || !s.Jammed {
		t.Fatalf("state = %v jammed = %v, want ResolvingIncorrect jammed", s.State, s.Jammed)
	}
	if s.Combo != 0 || s.Score != 0 {
		t.Errorf("combo=%d score=%d, want 0/0", s.Combo, s.Score)
	}
	hit := s.Targets[0]
	if hit.Expression != Dizzy || hit.ShakeTicks != constants.ShakeTicks {
		t.Errorf("hit balloon expression=%v shake=%d", hit.Expression, hit.ShakeTicks)
	}
	if hit.Impulse.Y > -constants.RepelForce+1e-9 {
		t.Errorf("balloon should be pushed away from the shot, impulse %+v", hit.Impulse)
	}
	if len(s.Targets) != 2 {
		t.Error("wrong balloon should survive")
	}
	if !rec.playedTone(core.ToneWrong) {
		t.Error("wrong tone not played")
	}

	s = e.Tick(Input{Fire: true})
	if len(s.Projectiles) != 0 {
		t.Error("fired while jammed")
	}

	tickFor(e, 10*e.interval)
	if rec.playedTone(core.ToneAck) {
		t.Error("acknowledgment played before the pause")
	}

	s = tickFor(e, constants.JamDuration)
	if s.State != StateActive || s.Jammed {
		t.Errorf("state = %v jammed = %v, want Active unjammed", s.State, s.Jammed)
	}
	if len(rec.spoken) != 2 || rec.spoken[0] != "this_is" || rec.spoken[1] != "ㄆ" {
		t.Errorf("correction = %v, want [this_is ㄆ]", rec.spoken)
	}
	if !rec.playedTone(core.ToneAck) {
		t.Error("acknowledgment tone not played")
	}
}

func TestEngine_RepeatedWrongHitRearmsJam(t *testing.T) {
	e, _ := newTestEngine(t)
	activate(t, e)
	stage(e, 'ㄅ', still(1, 'ㄆ', 400, 200))

	e.inject(Projectile{Pos: vmath.V(400, 200), Kind: Piercing})
	e.Tick(Input{})
	tickFor(e, constants.JamDuration/2)

	e.inject(Projectile{Pos: e.round.Targets[0].Pos, Kind: Piercing})
	e.Tick(Input{})
	s := tickFor(e, constants.JamDuration*3/4)
	if !s.Jammed || s.State != StateResolvingIncorrect {
		t.Fatalf("jam released early: state=%v jammed=%v", s.State, s.Jammed)
	}

	s = tickFor(e, constants.JamDuration/2)
	if s.Jammed || s.State != StateActive {
		t.Errorf("jam not released: state=%v jammed=%v", s.State, s.Jammed)
	}
}

func TestEngine_AreaPush(t *testing.T) {
	e, rec := newTestEngine(t)
	activate(t, e)

	near := still(1, 'ㄆ', 400, 200)
	mid := still(2, 'ㄇ', 600, 190)
	mid.Expression = Dizzy
	far := still(3, 'ㄈ', 700, 190)
	stage(e, 'ㄅ', near, mid, far, still(4, 'ㄅ', 100, 100))
	e.inject(Projectile{Pos: vmath.V(400, 190), Kind: Area})

	s := e.Tick(Input{})
	if s.State != StateActive || s.Jammed || s.Score != 0 {
		t.Fatalf("area shot should not score or jam: %v %v %d", s.State, s.Jammed, s.Score)
	}
	if len(s.Projectiles) != 0 {
		t.Error("area projectile should be consumed")
	}

	byID := make(map[int]Target)
	for _, b := range s.Targets {
		byID[b.ID] = b
	}

	// Distance 10 pushes straight down with force 9.6
	if n := byID[1]; math.Abs(n.Impulse.Y-9.6) > 1e-9 || math.Abs(n.Impulse.X) > 1e-9 || n.Expression != Surprised {
		t.Errorf("near balloon: impulse %+v expression %v", n.Impulse, n.Expression)
	}
	// Distance 200 pushes right with force 2, dizzy wins over surprised
	if m := byID[2]; math.Abs(m.Impulse.X-2) > 1e-9 || m.Expression != Dizzy {
		t.Errorf("mid balloon: impulse %+v expression %v", m.Impulse, m.Expression)
	}
	// Distance 300 is outside the blast
	if f := byID[3]; !f.Impulse.IsZero() || f.Expression != Normal {
		t.Errorf("far balloon disturbed: %+v", f)
	}
	if len(s.Effects) != 1 || s.Effects[0].Kind != EffectShockwave {
		t.Errorf("effects = %+v, want one shockwave", s.Effects)
	}
	if !rec.playedTone(core.ToneShoot) {
		t.Error("blast tone not played")
	}
}

func TestEngine_OneHitPerBalloonPerTick(t *testing.T) {
	e, _ := newTestEngine(t)
	activate(t, e)
	stage(e, 'ㄅ', still(1, 'ㄆ', 400, 200))
	e.inject(Projectile{Pos: vmath.V(400, 200), Kind: Piercing})
	e.inject(Projectile{Pos: vmath.V(401, 200), Kind: Piercing})

	s := e.Tick(Input{})
	if len(s.Projectiles) != 1 || s.Projectiles[0].Pos.X != 401 {
		t.Errorf("expected the newer shot to survive, got %+v", s.Projectiles)
	}
}

func TestEngine_BackDuringJam(t *testing.T) {
	e, rec := newTestEngine(t)
	activate(t, e)
	stage(e, 'ㄅ', still(1, 'ㄆ', 400, 200))
	e.inject(Projectile{Pos: vmath.V(400, 200), Kind: Piercing})
	e.Tick(Input{})

	s := e.Tick(Input{Back: true})
	if s.State != StateIdle {
		t.Fatalf("state = %v, want Idle", s.State)
	}
	if e.sched.Len() != 0 {
		t.Errorf("%d timers still pending", e.sched.Len())
	}
	if e.Round() != nil || len(s.Targets) != 0 {
		t.Error("round not torn down")
	}
	if rec.stops == 0 {
		t.Error("voice not stopped")
	}

	stopped := len(rec.played)
	s = tickFor(e, 2*constants.JamDuration)
	if s.State != StateIdle || len(rec.played) != stopped {
		t.Errorf("stale callbacks ran after back: state=%v tones=%v", s.State, rec.played[stopped:])
	}

	if err := e.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s = e.Snapshot(); s.Score != 0 || s.Jammed || s.RoundNumber != 1 {
		t.Errorf("restart carried state: %+v", s)
	}
}

func TestEngine_BackDuringPendingNextRound(t *testing.T) {
	e, _ := newTestEngine(t)
	activate(t, e)
	stage(e, 'ㄅ', still(1, 'ㄅ', 400, 200))
	e.inject(Projectile{Pos: vmath.V(400, 190), Kind: Piercing})
	e.Tick(Input{})

	e.Back()
	if s := tickFor(e, constants.NextRoundDelay); s.State != StateIdle {
		t.Errorf("next round fired after back, state %v", s.State)
	}
}

func TestEngine_ReplayPrompt(t *testing.T) {
	e, rec := newTestEngine(t)
	activate(t, e)
	rec.spoken = nil

	e.Tick(Input{ReplayPrompt: true})
	e.Tick(Input{})
	e.Tick(Input{})
	if len(rec.spoken) != 2 || rec.spoken[0] != "find" || rec.spoken[1] != e.Target().String() {
		t.Errorf("replay = %v", rec.spoken)
	}
}

func TestEngine_SnapshotIsolated(t *testing.T) {
	e, _ := newTestEngine(t)
	activate(t, e)

	s := e.Snapshot()
	s.Targets[0].Pos = vmath.V(-1, -1)
	if e.round.Targets[0].Pos == vmath.V(-1, -1) {
		t.Error("snapshot shares balloon memory with the engine")
	}
}
