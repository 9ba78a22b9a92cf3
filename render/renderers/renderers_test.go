package renderers

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/quiz"
	"github.com/lixenwraith/zhuyin-fighter/render"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the runes of row y, wide runes followed by whatever their second cell holds
func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := range width {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func activeSnapshot() arcade.Snapshot {
	arena := arcade.DefaultArena()
	return arcade.Snapshot{
		State:  arcade.StateActive,
		Arena:  arena,
		Target: symbol.Symbol('ㄅ'),
		Aim:    -math.Pi / 2,
		Pivot:  arena.CannonPivot(),
		Targets: []arcade.Target{
			{Symbol: 'ㄅ', Color: 0xFF0000, Pos: vmath.V(400, 300)},
		},
	}
}

func TestFaceGlyph(t *testing.T) {
	tests := []struct {
		expr  arcade.Expression
		blink bool
		want  string
	}{
		{arcade.Normal, false, "^_^"},
		{arcade.Normal, true, "-_-"},
		{arcade.Surprised, false, "O_O"},
		{arcade.Surprised, true, "O_O"},
		{arcade.Dizzy, false, "@_@"},
	}
	for _, tt := range tests {
		if got := FaceGlyph(tt.expr, tt.blink); got != tt.want {
			t.Errorf("FaceGlyph(%v, %v) = %q, want %q", tt.expr, tt.blink, got, tt.want)
		}
	}
}

func TestBarrelGlyph(t *testing.T) {
	tests := []struct {
		aim  float64
		want rune
	}{
		{0, '─'},
		{-math.Pi / 4, '╱'},
		{-math.Pi / 2, '│'},
		{-3 * math.Pi / 4, '╲'},
		{-math.Pi, '─'},
	}
	for _, tt := range tests {
		if got := BarrelGlyph(tt.aim); got != tt.want {
			t.Errorf("BarrelGlyph(%v) = %q, want %q", tt.aim, got, tt.want)
		}
	}
}

func TestBalloonRenderer_DrawsFaceAndSymbol(t *testing.T) {
	screen := newScreen(t, 80, 32)
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, activeSnapshot())

	NewBalloonRenderer().Render(ctx, screen)
	screen.Show()

	// Arena centre maps to column 40, row 16 of the 30-row view offset by the HUD row
	if r, _, style, _ := screen.GetContent(39, 16); r != 'ㄅ' {
		t.Errorf("symbol cell = %q", r)
	} else if _, bg, _ := style.Decompose(); bg != render.Unpack(0xFF0000).Tcell() {
		t.Errorf("balloon background = %v", bg)
	}
	if got := rowText(screen, 15, 80); !strings.Contains(got, "^_^") {
		t.Errorf("face row = %q", got)
	}
}

func TestCannonRenderer_BarrelAboveBase(t *testing.T) {
	screen := newScreen(t, 80, 32)
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, activeSnapshot())

	NewCannonRenderer().Render(ctx, screen)
	screen.Show()

	px, py, ok := ctx.View.Cell(ctx.Snapshot.Pivot)
	if !ok {
		t.Fatal("pivot off screen")
	}
	if r, _, _, _ := screen.GetContent(px, py-2); r != '│' {
		t.Errorf("barrel cell = %q, want vertical line", r)
	}
	if got := rowText(screen, py, 80); !strings.Contains(got, "▟") {
		t.Errorf("base row = %q", got)
	}
}

func TestCannonRenderer_HiddenWhenIdle(t *testing.T) {
	screen := newScreen(t, 80, 32)
	snap := activeSnapshot()
	snap.State = arcade.StateIdle
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, snap)

	NewCannonRenderer().Render(ctx, screen)
	screen.Show()

	px, py, _ := ctx.View.Cell(snap.Pivot)
	if r, _, _, _ := screen.GetContent(px, py); r == '●' {
		t.Error("cannon drawn while idle")
	}
}

func TestProjectileRenderer(t *testing.T) {
	screen := newScreen(t, 80, 32)
	snap := activeSnapshot()
	snap.Projectiles = []arcade.Projectile{
		{Pos: vmath.V(100, 300), Kind: arcade.Piercing},
		{Pos: vmath.V(700, 300), Kind: arcade.Area},
		{Pos: vmath.V(-50, 300)},
	}
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, snap)

	NewProjectileRenderer().Render(ctx, screen)
	screen.Show()

	if r, _, _, _ := screen.GetContent(10, 16); r != '•' {
		t.Errorf("piercing cell = %q", r)
	}
	if r, _, _, _ := screen.GetContent(70, 16); r != '◎' {
		t.Errorf("area cell = %q", r)
	}
}

func TestEffectRenderer_Visibility(t *testing.T) {
	screen := newScreen(t, 80, 32)
	snap := activeSnapshot()
	snap.Effects = []arcade.Effect{{Kind: arcade.EffectDizzy, Pos: vmath.V(400, 300), Alpha: 1}}
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, snap)

	r := NewEffectRenderer()
	r.Render(ctx, screen)
	screen.Show()
	if c, _, _, _ := screen.GetContent(40, 16); c != '@' {
		t.Errorf("dizzy cell = %q", c)
	}

	r.SetVisible(false)
	if r.IsVisible() {
		t.Error("SetVisible(false) ignored")
	}
}

func TestEffectRenderer_ShockwaveRing(t *testing.T) {
	screen := newScreen(t, 80, 32)
	snap := activeSnapshot()
	snap.Effects = []arcade.Effect{{Kind: arcade.EffectShockwave, Pos: vmath.V(400, 300), Scale: 10, Alpha: 0.8}}
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, snap)

	NewEffectRenderer().Render(ctx, screen)
	screen.Show()

	// Radius 100 units is 10 columns at 10 units per column
	if c, _, _, _ := screen.GetContent(50, 16); c != '∘' {
		t.Errorf("ring east cell = %q", c)
	}
	if c, _, _, _ := screen.GetContent(40, 16); c == '∘' {
		t.Error("ring drawn at centre")
	}
}

func TestHUDRenderer(t *testing.T) {
	screen := newScreen(t, 80, 32)
	snap := activeSnapshot()
	snap.Score = 42
	snap.Combo = 3
	snap.Jammed = true
	snap.HintVisible = true
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, snap)

	NewHUDRenderer(func() bool { return false }).Render(ctx, screen)
	screen.Show()

	top := rowText(screen, 0, 80)
	for _, want := range []string{"Score 42", "Combo x3", "JAMMED"} {
		if !strings.Contains(top, want) {
			t.Errorf("top row %q missing %q", top, want)
		}
	}
	if !strings.Contains(rowText(screen, 31, 80), "ㄅ") {
		t.Error("hint row missing target")
	}
}

func TestHUDRenderer_HelpWhenHintHidden(t *testing.T) {
	screen := newScreen(t, 80, 32)
	snap := activeSnapshot()
	ctx := render.NewContext(1, render.Rect{Width: 80, Height: 32}, snap)

	NewHUDRenderer(func() bool { return true }).Render(ctx, screen)
	screen.Show()

	if !strings.Contains(rowText(screen, 31, 80), "space fire") {
		t.Error("help line not drawn")
	}
	top := rowText(screen, 0, 80)
	if !strings.Contains(top, "muted") || !strings.Contains(top, "[CANNON]") {
		t.Errorf("top row = %q", top)
	}
}

func TestRegisterArcade_FullFrame(t *testing.T) {
	screen := newScreen(t, 80, 32)
	o := render.NewOrchestrator()
	RegisterArcade(o, nil)

	o.RenderFrame(screen, render.Rect{Width: 80, Height: 32}, activeSnapshot())
	screen.Show()

	if r, _, _, _ := screen.GetContent(39, 16); r != 'ㄅ' {
		t.Errorf("balloon missing from composed frame, got %q", r)
	}
}

func TestQuizPrompt(t *testing.T) {
	v := quiz.View{Target: 'ㄇ'}
	tests := []struct {
		phase    quiz.Phase
		speaking bool
		contains string
	}{
		{quiz.PhaseAsking, true, "請聽"},
		{quiz.PhaseAsking, false, "?"},
		{quiz.PhaseCorrect, false, "ㄇ"},
		{quiz.PhaseWrong, false, "✗"},
		{quiz.PhaseWon, false, "過關"},
		{quiz.PhaseLost, false, "ㄇ"},
	}
	for _, tt := range tests {
		v.Phase, v.Speaking = tt.phase, tt.speaking
		if got, _ := QuizPrompt(v); !strings.Contains(got, tt.contains) {
			t.Errorf("%v prompt = %q, want %q", tt.phase, got, tt.contains)
		}
	}
}

func TestDrawQuiz_Options(t *testing.T) {
	screen := newScreen(t, 60, 20)
	v := quiz.View{
		Phase:       quiz.PhaseAsking,
		Lives:       3,
		Score:       2,
		RoundsToWin: 10,
		Options:     []symbol.Symbol{'ㄅ', 'ㄆ', 'ㄇ'},
		Timer:       true,
		TimeLeft:    7 * time.Second,
	}
	DrawQuiz(screen, render.Rect{Width: 60, Height: 20}, v, 1)
	screen.Show()

	top := rowText(screen, 0, 60)
	if !strings.Contains(top, "Score 2/10") || !strings.Contains(top, "7s") {
		t.Errorf("status row = %q", top)
	}

	// Three buttons centred: columns 23, 28, 33 with the symbol one column in
	for i, want := range v.Options {
		r, _, style, _ := screen.GetContent(24+i*5, 8)
		if r != rune(want) {
			t.Errorf("option %d = %q, want %q", i, r, want)
		}
		_, bg, _ := style.Decompose()
		if selected := bg == render.RgbSelection.Tcell(); selected != (i == 1) {
			t.Errorf("option %d selected = %v", i, selected)
		}
	}
}

func TestOptionsPerRow(t *testing.T) {
	if got := OptionsPerRow(49); got != 10 {
		t.Errorf("OptionsPerRow(49) = %d, want 10", got)
	}
	if got := OptionsPerRow(2); got != 1 {
		t.Errorf("OptionsPerRow(2) = %d, want 1", got)
	}
}
