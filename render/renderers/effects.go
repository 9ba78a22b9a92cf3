package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/render"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// Base radius of a shockwave ring before scaling, arena units
const shockwaveBaseRadius = 10

// EffectRenderer draws particles, shockwave rings and dizzy spirals, faded by alpha
type EffectRenderer struct {
	visible bool
}

// NewEffectRenderer creates a new effect renderer
func NewEffectRenderer() *EffectRenderer {
	return &EffectRenderer{visible: true}
}

// SetVisible enables or disables effect drawing
func (r *EffectRenderer) SetVisible(v bool) {
	r.visible = v
}

// IsVisible reports whether effects are drawn
func (r *EffectRenderer) IsVisible() bool {
	return r.visible
}

// Render draws all effects
func (r *EffectRenderer) Render(ctx render.Context, scr tcell.Screen) {
	for _, e := range ctx.Snapshot.Effects {
		switch e.Kind {
		case arcade.EffectParticle:
			r.particle(ctx, scr, e)
		case arcade.EffectShockwave:
			r.shockwave(ctx, scr, e)
		case arcade.EffectDizzy:
			r.dizzy(ctx, scr, e)
		}
	}
}

func (r *EffectRenderer) particle(ctx render.Context, scr tcell.Screen, e arcade.Effect) {
	x, y, ok := ctx.View.Cell(e.Pos)
	if !ok {
		return
	}
	glyph := '·'
	if e.Star {
		glyph = '*'
	}
	scr.SetContent(x, y, glyph, nil, render.Style(render.Unpack(e.Color).Fade(e.Alpha)))
}

func (r *EffectRenderer) shockwave(ctx render.Context, scr tcell.Screen, e arcade.Effect) {
	radius := shockwaveBaseRadius * e.Scale
	style := render.Style(render.RgbShockwave.Fade(e.Alpha))

	// Enough samples that adjacent points land at most a cell apart
	sx, _ := ctx.View.UnitsPerCell()
	samples := max(int(2*math.Pi*radius/sx), 8)
	for i := range samples {
		angle := 2 * math.Pi * float64(i) / float64(samples)
		if x, y, ok := ctx.View.Cell(e.Pos.Add(vmath.FromAngle(angle).Scale(radius))); ok {
			scr.SetContent(x, y, '∘', nil, style)
		}
	}
}

func (r *EffectRenderer) dizzy(ctx render.Context, scr tcell.Screen, e arcade.Effect) {
	if x, y, ok := ctx.View.Cell(e.Pos); ok {
		scr.SetContent(x, y, '@', nil, render.Style(render.RgbDizzy.Fade(e.Alpha)))
	}
}
