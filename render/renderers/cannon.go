package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/constants"
	"github.com/lixenwraith/zhuyin-fighter/render"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// CannonRenderer draws the cannon base and a barrel line along the aim
type CannonRenderer struct{}

// NewCannonRenderer creates a new cannon renderer
func NewCannonRenderer() *CannonRenderer {
	return &CannonRenderer{}
}

// BarrelGlyph picks a line character for an aim angle in [-π, 0]
func BarrelGlyph(aim float64) rune {
	deg := -aim * 180 / math.Pi
	switch {
	case deg < 22.5 || deg > 157.5:
		return '─'
	case deg < 67.5:
		return '╱'
	case deg <= 112.5:
		return '│'
	default:
		return '╲'
	}
}

// Render draws the barrel then the base over it
func (r *CannonRenderer) Render(ctx render.Context, scr tcell.Screen) {
	snap := ctx.Snapshot
	if snap.State == arcade.StateIdle {
		return
	}

	color := render.RgbCannon
	if snap.Jammed {
		color = render.RgbJam
	}
	style := render.Style(color)

	sx, sy := ctx.View.UnitsPerCell()
	step := math.Min(sx, sy) / 2
	dir := vmath.FromAngle(snap.Aim)
	glyph := BarrelGlyph(snap.Aim)
	for d := 0.0; d <= constants.BarrelLength; d += step {
		if x, y, ok := ctx.View.Cell(snap.Pivot.Add(dir.Scale(d))); ok {
			scr.SetContent(x, y, glyph, nil, style)
		}
	}

	if x, y, ok := ctx.View.Cell(snap.Pivot); ok {
		render.DrawText(scr, x-2, y, "▟███▙", style)
		ammo := render.RgbPiercing
		if snap.Ammo == arcade.Area {
			ammo = render.RgbArea
		}
		scr.SetContent(x, y, '●', nil, tcell.StyleDefault.Foreground(ammo.Tcell()).Background(color.Tcell()))
	}
}
