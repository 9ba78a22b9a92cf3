package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/render"
)

// ProjectileRenderer draws shots in flight
type ProjectileRenderer struct{}

// NewProjectileRenderer creates a new projectile renderer
func NewProjectileRenderer() *ProjectileRenderer {
	return &ProjectileRenderer{}
}

// Render draws piercing shots as dots and area shots as rings
func (r *ProjectileRenderer) Render(ctx render.Context, scr tcell.Screen) {
	piercing := render.Style(render.RgbPiercing)
	area := render.Style(render.RgbArea)
	for _, p := range ctx.Snapshot.Projectiles {
		x, y, ok := ctx.View.Cell(p.Pos)
		if !ok {
			continue
		}
		if p.Kind == arcade.Area {
			scr.SetContent(x, y, '◎', nil, area)
		} else {
			scr.SetContent(x, y, '•', nil, piercing)
		}
	}
}
