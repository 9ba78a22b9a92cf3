package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/render"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// FaceGlyph returns the three-column face for a balloon
func FaceGlyph(e arcade.Expression, blink bool) string {
	switch e {
	case arcade.Surprised:
		return "O_O"
	case arcade.Dizzy:
		return "@_@"
	}
	if blink {
		return "-_-"
	}
	return "^_^"
}

// BalloonRenderer draws balloons as a face row over a colored symbol row with a string below
type BalloonRenderer struct{}

// NewBalloonRenderer creates a new balloon renderer
func NewBalloonRenderer() *BalloonRenderer {
	return &BalloonRenderer{}
}

// Render draws every live balloon
func (r *BalloonRenderer) Render(ctx render.Context, scr tcell.Screen) {
	for i := range ctx.Snapshot.Targets {
		t := &ctx.Snapshot.Targets[i]
		pos := t.Pos.Add(vmath.V(t.ShakeOffset(), 0))
		x, y, ok := ctx.View.Cell(pos)
		if !ok {
			continue
		}

		color := render.Unpack(t.Color)
		body := tcell.StyleDefault.Background(color.Tcell()).Foreground(render.RgbBackground.Tcell())

		// Body is five columns centered on x
		left := x - 2
		render.Fill(scr, render.Rect{X: left, Y: y - 1, Width: 5, Height: 2}, body)
		render.DrawText(scr, left+1, y-1, FaceGlyph(t.Expression, t.Blink), body)
		render.DrawText(scr, left+1, y, t.Symbol.String(), body.Bold(true))

		if y+1 < ctx.View.Y+ctx.View.Height {
			scr.SetContent(x, y+1, '╎', nil, render.Style(render.RgbString))
		}
	}
}
