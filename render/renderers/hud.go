package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/render"
)

// HelpLine lists the arcade controls
const HelpLine = "←/→ aim  space fire  ↑/↓ ammo  r replay  m mute  esc menu"

// HUDRenderer draws the status row above the arena and the prompt row below it
type HUDRenderer struct {
	muted func() bool
}

// NewHUDRenderer creates a HUD renderer; muted may be nil
func NewHUDRenderer(muted func() bool) *HUDRenderer {
	return &HUDRenderer{muted: muted}
}

// Render draws score, combo, ammo, jam and the prompt
func (r *HUDRenderer) Render(ctx render.Context, scr tcell.Screen) {
	snap := ctx.Snapshot
	top := ctx.Screen.Y
	bottom := ctx.Screen.Y + ctx.Screen.Height - 1
	left := ctx.Screen.X
	right := ctx.Screen.X + ctx.Screen.Width

	x := left + 1
	x += render.DrawText(scr, x, top, fmt.Sprintf("Score %d", snap.Score), render.Style(render.RgbScore).Bold(true))
	if snap.Combo > 1 {
		x += render.DrawText(scr, x, top, fmt.Sprintf("  Combo x%d", snap.Combo), render.Style(render.RgbHint))
	}
	if snap.RoundNumber > 0 {
		render.DrawText(scr, x, top, fmt.Sprintf("  Round %d", snap.RoundNumber), render.Style(render.RgbDim))
	}

	status := AmmoLabel(snap.Ammo)
	statusColor := render.RgbPiercing
	if snap.Ammo == arcade.Area {
		statusColor = render.RgbArea
	}
	if snap.Jammed {
		status = "JAMMED"
		statusColor = render.RgbJam
	}
	if r.muted != nil && r.muted() {
		status = "muted  " + status
	}
	render.DrawText(scr, right-render.TextWidth(status)-1, top, status, render.Style(statusColor).Bold(true))

	if bottom <= top {
		return
	}
	switch {
	case snap.HintVisible && snap.Target != 0:
		render.DrawCentered(scr, left, bottom, ctx.Screen.Width, "請找出  "+snap.Target.String(), render.Style(render.RgbHint).Bold(true))
	case snap.State == arcade.StateSpawning:
		render.DrawCentered(scr, left, bottom, ctx.Screen.Width, "…", render.Style(render.RgbDim))
	default:
		render.DrawCentered(scr, left, bottom, ctx.Screen.Width, HelpLine, render.Style(render.RgbDim))
	}
}

// AmmoLabel names the loaded projectile kind
func AmmoLabel(k arcade.Kind) string {
	if k == arcade.Area {
		return "[AIR]"
	}
	return "[CANNON]"
}

// RegisterArcade wires the default arcade layers into o
func RegisterArcade(o *render.Orchestrator, muted func() bool) {
	o.Register(NewCannonRenderer(), render.PriorityCannon)
	o.Register(NewBalloonRenderer(), render.PriorityBalloon)
	o.Register(NewProjectileRenderer(), render.PriorityProjectile)
	o.Register(NewEffectRenderer(), render.PriorityEffect)
	o.Register(NewHUDRenderer(muted), render.PriorityUI)
}
