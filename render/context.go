package render

import (
	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/vmath"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, Width, Height int
}

// Viewport maps arena coordinates onto a screen region
// Axes scale independently, terminal cells are not square
type Viewport struct {
	Rect
	Arena arcade.Arena
}

// Cell returns the screen cell covering p, ok is false outside the region
func (v Viewport) Cell(p vmath.Vec2) (x, y int, ok bool) {
	if v.Width <= 0 || v.Height <= 0 || v.Arena.Width <= 0 || v.Arena.Height <= 0 {
		return 0, 0, false
	}
	fx := p.X / v.Arena.Width * float64(v.Width)
	fy := p.Y / v.Arena.Height * float64(v.Height)
	if fx < 0 || fy < 0 || fx >= float64(v.Width) || fy >= float64(v.Height) {
		return 0, 0, false
	}
	return v.X + int(fx), v.Y + int(fy), true
}

// UnitsPerCell returns arena units covered by one cell on each axis
func (v Viewport) UnitsPerCell() (sx, sy float64) {
	if v.Width <= 0 || v.Height <= 0 {
		return 1, 1
	}
	return v.Arena.Width / float64(v.Width), v.Arena.Height / float64(v.Height)
}

// Context provides frame state for layers, passed by value
type Context struct {
	Frame    uint64
	Screen   Rect // Full region owned by the arcade view
	View     Viewport
	Snapshot arcade.Snapshot
}

// HUD rows reserved above and below the arena
const (
	hudTop    = 1
	hudBottom = 1
)

// NewContext lays out the arena inside the screen region
func NewContext(frame uint64, screen Rect, snap arcade.Snapshot) Context {
	arena := snap.Arena
	if arena.Width <= 0 || arena.Height <= 0 {
		arena = arcade.DefaultArena()
	}
	view := Viewport{
		Rect: Rect{
			X:      screen.X,
			Y:      screen.Y + hudTop,
			Width:  screen.Width,
			Height: max(screen.Height-hudTop-hudBottom, 0),
		},
		Arena: arena,
	}
	return Context{Frame: frame, Screen: screen, View: view, Snapshot: snap}
}
