package render

import "github.com/gdamore/tcell/v2"

// Layer is one pass of the arcade frame
type Layer interface {
	Render(ctx Context, scr tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
