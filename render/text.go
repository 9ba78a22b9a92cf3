package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Style returns a style with the given foreground over the game background
func Style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Tcell()).Background(RgbBackground.Tcell())
}

// DrawText writes s starting at (x, y) and returns the columns used
// Wide runes such as Zhuyin occupy two columns
func DrawText(scr tcell.Screen, x, y int, s string, style tcell.Style) int {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		scr.SetContent(x+col, y, r, nil, style)
		col += w
	}
	return col
}

// TextWidth returns the display width of s
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// DrawCentered writes s centered in [x, x+width)
func DrawCentered(scr tcell.Screen, x, y, width int, s string, style tcell.Style) {
	DrawText(scr, x+max((width-TextWidth(s))/2, 0), y, s, style)
}

// Fill paints a region with spaces in style
func Fill(scr tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			scr.SetContent(x, y, ' ', nil, style)
		}
	}
}
