package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/quiz"
	"github.com/lixenwraith/zhuyin-fighter/render"
)

// QuizHelpLine lists the quiz controls
const QuizHelpLine = "←/→ choose  space answer  r replay  m mute  esc menu"

// Option button geometry in columns
const (
	optionWidth = 4
	optionGap   = 1
)

// DrawQuiz draws the listening quiz: status row, prompt, option buttons and help
func DrawQuiz(scr tcell.Screen, region render.Rect, v quiz.View, selected int) {
	render.Fill(scr, region, render.Style(render.RgbText))
	if region.Height < 6 {
		return
	}

	top := region.Y
	lives := strings.Repeat("♥", max(v.Lives, 0))
	x := region.X + 1
	x += render.DrawText(scr, x, top, lives, render.Style(render.RgbJam))
	render.DrawText(scr, x+2, top, fmt.Sprintf("Score %d/%d", v.Score, v.RoundsToWin), render.Style(render.RgbScore).Bold(true))
	if v.Timer && v.Phase == quiz.PhaseAsking {
		secs := fmt.Sprintf("%2ds", int(v.TimeLeft.Seconds()+0.999))
		render.DrawText(scr, region.X+region.Width-render.TextWidth(secs)-1, top, secs, render.Style(render.RgbHint))
	}

	mid := region.Y + region.Height/3
	prompt, color := QuizPrompt(v)
	render.DrawCentered(scr, region.X, mid, region.Width, prompt, render.Style(color).Bold(true))

	drawOptions(scr, region, mid+2, v, selected)

	render.DrawCentered(scr, region.X, region.Y+region.Height-1, region.Width, QuizHelpLine, render.Style(render.RgbDim))
}

// QuizPrompt returns the centre line text and its color for a phase
func QuizPrompt(v quiz.View) (string, render.RGB) {
	switch v.Phase {
	case quiz.PhaseAsking:
		if v.Speaking {
			return "♪ 請聽 ♪", render.RgbHint
		}
		return "? 是哪一個 ?", render.RgbText
	case quiz.PhaseCorrect:
		return "✓ " + v.Target.String(), render.RgbCorrect
	case quiz.PhaseWrong:
		return "✗", render.RgbJam
	case quiz.PhaseWon:
		return "★ 過關 ★", render.RgbHint
	case quiz.PhaseLost:
		return "再試一次 " + v.Target.String(), render.RgbJam
	}
	return "", render.RgbText
}

// OptionsPerRow returns how many option buttons fit in width
func OptionsPerRow(width int) int {
	return max((width+optionGap)/(optionWidth+optionGap), 1)
}

func drawOptions(scr tcell.Screen, region render.Rect, y int, v quiz.View, selected int) {
	if len(v.Options) == 0 {
		return
	}
	perRow := min(OptionsPerRow(region.Width-2), len(v.Options))
	rowWidth := perRow*(optionWidth+optionGap) - optionGap
	left := region.X + max((region.Width-rowWidth)/2, 0)

	for i, s := range v.Options {
		row, col := i/perRow, i%perRow
		oy := y + row*2
		if oy >= region.Y+region.Height-1 {
			break
		}
		ox := left + col*(optionWidth+optionGap)

		bg := render.RgbDim
		fg := render.RgbText
		switch {
		case v.Phase == quiz.PhaseCorrect && s == v.Target:
			bg = render.RgbCorrect
		case i == selected:
			bg = render.RgbSelection
			fg = render.RgbHint
		}
		style := tcell.StyleDefault.Background(bg.Tcell()).Foreground(fg.Tcell()).Bold(true)
		render.Fill(scr, render.Rect{X: ox, Y: oy, Width: optionWidth, Height: 1}, style)
		render.DrawText(scr, ox+1, oy, s.String(), style)
	}
}
