package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/zhuyin-fighter/quiz"
	"github.com/lixenwraith/zhuyin-fighter/render"
	"github.com/lixenwraith/zhuyin-fighter/render/renderers"
	"github.com/lixenwraith/zhuyin-fighter/symbol"
)

// Page names
const (
	pageMenu     = "menu"
	pageSetup    = "setup"
	pageArcade   = "arcade"
	pageQuiz     = "quiz"
	pageLibrary  = "library"
	pageGameOver = "gameover"
)

// Difficulty labels indexed by difficulty-1
var difficultyLabels = []string{"Easy (5 lives, 20s)", "Normal (3 lives, 10s)", "Hard (1 life, 5s)"}

func (a *App) buildPages() {
	tview.Styles.PrimitiveBackgroundColor = render.RgbBackground.Tcell()
	tview.Styles.ContrastBackgroundColor = render.RgbSelection.Tcell()
	tview.Styles.MoreContrastBackgroundColor = render.RgbDim.Tcell()
	tview.Styles.BorderColor = render.RgbHint.Tcell()
	tview.Styles.TitleColor = render.RgbHint.Tcell()
	tview.Styles.PrimaryTextColor = render.RgbText.Tcell()
	tview.Styles.SecondaryTextColor = render.RgbDim.Tcell()

	a.menu = tview.NewList().
		AddItem("Listening Quiz", "Hear a symbol, pick it from the row", '1', a.showSetup).
		AddItem("Sound Hunter", "Shoot the balloon carrying the spoken symbol", '2', a.startArcade).
		AddItem("Symbol Library", "Browse all symbols and hear them", '3', a.showLibrary).
		AddItem("Quit", "", 'q', a.tv.Stop)
	a.menu.SetBorder(true).SetTitle(" 注音 Fighter ")

	a.setup = tview.NewForm().
		AddDropDown("Difficulty", difficultyLabels, a.difficulty-1, func(_ string, i int) {
			if i >= 0 {
				a.difficulty = i + 1
			}
		}).
		AddCheckbox("Countdown timer", a.timer, func(checked bool) { a.timer = checked }).
		AddButton("Start", a.startQuiz).
		AddButton("Back", a.showMenu)
	a.setup.SetBorder(true).SetTitle(" Listening Quiz ")
	a.setup.SetCancelFunc(a.showMenu)

	a.library = tview.NewList()
	for i, s := range symbol.All() {
		a.library.AddItem(LibraryEntry(s), fmt.Sprintf("#%02d %s", i+1, symbol.CategoryOf(s)), 0, func() {
			a.stats.Int(StatLibraryPlays).Add(1)
			a.voice.Pronounce(s)
		})
	}
	a.library.SetBorder(true).SetTitle(" Symbol Library · enter to listen · esc back ")
	a.library.SetDoneFunc(a.leaveLibrary)

	arcadeView := tview.NewBox().SetDrawFunc(a.drawArcade)
	quizView := tview.NewBox().SetDrawFunc(a.drawQuiz)

	a.pages = tview.NewPages().
		AddPage(pageArcade, arcadeView, true, false).
		AddPage(pageQuiz, quizView, true, false).
		AddPage(pageLibrary, centered(a.library, 48, 24), true, false).
		AddPage(pageSetup, centered(a.setup, 48, 9), true, false).
		AddPage(pageMenu, centered(a.menu, 48, 12), true, true)
}

// centered wraps p in a fixed-size box in the middle of the screen
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// LibraryEntry is the main text of a library row
func LibraryEntry(s symbol.Symbol) string {
	return fmt.Sprintf("  %s  ", s)
}

func (a *App) showMenu() {
	a.pages.RemovePage(pageGameOver)
	a.pages.SwitchToPage(pageMenu)
	a.tv.SetFocus(a.menu)
}

func (a *App) showSetup() {
	a.pages.SwitchToPage(pageSetup)
	a.tv.SetFocus(a.setup)
}

func (a *App) showLibrary() {
	a.mu.Lock()
	a.activity = ActivityLibrary
	a.mu.Unlock()
	a.stats.Int(StatLibraryVisits).Add(1)
	a.pages.SwitchToPage(pageLibrary)
	a.tv.SetFocus(a.library)
}

// leaveLibrary returns from the library to the menu
func (a *App) leaveLibrary() {
	a.stopActivity()
	a.showMenu()
}

// showGameOver overlays the quiz result with replay and menu choices
func (a *App) showGameOver() {
	a.mu.Lock()
	v := a.quizView
	a.mu.Unlock()

	modal := tview.NewModal().
		SetText(GameOverText(v)).
		AddButtons([]string{"Play again", "Menu"}).
		SetDoneFunc(func(i int, _ string) {
			a.pages.RemovePage(pageGameOver)
			if i == 0 {
				a.startQuiz()
				return
			}
			a.stopActivity()
			a.showMenu()
		})
	a.pages.AddPage(pageGameOver, modal, true, true)
	a.tv.SetFocus(modal)
}

// GameOverText is the dialog message for a finished quiz
func GameOverText(v quiz.View) string {
	if v.Phase == quiz.PhaseWon {
		return fmt.Sprintf("過關！\n\nYou found %d of %d with %d lives left.", v.Score, v.RoundsToWin, v.Lives)
	}
	return fmt.Sprintf("Game over\n\nYou found %d of %d. The last one was %s.", v.Score, v.RoundsToWin, v.Target)
}

func (a *App) drawArcade(scr tcell.Screen, x, y, width, height int) (int, int, int, int) {
	a.mu.Lock()
	snap := a.snap
	a.mu.Unlock()

	a.layers.RenderFrame(scr, render.Rect{X: x, Y: y, Width: width, Height: height}, snap)
	return x, y, width, height
}

func (a *App) drawQuiz(scr tcell.Screen, x, y, width, height int) (int, int, int, int) {
	a.mu.Lock()
	v, selected := a.quizView, a.selected
	a.mu.Unlock()

	renderers.DrawQuiz(scr, render.Rect{X: x, Y: y, Width: width, Height: height}, v, selected)
	return x, y, width, height
}
