package app

import (
	"errors"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zhuyin-fighter/input"
	"github.com/lixenwraith/zhuyin-fighter/quiz"
)

// handleKey is the global input capture
// Game screens consume every key; menus and dialogs get the keys they do not bind
func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	action := a.keys.Lookup(ev)
	a.recordKey(action)
	switch action {
	case input.ActionQuit:
		a.tv.Stop()
		return nil
	case input.ActionToggleMute:
		a.toggleMute()
		return nil
	}

	front, _ := a.pages.GetFrontPage()
	switch front {
	case pageArcade:
		a.sampler.HandleEvent(ev)
		return nil
	case pageQuiz:
		if a.quizKey(action) {
			a.stopActivity()
			a.showMenu()
		}
		return nil
	case pageLibrary:
		if action == input.ActionBack {
			a.leaveLibrary()
			return nil
		}
	case pageSetup:
		if action == input.ActionBack {
			a.showMenu()
			return nil
		}
	}
	return ev
}

// quizKey applies a quiz action and reports whether the player asked to leave
func (a *App) quizKey(action input.Action) (leave bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.quiz == nil {
		return false
	}

	n := len(a.quizView.Options)
	switch action {
	case input.ActionBack:
		return true
	case input.ActionAimLeft:
		if n > 0 {
			a.selected = (a.selected - 1 + n) % n
		}
	case input.ActionAimRight:
		if n > 0 {
			a.selected = (a.selected + 1) % n
		}
	case input.ActionFire:
		if a.selected < n {
			err := a.quiz.Answer(a.quizView.Options[a.selected])
			switch {
			case err == nil:
				a.recordAnswer(a.quiz.View().Phase == quiz.PhaseCorrect)
			case !errors.Is(err, quiz.ErrNotAsking):
				a.log.Warn("answer rejected", "error", err)
			}
		}
	case input.ActionReplay:
		a.quiz.Replay()
	}
	a.refreshQuizLocked()
	return false
}

// refreshQuizLocked copies the quiz view, moving the selection home when the options change
func (a *App) refreshQuizLocked() {
	prev := a.quizView.Options
	a.quizView = a.quiz.View()
	if !slices.Equal(prev, a.quizView.Options) || a.selected >= len(a.quizView.Options) {
		a.selected = 0
	}
}
