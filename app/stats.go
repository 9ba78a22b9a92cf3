package app

import (
	"github.com/lixenwraith/zhuyin-fighter/arcade"
	"github.com/lixenwraith/zhuyin-fighter/input"
)

// Session statistic names
const (
	StatArcadeSessions = "arcade.sessions"
	StatArcadeShots    = "arcade.shots"
	StatArcadeRounds   = "arcade.rounds"
	StatArcadeBest     = "arcade.best_score"
	StatQuizSessions   = "quiz.sessions"
	StatQuizAnswers    = "quiz.answers"
	StatQuizCorrect    = "quiz.correct"
	StatQuizAccuracy   = "quiz.accuracy"
	StatLibraryVisits  = "library.visits"
	StatLibraryPlays   = "library.plays"
	StatKeysMapped     = "input.keys"
)

// recordArcade updates arcade counters from one tick, caller holds mu
func (a *App) recordArcade(in arcade.Input, prev, next arcade.Snapshot) {
	if in.Fire && len(next.Projectiles) > len(prev.Projectiles) {
		a.stats.Int(StatArcadeShots).Add(1)
	}
	if next.RoundNumber > prev.RoundNumber {
		a.stats.Int(StatArcadeRounds).Add(1)
	}
	best := a.stats.Int(StatArcadeBest)
	if s := int64(next.Score); s > best.Load() {
		best.Store(s)
	}
}

// recordAnswer counts a quiz answer and refreshes the running accuracy
func (a *App) recordAnswer(correct bool) {
	answers := a.stats.Int(StatQuizAnswers).Add(1)
	hits := a.stats.Int(StatQuizCorrect)
	if correct {
		hits.Add(1)
	}
	a.stats.Float(StatQuizAccuracy).Set(float64(hits.Load()) / float64(answers))
}

// recordKey counts keys that resolved to a bound action
func (a *App) recordKey(action input.Action) {
	if action != input.ActionNone {
		a.stats.Int(StatKeysMapped).Add(1)
	}
}
