package performance

import (
	"slices"

	"github.com/abhisek/brightpath/internal/difficulty"
)

const (
	// levelDownAccuracy is the session accuracy below which a level drop is considered.
	levelDownAccuracy = 50.0

	// levelDownWindow is the number of trailing sessions that must all be poor.
	levelDownWindow = 3

	// extendedTimeRatio of the level time limit above which extra time is granted.
	extendedTimeRatio = 0.8
)

// Update folds one session result into a profile and returns the new profile.
// The input profile is not modified.
func Update(p SubjectProfile, r SessionResult) SubjectProfile {
	r = r.normalized()
	next := p.Clone()
	if next.Subject == "" {
		next.Subject = r.Subject
	}

	questions := max(r.QuestionsAnswered, 1)
	accuracy := float64(r.CorrectAnswers) / float64(questions) * 100
	avgTime := r.TotalTimeSpentSeconds / float64(questions)

	next.TotalAttempts += r.QuestionsAnswered
	next.CorrectAnswers += r.CorrectAnswers

	// Two-point blend: recent sessions weigh more than a cumulative mean would.
	next.AverageTimePerQuestion = (next.AverageTimePerQuestion + avgTime) / 2

	if accuracy >= StreakAccuracy {
		next.Streak++
	} else {
		next.Streak = 0
	}
	next.BestStreak = max(next.BestStreak, next.Streak)
	next.LastSessionAccuracy = accuracy

	next.RecentPerformanceHistory = appendWindow(next.RecentPerformanceHistory, accuracy, HistoryWindow)

	reclassifyConcepts(&next, r.ConceptsEncountered, accuracy)

	levelCap := r.AgeGroup.LevelCap()
	next.DifficultyLevel = nextLevel(&next, difficulty.ClampLevel(p.DifficultyLevel, levelCap), levelCap, accuracy)

	next.AdaptiveSettings = deriveSettings(&next, r, accuracy)
	return next
}

// appendWindow appends v and keeps only the last window entries.
func appendWindow(history []float64, v float64, window int) []float64 {
	history = append(history, v)
	if len(history) > window {
		history = slices.Clone(history[len(history)-window:])
	}
	return history
}

// reclassifyConcepts moves touched concepts between the mastered and
// struggling sets. Mastery is sticky: a low score never demotes a mastered
// concept.
func reclassifyConcepts(p *SubjectProfile, concepts []string, accuracy float64) {
	for _, c := range concepts {
		switch {
		case accuracy >= MasteryAccuracy:
			if !p.IsMastered(c) {
				p.MasteredConcepts = append(p.MasteredConcepts, c)
				p.StrugglingConcepts = slices.DeleteFunc(p.StrugglingConcepts, func(s string) bool { return s == c })
			}
		case accuracy < StruggleAccuracy:
			if !p.IsMastered(c) && !p.IsStruggling(c) {
				p.StrugglingConcepts = append(p.StrugglingConcepts, c)
			}
		}
	}
}

// nextLevel applies the level-up test, then the level-down test. p must
// already carry the updated streak and history.
func nextLevel(p *SubjectProfile, level, levelCap int, accuracy float64) int {
	cfg := difficulty.ForLevel(p.Subject, level)

	if accuracy >= cfg.RequiredAccuracy &&
		level < levelCap &&
		trailingAll(p.RecentPerformanceHistory, cfg.MinSessionsAtLevel, func(a float64) bool { return a >= cfg.RequiredAccuracy }) {
		return level + 1
	}

	if accuracy < levelDownAccuracy &&
		p.Streak == 0 &&
		level > 1 &&
		trailingAll(p.RecentPerformanceHistory, levelDownWindow, func(a float64) bool { return a < StruggleAccuracy }) {
		return level - 1
	}

	return level
}

// trailingAll reports whether history has at least n entries and the last n
// all satisfy pred.
func trailingAll(history []float64, n int, pred func(float64) bool) bool {
	if n <= 0 || len(history) < n {
		return false
	}
	for _, a := range history[len(history)-n:] {
		if !pred(a) {
			return false
		}
	}
	return true
}

func deriveSettings(p *SubjectProfile, r SessionResult, accuracy float64) AdaptiveSettings {
	cfg := difficulty.ForLevel(p.Subject, p.DifficultyLevel)
	youngest := r.AgeGroup.IsYoungest()
	return AdaptiveSettings{
		ShowHints:          accuracy < StreakAccuracy || p.DifficultyLevel <= 2,
		ExtendedTime:       p.AverageTimePerQuestion > extendedTimeRatio*cfg.MaxTimePerQuestion,
		SimplifiedLanguage: youngest || accuracy < StruggleAccuracy,
		VisualSupport:      youngest || len(p.StrugglingConcepts) > 0,
	}
}
