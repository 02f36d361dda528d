// Package recommend turns a subject profile into the concrete settings an
// activity screen should use, plus encouragement text for the learner.
package recommend

import (
	"math"
	"slices"

	"github.com/abhisek/brightpath/internal/difficulty"
	"github.com/abhisek/brightpath/internal/performance"
	"github.com/abhisek/brightpath/internal/subject"
)

// extendedTimeFactor stretches the per-question limit for slow workers.
const extendedTimeFactor = 1.5

// Settings drives UI gating on an activity screen.
type Settings struct {
	TimeLimitSeconds   int
	ShowHints          bool
	VisualSupport      difficulty.SupportTier
	SimplifiedLanguage bool
	ExtendedTime       bool
	Complexity         difficulty.Complexity
}

// Recommendation is the read-time projection of a profile for activity screens.
type Recommendation struct {
	Subject          subject.Subject
	CurrentLevel     int
	LevelName        string
	LevelDescription string
	Settings         Settings
	StrugglingAreas  []string
	MasteredAreas    []string
	Encouragement    string
}

// Recommend derives activity settings and encouragement from a profile.
func Recommend(p performance.SubjectProfile, age subject.AgeGroup) Recommendation {
	level := difficulty.ClampLevel(p.DifficultyLevel, age.LevelCap())
	cfg := difficulty.ForLevel(p.Subject, level)
	flags := p.AdaptiveSettings

	timeLimit := cfg.MaxTimePerQuestion
	if flags.ExtendedTime {
		timeLimit *= extendedTimeFactor
	}

	visual := cfg.VisualSupport
	if flags.VisualSupport {
		visual = difficulty.SupportHigh
	}

	return Recommendation{
		Subject:          p.Subject,
		CurrentLevel:     level,
		LevelName:        cfg.Name,
		LevelDescription: cfg.Description,
		Settings: Settings{
			TimeLimitSeconds:   int(math.Round(timeLimit)),
			ShowHints:          cfg.HintsDefault || flags.ShowHints,
			VisualSupport:      visual,
			SimplifiedLanguage: flags.SimplifiedLanguage,
			ExtendedTime:       flags.ExtendedTime,
			Complexity:         cfg.Complexity,
		},
		StrugglingAreas: slices.Clone(p.StrugglingConcepts),
		MasteredAreas:   slices.Clone(p.MasteredConcepts),
		Encouragement:   Encouragement(p.LastSessionAccuracy, age),
	}
}
