package performance

import (
	"slices"

	"github.com/abhisek/brightpath/internal/store"
	"github.com/abhisek/brightpath/internal/subject"
)

// fromData converts a stored profile, or nil, into a SubjectProfile.
func fromData(d *store.ProfileData, s subject.Subject) SubjectProfile {
	if d == nil {
		return DefaultProfile(s)
	}
	p := SubjectProfile{
		Subject:                  s,
		TotalAttempts:            d.TotalAttempts,
		CorrectAnswers:           d.CorrectAnswers,
		AverageTimePerQuestion:   d.AverageTimePerQuestion,
		Streak:                   d.Streak,
		BestStreak:               d.BestStreak,
		DifficultyLevel:          d.DifficultyLevel,
		LastSessionAccuracy:      d.LastSessionAccuracy,
		RecentPerformanceHistory: slices.Clone(d.RecentHistory),
		StrugglingConcepts:       slices.Clone(d.StrugglingConcepts),
		MasteredConcepts:         slices.Clone(d.MasteredConcepts),
		AdaptiveSettings: AdaptiveSettings{
			ShowHints:          d.ShowHints,
			ExtendedTime:       d.ExtendedTime,
			SimplifiedLanguage: d.SimplifiedLanguage,
			VisualSupport:      d.VisualSupport,
		},
	}
	// Ensure defaults.
	if p.DifficultyLevel < 1 {
		p.DifficultyLevel = 1
	}
	return p
}

func toData(p SubjectProfile) *store.ProfileData {
	return &store.ProfileData{
		Subject:                string(p.Subject),
		TotalAttempts:          p.TotalAttempts,
		CorrectAnswers:         p.CorrectAnswers,
		AverageTimePerQuestion: p.AverageTimePerQuestion,
		Streak:                 p.Streak,
		BestStreak:             p.BestStreak,
		DifficultyLevel:        p.DifficultyLevel,
		LastSessionAccuracy:    p.LastSessionAccuracy,
		RecentHistory:          slices.Clone(p.RecentPerformanceHistory),
		StrugglingConcepts:     slices.Clone(p.StrugglingConcepts),
		MasteredConcepts:       slices.Clone(p.MasteredConcepts),
		ShowHints:              p.AdaptiveSettings.ShowHints,
		ExtendedTime:           p.AdaptiveSettings.ExtendedTime,
		SimplifiedLanguage:     p.AdaptiveSettings.SimplifiedLanguage,
		VisualSupport:          p.AdaptiveSettings.VisualSupport,
	}
}
