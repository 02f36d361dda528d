// Package insights aggregates subject profiles into the parent-facing
// summary: overall progress, strongest subject, focus areas and suggestions.
package insights

import (
	"fmt"
	"strings"

	"github.com/abhisek/brightpath/internal/performance"
	"github.com/abhisek/brightpath/internal/subject"
)

const (
	// attentionAccuracy is the cumulative accuracy below which a subject needs attention.
	attentionAccuracy = 60.0

	// attentionStruggling is the struggling-concept count above which a subject needs attention.
	attentionStruggling = 2

	// praiseStreak is the streak at which a subject is called out for consistency.
	praiseStreak = 3

	// decomposeStruggling is the struggling-concept count above which practice should be broken down.
	decomposeStruggling = 3
)

// Report is the read-only cross-subject view for the parent dashboard.
type Report struct {
	AgeGroup                 subject.AgeGroup
	OverallProgress          float64 // mean per-subject accuracy, percent
	StrongestSubject         subject.Subject
	HasStrongest             bool
	SubjectsNeedingAttention []subject.Subject
	TotalMasteredConcepts    int
	AverageDifficultyLevel   float64
	Recommendations          []string
}

// Insights aggregates profiles. Ties for strongest subject go to the first
// profile in iteration order.
func Insights(profiles []performance.SubjectProfile, age subject.AgeGroup) Report {
	r := Report{AgeGroup: age}
	if len(profiles) == 0 {
		return r
	}

	var (
		accSum, levelSum float64
		bestAcc          float64
		lowAccuracy      []string
		onStreak         []string
		needsDecompose   bool
	)

	for i := range profiles {
		p := &profiles[i]
		acc := p.Accuracy()
		accSum += acc
		levelSum += float64(p.DifficultyLevel)
		r.TotalMasteredConcepts += len(p.MasteredConcepts)

		if !r.HasStrongest || acc > bestAcc {
			r.StrongestSubject = p.Subject
			r.HasStrongest = true
			bestAcc = acc
		}

		if acc < attentionAccuracy || len(p.StrugglingConcepts) > attentionStruggling {
			r.SubjectsNeedingAttention = append(r.SubjectsNeedingAttention, p.Subject)
		}
		if acc < attentionAccuracy {
			lowAccuracy = append(lowAccuracy, p.Subject.DisplayName())
		}
		if p.Streak >= praiseStreak {
			onStreak = append(onStreak, p.Subject.DisplayName())
		}
		if len(p.StrugglingConcepts) > decomposeStruggling {
			needsDecompose = true
		}
	}

	n := float64(len(profiles))
	r.OverallProgress = accSum / n
	r.AverageDifficultyLevel = levelSum / n

	if len(lowAccuracy) > 0 {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Spend extra practice time on %s.", strings.Join(lowAccuracy, ", ")))
	}
	if len(onStreak) > 0 {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Great consistency in %s! Celebrate the streak.", strings.Join(onStreak, ", ")))
	}
	if needsDecompose {
		r.Recommendations = append(r.Recommendations,
			"Break tricky concepts into smaller steps and practice them one at a time.")
	}
	return r
}
