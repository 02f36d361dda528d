package performance

import (
	"slices"

	"github.com/abhisek/brightpath/internal/subject"
)

const (
	// HistoryWindow is the number of recent session accuracies kept per subject.
	HistoryWindow = 10

	// StreakAccuracy is the session accuracy (percent) that extends a streak.
	StreakAccuracy = 70.0

	// MasteryAccuracy is the session accuracy at which touched concepts are mastered.
	MasteryAccuracy = 80.0

	// StruggleAccuracy is the session accuracy below which touched concepts struggle.
	StruggleAccuracy = 60.0
)

// AdaptiveSettings are derived flags recomputed on every update.
type AdaptiveSettings struct {
	ShowHints          bool
	ExtendedTime       bool
	SimplifiedLanguage bool
	VisualSupport      bool
}

// SubjectProfile is the rolling skill profile for one subject.
type SubjectProfile struct {
	Subject                  subject.Subject
	TotalAttempts            int
	CorrectAnswers           int
	AverageTimePerQuestion   float64 // seconds, two-point blend
	Streak                   int
	BestStreak               int
	DifficultyLevel          int
	LastSessionAccuracy      float64
	RecentPerformanceHistory []float64 // oldest first
	StrugglingConcepts       []string
	MasteredConcepts         []string
	AdaptiveSettings         AdaptiveSettings
}

// DefaultProfile returns the profile used for a subject with no sessions.
func DefaultProfile(s subject.Subject) SubjectProfile {
	return SubjectProfile{
		Subject:          s,
		DifficultyLevel:  1,
		AdaptiveSettings: AdaptiveSettings{ShowHints: true},
	}
}

// Accuracy returns the cumulative accuracy percentage, or 0 with no attempts.
func (p *SubjectProfile) Accuracy() float64 {
	if p.TotalAttempts == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.TotalAttempts) * 100
}

// IsMastered reports whether the concept is in the mastered set.
func (p *SubjectProfile) IsMastered(concept string) bool {
	return slices.Contains(p.MasteredConcepts, concept)
}

// IsStruggling reports whether the concept is in the struggling set.
func (p *SubjectProfile) IsStruggling(concept string) bool {
	return slices.Contains(p.StrugglingConcepts, concept)
}

// Clone returns a deep copy so that updates never alias the caller's slices.
func (p SubjectProfile) Clone() SubjectProfile {
	p.RecentPerformanceHistory = slices.Clone(p.RecentPerformanceHistory)
	p.StrugglingConcepts = slices.Clone(p.StrugglingConcepts)
	p.MasteredConcepts = slices.Clone(p.MasteredConcepts)
	return p
}

// SessionResult is one completed activity as reported by an activity screen.
type SessionResult struct {
	Subject               subject.Subject
	QuestionsAnswered     int
	CorrectAnswers        int
	TotalTimeSpentSeconds float64
	ConceptsEncountered   []string // may contain duplicates
	AgeGroup              subject.AgeGroup
}

// normalized clamps counts to non-negative values with correct <= answered
// and drops empty or duplicate concepts.
func (r SessionResult) normalized() SessionResult {
	r.QuestionsAnswered = max(r.QuestionsAnswered, 0)
	r.CorrectAnswers = min(max(r.CorrectAnswers, 0), r.QuestionsAnswered)
	r.TotalTimeSpentSeconds = max(r.TotalTimeSpentSeconds, 0)

	seen := make(map[string]bool, len(r.ConceptsEncountered))
	concepts := make([]string, 0, len(r.ConceptsEncountered))
	for _, c := range r.ConceptsEncountered {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		concepts = append(concepts, c)
	}
	r.ConceptsEncountered = concepts
	return r
}

// Accuracy returns the session accuracy percentage. A session with no
// questions scores 0.
func (r SessionResult) Accuracy() float64 {
	r = r.normalized()
	return float64(r.CorrectAnswers) / float64(max(r.QuestionsAnswered, 1)) * 100
}

// LevelTransition records a difficulty level change for display and event logging.
type LevelTransition struct {
	Subject  subject.Subject
	From     int
	To       int
	Accuracy float64
	Trigger  string // "level-up", "level-down", "age-cap"
}
