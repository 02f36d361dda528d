package difficulty

import "github.com/abhisek/brightpath/internal/subject"

// MaxLevel is the highest level defined in any subject table.
const MaxLevel = 5

// SupportTier describes how much visual scaffolding an activity shows.
type SupportTier string

const (
	SupportHigh   SupportTier = "high"
	SupportMedium SupportTier = "medium"
	SupportLow    SupportTier = "low"
)

// Complexity describes which question variants an activity draws from.
type Complexity string

const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
	ComplexityExpert       Complexity = "expert"
)

// LevelConfig holds the thresholds and defaults for one difficulty level.
type LevelConfig struct {
	Level              int
	Name               string
	Description        string
	RequiredAccuracy   float64 // percent needed to advance from this level
	MinSessionsAtLevel int     // trailing sessions that must each meet RequiredAccuracy
	MaxTimePerQuestion float64 // seconds
	HintsDefault       bool
	VisualSupport      SupportTier
	Complexity         Complexity
}

// baseLevels is shared by every subject; per-subject overrides adjust timing.
var baseLevels = [MaxLevel]LevelConfig{
	{Level: 1, Name: "Beginner", Description: "Getting started with the basics",
		RequiredAccuracy: 70, MinSessionsAtLevel: 3, MaxTimePerQuestion: 30,
		HintsDefault: true, VisualSupport: SupportHigh, Complexity: ComplexityBasic},
	{Level: 2, Name: "Explorer", Description: "Building confidence with familiar ideas",
		RequiredAccuracy: 75, MinSessionsAtLevel: 3, MaxTimePerQuestion: 25,
		HintsDefault: true, VisualSupport: SupportMedium, Complexity: ComplexityBasic},
	{Level: 3, Name: "Adventurer", Description: "Tackling trickier problems with less help",
		RequiredAccuracy: 80, MinSessionsAtLevel: 4, MaxTimePerQuestion: 20,
		HintsDefault: false, VisualSupport: SupportMedium, Complexity: ComplexityIntermediate},
	{Level: 4, Name: "Champion", Description: "Working quickly on multi-step challenges",
		RequiredAccuracy: 85, MinSessionsAtLevel: 4, MaxTimePerQuestion: 15,
		HintsDefault: false, VisualSupport: SupportLow, Complexity: ComplexityAdvanced},
	{Level: 5, Name: "Master", Description: "Expert challenges with minimal support",
		RequiredAccuracy: 90, MinSessionsAtLevel: 5, MaxTimePerQuestion: 12,
		HintsDefault: false, VisualSupport: SupportLow, Complexity: ComplexityExpert},
}

// artTimes gives creative activities more room per question.
var artTimes = [MaxLevel]float64{45, 40, 35, 30, 25}

var tables = buildTables()

func buildTables() map[subject.Subject][MaxLevel]LevelConfig {
	t := make(map[subject.Subject][MaxLevel]LevelConfig, len(subject.All()))
	for _, s := range subject.All() {
		levels := baseLevels
		if s == subject.Art {
			for i := range levels {
				levels[i].MaxTimePerQuestion = artTimes[i]
			}
		}
		t[s] = levels
	}
	return t
}

// Levels returns the full level table for a subject. Unknown subjects get
// the base table.
func Levels(s subject.Subject) [MaxLevel]LevelConfig {
	if levels, ok := tables[s]; ok {
		return levels
	}
	return baseLevels
}

// ForLevel returns the config for a subject at the given level. Levels
// outside [1, MaxLevel] are clamped.
func ForLevel(s subject.Subject, level int) LevelConfig {
	levels := Levels(s)
	return levels[ClampLevel(level, MaxLevel)-1]
}

// ClampLevel bounds level to [1, limit].
func ClampLevel(level, limit int) int {
	if limit < 1 {
		limit = 1
	}
	if level < 1 {
		return 1
	}
	if level > limit {
		return limit
	}
	return level
}
