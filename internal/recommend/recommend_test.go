package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/brightpath/internal/difficulty"
	"github.com/abhisek/brightpath/internal/performance"
	"github.com/abhisek/brightpath/internal/subject"
)

func TestRecommend_DefaultProfile(t *testing.T) {
	p := performance.DefaultProfile(subject.Math)
	r := Recommend(p, subject.AgeYoung)

	assert.Equal(t, 1, r.CurrentLevel)
	assert.Equal(t, "Beginner", r.LevelName)
	assert.NotEmpty(t, r.LevelDescription)
	assert.Equal(t, 30, r.Settings.TimeLimitSeconds)
	assert.True(t, r.Settings.ShowHints)
	assert.Equal(t, difficulty.SupportHigh, r.Settings.VisualSupport)
	assert.Equal(t, difficulty.ComplexityBasic, r.Settings.Complexity)
	assert.Equal(t, Encouragement(0, subject.AgeYoung), r.Encouragement)
}

func TestRecommend_HigherLevel(t *testing.T) {
	p := performance.SubjectProfile{
		Subject:             subject.Science,
		DifficultyLevel:     4,
		LastSessionAccuracy: 92,
		MasteredConcepts:    []string{"magnets"},
	}
	r := Recommend(p, subject.AgeOlder)

	assert.Equal(t, 4, r.CurrentLevel)
	assert.Equal(t, "Champion", r.LevelName)
	assert.Equal(t, 15, r.Settings.TimeLimitSeconds)
	assert.False(t, r.Settings.ShowHints)
	assert.Equal(t, difficulty.SupportLow, r.Settings.VisualSupport)
	assert.Equal(t, difficulty.ComplexityAdvanced, r.Settings.Complexity)
	assert.Equal(t, []string{"magnets"}, r.MasteredAreas)
	assert.Equal(t, messages[subject.AgeOlder][BandExcellent], r.Encouragement)
}

func TestRecommend_AdaptiveFlagsOverrideLevelDefaults(t *testing.T) {
	p := performance.SubjectProfile{
		Subject:            subject.Math,
		DifficultyLevel:    3,
		StrugglingConcepts: []string{"long division"},
		AdaptiveSettings: performance.AdaptiveSettings{
			ShowHints:     true,
			ExtendedTime:  true,
			VisualSupport: true,
		},
	}
	r := Recommend(p, subject.AgeOlder)

	assert.True(t, r.Settings.ShowHints)
	assert.True(t, r.Settings.ExtendedTime)
	assert.Equal(t, 30, r.Settings.TimeLimitSeconds, "20s level limit stretched by 1.5")
	assert.Equal(t, difficulty.SupportHigh, r.Settings.VisualSupport)
	assert.Equal(t, []string{"long division"}, r.StrugglingAreas)
}

func TestRecommend_ClampsToAgeCap(t *testing.T) {
	p := performance.SubjectProfile{Subject: subject.Art, DifficultyLevel: 5}
	r := Recommend(p, subject.AgeYoung)
	assert.Equal(t, 3, r.CurrentLevel)
	assert.Equal(t, 35, r.Settings.TimeLimitSeconds)
}

func TestRecommend_DoesNotAliasProfile(t *testing.T) {
	p := performance.SubjectProfile{Subject: subject.Math, DifficultyLevel: 1, MasteredConcepts: []string{"a"}}
	r := Recommend(p, subject.AgeMiddle)
	r.MasteredAreas[0] = "changed"
	assert.Equal(t, "a", p.MasteredConcepts[0])
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Band
	}{
		{0, BandKeepTrying},
		{59.9, BandKeepTrying},
		{60, BandGood},
		{74.9, BandGood},
		{75, BandGreat},
		{89.9, BandGreat},
		{90, BandExcellent},
		{100, BandExcellent},
	}
	for _, tt := range tests {
		if got := BandFor(tt.accuracy); got != tt.want {
			t.Errorf("BandFor(%.1f) = %d, want %d", tt.accuracy, got, tt.want)
		}
	}
}

func TestEncouragement_DistinctRegisters(t *testing.T) {
	for _, band := range []float64{95, 80, 65, 10} {
		seen := make(map[string]bool)
		for _, age := range subject.AllAgeGroups() {
			msg := Encouragement(band, age)
			if msg == "" {
				t.Errorf("empty message for %.0f/%s", band, age)
			}
			if seen[msg] {
				t.Errorf("age groups share message %q at %.0f", msg, band)
			}
			seen[msg] = true
		}
	}
}

func TestEncouragement_UnknownAgeUsesMiddle(t *testing.T) {
	assert.Equal(t, Encouragement(80, subject.AgeMiddle), Encouragement(80, subject.AgeGroup("adult")))
}
