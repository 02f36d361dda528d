package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/brightpath/internal/performance"
	"github.com/abhisek/brightpath/internal/recommend"
	"github.com/abhisek/brightpath/internal/store"
	"github.com/abhisek/brightpath/internal/ui/theme"
)

func renderRecommendation(w io.Writer, rec recommend.Recommendation) {
	s := rec.Settings
	lines := []string{
		theme.Heading.Render(fmt.Sprintf("%s · Level %d %s", rec.Subject.DisplayName(), rec.CurrentLevel, rec.LevelName)),
		theme.Muted.Render(rec.LevelDescription),
		"",
		theme.Row("Time per question", fmt.Sprintf("%ds", s.TimeLimitSeconds)),
		theme.Row("Hints", onOff(s.ShowHints)),
		theme.Row("Visual support", string(s.VisualSupport)),
		theme.Row("Simplified language", onOff(s.SimplifiedLanguage)),
		theme.Row("Extended time", onOff(s.ExtendedTime)),
		theme.Row("Complexity", string(s.Complexity)),
	}
	if len(rec.StrugglingAreas) > 0 {
		lines = append(lines, theme.Row("Practice more", strings.Join(rec.StrugglingAreas, ", ")))
	}
	if len(rec.MasteredAreas) > 0 {
		lines = append(lines, theme.Row("Mastered", strings.Join(rec.MasteredAreas, ", ")))
	}
	lines = append(lines, "", theme.Cheer.Render(rec.Encouragement))
	fmt.Fprintln(w, theme.Panel.Render(strings.Join(lines, "\n")))
}

func renderProfileStats(w io.Writer, p performance.SubjectProfile) {
	lines := []string{
		theme.Row("Attempts", fmt.Sprintf("%d (%d correct)", p.TotalAttempts, p.CorrectAnswers)),
		theme.Row("Accuracy", fmt.Sprintf("%.1f%%", p.Accuracy())),
		theme.Row("Last session", fmt.Sprintf("%.1f%%", p.LastSessionAccuracy)),
		theme.Row("Avg time/question", fmt.Sprintf("%.1fs", p.AverageTimePerQuestion)),
		theme.Row("Streak", fmt.Sprintf("%d (best %d)", p.Streak, p.BestStreak)),
		theme.Row("Recent sessions", formatHistory(p.RecentPerformanceHistory)),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

func renderTransition(w io.Writer, t *performance.LevelTransition) {
	if t == nil {
		return
	}
	msg := fmt.Sprintf("Level %d → %d (%s)", t.From, t.To, t.Trigger)
	if t.To > t.From {
		fmt.Fprintln(w, theme.LevelUp.Render("▲ "+msg))
		return
	}
	fmt.Fprintln(w, theme.LevelDown.Render("▼ "+msg))
}

func renderLevelHistory(w io.Writer, changes []store.LevelEventRecord) {
	if len(changes) == 0 {
		fmt.Fprintln(w, theme.Row("Level changes", "-"))
		return
	}
	for i, c := range changes {
		label := ""
		if i == 0 {
			label = "Level changes"
		}
		style := theme.LevelDown
		if c.ToLevel > c.FromLevel {
			style = theme.LevelUp
		}
		fmt.Fprintln(w, theme.Row(label, fmt.Sprintf("%s  %s at %.0f%% (%s)",
			c.Timestamp.Local().Format("2006-01-02 15:04"),
			style.Render(fmt.Sprintf("%d → %d", c.FromLevel, c.ToLevel)),
			c.Accuracy, c.Trigger)))
	}
}

func formatHistory(h []float64) string {
	if len(h) == 0 {
		return "-"
	}
	parts := make([]string, len(h))
	for i, v := range h {
		parts[i] = fmt.Sprintf("%.0f", v)
	}
	return strings.Join(parts, " ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
