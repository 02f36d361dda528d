package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/brightpath/internal/insights"
	"github.com/abhisek/brightpath/internal/ui/theme"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show a parent summary across all subjects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		age, err := rt.ageGroup(cmd)
		if err != nil {
			return err
		}
		profiles, err := rt.service.All(cmd.Context())
		if err != nil {
			return err
		}
		report := insights.Insights(profiles, age)

		strongest := "-"
		if report.HasStrongest {
			strongest = report.StrongestSubject.DisplayName()
		}
		attention := make([]string, 0, len(report.SubjectsNeedingAttention))
		for _, s := range report.SubjectsNeedingAttention {
			attention = append(attention, s.DisplayName())
		}
		needs := "-"
		if len(attention) > 0 {
			needs = strings.Join(attention, ", ")
		}

		lines := []string{
			theme.Heading.Render("Learning summary · " + age.DisplayName()),
			"",
			theme.Row("Overall progress", fmt.Sprintf("%.1f%%", report.OverallProgress)),
			theme.Row("Strongest subject", strongest),
			theme.Row("Needs attention", needs),
			theme.Row("Concepts mastered", fmt.Sprintf("%d", report.TotalMasteredConcepts)),
			theme.Row("Average level", fmt.Sprintf("%.1f", report.AverageDifficultyLevel)),
		}
		if len(report.Recommendations) > 0 {
			lines = append(lines, "")
			for _, r := range report.Recommendations {
				lines = append(lines, theme.Cheer.Render("• ")+r)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Panel.Render(strings.Join(lines, "\n")))
		return nil
	},
}

func init() {
	insightsCmd.Flags().String("age", "", "Age group: young, middle, older (default from config)")
}
