package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/brightpath/internal/recommend"
	"github.com/abhisek/brightpath/internal/subject"
)

const levelHistoryLimit = 3

var profileCmd = &cobra.Command{
	Use:   "profile <subject>",
	Short: "Show a subject profile and the next activity settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := subject.Parse(args[0])
		if err != nil {
			return err
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		age, err := rt.ageGroup(cmd)
		if err != nil {
			return err
		}
		p, err := rt.service.GetSubjectPerformance(cmd.Context(), sub)
		if err != nil {
			return err
		}

		changes, err := rt.service.LevelHistory(cmd.Context(), sub, levelHistoryLimit)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		renderRecommendation(w, recommend.Recommend(p, age))
		fmt.Fprintln(w)
		renderProfileStats(w, p)
		renderLevelHistory(w, changes)
		return nil
	},
}

func init() {
	profileCmd.Flags().String("age", "", "Age group: young, middle, older (default from config)")
}
