package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/brightpath/internal/session"
	"github.com/abhisek/brightpath/internal/store"
	"github.com/abhisek/brightpath/internal/subject"
	"github.com/abhisek/brightpath/internal/ui/theme"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := store.QueryOpts{}
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		if s, _ := cmd.Flags().GetString("subject"); s != "" {
			sub, err := subject.Parse(s)
			if err != nil {
				return err
			}
			opts.Subject = string(sub)
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		records, err := rt.recorder.History(cmd.Context(), opts)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(w, theme.Muted.Render("No sessions recorded yet."))
			return nil
		}
		for _, r := range records {
			fmt.Fprintf(w, "%s  %-8s  %5.1f%%  %2d act  %5.1f min  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Subject, r.Accuracy, r.ActivitiesCompleted, r.DurationMinutes,
				theme.Coins.Render(fmt.Sprintf("+%d", r.CoinsEarned)))
		}

		t := session.Summarize(records)
		fmt.Fprintln(w, strings.Repeat("─", 52))
		fmt.Fprintf(w, "%d sessions, %d activities, %.1f min, %d coins, %.1f%% average\n",
			t.Sessions, t.Activities, t.Minutes, t.Coins, t.AverageAccuracy)
		return nil
	},
}

func init() {
	sessionsCmd.Flags().String("subject", "", "Only show sessions for this subject")
	sessionsCmd.Flags().Int("limit", 20, "Maximum sessions to show (0 = all)")
}
