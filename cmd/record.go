package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/brightpath/internal/intake"
	"github.com/abhisek/brightpath/internal/performance"
	"github.com/abhisek/brightpath/internal/recommend"
	"github.com/abhisek/brightpath/internal/ui/theme"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a completed activity session",
	Long: `Record a completed activity session and adapt the subject's difficulty.

The session is given either with flags or as a JSON event with --file
(use "-" for stdin).`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	f := recordCmd.Flags()
	f.String("file", "", "Read the session event from a JSON file")
	f.String("subject", "", "Subject: math, reading, science, art")
	f.String("age", "", "Age group: young, middle, older (default from config)")
	f.Int("questions", 0, "Questions answered")
	f.Int("correct", 0, "Correct answers")
	f.Float64("seconds", 0, "Total time spent, in seconds")
	f.StringSlice("concepts", nil, "Concepts encountered (comma separated)")
	f.Int("activities", 1, "Activities completed")
	f.Float64("minutes", 0, "Session duration in minutes")
}

func runRecord(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	res, meta, err := readSession(cmd, rt)
	if err != nil {
		return err
	}

	out, err := rt.service.CompleteSession(cmd.Context(), res, meta)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s: %.0f%% correct\n", theme.Heading.Render("Session recorded"), res.Subject.DisplayName(), out.Accuracy)
	renderTransition(w, out.Transition)
	award := out.Award
	fmt.Fprintln(w, theme.Coins.Render(fmt.Sprintf("+%d coins", award.Coins)), theme.Muted.Render(award.Reason))
	fmt.Fprintln(w)
	renderRecommendation(w, recommend.Recommend(out.After, res.AgeGroup))
	return nil
}

// readSession builds the session from --file or from the individual flags.
func readSession(cmd *cobra.Command, rt *runtime) (performance.SessionResult, performance.SessionMeta, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		var (
			raw []byte
			err error
		)
		if path == "-" {
			raw, err = readAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(path)
		}
		if err != nil {
			return performance.SessionResult{}, performance.SessionMeta{}, fmt.Errorf("read session file: %w", err)
		}
		return intake.Decode(raw)
	}

	f := cmd.Flags()
	ev := intake.Event{}
	ev.Subject, _ = f.GetString("subject")
	ev.QuestionsAnswered, _ = f.GetInt("questions")
	ev.CorrectAnswers, _ = f.GetInt("correct")
	ev.TotalTimeSpentSeconds, _ = f.GetFloat64("seconds")
	ev.ConceptsEncountered, _ = f.GetStringSlice("concepts")
	ev.ActivitiesCompleted, _ = f.GetInt("activities")
	ev.DurationMinutes, _ = f.GetFloat64("minutes")
	if ev.Subject == "" {
		return performance.SessionResult{}, performance.SessionMeta{}, fmt.Errorf("--subject or --file is required")
	}

	age, err := rt.ageGroup(cmd)
	if err != nil {
		return performance.SessionResult{}, performance.SessionMeta{}, err
	}
	ev.AgeGroup = string(age)
	return intake.FromEvent(ev)
}
