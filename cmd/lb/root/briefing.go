package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/insight"
	"lifeboard/internal/ui"
)

func newBriefingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "briefing",
		Short: "Weekly briefing over the trailing 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}
			b := insight.WeeklyBriefing(s.GetState(), time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Weekly briefing"))
			fmt.Fprintln(out, ui.LabelValue("Tasks", fmt.Sprintf("%d done / %d created (%.0f%%)",
				b.CompletedTasks, b.CreatedTasks, b.CompletionRate)))
			fmt.Fprintln(out, ui.LabelValue("Energy", fmt.Sprintf("%.1f / 5", b.AvgEnergy)))
			fmt.Fprintln(out, ui.LabelValue("Habits", fmt.Sprintf("%.0f%% consistent", b.HabitConsistency)))
			fmt.Fprintln(out, ui.LabelValue("Money", fmt.Sprintf("+%.2f / -%.2f", b.Income, b.Expenses)))
			if b.HasBestWeekday {
				fmt.Fprintln(out, ui.LabelValue("Best day", b.BestWeekday.String()))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Panel.Render(b.Recommendation))
			return nil
		},
	}
}
