package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/insight"
	"lifeboard/internal/ui"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Quarterly report over the trailing 90 days",
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
			r := insight.Quarterly(s.GetState(), time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Quarterly report"))
			fmt.Fprintln(out, ui.LabelValue("Tasks", fmt.Sprintf("%d done / %d created (%.0f%%)",
				r.CompletedTasks, r.CreatedTasks, r.CompletionRate)))
			fmt.Fprintln(out, ui.LabelValue("Energy", fmt.Sprintf("%.1f / 5", r.AvgEnergy)))
			if r.TopSkill != "" {
				fmt.Fprintln(out, ui.LabelValue("Top skill", r.TopSkill))
			}
			fmt.Fprintln(out, ui.LabelValue("Net balance", fmt.Sprintf("%+.2f", r.NetBalance)))
			fmt.Fprintln(out, ui.LabelValue("Media finished", fmt.Sprintf("%d", r.MediaFinished)))
			if r.BestStreakDays > 0 {
				fmt.Fprintln(out, ui.LabelValue("Best streak",
					fmt.Sprintf("%s %d days (%s)", ui.IconFire, r.BestStreakDays, r.BestStreakName)))
			}
			return nil
		},
	}
}
