package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/gamify"
	"lifeboard/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"badges"},
		Short:   "Show earned and locked achievements",
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
			checker := gamify.NewAchievementChecker(s.GetState(), time.Now())
			all := checker.GetAchievements()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", checker.CountEarned(), len(all))))
			for _, a := range all {
				if a.Earned {
					fmt.Fprintf(out, "%s %s %s\n", a.Icon, ui.Good.Render(a.Name), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(out, "%s %s %s\n", "🔒", ui.Muted.Render(a.Name), ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}
}
