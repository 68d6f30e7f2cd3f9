package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/gamify"
	"lifeboard/internal/storage"
	"lifeboard/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Profile overview: level, XP, skills",
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
			st := s.GetState()
			p := st.Profile
			out := cmd.OutOrStdout()

			level := gamify.LevelForXP(p.XP)
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s", level,
				ui.Muted.Render(fmt.Sprintf("(%d XP, %d to next)", p.XP, gamify.XPToNextLevel(p.XP))))))
			fmt.Fprintln(out, ui.ProgressBar(gamify.LevelProgress(p.XP), 30))

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.H2.Render("Skills"))
			for _, skill := range gamify.Skills() {
				xp := p.SkillXP[skill]
				fmt.Fprintf(out, "  %-10s lvl %-3d %s\n", skill, gamify.LevelForXP(xp),
					ui.ProgressBar(gamify.LevelProgress(xp), 20))
			}

			pending := 0
			for _, t := range st.Tasks {
				if t.Status == storage.TaskPending {
					pending++
				}
			}
			checker := gamify.NewAchievementChecker(st, time.Now())
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.LabelValue("Open tasks", pending))
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d earned", checker.CountEarned())))
			return nil
		},
	}
}
