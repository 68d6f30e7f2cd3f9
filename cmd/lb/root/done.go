package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
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

			res, err := s.CompleteTask(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Completed"), res.Task.Title)
			if res.XPAwarded > 0 {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("+%d (%s)", res.XPAwarded, res.Task.SkillID)))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s → level %d\n", ui.IconBolt, ui.BadgeLevelUp, res.LevelAfter)
			}
			for _, a := range res.NewAchievements {
				fmt.Fprintf(out, "%s Achievement unlocked: %s %s\n", ui.IconTrophy, a.Icon, a.Name)
			}
			for _, ch := range res.ChallengesCompleted {
				fmt.Fprintf(out, "%s Challenge complete: %s (+%d XP)\n", ui.IconTrophy, ch.Title, ch.RewardXP)
			}
			if res.NextOccurrence != nil {
				fmt.Fprintln(out, ui.Muted.Render("Next occurrence scheduled for "+res.NextOccurrence.ScheduledDate))
			}
			return nil
		},
	}
	return cmd
}
