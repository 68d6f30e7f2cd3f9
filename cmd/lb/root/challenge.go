package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/gamify"
	"lifeboard/internal/ui"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "30-day challenges",
	}
	cmd.AddCommand(newChallengeStartCmd(), newChallengeListCmd(), newChallengeAbandonCmd())
	return cmd
}

func newChallengeStartCmd() *cobra.Command {
	var target, reward int

	cmd := &cobra.Command{
		Use:   "start <title>",
		Short: "Start a challenge",
		Args:  cobra.ExactArgs(1),
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
			ch, err := s.StartChallenge(ctx, args[0], target, reward)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconTrophy+" Challenge started:"), ch.Title,
				ui.Muted.Render(fmt.Sprintf("(%d to go, ends %s)", ch.TargetCount, ch.EndDate)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 10, "Completions required")
	cmd.Flags().IntVarP(&reward, "reward", "r", 100, "XP reward on completion")
	return cmd
}

func newChallengeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List challenges",
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
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Challenges"))
			if len(st.Profile.Challenges) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("None yet. Start one with: lb challenge start"))
				return nil
			}
			now := time.Now()
			for _, ch := range st.Profile.Challenges {
				status := "done"
				switch {
				case ch.Active && gamify.ChallengeExpired(ch, now):
					status = "expired"
				case ch.Active:
					status = fmt.Sprintf("%d/%d", ch.CurrentCount, ch.TargetCount)
				}
				fmt.Fprintf(out, "- %s [%s] %s\n", ch.Title, status, ui.Muted.Render(ch.ID))
			}
			return nil
		},
	}
}

func newChallengeAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <challenge-id>",
		Short: "Abandon a challenge (no reward)",
		Args:  cobra.ExactArgs(1),
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
			if err := s.AbandonChallenge(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Abandoned."))
			return nil
		},
	}
}
