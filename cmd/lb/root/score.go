package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/insight"
	"lifeboard/internal/ui"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Life score (0-100)",
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
			score := insight.LifeScore(s.GetState())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Life score"))
			fmt.Fprintln(out, ui.ProgressBar(score/100, 30), fmt.Sprintf("%.0f / 100", score))
			return nil
		},
	}
}
