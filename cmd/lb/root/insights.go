package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/insight"
	"lifeboard/internal/ui"
)

func newInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Patterns mined from your own data",
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
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Insights"))
			for _, in := range insight.SmartInsights(s.GetState(), time.Now()) {
				fmt.Fprintln(out, "-", in.Message)
			}
			return nil
		},
	}
}
