package root

import (
	"context"

	"github.com/spf13/cobra"

	"lifeboard/internal/tui"
)

func newDashCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dash",
		Aliases: []string{"dashboard", "ui"},
		Short:   "Interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			// The dashboard handles the lock screen itself.
			return tui.Run(ctx, s)
		},
	}
}
