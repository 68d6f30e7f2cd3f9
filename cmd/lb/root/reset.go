package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all data and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes everything; re-run with --yes to confirm")
			}
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}
			if err := s.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("All data wiped."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")
	return cmd
}
