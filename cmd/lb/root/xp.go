package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lifeboard/internal/ui"
)

// xp is a hidden escape hatch for manual grants (imports, make-goods).
func newXPCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "xp <skill> <amount>",
		Short:  "Grant XP directly",
		Hidden: true,
		Args:   cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("amount must be an integer: %w", err)
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
			if err := s.GrantXP(ctx, args[0], amount); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(fmt.Sprintf("+%d XP", amount)), ui.Muted.Render("("+args[0]+")"))
			return nil
		},
	}
}
