package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/ui"
)

func newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "PIN lock",
	}
	cmd.AddCommand(newLockSetCmd(), newLockOffCmd(), newLockStatusCmd())
	return cmd
}

func newLockSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <pin>",
		Short: "Enable the lock with a 4-digit PIN",
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
			if err := s.SetPIN(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconLock+" PIN set."),
				ui.Muted.Render("Future sessions start locked; pass --pin or unlock in the dashboard."))
			return nil
		},
	}
}

func newLockOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Disable the lock",
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
			if err := s.DisableSecurity(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconUnlock+" Lock disabled."))
			return nil
		},
	}
}

func newLockStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show lock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()
			if s.Locked() {
				fmt.Fprintln(out, ui.IconLock, "Locked. Pass --pin <pin> to unlock for a command.")
				return nil
			}
			st := s.GetState()
			if st.Profile.SecurityEnabled {
				fmt.Fprintln(out, ui.IconUnlock, "Unlocked (security enabled).")
			} else {
				fmt.Fprintln(out, ui.IconUnlock, "Security disabled.")
			}
			return nil
		},
	}
}
