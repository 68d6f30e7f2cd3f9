package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/storage"
	"lifeboard/internal/store"
	"lifeboard/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}
	cmd.AddCommand(newGoalAddCmd(), newGoalListCmd(), newGoalStatusCmd(), newGoalRmCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var desc, category, horizon string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
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
			g, err := s.AddGoal(ctx, store.GoalInput{Title: args[0], Description: desc, Category: category, Horizon: horizon})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconGoal+" Added"), g.Title, ui.Muted.Render("("+g.ID+")"))
			return nil
		},
	}
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&horizon, "horizon", "", "Time horizon (e.g. quarter, year)")
	return cmd
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
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
			fmt.Fprintln(out, ui.Heading(ui.IconGoal, "Goals"))
			for _, g := range st.Goals {
				fmt.Fprintf(out, "- %s %s %s\n", ui.StatusText(string(g.Status)), g.Title, ui.Muted.Render(g.ID))
			}
			if len(st.Goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No goals yet."))
			}
			return nil
		},
	}
}

func newGoalStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <goal-id> <active|completed|abandoned>",
		Short: "Set goal status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := storage.GoalStatus(args[1])
			switch status {
			case storage.GoalActive, storage.GoalCompleted, storage.GoalAbandoned:
			default:
				return errors.New("status must be active, completed or abandoned")
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
			if err := s.SetGoalStatus(ctx, args[0], status); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Updated."))
			return nil
		},
	}
}

func newGoalRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <goal-id>",
		Short: "Delete a goal (tasks fall back to the inbox)",
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
			if err := s.DeleteGoal(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Deleted."))
			return nil
		},
	}
}
