package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/storage"
	"lifeboard/internal/store"
	"lifeboard/internal/ui"
)

// task groups the less-frequent task operations; the daily verbs (add, done,
// undo, list) stay at the top level.
func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Edit, cancel or remove tasks",
	}
	cmd.AddCommand(newTaskEditCmd(), newTaskCancelCmd(), newTaskRmCmd(), newTaskSubCmd())
	return cmd
}

func newTaskEditCmd() *cobra.Command {
	var title, notes, date, goalID, skill, priority, recur string

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Update task fields",
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

			var up store.TaskUpdate
			if cmd.Flags().Changed("title") {
				up.Title = &title
			}
			if cmd.Flags().Changed("notes") {
				up.Notes = &notes
			}
			if cmd.Flags().Changed("date") {
				up.ScheduledDate = &date
			}
			if cmd.Flags().Changed("goal") {
				up.GoalID = &goalID
			}
			if cmd.Flags().Changed("skill") {
				up.SkillID = &skill
			}
			if cmd.Flags().Changed("priority") {
				p := storage.Priority(priority)
				up.Priority = &p
			}
			if cmd.Flags().Changed("recur") {
				r := storage.Recurrence(recur)
				up.Recurrence = &r
			}

			t, err := s.UpdateTask(ctx, args[0], up)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Updated"), t.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	cmd.Flags().StringVar(&date, "date", "", "New scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&goalID, "goal", "", "New goal id")
	cmd.Flags().StringVar(&skill, "skill", "", "New skill")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority (low|medium|high)")
	cmd.Flags().StringVar(&recur, "recur", "", "New recurrence (none|daily|weekly|monthly)")
	return cmd
}

func newTaskCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <task-id>",
		Short: "Cancel a task (no XP involved)",
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
			if err := s.CancelTask(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Cancelled."))
			return nil
		},
	}
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
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
			if err := s.DeleteTask(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Deleted."))
			return nil
		},
	}
}

func newTaskSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub <task-id> <subtask-id>",
		Short: "Toggle a subtask",
		Args:  cobra.ExactArgs(2),
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
			if err := s.ToggleSubtask(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Toggled."))
			return nil
		},
	}
}
