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

func newAddCmd() *cobra.Command {
	var notes string
	var date string
	var goalID string
	var skill string
	var priority string
	var recur string
	var subtasks []string
	var tagIDs []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			task, err := s.AddTask(ctx, store.TaskInput{
				Title:         args[0],
				Notes:         notes,
				ScheduledDate: date,
				GoalID:        goalID,
				SkillID:       skill,
				Priority:      storage.Priority(priority),
				Recurrence:    storage.Recurrence(recur),
				Subtasks:      subtasks,
				TagIDs:        tagIDs,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconTask+" Added"), task.Title, ui.Muted.Render("("+task.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-text notes")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&goalID, "goal", "g", "", "Goal id (weak reference)")
	cmd.Flags().StringVarP(&skill, "skill", "s", "", "Skill (mental|physical|social|creative|discipline)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&recur, "recur", "r", "none", "Recurrence (none|daily|weekly|monthly)")
	cmd.Flags().StringArrayVar(&subtasks, "subtask", nil, "Subtask title (repeatable)")
	cmd.Flags().StringArrayVar(&tagIDs, "tag", nil, "Tag id (repeatable)")

	return cmd
}
