package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lifeboard/internal/storage"
	"lifeboard/internal/store"
	"lifeboard/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
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
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			shown := 0
			for _, t := range st.Tasks {
				if !all && t.Status != storage.TaskPending {
					continue
				}
				shown++
				var extras []string
				if t.ScheduledDate != "" {
					extras = append(extras, t.ScheduledDate)
				}
				if t.SkillID != "" {
					extras = append(extras, t.SkillID)
				}
				if t.GoalID != "" {
					extras = append(extras, store.GoalTitle(st.Goals, t.GoalID))
				}
				if names := store.TagNames(st.Tags, t.TagIDs); len(names) > 0 {
					extras = append(extras, "#"+strings.Join(names, " #"))
				}
				suffix := ""
				if len(extras) > 0 {
					suffix = " " + ui.Muted.Render("["+strings.Join(extras, " · ")+"]")
				}
				fmt.Fprintf(out, "- %s %s%s %s\n", ui.StatusText(string(t.Status)), t.Title, suffix, ui.Muted.Render(t.ID))
				for _, sub := range t.Subtasks {
					mark := "·"
					if sub.Completed {
						mark = "✓"
					}
					fmt.Fprintf(out, "    %s %s\n", mark, ui.Muted.Render(sub.Title))
				}
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks. Add one with `lb add`."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed and cancelled tasks")
	return cmd
}
