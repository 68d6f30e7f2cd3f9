package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/insight"
	"lifeboard/internal/storage"
	"lifeboard/internal/store"
	"lifeboard/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits and check-ins",
	}
	cmd.AddCommand(newHabitAddCmd(), newHabitLogCmd(), newHabitListCmd(), newHabitArchiveCmd(), newHabitRmCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var freq string
	var goalID string
	var targetCount int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit",
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
			h, err := s.AddHabit(ctx, store.HabitInput{
				Title:       args[0],
				Frequency:   storage.HabitFrequency(freq),
				TargetCount: targetCount,
				GoalID:      goalID,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconHabit+" Added"), h.Title, ui.Muted.Render("("+h.ID+")"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&freq, "freq", "f", "daily", "Frequency (daily|weekly|specific_days|monthly)")
	cmd.Flags().StringVarP(&goalID, "goal", "g", "", "Linked goal id")
	cmd.Flags().IntVar(&targetCount, "target", 0, "Target count per period")
	return cmd
}

func newHabitLogCmd() *cobra.Command {
	var date string
	var missed bool

	cmd := &cobra.Command{
		Use:   "log <habit-id>",
		Short: "Log a habit check-in (today by default)",
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
			res, err := s.LogHabit(ctx, args[0], date, !missed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if missed {
				fmt.Fprintln(out, ui.Warn.Render("Logged a miss."))
				return nil
			}
			fmt.Fprintf(out, "%s Logged. %s streak: %d day(s)\n", ui.Good.Render(ui.IconDone), ui.IconFire, res.Streak)
			for _, a := range res.NewAchievements {
				fmt.Fprintf(out, "%s Achievement unlocked: %s %s\n", ui.IconTrophy, a.Icon, a.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().BoolVar(&missed, "missed", false, "Record an explicit miss instead of a completion")
	return cmd
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with streaks",
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
			now := time.Now()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			for _, h := range st.Habits {
				if h.Archived {
					continue
				}
				streak := insight.Streak(st.HabitLogs, h.ID, now)
				fmt.Fprintf(out, "- %s %s %s %d day(s) %s\n", h.Title, ui.Muted.Render("("+string(h.Frequency)+")"), ui.IconFire, streak, ui.Muted.Render(h.ID))
			}
			return nil
		},
	}
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <habit-id>",
		Short: "Delete a habit and its logs",
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
			if err := s.DeleteHabit(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Deleted."))
			return nil
		},
	}
}

func newHabitArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <habit-id>",
		Short: "Archive a habit",
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
			if err := s.ArchiveHabit(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Archived."))
			return nil
		},
	}
}
