package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lifeboard/internal/storage"
	"lifeboard/internal/ui"
)

func newEnergyCmd() *cobra.Command {
	var date string
	var mood string

	cmd := &cobra.Command{
		Use:   "energy <level 1-5>",
		Short: "Log today's energy level (and optional mood)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("level is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("level must be a number 1-5")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := strconv.Atoi(args[0])
			ctx := context.Background()
			s, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}
			entry, err := s.LogEnergy(ctx, date, level, storage.Mood(mood))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Logged energy %d for %s\n", ui.Good.Render(ui.IconBolt), entry.Level, entry.Date)
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood (great|good|okay|low|bad)")
	return cmd
}
