package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/config"
	"lifeboard/internal/notify"
	"lifeboard/internal/ui"
)

// remind either runs one poll (default) or stays resident with --watch,
// polling on the configured interval until interrupted.
func newRemindCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Evaluate reminders and print any that fire",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, log, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireUnlocked(s); err != nil {
				return err
			}

			n := notify.NewTerminalNotifier(cmd.OutOrStdout())
			n.RequestPermission()

			cfg, err := config.Load("lifeboard.yaml")
			if err != nil {
				return err
			}
			sched := notify.NewScheduler(s, n, log, cfg.NotifyInterval)

			if !watch {
				sched.Poll(time.Now())
				return nil
			}

			sched.Start()
			defer sched.Stop()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(
				fmt.Sprintf("%s Watching (every %s). Ctrl-C to stop.", ui.IconBell, cfg.NotifyInterval)))

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and poll on the configured interval")
	return cmd
}
