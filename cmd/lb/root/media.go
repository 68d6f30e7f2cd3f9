package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/storage"
	"lifeboard/internal/ui"
)

func newMediaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Books, films, games and the rest of the backlog",
	}
	cmd.AddCommand(newMediaAddCmd(), newMediaStatusCmd(), newMediaListCmd(), newMediaRmCmd())
	return cmd
}

func newMediaAddCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add something to the backlog",
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
			m, err := s.AddMedia(ctx, args[0], storage.MediaType(kind))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconMedia+" Added"), m.Title, ui.Muted.Render("("+m.ID+")"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", string(storage.MediaBook), "book, movie, series or game")
	return cmd
}

func newMediaStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <media-id> <backlog|in_progress|completed|abandoned>",
		Short: "Move a backlog item between states",
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
			if err := s.SetMediaStatus(ctx, args[0], storage.MediaStatus(args[1])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Updated."))
			return nil
		},
	}
}

func newMediaListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backlog items",
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
			fmt.Fprintln(out, ui.Heading(ui.IconMedia, "Backlog"))
			for _, m := range st.Media {
				if status != "" && string(m.Status) != status {
					continue
				}
				fmt.Fprintf(out, "- [%s] %s %s %s\n",
					m.Status, m.Title, ui.Muted.Render(string(m.Type)), ui.Muted.Render(m.ID))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status")
	return cmd
}

func newMediaRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <media-id>",
		Short: "Remove a backlog item",
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
			if err := s.DeleteMedia(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Removed."))
			return nil
		},
	}
}
