package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/insight"
	"lifeboard/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Notes with [[Wiki Links]]",
	}
	cmd.AddCommand(newNoteAddCmd(), newNoteEditCmd(), newNoteListCmd(), newNoteLinksCmd(), newNoteRmCmd())
	return cmd
}

func newNoteAddCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note",
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
			n, err := s.AddNote(ctx, args[0], content)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconNote+" Added"), n.Title, ui.Muted.Render("("+n.ID+")"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "Markdown body; [[Other Note]] links other notes")
	return cmd
}

func newNoteEditCmd() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Update a note's title or body",
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
			var tp, cp *string
			if cmd.Flags().Changed("title") {
				tp = &title
			}
			if cmd.Flags().Changed("content") {
				cp = &content
			}
			n, err := s.UpdateNote(ctx, args[0], tp, cp)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Updated"), n.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New body")
	return cmd
}

func newNoteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
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
			fmt.Fprintln(out, ui.Heading(ui.IconNote, "Notes"))
			for _, n := range st.Notes {
				fmt.Fprintf(out, "- %s %s\n", n.Title, ui.Muted.Render(n.ID))
			}
			return nil
		},
	}
}

// note links prints the resolved wiki graph, plus backlinks for one note
// when an id is given.
func newNoteLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links [note-id]",
		Short: "Show the note link graph",
		Args:  cobra.MaximumNArgs(1),
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
			g := insight.BuildWikiGraph(st.Notes)
			titles := map[string]string{}
			for _, n := range g.Notes {
				titles[n.ID] = n.Title
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				fmt.Fprintln(out, ui.Heading(ui.IconNote, "Backlinks"))
				for _, from := range insight.Backlinks(g, args[0]) {
					fmt.Fprintf(out, "- %s %s\n", titles[from], ui.Muted.Render(from))
				}
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconNote, "Link graph"))
			if len(g.Edges) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No links yet. Write [[Another Note]] inside a note."))
				return nil
			}
			for _, e := range g.Edges {
				fmt.Fprintf(out, "%s %s %s\n", titles[e.FromID], ui.Muted.Render("->"), titles[e.ToID])
			}
			return nil
		},
	}
}

func newNoteRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <note-id>",
		Short: "Delete a note",
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
			if err := s.DeleteNote(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Deleted."))
			return nil
		},
	}
}
