package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifeboard/internal/storage"
	"lifeboard/internal/store"
	"lifeboard/internal/ui"
)

func newContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Personal CRM",
	}
	cmd.AddCommand(newContactAddCmd(), newContactLogCmd(), newContactDueCmd(), newContactListCmd(), newContactRmCmd())
	return cmd
}

func newContactAddCmd() *cobra.Command {
	var category, birthday, notes string
	var remindDays int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a contact",
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
			c, err := s.AddContact(ctx, store.ContactInput{
				Name:              args[0],
				Category:          category,
				ReminderFrequency: remindDays,
				Birthday:          birthday,
				Notes:             notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconContact+" Added"), c.Name, ui.Muted.Render("("+c.ID+")"))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Category (friend, family, work…)")
	cmd.Flags().StringVar(&birthday, "birthday", "", "Birthday (MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")
	cmd.Flags().IntVar(&remindDays, "remind", 0, "Reminder every N days (0 = off)")
	return cmd
}

func newContactLogCmd() *cobra.Command {
	var date, kind, note string

	cmd := &cobra.Command{
		Use:   "log <contact-id>",
		Short: "Log an interaction",
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
			err = s.AddInteraction(ctx, args[0], storage.Interaction{Date: date, Type: kind, Note: note})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Logged."))
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD), default today")
	cmd.Flags().StringVarP(&kind, "type", "t", "", "Interaction type (call, meet, message…)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Note")
	return cmd
}

func newContactDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List contacts due for a catch-up",
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
			due := store.ContactsDue(st.Contacts, time.Now())
			out := cmd.OutOrStdout()
			if len(due) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nobody is overdue. Nice."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconContact, "Due for a catch-up"))
			for _, c := range due {
				last := c.LastContacted
				if last == "" {
					last = "never"
				}
				fmt.Fprintf(out, "- %s %s\n", c.Name, ui.Muted.Render("(last: "+last+")"))
			}
			return nil
		},
	}
}

func newContactRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <contact-id>",
		Short: "Remove a contact",
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
			if err := s.DeleteContact(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Removed."))
			return nil
		},
	}
}

func newContactListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
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
			fmt.Fprintln(out, ui.Heading(ui.IconContact, "Contacts"))
			for _, c := range st.Contacts {
				extra := ""
				if c.Birthday != "" {
					extra = " 🎂 " + c.Birthday
				}
				fmt.Fprintf(out, "- %s%s %s\n", c.Name, extra, ui.Muted.Render(c.ID))
			}
			return nil
		},
	}
}
