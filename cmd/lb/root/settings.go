package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifeboard/internal/storage"
	"lifeboard/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Preferences: notifications, theme",
	}
	cmd.AddCommand(newSettingsNotifyCmd(), newSettingsThemeCmd(), newSettingsOnboardedCmd())
	return cmd
}

func newSettingsNotifyCmd() *cobra.Command {
	var morning, evening string

	cmd := &cobra.Command{
		Use:   "notify <on|off>",
		Short: "Toggle reminders and set digest times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "on" && args[0] != "off" {
				return errors.New("expected on or off")
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

			ns := s.GetState().Profile.Notifications
			ns.Enabled = args[0] == "on"
			if morning != "" {
				ns.MorningTime = morning
			}
			if evening != "" {
				ns.EveningTime = evening
			}
			if err := s.SetNotificationSettings(ctx, ns); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconBell+" Notifications "+args[0]+"."))
			return nil
		},
	}
	cmd.Flags().StringVar(&morning, "morning", "", "Morning digest time (HH:MM)")
	cmd.Flags().StringVar(&evening, "evening", "", "Evening review time (HH:MM)")
	return cmd
}

func newSettingsThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <name>",
		Short: "Set the theme (shop themes must be owned)",
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
			name := args[0]
			if name != "default" && !ownsTheme(s.GetState().Profile, name) {
				return fmt.Errorf("theme %q is not owned; buy it in the shop first", name)
			}
			if err := s.SetTheme(ctx, name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Theme set to "+name+"."))
			return nil
		},
	}
}

func ownsTheme(p storage.Profile, name string) bool {
	for _, id := range p.Inventory {
		if id == "theme_"+name {
			return true
		}
	}
	return false
}

func newSettingsOnboardedCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "onboarded",
		Short:  "Mark the intro as seen",
		Hidden: true,
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
			return s.CompleteOnboarding(ctx)
		},
	}
}
