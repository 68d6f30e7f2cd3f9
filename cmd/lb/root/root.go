package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifeboard/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lb",
	Short:         "Lifeboard — local-first life management with XP",
	Long:          "Lifeboard tracks tasks, habits, goals, energy, money, people, media and notes in a local store, with an XP/achievement layer on top.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var pinFlag string

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&pinFlag, "pin", "", "4-digit PIN when security is enabled")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newUndoCmd(),
		newListCmd(),
		newTaskCmd(),
		newGoalCmd(),
		newHabitCmd(),
		newEnergyCmd(),
		newMoneyCmd(),
		newContactCmd(),
		newMediaCmd(),
		newNoteCmd(),
		newTagCmd(),
		newShopCmd(),
		newChallengeCmd(),
		newBriefingCmd(),
		newReportCmd(),
		newInsightsCmd(),
		newScoreCmd(),
		newAchievementsCmd(),
		newLockCmd(),
		newStatusCmd(),
		newSettingsCmd(),
		newDashCmd(),
		newRemindCmd(),
		newResetCmd(),
		newXPCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
