package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "levelup",
	Short:         "Level Up — recurring-task tracker with XP, rewards, and penalties",
	Long:          "Level Up tracks daily/weekly/monthly tasks, awards XP on completion, unlocks cash rewards by level, and assigns escalating penalties for missed daily tasks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.levelup.yaml)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newSubmitCmd(),
		newBoardCmd(),
		newHistoryCmd(),
		newPenaltyCmd(),
		newRewardCmd(),
		newReconcileCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
