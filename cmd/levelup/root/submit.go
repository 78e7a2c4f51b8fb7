package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/engine"
	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <cadence> <task>...",
		Short: "Record completed tasks and earn XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("cadence and at least one task name are required")
			}
			if _, err := engine.ParseCadence(args[0]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cadence, err := engine.ParseCadence(args[0])
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.SubmitTasks(cadence, args[1:])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Submitted! You earned %d XP for %s tasks %s\n",
				ui.Good.Render(ui.IconDone),
				res.EarnedXP, cadence,
				ui.Muted.Render("(period "+res.PeriodKey+")"))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n",
					ui.BadgeLevelUp, ui.IconSparkle, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	return cmd
}
