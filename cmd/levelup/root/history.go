package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the activity log (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Progress()
			if err != nil {
				return err
			}
			if len(p.DetailedLogs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No task history yet. Complete some tasks to see your history!")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Task History"))
			shown := 0
			for i := len(p.DetailedLogs) - 1; i >= 0; i-- {
				if limit > 0 && shown >= limit {
					break
				}
				entry := p.DetailedLogs[i]
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s %s\n",
					ui.Muted.Render(fmt.Sprintf("#%d", i)),
					ui.Key.Render(entry.Name),
					fmt.Sprintf("%d XP", entry.XP),
					ui.Muted.Render(entry.Date+" · "+entry.Kind))
				shown++
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Total: %d entries", len(p.DetailedLogs))))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "max entries to show (0 = all)")

	cmd.AddCommand(newHistoryDeleteCmd())
	return cmd
}

func newHistoryDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <entry#>",
		Short: "Delete a log entry and undo its effects",
		Long:  "Deletes an activity-log entry by its # from `history`. Task entries give back their XP and ledger count; penalty entries restore the penalty to incomplete.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("entry number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("entry number must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _ := strconv.Atoi(args[0])

			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ReverseLogEntry(index)
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" "+w))
			}
			if res.Entry.Kind == "penalty" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Penalty %q restored.\n",
					ui.Good.Render(ui.IconLoop), res.Entry.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Task %q deleted! %d XP deducted.\n",
					ui.Good.Render(ui.IconDone), res.Entry.Name, res.Entry.XP)
			}
			return nil
		},
	}

	return cmd
}
