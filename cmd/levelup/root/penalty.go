package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

func newPenaltyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "penalty",
		Short: "List and complete penalties",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconWarn, "Penalties"))
			active := 0
			for _, pen := range p.Penalties {
				if pen.Completed {
					continue
				}
				active++
				fmt.Fprintf(cmd.OutOrStdout(), "- Due %s: %s %s\n",
					pen.DueDate, pen.Description, ui.Muted.Render("("+pen.ID+")"))
			}
			if active == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("No active penalties!"))
			}
			return nil
		},
	}

	cmd.AddCommand(newPenaltyDoneCmd())
	return cmd
}

func newPenaltyDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <penalty-id>",
		Short: "Mark a penalty as completed",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("penalty id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.CompletePenalty(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				ui.Good.Render(ui.IconDone+" Penalty marked as completed and logged in history!"))
			return nil
		},
	}

	return cmd
}
