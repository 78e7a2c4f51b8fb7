package root

import (
	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive task checklist (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
