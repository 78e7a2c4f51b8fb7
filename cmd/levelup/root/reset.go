package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

func newResetCmd() *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all progress and reseed rewards (PIN required)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pin == "" {
				return errors.New("--pin is required")
			}

			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Reset(pin); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				ui.Good.Render(ui.IconDone+" Progress and rewards have been reset!"))
			return nil
		},
	}
	cmd.Flags().StringVar(&pin, "pin", "", "reset PIN")

	return cmd
}
