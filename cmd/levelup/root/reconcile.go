package root

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reconcile is the unattended entry point, meant for cron shortly after
// the daily grace window closes:
//
//	5 1 * * * levelup reconcile
//
// It must run to completion even when the interactive surface is closed,
// and exit cleanly when there is nothing to act on.
func newReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Assign penalties for yesterday's missed daily tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			svc, cleanup, err := openService(cmd)
			if err != nil {
				logger.Error("open stores", zap.Error(err))
				return err
			}
			defer cleanup()

			res, err := svc.Reconcile()
			if err != nil {
				logger.Error("reconcile failed", zap.Error(err))
				return err
			}

			switch {
			case res.NoStores:
				logger.Info("stores missing; nothing to reconcile")
			case res.Skipped:
				logger.Info("already reconciled today; skipping",
					zap.String("yesterday", res.YesterdayKey))
			case res.Penalty != nil:
				logger.Info("assigned penalty for missed daily tasks",
					zap.String("yesterday", res.YesterdayKey),
					zap.Int("daily_tasks", res.DailyTasks),
					zap.Int("missed", len(res.Missed)),
					zap.String("missed_tasks", strings.Join(res.Missed, ", ")),
					zap.String("penalty", res.Penalty.Description),
					zap.String("due", res.Penalty.DueDate),
					zap.String("id", res.Penalty.ID))
			default:
				logger.Info("all daily tasks were completed; no penalties assigned",
					zap.String("yesterday", res.YesterdayKey),
					zap.Int("daily_tasks", res.DailyTasks))
			}
			return nil
		},
	}

	return cmd
}
