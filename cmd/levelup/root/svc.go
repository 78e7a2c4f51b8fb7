package root

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/config"
	"github.com/Josephz007/level-up-progress-tracker/internal/engine"
	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.Backend == config.BackendSQLite {
		s, err := store.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
	return store.NewFileStore(cfg.DataDir), func() {}, nil
}

func openService(cmd *cobra.Command) (*engine.Service, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, cleanup, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := engine.NewService(st)
	if cfg.ResetPIN != "" {
		svc.ResetPIN = cfg.ResetPIN
	}
	if cfg.RewardCredit != "" {
		credit, err := decimal.NewFromString(cfg.RewardCredit)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("config reward_credit: %w", err)
		}
		svc.RewardCredit = credit
	}
	return svc, cleanup, nil
}
