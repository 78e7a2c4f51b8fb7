package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Josephz007/level-up-progress-tracker/internal/ui"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Claim rewards and track spending",
	}

	cmd.AddCommand(newRewardClaimCmd(), newRewardSpendCmd())
	return cmd
}

func newRewardClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <level>",
		Short: "Claim the reward unlocked at a level",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward level is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("level must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := strconv.Atoi(args[0])

			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			claimed, err := svc.ClaimReward(level)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Claimed level %d reward: %s (+$%s)\n",
				ui.Gold.Render(ui.IconTrophy), claimed.Level, claimed.Description, svc.RewardCredit.String())
			return nil
		},
	}

	return cmd
}

func newRewardSpendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spend <amount> <description>...",
		Short: "Record spending against your balance",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("amount and description are required")
			}
			if _, err := decimal.NewFromString(args[0]); err != nil {
				return errors.New("amount must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return err
			}
			description := strings.Join(args[1:], " ")

			svc, cleanup, err := openService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RecordSpending(amount, description); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Spending recorded: $%s on %s\n",
				ui.Good.Render(ui.IconMoney), amount.String(), description)
			return nil
		},
	}

	return cmd
}
