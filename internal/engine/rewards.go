package engine

import (
	"github.com/shopspring/decimal"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// Claimable reports whether a reward can be claimed at the given level.
func Claimable(r store.Reward, currentLevel int) bool {
	return currentLevel >= r.Level && !r.Claimed
}

// ClaimReward claims the reward gated at the given level threshold and
// credits the money ledger exactly once. The current level is re-derived
// from a fresh read of the progress document, not trusted from the caller.
func (s *Service) ClaimReward(levelThreshold int) (*store.Reward, error) {
	p, err := s.store.LoadProgress()
	if err != nil {
		return nil, err
	}
	r, err := s.store.LoadRewards()
	if err != nil {
		return nil, err
	}

	currentLevel := Level(p.CurrentXP)
	for i := range r.Rewards {
		if r.Rewards[i].Level != levelThreshold {
			continue
		}
		if !Claimable(r.Rewards[i], currentLevel) {
			return nil, ErrRewardNotClaimable
		}
		r.Rewards[i].Claimed = true
		r.Money.TotalEarned = r.Money.TotalEarned.Add(s.RewardCredit)
		r.Money.CurrentBalance = r.Money.CurrentBalance.Add(s.RewardCredit)
		if err := s.store.SaveRewards(r); err != nil {
			return nil, err
		}
		claimed := r.Rewards[i]
		return &claimed, nil
	}
	return nil, ErrRewardNotClaimable
}

// RecordSpending deducts from the balance and appends a spending-history
// entry. Independent of level and XP; rejects non-positive amounts and
// anything that would drive the balance negative.
func (s *Service) RecordSpending(amount decimal.Decimal, description string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	r, err := s.store.LoadRewards()
	if err != nil {
		return err
	}
	if amount.GreaterThan(r.Money.CurrentBalance) {
		return ErrInsufficientBalance
	}

	r.Money.TotalSpent = r.Money.TotalSpent.Add(amount)
	r.Money.CurrentBalance = r.Money.CurrentBalance.Sub(amount)
	r.Money.SpendingHistory = append(r.Money.SpendingHistory, store.SpendingEntry{
		Date:        s.clock().Format(store.DateLayout),
		Amount:      amount,
		Description: description,
	})
	return s.store.SaveRewards(r)
}
