package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

func setXP(t *testing.T, svc *Service, xp int) {
	t.Helper()
	p := mustProgress(t, svc)
	p.CurrentXP = 0
	applyXPDelta(p, xp)
	if err := svc.Store().SaveProgress(p); err != nil {
		t.Fatalf("save progress: %v", err)
	}
}

func TestClaimable(t *testing.T) {
	r := store.Reward{Level: 5}
	if Claimable(r, 4) {
		t.Fatalf("claimable below threshold")
	}
	if !Claimable(r, 5) {
		t.Fatalf("not claimable at threshold")
	}
	r.Claimed = true
	if Claimable(r, 10) {
		t.Fatalf("claimable after claim")
	}
}

func TestClaimRewardCreditsOnce(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.ClaimReward(5); !errors.Is(err, ErrRewardNotClaimable) {
		t.Fatalf("claim at level 1 err=%v, want ErrRewardNotClaimable", err)
	}

	setXP(t, svc, 420) // level 5
	claimed, err := svc.ClaimReward(5)
	if err != nil {
		t.Fatalf("ClaimReward: %v", err)
	}
	if !claimed.Claimed || claimed.Level != 5 {
		t.Fatalf("claimed=%+v", claimed)
	}

	r, err := svc.Rewards()
	if err != nil {
		t.Fatalf("load rewards: %v", err)
	}
	fifty := decimal.NewFromInt(50)
	if !r.Money.TotalEarned.Equal(fifty) || !r.Money.CurrentBalance.Equal(fifty) {
		t.Fatalf("money=%+v, want +50 earned and balance", r.Money)
	}

	if _, err := svc.ClaimReward(5); !errors.Is(err, ErrRewardNotClaimable) {
		t.Fatalf("double claim err=%v, want ErrRewardNotClaimable", err)
	}
	r, _ = svc.Rewards()
	if !r.Money.TotalEarned.Equal(fifty) {
		t.Fatalf("double claim must not credit twice: %+v", r.Money)
	}
}

func TestRecordSpending(t *testing.T) {
	svc := newTestService(t)
	setClock(svc, at(2025, time.June, 22, 14, 0))
	setXP(t, svc, 420)
	if _, err := svc.ClaimReward(5); err != nil {
		t.Fatalf("claim: %v", err)
	}

	if err := svc.RecordSpending(decimal.NewFromInt(-1), "nope"); !errors.Is(err, ErrNonPositiveAmount) {
		t.Fatalf("negative amount err=%v", err)
	}
	if err := svc.RecordSpending(decimal.NewFromInt(60), "too much"); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("over-balance err=%v", err)
	}

	if err := svc.RecordSpending(decimal.RequireFromString("12.50"), "movie night"); err != nil {
		t.Fatalf("RecordSpending: %v", err)
	}
	r, err := svc.Rewards()
	if err != nil {
		t.Fatalf("load rewards: %v", err)
	}
	if !r.Money.CurrentBalance.Equal(decimal.RequireFromString("37.50")) {
		t.Fatalf("balance=%s, want 37.50", r.Money.CurrentBalance)
	}
	if !r.Money.TotalSpent.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("spent=%s, want 12.50", r.Money.TotalSpent)
	}
	if len(r.Money.SpendingHistory) != 1 || r.Money.SpendingHistory[0].Description != "movie night" ||
		r.Money.SpendingHistory[0].Date != "2025-06-22" {
		t.Fatalf("history=%+v", r.Money.SpendingHistory)
	}
}
