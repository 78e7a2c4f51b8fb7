package engine

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// Defaults applied by NewService; the CLI overrides them from config.
const DefaultResetPIN = "1849487"

var DefaultRewardCredit = decimal.NewFromInt(50)

// Service is the progress engine orchestrator. It owns every mutation of
// the progress and rewards documents. Two independent callers share it by
// contract, not by lock: the interactive surface and the cron-style
// reconciler each perform whole load→mutate→save operations against the
// store, never trusting state cached across operations.
type Service struct {
	store store.Store
	clock func() time.Time
	rng   *rand.Rand

	// ResetPIN gates the destructive reset operation.
	ResetPIN string
	// RewardCredit is the amount credited per claimed reward.
	RewardCredit decimal.Decimal
}

func NewService(st store.Store) *Service {
	return &Service{
		store:        st,
		clock:        time.Now,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		ResetPIN:     DefaultResetPIN,
		RewardCredit: DefaultRewardCredit,
	}
}

func (s *Service) Store() store.Store { return s.store }

// Progress returns a fresh read of the progress document.
func (s *Service) Progress() (*store.Progress, error) {
	return s.store.LoadProgress()
}

// Catalog returns a fresh read of the task catalog.
func (s *Service) Catalog() (store.Catalog, error) {
	return s.store.LoadCatalog()
}

// Rewards returns a fresh read of the rewards document.
func (s *Service) Rewards() (*store.Rewards, error) {
	return s.store.LoadRewards()
}

// Reset replaces the progress and rewards documents with their initial
// states. Requires the configured PIN; a mismatch mutates nothing.
func (s *Service) Reset(pin string) error {
	if pin != s.ResetPIN {
		return ErrInvalidPIN
	}
	if err := s.store.SaveProgress(InitialProgress()); err != nil {
		return err
	}
	return s.store.SaveRewards(InitialRewards())
}

// InitialProgress is the freshly-reset progress document: level 1, no XP,
// empty ledger, log, and penalties.
func InitialProgress() *store.Progress {
	ledger := store.Ledger{}
	for _, c := range Cadences {
		ledger[string(c)] = map[string]map[string]int{}
	}
	return &store.Progress{
		CurrentLevel:   1,
		CurrentXP:      0,
		XPToNextLevel:  XPPerLevel,
		CompletedTasks: ledger,
		Penalties:      []store.Penalty{},
		DetailedLogs:   []store.LogEntry{},
	}
}

// InitialRewards seeds the standard reward schedule: a fixed cash reward
// every five levels up to 50, all unclaimed, with a zeroed money ledger.
func InitialRewards() *store.Rewards {
	var rewards []store.Reward
	for lvl := 5; lvl <= 50; lvl += 5 {
		rewards = append(rewards, store.Reward{
			Level:       lvl,
			Description: "$50 to spend on yourself",
			Claimed:     false,
		})
	}
	zero := decimal.Zero
	return &store.Rewards{
		Rewards: rewards,
		Money: store.MoneyTracking{
			TotalEarned:     zero,
			TotalSpent:      zero,
			CurrentBalance:  zero,
			SpendingHistory: []store.SpendingEntry{},
		},
	}
}
