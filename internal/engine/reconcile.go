package engine

import (
	"errors"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// ReconcileResult summarizes one scheduled reconciliation run.
type ReconcileResult struct {
	// Skipped is set when this day was already reconciled.
	Skipped bool
	// NoStores is set when the documents do not exist yet; nothing to do.
	NoStores bool

	YesterdayKey string
	DailyTasks   int
	Missed       []string
	Penalty      *store.Penalty
}

// Reconcile is the unattended daily check, intended to run shortly after
// the grace window closes (e.g. cron at 01:05). It counts catalog daily
// tasks with no ledger entry for yesterday's period key and assigns one
// escalating penalty when anything was missed.
//
// A same-day re-run is a no-op: the progress document records the last
// reconciled date and the check skips when it matches today, so a flaky
// scheduler cannot double-assign penalties.
func (s *Service) Reconcile() (*ReconcileResult, error) {
	catalog, err := s.store.LoadCatalog()
	if err != nil {
		if errors.Is(err, store.ErrMissing) {
			return &ReconcileResult{NoStores: true}, nil
		}
		return nil, err
	}
	p, err := s.store.LoadProgress()
	if err != nil {
		if errors.Is(err, store.ErrMissing) {
			return &ReconcileResult{NoStores: true}, nil
		}
		return nil, err
	}

	now := s.clock()
	today := now.Format(store.DateLayout)
	yesterdayKey := now.AddDate(0, 0, -1).Format(store.DateLayout)

	res := &ReconcileResult{YesterdayKey: yesterdayKey}
	if p.LastPenaltyCheck == today {
		res.Skipped = true
		return res, nil
	}

	daily := catalog[string(CadenceDaily)]
	res.DailyTasks = len(daily)
	completed := p.CompletedTasks[string(CadenceDaily)]
	for _, task := range daily {
		if completed[task.Name][yesterdayKey] == 0 {
			res.Missed = append(res.Missed, task.Name)
		}
	}

	if pen := AssignPenalty(len(res.Missed), now, s.rng); pen != nil {
		p.Penalties = append(p.Penalties, *pen)
		res.Penalty = pen
	}
	p.LastPenaltyCheck = today

	if err := s.store.SaveProgress(p); err != nil {
		return nil, err
	}
	return res, nil
}
