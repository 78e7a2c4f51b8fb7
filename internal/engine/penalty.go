package engine

import (
	"math/rand"
	"time"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// Penalty pools. One miss draws from the light set; two or more misses
// escalate to the heavy set.
var (
	lightPenalties = []string{
		"Vacuum floor",
		"15 min stretching/meditating",
		"Take stairs instead of elevator for the day",
	}
	heavyPenalties = []string{
		"1 mile run",
		"Cold shower",
	}
)

// AssignPenalty builds the penalty record for a count of missed daily
// tasks, or nil when nothing was missed. Due date is tomorrow relative to
// now. The caller appends the record and persists.
func AssignPenalty(missed int, now time.Time, rng *rand.Rand) *store.Penalty {
	if missed <= 0 {
		return nil
	}
	pool := lightPenalties
	if missed >= 2 {
		pool = heavyPenalties
	}
	return &store.Penalty{
		ID:          store.NewPenaltyID(),
		DueDate:     now.AddDate(0, 0, 1).Format(store.DateLayout),
		Description: pool[rng.Intn(len(pool))],
		Completed:   false,
	}
}

// IsLightPenalty reports whether desc belongs to the light pool.
func IsLightPenalty(desc string) bool {
	for _, p := range lightPenalties {
		if p == desc {
			return true
		}
	}
	return false
}

// IsHeavyPenalty reports whether desc belongs to the heavy pool.
func IsHeavyPenalty(desc string) bool {
	for _, p := range heavyPenalties {
		if p == desc {
			return true
		}
	}
	return false
}

// CompletePenalty marks the identified penalty done and logs it. The log
// entry is what makes the completion reversible. Runs as one
// load→mutate→save unit.
func (s *Service) CompletePenalty(id string) error {
	p, err := s.store.LoadProgress()
	if err != nil {
		return err
	}

	pen := p.PenaltyByID(id)
	if pen == nil {
		return ErrPenaltyNotFound
	}
	if pen.Completed {
		return ErrPenaltyAlreadyDone
	}
	pen.Completed = true

	p.DetailedLogs = append(p.DetailedLogs, store.LogEntry{
		Name:      pen.Description,
		XP:        0,
		Category:  []string{"Penalty"},
		Kind:      store.KindPenalty,
		Date:      s.clock().Format(store.DateLayout),
		PenaltyID: pen.ID,
	})

	return s.store.SaveProgress(p)
}
