package engine

import (
	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// SubmitResult reports what one submission did.
type SubmitResult struct {
	Cadence     Cadence
	Names       []string
	PeriodKey   string
	EarnedXP    int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// SubmitTasks records the named tasks as completed for the cadence's
// current period, awards their XP, and logs one activity entry per task.
// The caller's checkbox state may be stale, so the frequency gate is
// re-checked here against a fresh read of the store before anything is
// written. One load→mutate→save unit.
func (s *Service) SubmitTasks(c Cadence, names []string) (*SubmitResult, error) {
	catalog, err := s.store.LoadCatalog()
	if err != nil {
		return nil, err
	}
	p, err := s.store.LoadProgress()
	if err != nil {
		return nil, err
	}

	now := s.clock()
	defs := make([]*store.TaskDef, 0, len(names))
	inBatch := map[string]int{}
	for _, name := range names {
		def := catalog.Find(string(c), name)
		if def == nil {
			return nil, UnknownTaskError{Cadence: c, Name: name}
		}
		// Earlier occurrences in this batch count against the
		// frequency too; a duplicated name must not slip past the
		// gate just because the ledger has not been written yet.
		if CompletionCount(p, c, name, now)+inBatch[name] >= def.MaxPerPeriod() {
			return nil, OverSubmissionError{Cadence: c, Name: name}
		}
		inBatch[name]++
		defs = append(defs, def)
	}

	levelBefore := Level(p.CurrentXP)
	periodKey := RecordCompletions(p, c, names, now)

	earned := 0
	today := now.Format(store.DateLayout)
	for _, def := range defs {
		earned += def.XP
		p.DetailedLogs = append(p.DetailedLogs, store.LogEntry{
			Name:      def.Name,
			XP:        def.XP,
			Category:  def.Category,
			Kind:      string(c),
			Date:      today,
			PeriodKey: periodKey,
		})
	}
	applyXPDelta(p, earned)

	if err := s.store.SaveProgress(p); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Cadence:     c,
		Names:       names,
		PeriodKey:   periodKey,
		EarnedXP:    earned,
		LevelBefore: levelBefore,
		LevelAfter:  p.CurrentLevel,
		LevelUp:     p.CurrentLevel > levelBefore,
	}, nil
}
