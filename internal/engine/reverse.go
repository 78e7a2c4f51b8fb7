package engine

import (
	"fmt"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// ReverseResult reports what undoing a log entry did.
type ReverseResult struct {
	Entry store.LogEntry
	// Warnings lists adjustments that were skipped because their
	// referent no longer exists. The entry is removed regardless.
	Warnings []string
}

// ReverseLogEntry is the single undo mechanism: it exactly inverts the
// forward operation behind the activity-log entry at index (oldest first).
//
// Penalty entries flip the referenced penalty back to incomplete. Task
// entries decrement the matching ledger cell and deduct the entry's XP
// (floored at zero), recomputing the level. Dangling references are
// skipped with a warning rather than failing, and the log entry is
// removed either way. One load→mutate→save unit.
func (s *Service) ReverseLogEntry(index int) (*ReverseResult, error) {
	p, err := s.store.LoadProgress()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(p.DetailedLogs) {
		return nil, ErrLogIndexOutOfRange
	}

	entry := p.DetailedLogs[index]
	res := &ReverseResult{Entry: entry}

	if entry.Kind == store.KindPenalty {
		if pen := p.PenaltyByID(entry.PenaltyID); pen != nil {
			pen.Completed = false
		} else {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("penalty %s no longer exists; restored nothing", entry.PenaltyID))
		}
	} else {
		if entry.PeriodKey == "" || !DecrementCompletion(p, entry.Kind, entry.Name, entry.PeriodKey) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("no ledger entry for %s %q in %s; count unchanged", entry.Kind, entry.Name, entry.PeriodKey))
		}
		applyXPDelta(p, -entry.XP)
	}

	p.DetailedLogs = append(p.DetailedLogs[:index], p.DetailedLogs[index+1:]...)

	if err := s.store.SaveProgress(p); err != nil {
		return nil, err
	}
	return res, nil
}
