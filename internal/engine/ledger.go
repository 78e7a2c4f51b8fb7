package engine

import (
	"time"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// CompletionCount returns how many times a task has been completed in the
// period that `at` resolves to. One-time tasks report at most 1.
func CompletionCount(p *store.Progress, c Cadence, task string, at time.Time) int {
	key, _ := ResolvePeriod(c, at)
	n := ledgerCount(p, string(c), task, key)
	if c == CadenceOneTime && n > 1 {
		return 1
	}
	return n
}

// RecordCompletions increments the ledger count by one for each named task.
// The period key and timestamp are resolved once for the whole batch, so a
// submission straddling midnight cannot split across two periods. Returns
// the period key used.
//
// Frequency gating is the orchestrator's job; this layer only counts.
func RecordCompletions(p *store.Progress, c Cadence, names []string, at time.Time) string {
	key, _ := ResolvePeriod(c, at)
	if p.CompletedTasks == nil {
		p.CompletedTasks = store.Ledger{}
	}
	cadence := string(c)
	if p.CompletedTasks[cadence] == nil {
		p.CompletedTasks[cadence] = map[string]map[string]int{}
	}
	for _, name := range names {
		if p.CompletedTasks[cadence][name] == nil {
			p.CompletedTasks[cadence][name] = map[string]int{}
		}
		p.CompletedTasks[cadence][name][key]++
	}
	return key
}

// DecrementCompletion lowers a ledger cell by one, floored at zero. Used
// only when reversing a logged completion; reports whether the cell
// existed. The cadence comes from the stored log entry, so it is a plain
// string here.
func DecrementCompletion(p *store.Progress, cadence, task, periodKey string) bool {
	counts := p.CompletedTasks[cadence][task]
	if counts == nil {
		return false
	}
	if _, ok := counts[periodKey]; !ok {
		return false
	}
	counts[periodKey]--
	if counts[periodKey] < 0 {
		counts[periodKey] = 0
	}
	return true
}

func ledgerCount(p *store.Progress, cadence, task, key string) int {
	return p.CompletedTasks[cadence][task][key]
}
