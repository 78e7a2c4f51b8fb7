package engine

import (
	"fmt"
	"time"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

// GraceWindow is how long after a period boundary a completion still
// counts toward the period that just ended. One fixed hour for every
// recurring cadence.
const GraceWindow = time.Hour

// OneTimeKey is the constant period key for non-recurring tasks.
const OneTimeKey = "one-time"

// ResolvePeriod maps an instant to the canonical period key for a cadence,
// honoring the grace window: just after midnight counts as yesterday, just
// after Monday 00:00 as last week, just after the 1st as last month.
// Pure function of its arguments; t's location decides "local".
func ResolvePeriod(c Cadence, t time.Time) (key string, grace bool) {
	switch c {
	case CadenceDaily:
		dayStart := startOfDay(t)
		if t.Before(dayStart.Add(GraceWindow)) {
			return t.AddDate(0, 0, -1).Format(store.DateLayout), true
		}
		return t.Format(store.DateLayout), false

	case CadenceWeekly:
		weekStart := startOfDay(t).AddDate(0, 0, -mondayOffset(t))
		if t.Before(weekStart.Add(GraceWindow)) {
			return isoWeekKey(t.AddDate(0, 0, -7)), true
		}
		return isoWeekKey(t), false

	case CadenceMonthly:
		monthStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		if t.Before(monthStart.Add(GraceWindow)) {
			return monthStart.AddDate(0, -1, 0).Format("2006-01"), true
		}
		return t.Format("2006-01"), false

	default:
		return OneTimeKey, false
	}
}

// PeriodEnd returns the instant the current period closes (ignoring grace),
// ok=false for one-time tasks. Used by the surfaces to show time left.
func PeriodEnd(c Cadence, t time.Time) (end time.Time, ok bool) {
	switch c {
	case CadenceDaily:
		return startOfDay(t).AddDate(0, 0, 1), true
	case CadenceWeekly:
		return startOfDay(t).AddDate(0, 0, 7-mondayOffset(t)), true
	case CadenceMonthly:
		monthStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		return monthStart.AddDate(0, 1, 0), true
	default:
		return time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOffset is days since the ISO week started (Monday=0 .. Sunday=6).
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}
