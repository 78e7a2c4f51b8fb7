package engine

import "github.com/Josephz007/level-up-progress-tracker/internal/store"

// XPPerLevel is the flat width of every level band.
const XPPerLevel = 100

// Level returns the level for a cumulative XP total: one level per 100 XP,
// starting at level 1.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPToNext returns how much XP is left before the next level.
func XPToNext(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return Level(xp)*XPPerLevel - xp
}

// applyXPDelta adjusts the progress XP by delta (floored at zero) and
// recomputes the derived level fields. Every XP mutation in the engine
// funnels through here so the cached fields can never drift.
func applyXPDelta(p *store.Progress, delta int) {
	p.CurrentXP += delta
	if p.CurrentXP < 0 {
		p.CurrentXP = 0
	}
	p.CurrentLevel = Level(p.CurrentXP)
	p.XPToNextLevel = XPToNext(p.CurrentXP)
}

// XPByCategory sums logged XP per category across the activity log.
func XPByCategory(p *store.Progress) map[string]int {
	out := map[string]int{}
	for _, entry := range p.DetailedLogs {
		for _, cat := range entry.Category {
			out[cat] += entry.XP
		}
	}
	return out
}
