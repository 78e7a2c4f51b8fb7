package engine

import (
	"testing"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp, level, toNext int
	}{
		{0, 1, 100},
		{99, 1, 1},
		{100, 2, 100},
		{105, 2, 95},
		{250, 3, 50},
		{-5, 1, 100}, // floored
	}
	for _, c := range cases {
		if got := Level(c.xp); got != c.level {
			t.Fatalf("Level(%d)=%d, want %d", c.xp, got, c.level)
		}
		if got := XPToNext(c.xp); got != c.toNext {
			t.Fatalf("XPToNext(%d)=%d, want %d", c.xp, got, c.toNext)
		}
	}
}

func TestLevelIdentity(t *testing.T) {
	for xp := 0; xp <= 1000; xp++ {
		if XPToNext(xp)+xp != Level(xp)*XPPerLevel {
			t.Fatalf("identity broken at xp=%d", xp)
		}
	}
}

func TestApplyXPDeltaFloorsAtZero(t *testing.T) {
	p := InitialProgress()
	applyXPDelta(p, 30)
	applyXPDelta(p, -50)
	if p.CurrentXP != 0 || p.CurrentLevel != 1 || p.XPToNextLevel != 100 {
		t.Fatalf("progress after negative overshoot: xp=%d level=%d next=%d",
			p.CurrentXP, p.CurrentLevel, p.XPToNextLevel)
	}
}

func TestXPByCategory(t *testing.T) {
	p := InitialProgress()
	p.DetailedLogs = []store.LogEntry{
		{Name: "Meditate", XP: 20, Category: []string{"Health", "Mind"}},
		{Name: "Workout", XP: 40, Category: []string{"Health"}},
		{Name: "Cold shower", XP: 0, Category: []string{"Penalty"}, Kind: store.KindPenalty},
	}
	got := XPByCategory(p)
	if got["Health"] != 60 || got["Mind"] != 20 || got["Penalty"] != 0 {
		t.Fatalf("XPByCategory=%v", got)
	}
}
