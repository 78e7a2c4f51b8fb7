package engine

import (
	"math/rand"
	"testing"
	"time"
)

func TestAssignPenaltyEscalation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := at(2025, time.June, 22, 1, 5)

	if pen := AssignPenalty(0, now, rng); pen != nil {
		t.Fatalf("missed=0 must assign nothing, got %+v", pen)
	}

	for i := 0; i < 20; i++ {
		pen := AssignPenalty(1, now, rng)
		if pen == nil || !IsLightPenalty(pen.Description) {
			t.Fatalf("missed=1 draw #%d: %+v, want light penalty", i, pen)
		}
	}
	for _, missed := range []int{2, 3, 7} {
		for i := 0; i < 20; i++ {
			pen := AssignPenalty(missed, now, rng)
			if pen == nil || !IsHeavyPenalty(pen.Description) {
				t.Fatalf("missed=%d draw #%d: %+v, want heavy penalty", missed, i, pen)
			}
		}
	}
}

func TestAssignPenaltyDueTomorrow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pen := AssignPenalty(1, at(2025, time.December, 31, 1, 5), rng)
	if pen.DueDate != "2026-01-01" {
		t.Fatalf("due=%q, want 2026-01-01", pen.DueDate)
	}
	if pen.Completed {
		t.Fatalf("new penalty must start incomplete")
	}
}

func TestAssignPenaltyUniqueIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := at(2025, time.June, 22, 1, 5)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		pen := AssignPenalty(1, now, rng)
		if pen.ID == "" {
			t.Fatalf("penalty without id")
		}
		if seen[pen.ID] {
			t.Fatalf("duplicate id %q", pen.ID)
		}
		seen[pen.ID] = true
	}
}
