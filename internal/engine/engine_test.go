package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Josephz007/level-up-progress-tracker/internal/store"
)

func testCatalog() store.Catalog {
	return store.Catalog{
		"daily": {
			{Name: "Meditate", XP: 20, Category: []string{"Health"}, Description: "10 minutes"},
			{Name: "Workout", XP: 40, Category: []string{"Health"}},
			{Name: "Drink water", XP: 5, Frequency: 3, Category: []string{"Health"}},
		},
		"weekly": {
			{Name: "Meal prep", XP: 35, Category: []string{"Home"}},
		},
		"monthly": {
			{Name: "Budget review", XP: 30, Category: []string{"Finance"}},
		},
		"one_time": {
			{Name: "Set up gym membership", XP: 50, Category: []string{"Health"}},
		},
	}
}

func newTestServiceWith(t *testing.T, catalog store.Catalog) *Service {
	t.Helper()
	fs := store.NewFileStore(t.TempDir())
	if err := fs.SaveCatalog(catalog); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	if err := fs.SaveProgress(InitialProgress()); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if err := fs.SaveRewards(InitialRewards()); err != nil {
		t.Fatalf("seed rewards: %v", err)
	}

	svc := NewService(fs)
	svc.rng = rand.New(rand.NewSource(1))
	return svc
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return newTestServiceWith(t, testCatalog())
}

// setClock pins the service clock to a fixed instant.
func setClock(svc *Service, instant time.Time) {
	svc.clock = func() time.Time { return instant }
}

func mustProgress(t *testing.T, svc *Service) *store.Progress {
	t.Helper()
	p, err := svc.Progress()
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	return p
}
