package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFileStoreMissingDocuments(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	if _, err := fs.LoadProgress(); !errors.Is(err, ErrMissing) {
		t.Fatalf("err=%v, want ErrMissing", err)
	}
	if _, err := fs.LoadCatalog(); !errors.Is(err, ErrMissing) {
		t.Fatalf("err=%v, want ErrMissing", err)
	}
	if _, err := fs.LoadRewards(); !errors.Is(err, ErrMissing) {
		t.Fatalf("err=%v, want ErrMissing", err)
	}
}

func TestFileStoreProgressRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	p := &Progress{
		CurrentLevel:  2,
		CurrentXP:     105,
		XPToNextLevel: 95,
		CompletedTasks: Ledger{
			"daily": {"Meditate": {"2025-06-22": 1}},
		},
		Penalties: []Penalty{
			{ID: "pen-1", DueDate: "2025-06-23", Description: "Cold shower"},
		},
		DetailedLogs: []LogEntry{
			{Name: "Meditate", XP: 20, Category: []string{"Health"}, Kind: "daily",
				Date: "2025-06-22", PeriodKey: "2025-06-22"},
		},
		LastPenaltyCheck: "2025-06-22",
	}
	if err := fs.SaveProgress(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := fs.LoadProgress()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentXP != 105 || got.CompletedTasks["daily"]["Meditate"]["2025-06-22"] != 1 {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if len(got.DetailedLogs) != 1 || got.DetailedLogs[0].PeriodKey != "2025-06-22" {
		t.Fatalf("logs: %+v", got.DetailedLogs)
	}
	if got.LastPenaltyCheck != "2025-06-22" {
		t.Fatalf("last check: %q", got.LastPenaltyCheck)
	}
}

func TestLoadProgressBackfillsPenaltyIDs(t *testing.T) {
	dir := t.TempDir()
	doc := `{
		"current_level": 1,
		"current_xp": 0,
		"xp_to_next_level": 100,
		"completed_tasks": {"daily": {}},
		"penalties": [
			{"due_date": "2025-06-23", "description": "Vacuum floor", "completed": false}
		],
		"detailed_logs": [],
		"daily_logs": [{"date": "2025-06-21", "earned_xp": 20}],
		"streaks": {"Meditate": 4}
	}`
	if err := os.WriteFile(filepath.Join(dir, "progress.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := NewFileStore(dir)
	p, err := fs.LoadProgress()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Penalties[0].ID == "" {
		t.Fatalf("legacy penalty id not backfilled")
	}
	if !strings.HasPrefix(p.Penalties[0].ID, "pen-") {
		t.Fatalf("id=%q, want pen- prefix", p.Penalties[0].ID)
	}

	// Unrecognized sibling fields survive a save/load cycle untouched.
	if err := fs.SaveProgress(p); err != nil {
		t.Fatalf("save: %v", err)
	}
	p2, err := fs.LoadProgress()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !strings.Contains(string(p2.Extra["daily_logs"]), "2025-06-21") {
		t.Fatalf("daily_logs not preserved: %s", p2.Extra["daily_logs"])
	}
	if !strings.Contains(string(p2.Extra["streaks"]), "Meditate") {
		t.Fatalf("streaks not preserved: %s", p2.Extra["streaks"])
	}
}

func TestLedgerToleratesLegacyArrayShape(t *testing.T) {
	var l Ledger
	doc := `{"daily": {"Meditate": {"2025-06-22": 1}}, "one_time": ["Set up gym membership"]}`
	if err := l.UnmarshalJSON([]byte(doc)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l["daily"]["Meditate"]["2025-06-22"] != 1 {
		t.Fatalf("map shape lost: %v", l)
	}
	if l["one_time"]["Set up gym membership"]["one-time"] != 1 {
		t.Fatalf("legacy array not converted: %v", l)
	}
}

func TestFileStoreRewardsRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	r := &Rewards{
		Rewards: []Reward{{Level: 5, Description: "$50 to spend on yourself"}},
		Money: MoneyTracking{
			TotalEarned:    decimal.NewFromInt(50),
			TotalSpent:     decimal.RequireFromString("12.50"),
			CurrentBalance: decimal.RequireFromString("37.50"),
			SpendingHistory: []SpendingEntry{
				{Date: "2025-06-22", Amount: decimal.RequireFromString("12.50"), Description: "movie night"},
			},
		},
	}
	if err := fs.SaveRewards(r); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := fs.LoadRewards()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Money.CurrentBalance.Equal(decimal.RequireFromString("37.50")) {
		t.Fatalf("balance=%s", got.Money.CurrentBalance)
	}
	if len(got.Money.SpendingHistory) != 1 {
		t.Fatalf("history=%+v", got.Money.SpendingHistory)
	}
}

func TestFileStoreWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	if err := fs.SaveProgress(&Progress{CurrentLevel: 1, XPToNextLevel: 100}); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("leftover temp file %q", e.Name())
		}
	}
}
