package store

import (
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form used everywhere in the documents
// (period keys, log dates, penalty due dates).
const DateLayout = "2006-01-02"

// TaskDef is one catalog entry. The engine never mutates these; the
// catalog document is edited by hand (or by whatever owns it).
type TaskDef struct {
	Name        string   `json:"name"`
	XP          int      `json:"xp"`
	Frequency   int      `json:"frequency,omitempty"`
	Category    []string `json:"category"`
	Description string   `json:"description,omitempty"`
}

// MaxPerPeriod returns how many times the task may be completed in one
// period. A missing/zero frequency means once.
func (t TaskDef) MaxPerPeriod() int {
	if t.Frequency <= 0 {
		return 1
	}
	return t.Frequency
}

// Catalog maps a cadence name ("daily", "weekly", ...) to its task list.
type Catalog map[string][]TaskDef

// Find returns the task definition with the given name under a cadence,
// or nil if no such task exists.
func (c Catalog) Find(cadence, name string) *TaskDef {
	for i := range c[cadence] {
		if c[cadence][i].Name == name {
			return &c[cadence][i]
		}
	}
	return nil
}

// Penalty is one assigned penalty. Completed flips true exactly once via
// the interactive path and back to false only through log reversal.
type Penalty struct {
	ID          string `json:"id,omitempty"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// LogEntry is one immutable activity-log record. Kind is either a cadence
// name or "penalty"; PeriodKey is set only for task completions and
// PenaltyID only for penalty entries.
type LogEntry struct {
	Name      string   `json:"name"`
	XP        int      `json:"xp"`
	Category  []string `json:"category"`
	Kind      string   `json:"type"`
	Date      string   `json:"date"`
	PeriodKey string   `json:"period_key,omitempty"`
	PenaltyID string   `json:"penalty_id,omitempty"`
}

// KindPenalty marks activity-log entries produced by completing a penalty.
const KindPenalty = "penalty"

// Ledger is the completion ledger: cadence → task name → period key → count.
type Ledger map[string]map[string]map[string]int

// UnmarshalJSON tolerates the legacy document shape where a cadence bucket
// (historically one_time) was seeded as a JSON array of task names.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	out := Ledger{}
	for cadence, body := range raw {
		var m map[string]map[string]int
		if err := json.Unmarshal(body, &m); err == nil {
			out[cadence] = m
			continue
		}
		var names []string
		if err := json.Unmarshal(body, &names); err != nil {
			return fmt.Errorf("ledger %q: unrecognized shape", cadence)
		}
		m = map[string]map[string]int{}
		for _, name := range names {
			m[name] = map[string]int{"one-time": 1}
		}
		out[cadence] = m
	}
	*l = out
	return nil
}

// Progress is the engine-owned progress document.
type Progress struct {
	CurrentLevel     int        `json:"current_level"`
	CurrentXP        int        `json:"current_xp"`
	XPToNextLevel    int        `json:"xp_to_next_level"`
	CompletedTasks   Ledger     `json:"completed_tasks"`
	Penalties        []Penalty  `json:"penalties"`
	DetailedLogs     []LogEntry `json:"detailed_logs"`
	LastPenaltyCheck string     `json:"last_penalty_check,omitempty"`

	// Extra holds sibling fields this program does not know about
	// (historical ones like daily_logs, or anything another writer adds).
	// They are carried verbatim so a save never loses them.
	Extra map[string]json.RawMessage `json:"-"`
}

// progressKnown carries the engine-owned fields through plain struct
// (de)serialization without recursing into the custom methods below.
type progressKnown Progress

var progressKeys = []string{
	"current_level", "current_xp", "xp_to_next_level",
	"completed_tasks", "penalties", "detailed_logs", "last_penalty_check",
}

// UnmarshalJSON decodes the known fields and stashes every other sibling
// field untouched in Extra.
func (p *Progress) UnmarshalJSON(data []byte) error {
	var known progressKnown
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range progressKeys {
		delete(raw, key)
	}
	if len(raw) == 0 {
		raw = nil
	}
	known.Extra = raw
	*p = Progress(known)
	return nil
}

// MarshalJSON writes the known fields and folds the preserved Extra
// fields back into the document.
func (p Progress) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(progressKnown(p))
	if err != nil || len(p.Extra) == 0 {
		return body, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(body, &merged); err != nil {
		return nil, err
	}
	for key, val := range p.Extra {
		if _, taken := merged[key]; !taken {
			merged[key] = val
		}
	}
	return json.Marshal(merged)
}

// PenaltyByID returns a pointer into Penalties, or nil.
func (p *Progress) PenaltyByID(id string) *Penalty {
	for i := range p.Penalties {
		if p.Penalties[i].ID == id {
			return &p.Penalties[i]
		}
	}
	return nil
}

// Reward is one level-gated reward.
type Reward struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
	Claimed     bool   `json:"claimed"`
}

// SpendingEntry records one user spend against the money ledger.
type SpendingEntry struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// MoneyTracking is the money ledger attached to the rewards document.
type MoneyTracking struct {
	TotalEarned     decimal.Decimal `json:"total_earned"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	SpendingHistory []SpendingEntry `json:"spending_history"`
}

// Rewards is the rewards document: reward list plus money ledger.
type Rewards struct {
	Rewards []Reward      `json:"rewards"`
	Money   MoneyTracking `json:"money_tracking"`
}

// NewPenaltyID returns a fresh penalty id. ULIDs carry a millisecond
// timestamp plus random bits, so two uncoordinated processes (interactive
// session and cron reconciler) cannot collide in practice.
func NewPenaltyID() string {
	return "pen-" + ulid.Make().String()
}

// backfillPenaltyIDs assigns ids to legacy penalties that predate them.
// Returns true if anything changed.
func backfillPenaltyIDs(p *Progress) bool {
	changed := false
	for i := range p.Penalties {
		if p.Penalties[i].ID == "" {
			p.Penalties[i].ID = NewPenaltyID()
			changed = true
		}
	}
	return changed
}

// normalize fills in the pieces older documents may lack so the engine
// can assume they exist.
func (p *Progress) normalize() {
	if p.CompletedTasks == nil {
		p.CompletedTasks = Ledger{}
	}
	backfillPenaltyIDs(p)
}
