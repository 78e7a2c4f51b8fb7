package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the user.
var (
	// ErrInvalidPIN is returned when the reset PIN does not match.
	// Nothing is mutated.
	ErrInvalidPIN = errors.New("incorrect PIN; progress was not deleted")

	// ErrPenaltyNotFound is returned when a penalty id does not exist.
	ErrPenaltyNotFound = errors.New("penalty not found")

	// ErrPenaltyAlreadyDone is returned when completing a penalty twice.
	ErrPenaltyAlreadyDone = errors.New("penalty already completed")

	// ErrRewardNotClaimable is returned for a claim below the reward's
	// level threshold or for an already-claimed reward.
	ErrRewardNotClaimable = errors.New("reward is not claimable")

	// ErrInsufficientBalance is returned when a spend exceeds the
	// current balance.
	ErrInsufficientBalance = errors.New("spending exceeds current balance")

	// ErrNonPositiveAmount is returned for zero or negative spends.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrLogIndexOutOfRange is returned for a reversal index that does
	// not identify a log entry.
	ErrLogIndexOutOfRange = errors.New("no such activity-log entry")
)

// UnknownTaskError indicates a submitted name with no catalog definition.
type UnknownTaskError struct {
	Cadence Cadence
	Name    string
}

func (e UnknownTaskError) Error() string {
	return fmt.Sprintf("no %s task named %q in the catalog", e.Cadence, e.Name)
}

// OverSubmissionError indicates a completion past the task's per-period
// frequency. The orchestrator gate catches this before the ledger is
// touched; seeing it means the caller skipped the pre-check.
type OverSubmissionError struct {
	Cadence Cadence
	Name    string
}

func (e OverSubmissionError) Error() string {
	return fmt.Sprintf("%s task %q already completed the maximum times this period", e.Cadence, e.Name)
}
