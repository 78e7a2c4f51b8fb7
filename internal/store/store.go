package store

import (
	"errors"
)

// Store is the persistence surface the engine talks to. Every Load returns
// a fresh decode of the underlying document (no caching across calls), and
// every Save replaces the whole document atomically.
type Store interface {
	LoadCatalog() (Catalog, error)
	LoadProgress() (*Progress, error)
	SaveProgress(p *Progress) error
	LoadRewards() (*Rewards, error)
	SaveRewards(r *Rewards) error
}

// ErrMissing is returned when a document does not exist yet. The scheduled
// reconciler treats it as "nothing to do"; interactive callers report it
// and let the user retry.
var ErrMissing = errors.New("store document missing")

// Document names shared by the backends.
const (
	docCatalog  = "tasks"
	docProgress = "progress"
	docRewards  = "rewards"
)
