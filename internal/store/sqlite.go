package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the documents in a single-table SQLite shelf. Each
// save runs in its own transaction, which gives the same all-or-nothing
// guarantee the file backend gets from rename.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the document database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			name TEXT PRIMARY KEY,
			body BLOB NOT NULL
		);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate documents: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) load(doc string, v any) error {
	row := s.db.QueryRow(`SELECT body FROM documents WHERE name = ?`, doc)
	var body []byte
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: %s", ErrMissing, doc)
		}
		return fmt.Errorf("document get %s: %w", doc, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", doc, err)
	}
	return nil
}

func (s *SQLiteStore) save(doc string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", doc, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO documents (name, body) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body
	`, doc, body); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("document put %s: %w", doc, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadCatalog() (Catalog, error) {
	var c Catalog
	if err := s.load(docCatalog, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) LoadProgress() (*Progress, error) {
	var p Progress
	if err := s.load(docProgress, &p); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}

func (s *SQLiteStore) SaveProgress(p *Progress) error {
	return s.save(docProgress, p)
}

func (s *SQLiteStore) LoadRewards() (*Rewards, error) {
	var r Rewards
	if err := s.load(docRewards, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteStore) SaveRewards(r *Rewards) error {
	return s.save(docRewards, r)
}

// SaveCatalog mirrors FileStore.SaveCatalog for seeding.
func (s *SQLiteStore) SaveCatalog(c Catalog) error {
	return s.save(docCatalog, c)
}
