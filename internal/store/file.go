package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each document as a JSON file under a data directory:
// tasks.json, progress.json, rewards.json. Writes go to a temp file in the
// same directory followed by a rename, so a reader never observes a
// half-written document.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(doc string) string {
	return filepath.Join(s.dir, doc+".json")
}

func (s *FileStore) load(doc string, v any) error {
	data, err := os.ReadFile(s.path(doc))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissing, s.path(doc))
		}
		return fmt.Errorf("read %s: %w", s.path(doc), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", s.path(doc), err)
	}
	return nil
}

func (s *FileStore) save(doc string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", doc, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, doc+".*.tmp")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", doc, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", doc, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", doc, err)
	}
	if err := os.Rename(tmp.Name(), s.path(doc)); err != nil {
		return fmt.Errorf("replace %s: %w", s.path(doc), err)
	}
	return nil
}

func (s *FileStore) LoadCatalog() (Catalog, error) {
	var c Catalog
	if err := s.load(docCatalog, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *FileStore) LoadProgress() (*Progress, error) {
	var p Progress
	if err := s.load(docProgress, &p); err != nil {
		return nil, err
	}
	p.normalize()
	return &p, nil
}

func (s *FileStore) SaveProgress(p *Progress) error {
	return s.save(docProgress, p)
}

func (s *FileStore) LoadRewards() (*Rewards, error) {
	var r Rewards
	if err := s.load(docRewards, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *FileStore) SaveRewards(r *Rewards) error {
	return s.save(docRewards, r)
}

// SaveCatalog is not part of the engine's Store contract (the catalog is
// read-only input) but is handy for seeding a new data directory.
func (s *FileStore) SaveCatalog(c Catalog) error {
	return s.save(docCatalog, c)
}
