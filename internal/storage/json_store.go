package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
)

// JSONStore persists the aggregate as a single pretty-printed JSON file.
// Records are sorted before every write so identical stores serialize to
// identical bytes.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	return s.write(models.NewDB())
}

func (s *JSONStore) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errdefs.StorageUnavailable("cannot create storage directory: %v", err)
	}
	return nil
}

func (s *JSONStore) Load() (*models.DB, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewDB(), nil
		}
		return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
	}

	db := &models.DB{}
	if err := json.Unmarshal(data, db); err != nil {
		return nil, errdefs.StorageCorrupt("store corrupted: %v", err)
	}
	if err := ValidateDB(db); err != nil {
		return nil, err
	}
	return db, nil
}

func (s *JSONStore) Update(mutate func(*models.DB) error) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	lock, err := acquireLock(s.path)
	if err != nil {
		return err
	}
	defer lock.release()

	// Re-read inside the lock so a concurrent writer cannot be lost.
	db, err := s.Load()
	if err != nil {
		return err
	}
	if err := mutate(db); err != nil {
		return err
	}
	if err := ValidateDB(db); err != nil {
		return err
	}
	return s.write(db)
}

func (s *JSONStore) write(db *models.DB) error {
	sort.SliceStable(db.Habits, func(i, j int) bool { return db.Habits[i].ID < db.Habits[j].ID })
	sort.SliceStable(db.Checkins, func(i, j int) bool {
		if db.Checkins[i].Date != db.Checkins[j].Date {
			return db.Checkins[i].Date < db.Checkins[j].Date
		}
		return db.Checkins[i].HabitID < db.Checkins[j].HabitID
	})

	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return errdefs.StorageUnavailable("cannot serialize store: %v", err)
	}
	data = append(data, '\n')

	tmp := filepath.Join(filepath.Dir(s.path), fmt.Sprintf(".%s.tmp.%d", filepath.Base(s.path), os.Getpid()))
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errdefs.StorageUnavailable("cannot write store: %v", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errdefs.StorageUnavailable("cannot write store: %v", err)
	}
	return nil
}
