package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
)

// SQLiteStore is the alternate backend, selected by a .db/.sqlite path
// extension. Read-modify-write cycles run inside an immediate transaction so
// concurrent processes serialize at the database level instead of a lock
// file.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	schedule_days TEXT NOT NULL,
	period        TEXT NOT NULL,
	target        INTEGER NOT NULL,
	notes         TEXT NOT NULL DEFAULT '',
	archived      INTEGER NOT NULL DEFAULT 0,
	created_date  TEXT NOT NULL,
	archived_date TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS checkins (
	habit_id TEXT NOT NULL,
	date     TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	PRIMARY KEY (habit_id, date)
);
`

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", "file:"+s.path+"?_txlock=immediate")
	if err != nil {
		return errdefs.StorageUnavailable("cannot open store: %v", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return errdefs.StorageUnavailable("cannot prepare store schema: %v", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errdefs.StorageUnavailable("cannot create storage directory: %v", err)
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.Update(func(*models.DB) error { return nil })
}

func (s *SQLiteStore) Load() (*models.DB, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.NewDB(), nil
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	db, err := readAll(s.db)
	if err != nil {
		return nil, err
	}
	if err := ValidateDB(db); err != nil {
		return nil, err
	}
	return db, nil
}

func (s *SQLiteStore) Update(mutate func(*models.DB) error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errdefs.StorageUnavailable("cannot create storage directory: %v", err)
	}
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errdefs.StorageUnavailable("store is busy: %v", err)
	}
	defer tx.Rollback()

	db, err := readAll(tx)
	if err != nil {
		return err
	}
	if err := ValidateDB(db); err != nil {
		return err
	}
	if err := mutate(db); err != nil {
		return err
	}
	if err := ValidateDB(db); err != nil {
		return err
	}
	if err := writeAll(tx, db); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return errdefs.StorageUnavailable("cannot commit store: %v", err)
	}
	return nil
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func readAll(q querier) (*models.DB, error) {
	db := models.NewDB()

	rows, err := q.Query("SELECT key, value FROM meta")
	if err != nil {
		return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
	}
	metaSeen := false
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			rows.Close()
			return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			rows.Close()
			return nil, errdefs.StorageCorrupt("store corrupted: meta %s=%s", key, value)
		}
		switch key {
		case "version":
			db.Version = n
			metaSeen = true
		case "next_habit_number":
			db.Meta.NextHabitNumber = n
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
	}
	if !metaSeen {
		// Fresh database with schema but no content yet.
		return db, nil
	}

	rows, err = q.Query(`SELECT id, name, schedule_days, period, target, notes, archived, created_date, archived_date
		FROM habits ORDER BY id`)
	if err != nil {
		return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
	}
	for rows.Next() {
		var h models.Habit
		var days string
		var archived int
		if err := rows.Scan(&h.ID, &h.Name, &days, &h.Target.Period, &h.Target.Quantity,
			&h.Notes, &archived, &h.CreatedDate, &h.ArchivedDate); err != nil {
			rows.Close()
			return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
		}
		if err := json.Unmarshal([]byte(days), &h.Schedule.Days); err != nil {
			rows.Close()
			return nil, errdefs.StorageCorrupt("store corrupted: habit %s schedule: %v", h.ID, err)
		}
		h.Schedule.Type = models.ScheduleDaysOfWeek
		h.Archived = archived != 0
		db.Habits = append(db.Habits, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
	}

	rows, err = q.Query("SELECT habit_id, date, quantity FROM checkins ORDER BY date, habit_id")
	if err != nil {
		return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
	}
	for rows.Next() {
		var c models.Checkin
		if err := rows.Scan(&c.HabitID, &c.Date, &c.Quantity); err != nil {
			rows.Close()
			return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
		}
		db.Checkins = append(db.Checkins, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errdefs.StorageUnavailable("cannot read store: %v", err)
	}

	return db, nil
}

func writeAll(tx *sql.Tx, db *models.DB) error {
	for _, stmt := range []string{"DELETE FROM meta", "DELETE FROM habits", "DELETE FROM checkins"} {
		if _, err := tx.Exec(stmt); err != nil {
			return errdefs.StorageUnavailable("cannot write store: %v", err)
		}
	}

	metaStmt, err := tx.Prepare("INSERT INTO meta (key, value) VALUES (?, ?)")
	if err != nil {
		return errdefs.StorageUnavailable("cannot write store: %v", err)
	}
	defer metaStmt.Close()
	if _, err := metaStmt.Exec("version", strconv.Itoa(db.Version)); err != nil {
		return errdefs.StorageUnavailable("cannot write store: %v", err)
	}
	if _, err := metaStmt.Exec("next_habit_number", strconv.Itoa(db.Meta.NextHabitNumber)); err != nil {
		return errdefs.StorageUnavailable("cannot write store: %v", err)
	}

	habitStmt, err := tx.Prepare(`INSERT INTO habits
		(id, name, schedule_days, period, target, notes, archived, created_date, archived_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errdefs.StorageUnavailable("cannot write store: %v", err)
	}
	defer habitStmt.Close()
	for _, h := range db.Habits {
		days, err := json.Marshal(h.Schedule.Days)
		if err != nil {
			return errdefs.StorageUnavailable("cannot write store: %v", err)
		}
		archived := 0
		if h.Archived {
			archived = 1
		}
		if _, err := habitStmt.Exec(h.ID, h.Name, string(days), string(h.Target.Period),
			h.Target.Quantity, h.Notes, archived, h.CreatedDate, h.ArchivedDate); err != nil {
			return errdefs.StorageUnavailable("cannot write store: %v", err)
		}
	}

	checkinStmt, err := tx.Prepare("INSERT INTO checkins (habit_id, date, quantity) VALUES (?, ?, ?)")
	if err != nil {
		return errdefs.StorageUnavailable("cannot write store: %v", err)
	}
	defer checkinStmt.Close()
	for _, c := range db.Checkins {
		if _, err := checkinStmt.Exec(c.HabitID, c.Date, c.Quantity); err != nil {
			return errdefs.StorageUnavailable("cannot write store: %v", err)
		}
	}

	return nil
}
