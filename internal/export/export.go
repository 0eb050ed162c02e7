// Package export writes habits and check-ins as JSON or CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/output"
	"github.com/julianstephens/habitctl/internal/schedule"
)

// Payload is the JSON export document.
type Payload struct {
	Version  int              `json:"version"`
	Habits   []models.Habit   `json:"habits"`
	Checkins []models.Checkin `json:"checkins"`
}

// WriteJSON writes the payload to w.
func WriteJSON(w io.Writer, habits []models.Habit, checkins []models.Checkin) error {
	return output.PrintJSON(w, Payload{
		Version:  models.SchemaVersion,
		Habits:   habits,
		Checkins: checkins,
	})
}

// WriteCSVDir writes habits.csv and checkins.csv into outDir, creating it if
// needed.
func WriteCSVDir(outDir string, habits []models.Habit, checkins []models.Checkin) error {
	if err := os.MkdirAll(outDir, 0o700); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	habitRows := [][]string{
		{"id", "name", "schedule", "period", "target", "notes", "archived", "created_date", "archived_date"},
	}
	for _, h := range habits {
		habitRows = append(habitRows, []string{
			h.ID,
			h.Name,
			schedule.String(h.Schedule),
			string(h.Target.Period),
			strconv.Itoa(h.Target.Quantity),
			h.Notes,
			strconv.FormatBool(h.Archived),
			h.CreatedDate,
			h.ArchivedDate,
		})
	}
	if err := writeCSVFile(filepath.Join(outDir, "habits.csv"), habitRows); err != nil {
		return err
	}

	checkinRows := [][]string{{"habit_id", "date", "quantity"}}
	for _, c := range checkins {
		checkinRows = append(checkinRows, []string{c.HabitID, c.Date, strconv.Itoa(c.Quantity)})
	}
	return writeCSVFile(filepath.Join(outDir, "checkins.csv"), checkinRows)
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
