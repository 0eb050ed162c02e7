package storage

import (
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/schedule"
)

// ValidateDB checks the structural invariants of a persisted store before
// the core is allowed to compute over it. Any violation means the payload is
// corrupt; no repair is attempted.
func ValidateDB(db *models.DB) error {
	if db == nil {
		return errdefs.StorageCorrupt("store corrupted: empty payload")
	}
	if db.Version != models.SchemaVersion {
		return errdefs.StorageCorrupt("store corrupted: unsupported version %d", db.Version)
	}
	if db.Meta.NextHabitNumber < 1 {
		return errdefs.StorageCorrupt("store corrupted: invalid habit counter")
	}
	if db.Habits == nil || db.Checkins == nil {
		return errdefs.StorageCorrupt("store corrupted: missing records")
	}

	seen := map[string]bool{}
	for _, h := range db.Habits {
		if h.ID == "" || h.Name == "" {
			return errdefs.StorageCorrupt("store corrupted: habit with empty id or name")
		}
		if seen[h.ID] {
			return errdefs.StorageCorrupt("store corrupted: duplicate habit id %s", h.ID)
		}
		seen[h.ID] = true
		if err := schedule.Validate(h.Schedule); err != nil {
			return errdefs.StorageCorrupt("store corrupted: habit %s has invalid schedule", h.ID)
		}
		if h.Target.Period != models.PeriodDay && h.Target.Period != models.PeriodWeek {
			return errdefs.StorageCorrupt("store corrupted: habit %s has invalid period", h.ID)
		}
		if h.Target.Quantity < 1 {
			return errdefs.StorageCorrupt("store corrupted: habit %s has invalid target", h.ID)
		}
		if !dates.IsValid(h.CreatedDate) {
			return errdefs.StorageCorrupt("store corrupted: habit %s has invalid created_date", h.ID)
		}
		if h.ArchivedDate != "" && !dates.IsValid(h.ArchivedDate) {
			return errdefs.StorageCorrupt("store corrupted: habit %s has invalid archived_date", h.ID)
		}
	}

	pairs := map[[2]string]bool{}
	for _, c := range db.Checkins {
		if !seen[c.HabitID] {
			return errdefs.StorageCorrupt("store corrupted: check-in for unknown habit %s", c.HabitID)
		}
		if !dates.IsValid(c.Date) {
			return errdefs.StorageCorrupt("store corrupted: check-in with invalid date %s", c.Date)
		}
		if c.Quantity < 1 {
			return errdefs.StorageCorrupt("store corrupted: check-in with non-positive quantity")
		}
		key := [2]string{c.HabitID, c.Date}
		if pairs[key] {
			return errdefs.StorageCorrupt("store corrupted: duplicate check-in for %s on %s", c.HabitID, c.Date)
		}
		pairs[key] = true
	}

	return nil
}
