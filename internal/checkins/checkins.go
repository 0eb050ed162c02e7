// Package checkins maintains the quantity ledger keyed by (habit, date).
package checkins

import (
	"sort"

	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
)

func indexOf(db *models.DB, habitID, date string) int {
	for i, c := range db.Checkins {
		if c.HabitID == habitID && c.Date == date {
			return i
		}
	}
	return -1
}

// Quantity returns the recorded quantity for a (habit, date), zero when no
// check-in exists.
func Quantity(db *models.DB, habitID, date string) int {
	if i := indexOf(db, habitID, date); i >= 0 {
		return db.Checkins[i].Quantity
	}
	return 0
}

// Set records an absolute quantity. Zero removes the ledger row so the store
// never retains empty check-ins.
func Set(db *models.DB, habitID, date string, quantity int) error {
	if _, err := dates.Parse(date, "date"); err != nil {
		return err
	}
	if quantity < 0 {
		return errdefs.InvalidInput("invalid quantity: %d", quantity)
	}

	i := indexOf(db, habitID, date)
	if quantity == 0 {
		if i >= 0 {
			db.Checkins = append(db.Checkins[:i], db.Checkins[i+1:]...)
		}
		return nil
	}
	if i >= 0 {
		db.Checkins[i].Quantity = quantity
	} else {
		db.Checkins = append(db.Checkins, models.Checkin{HabitID: habitID, Date: date, Quantity: quantity})
	}
	return nil
}

// Add increments the quantity for a (habit, date) by a positive delta and
// returns the new total.
func Add(db *models.DB, habitID, date string, delta int) (int, error) {
	if _, err := dates.Parse(date, "date"); err != nil {
		return 0, err
	}
	if delta < 1 {
		return 0, errdefs.InvalidInput("invalid quantity: %d", delta)
	}
	total := Quantity(db, habitID, date) + delta
	if err := Set(db, habitID, date, total); err != nil {
		return 0, err
	}
	return total, nil
}

// WeekSum totals a habit's quantities across the ISO week starting at
// weekStart, skipping days before the habit existed.
func WeekSum(db *models.DB, h models.Habit, weekStart string) int {
	sum := 0
	end := dates.ISOWeekEnd(weekStart)
	for d := weekStart; d <= end; d = dates.AddDays(d, 1) {
		if d < h.CreatedDate {
			continue
		}
		sum += Quantity(db, h.ID, d)
	}
	return sum
}

func sortLedger(cs []models.Checkin) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Date != cs[j].Date {
			return cs[i].Date < cs[j].Date
		}
		return cs[i].HabitID < cs[j].HabitID
	})
}

// ListForHabit returns a habit's check-ins ordered by date.
func ListForHabit(db *models.DB, habitID string) []models.Checkin {
	var out []models.Checkin
	for _, c := range db.Checkins {
		if c.HabitID == habitID {
			out = append(out, c)
		}
	}
	sortLedger(out)
	return out
}

// RangeFilter narrows ListInRange. Empty bounds mean unbounded; a nil id set
// means all habits.
type RangeFilter struct {
	From     string
	To       string
	HabitIDs map[string]bool
}

// ListInRange returns check-ins matching the filter, ordered by date then
// habit id.
func ListInRange(db *models.DB, f RangeFilter) []models.Checkin {
	out := []models.Checkin{}
	for _, c := range db.Checkins {
		if f.HabitIDs != nil && !f.HabitIDs[c.HabitID] {
			continue
		}
		if f.From != "" && c.Date < f.From {
			continue
		}
		if f.To != "" && c.Date > f.To {
			continue
		}
		out = append(out, c)
	}
	sortLedger(out)
	return out
}
