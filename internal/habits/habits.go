// Package habits holds the habit-level operations on the store aggregate:
// id allocation, ordering, selector resolution and schedule matching.
package habits

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/schedule"
)

var idPattern = regexp.MustCompile(`^h\d{4}$`)

// NextID allocates the next sequential habit id (h0001, h0002, ...) and
// advances the store counter.
func NextID(db *models.DB) string {
	n := db.Meta.NextHabitNumber
	db.Meta.NextHabitNumber = n + 1
	return fmt.Sprintf("h%04d", n)
}

// Less is the stable habit ordering used everywhere habits are listed:
// case-insensitive name ascending, ties broken by id.
func Less(a, b models.Habit) bool {
	an := strings.ToLower(a.Name)
	bn := strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}

// SortStable sorts habits in place by the stable ordering.
func SortStable(hs []models.Habit) {
	sort.SliceStable(hs, func(i, j int) bool { return Less(hs[i], hs[j]) })
}

// List returns habits in stable order, excluding archived ones unless asked.
func List(db *models.DB, includeArchived bool) []models.Habit {
	out := make([]models.Habit, 0, len(db.Habits))
	for _, h := range db.Habits {
		if includeArchived || !h.Archived {
			out = append(out, h)
		}
	}
	SortStable(out)
	return out
}

// Select resolves a selector to exactly one habit. An exact h0000-style id
// wins outright; otherwise the selector is a case-insensitive name prefix
// that must match a single habit. Returns the index into db.Habits so
// callers can mutate in place.
func Select(db *models.DB, selector string, includeArchived bool) (int, error) {
	s := strings.TrimSpace(selector)
	if s == "" {
		return -1, errdefs.InvalidInput("habit selector is required")
	}

	if idPattern.MatchString(s) {
		for i, h := range db.Habits {
			if h.ID == s {
				if !includeArchived && h.Archived {
					return -1, errdefs.NotFound("habit not found: %s", selector)
				}
				return i, nil
			}
		}
		return -1, errdefs.NotFound("habit not found: %s", selector)
	}

	prefix := strings.ToLower(s)
	var matches []int
	for i, h := range db.Habits {
		if !includeArchived && h.Archived {
			continue
		}
		if strings.HasPrefix(strings.ToLower(h.Name), prefix) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return -1, errdefs.NotFound("habit not found: %s", selector)
	case 1:
		return matches[0], nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return Less(db.Habits[matches[i]], db.Habits[matches[j]])
	})
	candidates := make([]errdefs.Candidate, len(matches))
	for i, idx := range matches {
		candidates[i] = errdefs.Candidate{ID: db.Habits[idx].ID, Name: db.Habits[idx].Name}
	}
	return -1, errdefs.Ambiguous(fmt.Sprintf("ambiguous habit selector %q", selector), candidates)
}

// NewParams collects the validated inputs for creating a habit.
type NewParams struct {
	Name            string
	SchedulePattern string
	Period          string
	Target          int
	Notes           string
	Today           string
}

// New builds a habit from raw inputs, validating the name, schedule pattern,
// period and target. The id must come from NextID.
func New(id string, p NewParams) (models.Habit, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return models.Habit{}, errdefs.InvalidInput("habit name is required")
	}

	pattern := p.SchedulePattern
	if pattern == "" {
		pattern = "everyday"
	}
	sched, err := schedule.ParsePattern(pattern)
	if err != nil {
		return models.Habit{}, err
	}

	period := models.Period(p.Period)
	if period == "" {
		period = models.PeriodDay
	}
	if period != models.PeriodDay && period != models.PeriodWeek {
		return models.Habit{}, errdefs.InvalidInput("invalid period: %s", p.Period)
	}

	target := p.Target
	if target == 0 {
		target = 1
	}
	if target < 1 {
		return models.Habit{}, errdefs.InvalidInput("invalid target: %d", p.Target)
	}

	return models.Habit{
		ID:          id,
		Name:        name,
		Schedule:    sched,
		Target:      models.Target{Period: period, Quantity: target},
		Notes:       p.Notes,
		CreatedDate: p.Today,
	}, nil
}

// IsScheduledOn reports whether the habit is due on the date. A habit is
// never due before its creation date, even when the weekday matches.
func IsScheduledOn(h models.Habit, date string) bool {
	if date < h.CreatedDate {
		return false
	}
	return schedule.Contains(h.Schedule, dates.ISOWeekday(date))
}
