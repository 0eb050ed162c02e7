// Package schedule parses and canonicalizes weekly day-of-week patterns.
package schedule

import (
	"sort"
	"strings"

	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
)

var dayNameToISO = map[string]int{
	"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,
}

var isoToDayName = [8]string{"", "mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// ParsePattern recognizes the keywords everyday, weekdays and weekends, or a
// comma-separated list of three-letter day abbreviations. Days come back
// deduplicated and sorted ascending.
func ParsePattern(raw string) (models.Schedule, error) {
	pattern := strings.ToLower(strings.TrimSpace(raw))
	if pattern == "" {
		return models.Schedule{}, errdefs.InvalidInput("invalid schedule pattern")
	}

	var days []int
	switch pattern {
	case "everyday":
		days = []int{1, 2, 3, 4, 5, 6, 7}
	case "weekdays":
		days = []int{1, 2, 3, 4, 5}
	case "weekends":
		days = []int{6, 7}
	default:
		seen := map[int]bool{}
		for _, part := range strings.Split(pattern, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			iso, ok := dayNameToISO[part]
			if !ok {
				return models.Schedule{}, errdefs.InvalidInput("invalid schedule pattern: %s", raw)
			}
			if !seen[iso] {
				seen[iso] = true
				days = append(days, iso)
			}
		}
		if len(days) == 0 {
			return models.Schedule{}, errdefs.InvalidInput("invalid schedule pattern: %s", raw)
		}
		sort.Ints(days)
	}

	return models.Schedule{Type: models.ScheduleDaysOfWeek, Days: days}, nil
}

// String canonicalizes a schedule back to text. Day sets matching a keyword
// render as the keyword, so round-trips are canonical-equivalent rather than
// literal-equivalent.
func String(s models.Schedule) string {
	days := append([]int(nil), s.Days...)
	sort.Ints(days)

	consecutiveFromMonday := func(n int) bool {
		if len(days) != n {
			return false
		}
		for i, d := range days {
			if d != i+1 {
				return false
			}
		}
		return true
	}

	switch {
	case consecutiveFromMonday(7):
		return "everyday"
	case consecutiveFromMonday(5):
		return "weekdays"
	case len(days) == 2 && days[0] == 6 && days[1] == 7:
		return "weekends"
	}

	names := make([]string, len(days))
	for i, d := range days {
		names[i] = isoToDayName[d]
	}
	return strings.Join(names, ",")
}

// Validate checks the structural invariants: known type, at least one day,
// every day in 1..7.
func Validate(s models.Schedule) error {
	if s.Type != models.ScheduleDaysOfWeek || len(s.Days) == 0 {
		return errdefs.InvalidInput("invalid schedule")
	}
	for _, d := range s.Days {
		if d < 1 || d > 7 {
			return errdefs.InvalidInput("invalid schedule")
		}
	}
	return nil
}

// Contains reports whether the ISO weekday is part of the schedule.
func Contains(s models.Schedule, isoWeekday int) bool {
	for _, d := range s.Days {
		if d == isoWeekday {
			return true
		}
	}
	return false
}
