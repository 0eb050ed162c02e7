// Package dates implements the calendar arithmetic every status and stats
// computation reduces to. Dates are plain YYYY-MM-DD strings in a fixed UTC
// calendar, so lexicographic comparison is date comparison.
package dates

import (
	"fmt"
	"regexp"
	"time"

	"github.com/julianstephens/habitctl/internal/errdefs"
)

const Layout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Parse validates a strict YYYY-MM-DD string, rejecting impossible calendar
// values such as 2024-02-30. The label names the field in the error message.
func Parse(s, label string) (string, error) {
	if label == "" {
		label = "date"
	}
	if !datePattern.MatchString(s) {
		return "", errdefs.InvalidInput("invalid %s: %s", label, s)
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil || t.Format(Layout) != s {
		return "", errdefs.InvalidInput("invalid %s: %s", label, s)
	}
	return s, nil
}

// IsValid reports whether s is a parseable calendar date.
func IsValid(s string) bool {
	_, err := Parse(s, "")
	return err == nil
}

func mustTime(s string) time.Time {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		panic(fmt.Sprintf("dates: malformed date %q reached arithmetic", s))
	}
	return t
}

// AddDays shifts a date by n calendar days, handling month, year and leap
// rollover. The input must already be validated.
func AddDays(date string, n int) string {
	return mustTime(date).AddDate(0, 0, n).Format(Layout)
}

// ISOWeekday returns Mon=1..Sun=7 for a date.
func ISOWeekday(date string) int {
	wd := int(mustTime(date).Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ISOWeekStart returns the Monday of the date's ISO week.
func ISOWeekStart(date string) string {
	return AddDays(date, -(ISOWeekday(date) - 1))
}

// ISOWeekEnd returns the Sunday of the date's ISO week.
func ISOWeekEnd(date string) string {
	return AddDays(ISOWeekStart(date), 6)
}

// ISOWeekID returns the ISO 8601 week id, e.g. "2024-W01". The week-year can
// differ from the calendar year at year boundaries.
func ISOWeekID(date string) string {
	year, week := mustTime(date).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// Range returns every date from from to to inclusive, in order.
func Range(from, to string) ([]string, error) {
	if _, err := Parse(from, "from"); err != nil {
		return nil, err
	}
	if _, err := Parse(to, "to"); err != nil {
		return nil, err
	}
	if from > to {
		return nil, errdefs.InvalidInput("invalid range: from %s is after to %s", from, to)
	}
	var out []string
	for cur := from; cur <= to; cur = AddDays(cur, 1) {
		out = append(out, cur)
	}
	return out, nil
}

// Today returns the system date in the local calendar.
func Today() string {
	return time.Now().Format(Layout)
}
