// Package recap summarizes per-habit completion percentages over a named
// trailing range.
package recap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/stats"
)

type Range string

const (
	RangeYTD   Range = "ytd"   // Jan 1 of the reference year through today
	RangeMonth Range = "month" // trailing 30 days including today
	RangeWeek  Range = "week"  // trailing 7 days including today
)

type RangeInfo struct {
	Kind string `json:"kind"`
	From string `json:"from"`
	To   string `json:"to"`
}

type Row struct {
	HabitID     string        `json:"habit_id"`
	Name        string        `json:"name"`
	Period      models.Period `json:"period"`
	TargetLabel string        `json:"target_label"`
	Target      int           `json:"target"`
	Successes   int           `json:"successes"`
	Eligible    int           `json:"eligible"`
	Rate        *float64      `json:"rate"`
	Percent     *int          `json:"percent"`
	Range       RangeInfo     `json:"range"`
}

// Dates resolves a named range to its inclusive window relative to today.
func Dates(r Range, today string) (string, string, error) {
	switch r {
	case RangeYTD:
		return today[:4] + "-01-01", today, nil
	case RangeMonth:
		return dates.AddDays(today, -29), today, nil
	case RangeWeek:
		return dates.AddDays(today, -6), today, nil
	}
	return "", "", errdefs.InvalidInput("invalid recap range: %s", r)
}

func newRow(h models.Habit, successes, eligible int, info RangeInfo) Row {
	row := Row{
		HabitID:     h.ID,
		Name:        h.Name,
		Period:      h.Target.Period,
		TargetLabel: fmt.Sprintf("%d/%s", h.Target.Quantity, h.Target.Period),
		Target:      h.Target.Quantity,
		Successes:   successes,
		Eligible:    eligible,
		Range:       info,
	}
	if eligible > 0 {
		r := float64(successes) / float64(eligible)
		p := int(math.Round(r * 100))
		row.Rate = &r
		row.Percent = &p
	}
	return row
}

func dailyRow(db *models.DB, h models.Habit, from, to string, info RangeInfo) (Row, error) {
	days, err := dates.Range(from, to)
	if err != nil {
		return Row{}, err
	}
	eligible, successes := 0, 0
	for _, d := range days {
		if !habits.IsScheduledOn(h, d) {
			continue
		}
		eligible++
		if checkins.Quantity(db, h.ID, d) >= h.Target.Quantity {
			successes++
		}
	}
	return newRow(h, successes, eligible, info), nil
}

func weeklyRow(db *models.DB, h models.Habit, from, to string, info RangeInfo) Row {
	weekStarts := stats.EligibleWeekStarts(h, from, to)
	successes := 0
	for _, ws := range weekStarts {
		if checkins.WeekSum(db, h, ws) >= h.Target.Quantity {
			successes++
		}
	}
	return newRow(h, successes, len(weekStarts), info)
}

// Build computes recap rows for the habits over the named range, sorted by
// completion percentage descending with unratable habits last.
func Build(db *models.DB, hs []models.Habit, r Range, today string) ([]Row, error) {
	from, to, err := Dates(r, today)
	if err != nil {
		return nil, err
	}
	info := RangeInfo{Kind: string(r), From: from, To: to}

	sorted := append([]models.Habit(nil), hs...)
	habits.SortStable(sorted)

	rows := make([]Row, 0, len(sorted))
	for _, h := range sorted {
		if h.Target.Period == models.PeriodDay {
			row, err := dailyRow(db, h, from, to, info)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		} else {
			rows = append(rows, weeklyRow(db, h, from, to, info))
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := rows[i].Percent, rows[j].Percent
		switch {
		case pi != nil && pj != nil:
			return *pi > *pj
		case pi != nil:
			return true
		case pj != nil:
			return false
		default:
			return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
		}
	})

	return rows, nil
}

// ProgressBar renders a fixed-width completion bar for table output.
func ProgressBar(percent *int, width int) string {
	if percent == nil {
		return strings.Repeat("-", width)
	}
	filled := int(math.Round(float64(*percent) / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
