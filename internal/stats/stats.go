// Package stats computes streak and success-rate metrics over a date window.
package stats

import (
	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
)

type Window struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SuccessRate reports successes over eligible units. Rate is nil when there
// were no eligible units, never a division by zero.
type SuccessRate struct {
	Successes int      `json:"successes"`
	Eligible  int      `json:"eligible"`
	Rate      *float64 `json:"rate"`
}

type Row struct {
	HabitID       string        `json:"habit_id"`
	Name          string        `json:"name"`
	Period        models.Period `json:"period"`
	Target        int           `json:"target"`
	Window        Window        `json:"window"`
	CurrentStreak int           `json:"current_streak"`
	LongestStreak int           `json:"longest_streak"`
	SuccessRate   SuccessRate   `json:"success_rate"`
}

// streaks folds a sequence of success flags into the trailing and longest
// consecutive-success runs. Adjacency is positional in the eligible sequence;
// skipped calendar units are not breaks.
func streaks(ok []bool) (current, longest int) {
	for i := len(ok) - 1; i >= 0; i-- {
		if !ok[i] {
			break
		}
		current++
	}
	run := 0
	for _, v := range ok {
		if v {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return current, longest
}

func rate(successes, eligible int) SuccessRate {
	sr := SuccessRate{Successes: successes, Eligible: eligible}
	if eligible > 0 {
		r := float64(successes) / float64(eligible)
		sr.Rate = &r
	}
	return sr
}

func daily(db *models.DB, h models.Habit, w Window) (Row, error) {
	days, err := dates.Range(w.From, w.To)
	if err != nil {
		return Row{}, err
	}

	var ok []bool
	successes := 0
	for _, d := range days {
		if !habits.IsScheduledOn(h, d) {
			continue
		}
		done := checkins.Quantity(db, h.ID, d) >= h.Target.Quantity
		ok = append(ok, done)
		if done {
			successes++
		}
	}
	current, longest := streaks(ok)

	return Row{
		HabitID:       h.ID,
		Name:          h.Name,
		Period:        models.PeriodDay,
		Target:        h.Target.Quantity,
		Window:        w,
		CurrentStreak: current,
		LongestStreak: longest,
		SuccessRate:   rate(successes, len(ok)),
	}, nil
}

// EligibleWeekStarts lists the Mondays of the ISO weeks a weekly habit is
// measured over: week starts from isoWeekStart(from) to isoWeekStart(to)
// stepped by 7 days, keeping weeks that end on or after the habit's creation
// date. A week that starts before creation but ends after still counts.
func EligibleWeekStarts(h models.Habit, from, to string) []string {
	var out []string
	end := dates.ISOWeekStart(to)
	for ws := dates.ISOWeekStart(from); ws <= end; ws = dates.AddDays(ws, 7) {
		if dates.ISOWeekEnd(ws) >= h.CreatedDate {
			out = append(out, ws)
		}
	}
	return out
}

func weekly(db *models.DB, h models.Habit, w Window) (Row, error) {
	if _, err := dates.Range(w.From, w.To); err != nil {
		return Row{}, err
	}

	weekStarts := EligibleWeekStarts(h, w.From, w.To)
	ok := make([]bool, 0, len(weekStarts))
	successes := 0
	for _, ws := range weekStarts {
		done := checkins.WeekSum(db, h, ws) >= h.Target.Quantity
		ok = append(ok, done)
		if done {
			successes++
		}
	}
	current, longest := streaks(ok)

	return Row{
		HabitID:       h.ID,
		Name:          h.Name,
		Period:        models.PeriodWeek,
		Target:        h.Target.Quantity,
		Window:        w,
		CurrentStreak: current,
		LongestStreak: longest,
		SuccessRate:   rate(successes, len(ok)),
	}, nil
}

// Build computes one row per habit over the inclusive window, in the stable
// habit order.
func Build(db *models.DB, hs []models.Habit, w Window) ([]Row, error) {
	sorted := append([]models.Habit(nil), hs...)
	habits.SortStable(sorted)

	rows := make([]Row, 0, len(sorted))
	for _, h := range sorted {
		var (
			row Row
			err error
		)
		if h.Target.Period == models.PeriodDay {
			row, err = daily(db, h, w)
		} else {
			row, err = weekly(db, h, w)
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
