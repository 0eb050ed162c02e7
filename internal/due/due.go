// Package due lists habits that are scheduled on a date but not yet done.
package due

import (
	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
)

type Row struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Period    models.Period `json:"period"`
	Target    int           `json:"target"`
	Quantity  int           `json:"quantity"`
	Remaining int           `json:"remaining"`
}

type Report struct {
	Date  string `json:"date"`
	Due   []Row  `json:"due"`
	Count int    `json:"count"`
}

// Build returns the unfinished scheduled habits for the date, in stable
// habit order. Weekly habits measure against the running sum of the date's
// ISO week.
func Build(db *models.DB, date string, includeArchived bool) Report {
	weekStart := dates.ISOWeekStart(date)

	rows := []Row{}
	for _, h := range habits.List(db, includeArchived) {
		if !habits.IsScheduledOn(h, date) {
			continue
		}

		qty := 0
		if h.Target.Period == models.PeriodDay {
			qty = checkins.Quantity(db, h.ID, date)
		} else {
			qty = checkins.WeekSum(db, h, weekStart)
		}
		if qty >= h.Target.Quantity {
			continue
		}

		rows = append(rows, Row{
			ID:        h.ID,
			Name:      h.Name,
			Period:    h.Target.Period,
			Target:    h.Target.Quantity,
			Quantity:  qty,
			Remaining: h.Target.Quantity - qty,
		})
	}

	return Report{Date: date, Due: rows, Count: len(rows)}
}
