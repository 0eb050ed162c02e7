// Package status computes the per-day and per-week progress snapshot.
package status

import (
	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
)

// TodayRow is one habit's progress on the reference date. Weekly habits
// report the running week sum against their weekly target.
type TodayRow struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Period   models.Period `json:"period"`
	Target   int           `json:"target"`
	Quantity int           `json:"quantity"`
	Done     bool          `json:"done"`
}

// WeekRow is one habit's progress across the reference ISO week. Daily habits
// count scheduled days done; weekly habits carry the week sum and target.
type WeekRow struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Period            models.Period `json:"period"`
	ScheduledDays     int           `json:"scheduled_days,omitempty"`
	DoneScheduledDays int           `json:"done_scheduled_days,omitempty"`
	Target            int           `json:"target,omitempty"`
	Quantity          int           `json:"quantity,omitempty"`
}

type TodaySection struct {
	Date   string     `json:"date"`
	Habits []TodayRow `json:"habits"`
}

type WeekSection struct {
	ID        string    `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Habits    []WeekRow `json:"habits"`
}

type Snapshot struct {
	Today TodaySection `json:"today"`
	Week  WeekSection  `json:"week"`
}

// Params selects the snapshot's reference points. WeekOf defaults to Date.
type Params struct {
	Date            string
	WeekOf          string
	IncludeArchived bool
}

// Build produces the status snapshot for a store at a reference date.
func Build(db *models.DB, p Params) Snapshot {
	weekOf := p.WeekOf
	if weekOf == "" {
		weekOf = p.Date
	}
	weekStart := dates.ISOWeekStart(weekOf)
	weekEnd := dates.ISOWeekEnd(weekStart)

	hs := habits.List(db, p.IncludeArchived)

	todayRows := []TodayRow{}
	for _, h := range hs {
		if !habits.IsScheduledOn(h, p.Date) {
			continue
		}
		row := TodayRow{ID: h.ID, Name: h.Name, Period: h.Target.Period, Target: h.Target.Quantity}
		if h.Target.Period == models.PeriodDay {
			row.Quantity = checkins.Quantity(db, h.ID, p.Date)
		} else {
			row.Quantity = checkins.WeekSum(db, h, weekStart)
		}
		row.Done = row.Quantity >= h.Target.Quantity
		todayRows = append(todayRows, row)
	}

	weekRows := []WeekRow{}
	for _, h := range hs {
		row := WeekRow{ID: h.ID, Name: h.Name, Period: h.Target.Period}
		if h.Target.Period == models.PeriodDay {
			for d := weekStart; d <= weekEnd; d = dates.AddDays(d, 1) {
				if !habits.IsScheduledOn(h, d) {
					continue
				}
				row.ScheduledDays++
				if checkins.Quantity(db, h.ID, d) >= h.Target.Quantity {
					row.DoneScheduledDays++
				}
			}
		} else {
			row.Target = h.Target.Quantity
			row.Quantity = checkins.WeekSum(db, h, weekStart)
		}
		weekRows = append(weekRows, row)
	}

	return Snapshot{
		Today: TodaySection{Date: p.Date, Habits: todayRows},
		Week: WeekSection{
			ID:        dates.ISOWeekID(weekStart),
			StartDate: weekStart,
			EndDate:   weekEnd,
			Habits:    weekRows,
		},
	}
}
