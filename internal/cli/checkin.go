package cli

import (
	"fmt"

	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
)

type CheckinCmd struct {
	Habit  string `arg:"" help:"Habit id or unique name prefix."`
	Date   string `short:"d" help:"Check-in date (defaults to today)."`
	Qty    *int   `short:"q" help:"Quantity to add (default 1)."`
	Set    *int   `help:"Set the absolute quantity for the date."`
	Delete bool   `help:"Remove the check-in for the date."`
}

type checkinResult struct {
	Habit    errdefs.Candidate `json:"habit"`
	Date     string            `json:"date"`
	Action   string            `json:"action"`
	Quantity int               `json:"quantity"`
	Delta    int               `json:"delta,omitempty"`
}

func (c *CheckinCmd) Validate() error {
	if c.Delete && (c.Qty != nil || c.Set != nil) {
		return errdefs.InvalidInput("--delete conflicts with --qty/--set")
	}
	if c.Qty != nil && c.Set != nil {
		return errdefs.InvalidInput("--qty conflicts with --set")
	}
	return nil
}

func (c *CheckinCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today
	}
	if _, err := dates.Parse(date, "date"); err != nil {
		return err
	}

	var result checkinResult
	err := ctx.Store.Update(func(db *models.DB) error {
		idx, err := habits.Select(db, c.Habit, true)
		if err != nil {
			return err
		}
		h := db.Habits[idx]
		result.Habit = errdefs.Candidate{ID: h.ID, Name: h.Name}
		result.Date = date

		switch {
		case c.Delete:
			result.Action = "delete"
			return checkins.Set(db, h.ID, date, 0)
		case c.Set != nil:
			result.Action = "set"
			result.Quantity = *c.Set
			return checkins.Set(db, h.ID, date, *c.Set)
		default:
			delta := 1
			if c.Qty != nil {
				delta = *c.Qty
			}
			total, err := checkins.Add(db, h.ID, date, delta)
			if err != nil {
				return err
			}
			result.Action = "add"
			result.Delta = delta
			result.Quantity = total
			return nil
		}
	})
	if err != nil {
		return err
	}

	if ctx.Format == FormatJSON {
		return ctx.printJSON(result)
	}

	switch result.Action {
	case "delete":
		ctx.printLine(fmt.Sprintf("Deleted check-in: %s (%s) on %s", result.Habit.Name, result.Habit.ID, result.Date))
	case "set":
		ctx.printLine(fmt.Sprintf("Set check-in: %s (%s) on %s =%d", result.Habit.Name, result.Habit.ID, result.Date, result.Quantity))
	default:
		ctx.printLine(fmt.Sprintf("Checked in: %s (%s) on %s +%d (total %d)",
			result.Habit.Name, result.Habit.ID, result.Date, result.Delta, result.Quantity))
	}
	return nil
}
