package cli

import (
	"fmt"

	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/status"
)

type StatusCmd struct {
	Date            string `short:"d" help:"Reference date (defaults to today)."`
	WeekOf          string `name:"week-of" help:"Any date inside the week to report on."`
	IncludeArchived bool   `help:"Include archived habits."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today
	}
	if _, err := dates.Parse(date, "date"); err != nil {
		return err
	}
	if c.WeekOf != "" {
		if _, err := dates.Parse(c.WeekOf, "week-of"); err != nil {
			return err
		}
	}

	db, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	snap := status.Build(db, status.Params{
		Date:            date,
		WeekOf:          c.WeekOf,
		IncludeArchived: c.IncludeArchived,
	})

	if ctx.Format == FormatJSON {
		return ctx.printJSON(snap)
	}

	ctx.printLine(fmt.Sprintf("Today (%s)", snap.Today.Date))
	if len(snap.Today.Habits) == 0 {
		ctx.printLine(ctx.Styler.Gray("(no scheduled habits)"))
	}
	for _, h := range snap.Today.Habits {
		mark := "[ ]"
		if h.Done {
			mark = ctx.Styler.Green("[x]")
		}
		progress := fmt.Sprintf("%d/%d", h.Quantity, h.Target)
		if h.Period == models.PeriodWeek {
			progress += " (weekly)"
		}
		ctx.printLine(fmt.Sprintf("- %s %s %s", mark, h.Name, progress))
	}

	ctx.printLine("")
	ctx.printLine(fmt.Sprintf("This week (%s)", snap.Week.ID))
	for _, h := range snap.Week.Habits {
		if h.Period == models.PeriodDay {
			ctx.printLine(fmt.Sprintf("- %s %d/%d scheduled days done", h.Name, h.DoneScheduledDays, h.ScheduledDays))
		} else {
			ctx.printLine(fmt.Sprintf("- %s %d/%d (weekly)", h.Name, h.Quantity, h.Target))
		}
	}
	return nil
}
