package cli

import (
	"fmt"

	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/schedule"
)

type ShowCmd struct {
	Habit string `arg:"" help:"Habit id or unique name prefix."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	db, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	idx, err := habits.Select(db, c.Habit, true)
	if err != nil {
		return err
	}
	h := db.Habits[idx]
	cs := checkins.ListForHabit(db, h.ID)

	if ctx.Format == FormatJSON {
		return ctx.printJSON(map[string]any{"habit": h, "checkins": cs})
	}

	ctx.printLine(fmt.Sprintf("%s (%s)", h.Name, h.ID))
	ctx.printLine("schedule: " + schedule.String(h.Schedule))
	ctx.printLine("target: " + targetLabel(h))
	archived := "no"
	if h.Archived {
		archived = "yes"
	}
	ctx.printLine("archived: " + archived)
	ctx.printLine("created_date: " + h.CreatedDate)
	if h.ArchivedDate != "" {
		ctx.printLine("archived_date: " + h.ArchivedDate)
	}
	if h.Notes != "" {
		ctx.printLine("notes: " + h.Notes)
	}
	if len(cs) > 0 {
		ctx.printLine("checkins:")
		for _, ci := range cs {
			ctx.printLine(fmt.Sprintf("- %s %d", ci.Date, ci.Quantity))
		}
	}
	return nil
}
