package cli

import (
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/output"
)

type AddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Schedule string `short:"s" help:"Schedule pattern (everyday|weekdays|weekends|mon,tue,...)." default:"everyday"`
	Period   string `short:"p" help:"Target period." enum:"day,week" default:"day"`
	Target   int    `short:"t" help:"Target quantity per period." default:"1"`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *AddCmd) Run(ctx *Context) error {
	var created models.Habit
	err := ctx.Store.Update(func(db *models.DB) error {
		id := habits.NextID(db)
		h, err := habits.New(id, habits.NewParams{
			Name:            c.Name,
			SchedulePattern: c.Schedule,
			Period:          c.Period,
			Target:          c.Target,
			Notes:           c.Notes,
			Today:           ctx.Today,
		})
		if err != nil {
			return err
		}
		db.Habits = append(db.Habits, h)
		created = h
		return nil
	})
	if err != nil {
		return err
	}

	if ctx.Format == FormatJSON {
		return ctx.printJSON(map[string]models.Habit{"habit": created})
	}

	row := newHabitRow(created)
	ctx.printLine(output.RenderTable([]habitRow{row}, []output.Column[habitRow]{
		{Header: "id", Value: func(r habitRow) string { return r.ID }},
		{Header: "name", Value: func(r habitRow) string { return r.Name }},
		{Header: "schedule", Value: func(r habitRow) string { return r.Schedule }},
		{Header: "target", Value: func(r habitRow) string { return r.Target }},
	}))
	return nil
}
