package cli

import (
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/output"
)

type ListCmd struct {
	All bool `short:"a" help:"Include archived habits."`
}

func (c *ListCmd) Run(ctx *Context) error {
	db, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	hs := habits.List(db, c.All)

	if ctx.Format == FormatJSON {
		return ctx.printJSON(map[string][]models.Habit{"habits": hs})
	}

	rows := make([]habitRow, len(hs))
	for i, h := range hs {
		rows[i] = newHabitRow(h)
	}
	ctx.printLine(output.RenderTable(rows, []output.Column[habitRow]{
		{Header: "id", Value: func(r habitRow) string { return r.ID }},
		{Header: "name", Value: func(r habitRow) string { return r.Name }},
		{Header: "schedule", Value: func(r habitRow) string { return r.Schedule }},
		{Header: "target", Value: func(r habitRow) string { return r.Target }},
		{Header: "archived", Value: func(r habitRow) string { return r.Archived }},
	}))
	return nil
}
