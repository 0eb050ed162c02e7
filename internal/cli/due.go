package cli

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/due"
	"github.com/julianstephens/habitctl/internal/output"
)

type DueCmd struct {
	Date            string `short:"d" help:"Reference date (defaults to today)."`
	IncludeArchived bool   `help:"Include archived habits."`
}

func (c *DueCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today
	}
	if _, err := dates.Parse(date, "date"); err != nil {
		return err
	}

	db, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	report := due.Build(db, date, c.IncludeArchived)

	if ctx.Format == FormatJSON {
		return ctx.printJSON(report)
	}

	ctx.printLine(fmt.Sprintf("Due (%s)", report.Date))
	if report.Count == 0 {
		ctx.printLine(ctx.Styler.Green("all done"))
		return nil
	}
	ctx.printLine(output.RenderTable(report.Due, []output.Column[due.Row]{
		{Header: "id", Value: func(r due.Row) string { return r.ID }},
		{Header: "name", Value: func(r due.Row) string { return r.Name }},
		{Header: "period", Value: func(r due.Row) string { return string(r.Period) }},
		{Header: "progress", Value: func(r due.Row) string {
			return fmt.Sprintf("%d/%d", r.Quantity, r.Target)
		}},
		{Header: "remaining", Value: func(r due.Row) string { return strconv.Itoa(r.Remaining) }},
	}))
	return nil
}
