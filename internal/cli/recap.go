package cli

import (
	"strconv"

	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/output"
	"github.com/julianstephens/habitctl/internal/recap"
)

type RecapCmd struct {
	Range           string `short:"r" help:"Recap range." enum:"ytd,month,week" default:"month"`
	IncludeArchived bool   `help:"Include archived habits."`
}

func (c *RecapCmd) Run(ctx *Context) error {
	db, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	rows, err := recap.Build(db, habits.List(db, c.IncludeArchived), recap.Range(c.Range), ctx.Today)
	if err != nil {
		return err
	}

	if ctx.Format == FormatJSON {
		return ctx.printJSON(map[string][]recap.Row{"recap": rows})
	}

	ctx.printLine(output.RenderTable(rows, []output.Column[recap.Row]{
		{Header: "name", Value: func(r recap.Row) string { return r.Name }},
		{Header: "target", Value: func(r recap.Row) string { return r.TargetLabel }},
		{Header: "progress", Value: func(r recap.Row) string { return recap.ProgressBar(r.Percent, 10) }},
		{Header: "percent", Value: func(r recap.Row) string {
			if r.Percent == nil {
				return "n/a"
			}
			return strconv.Itoa(*r.Percent) + "%"
		}},
		{Header: "done", Value: func(r recap.Row) string {
			return strconv.Itoa(r.Successes) + "/" + strconv.Itoa(r.Eligible)
		}},
	}))
	return nil
}
