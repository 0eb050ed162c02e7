package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/output"
	"github.com/julianstephens/habitctl/internal/stats"
)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit id or unique name prefix (all active habits when omitted)."`
	From  string `help:"Window start (YYYY-MM-DD)."`
	To    string `help:"Window end (YYYY-MM-DD, defaults to today)."`
}

// defaultWindow picks the stats range when --from is omitted: the last 12
// ISO weeks when every habit is weekly, else the trailing 30 days.
func defaultWindow(hs []models.Habit, to string) stats.Window {
	allWeekly := len(hs) > 0
	for _, h := range hs {
		if h.Target.Period != models.PeriodWeek {
			allWeekly = false
			break
		}
	}
	if allWeekly {
		endWeek := dates.ISOWeekStart(to)
		return stats.Window{
			From: dates.AddDays(endWeek, -7*11),
			To:   dates.AddDays(endWeek, 6),
		}
	}
	return stats.Window{From: dates.AddDays(to, -29), To: to}
}

func (c *StatsCmd) Run(ctx *Context) error {
	if c.From != "" {
		if _, err := dates.Parse(c.From, "from"); err != nil {
			return err
		}
	}
	if c.To != "" {
		if _, err := dates.Parse(c.To, "to"); err != nil {
			return err
		}
	}

	db, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	var hs []models.Habit
	if c.Habit != "" {
		idx, err := habits.Select(db, c.Habit, true)
		if err != nil {
			return err
		}
		hs = []models.Habit{db.Habits[idx]}
	} else {
		hs = habits.List(db, false)
	}

	to := c.To
	if to == "" {
		to = ctx.Today
	}
	var window stats.Window
	if c.From == "" {
		window = defaultWindow(hs, to)
	} else {
		window = stats.Window{From: c.From, To: to}
	}

	rows, err := stats.Build(db, hs, window)
	if err != nil {
		return err
	}

	if ctx.Format == FormatJSON {
		return ctx.printJSON(map[string][]stats.Row{"stats": rows})
	}

	ctx.printLine(output.RenderTable(rows, []output.Column[stats.Row]{
		{Header: "id", Value: func(r stats.Row) string { return r.HabitID }},
		{Header: "name", Value: func(r stats.Row) string { return r.Name }},
		{Header: "period", Value: func(r stats.Row) string { return string(r.Period) }},
		{Header: "current", Value: func(r stats.Row) string { return strconv.Itoa(r.CurrentStreak) }},
		{Header: "longest", Value: func(r stats.Row) string { return strconv.Itoa(r.LongestStreak) }},
		{Header: "success", Value: func(r stats.Row) string {
			sr := r.SuccessRate
			if sr.Eligible == 0 {
				return "n/a (0/0)"
			}
			pct := int(math.Round(*sr.Rate * 100))
			return fmt.Sprintf("%d%% (%d/%d)", pct, sr.Successes, sr.Eligible)
		}},
	}))
	return nil
}
