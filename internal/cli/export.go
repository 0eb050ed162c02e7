package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/export"
	"github.com/julianstephens/habitctl/internal/habits"
)

type ExportCmd struct {
	Format          string `help:"Export format." enum:"json,csv" required:""`
	Out             string `short:"o" help:"Output file (json) or directory (csv, required)."`
	From            string `help:"Only include check-ins on or after this date."`
	To              string `help:"Only include check-ins on or before this date."`
	IncludeArchived bool   `help:"Include archived habits."`
}

func (c *ExportCmd) Run(ctx *Context) error {
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
	if c.From != "" && c.To != "" && c.From > c.To {
		return errdefs.InvalidInput("invalid range: from %s is after to %s", c.From, c.To)
	}

	db, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	hs := habits.List(db, c.IncludeArchived)
	ids := make(map[string]bool, len(hs))
	for _, h := range hs {
		ids[h.ID] = true
	}
	cs := checkins.ListInRange(db, checkins.RangeFilter{From: c.From, To: c.To, HabitIDs: ids})

	if c.Format == "csv" {
		if c.Out == "" {
			return errdefs.InvalidInput("csv export requires --out <dir>")
		}
		if err := export.WriteCSVDir(c.Out, hs, cs); err != nil {
			return err
		}
		ctx.printLine(fmt.Sprintf("Exported %d habits and %d check-ins to %s", len(hs), len(cs), c.Out))
		return nil
	}

	if c.Out != "" {
		f, err := os.OpenFile(c.Out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", c.Out, err)
		}
		defer f.Close()
		return export.WriteJSON(f, hs, cs)
	}
	return export.WriteJSON(ctx.Out, hs, cs)
}
