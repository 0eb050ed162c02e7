package cli

import (
	"fmt"

	"github.com/julianstephens/habitctl/internal/habits"
	"github.com/julianstephens/habitctl/internal/models"
)

type ArchiveCmd struct {
	Habit string `arg:"" help:"Habit id or unique name prefix."`
}

type UnarchiveCmd struct {
	Habit string `arg:"" help:"Habit id or unique name prefix."`
}

func setArchived(ctx *Context, selector string, archived bool) (models.Habit, error) {
	var updated models.Habit
	err := ctx.Store.Update(func(db *models.DB) error {
		idx, err := habits.Select(db, selector, true)
		if err != nil {
			return err
		}
		h := &db.Habits[idx]
		h.Archived = archived
		if archived {
			// The first archive date sticks across repeated archives.
			if h.ArchivedDate == "" {
				h.ArchivedDate = ctx.Today
			}
		} else {
			h.ArchivedDate = ""
		}
		updated = *h
		return nil
	})
	return updated, err
}

func (c *ArchiveCmd) Run(ctx *Context) error {
	h, err := setArchived(ctx, c.Habit, true)
	if err != nil {
		return err
	}
	if ctx.Format == FormatJSON {
		return ctx.printJSON(map[string]models.Habit{"habit": h})
	}
	ctx.printLine(fmt.Sprintf("Archived: %s (%s)", h.Name, h.ID))
	return nil
}

func (c *UnarchiveCmd) Run(ctx *Context) error {
	h, err := setArchived(ctx, c.Habit, false)
	if err != nil {
		return err
	}
	if ctx.Format == FormatJSON {
		return ctx.printJSON(map[string]models.Habit{"habit": h})
	}
	ctx.printLine(fmt.Sprintf("Unarchived: %s (%s)", h.Name, h.ID))
	return nil
}
