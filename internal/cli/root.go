// Package cli implements the habitctl commands. Each command is a kong
// struct with a Run method receiving the shared Context.
package cli

import (
	"fmt"
	"io"

	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/output"
	"github.com/julianstephens/habitctl/internal/schedule"
	"github.com/julianstephens/habitctl/internal/storage"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Context carries the resolved runtime for every command: the storage
// backend, the reference date (already validated), the output format and
// styling.
type Context struct {
	Store  storage.Provider
	Today  string
	Format string
	Styler *output.Styler
	Out    io.Writer
}

func (c *Context) printLine(s string) {
	fmt.Fprintln(c.Out, s)
}

func (c *Context) printJSON(v any) error {
	return output.PrintJSON(c.Out, v)
}

// habitRow is the flat habit representation shared by add and list tables.
type habitRow struct {
	ID       string
	Name     string
	Schedule string
	Target   string
	Archived string
}

func newHabitRow(h models.Habit) habitRow {
	archived := "no"
	if h.Archived {
		archived = "yes"
	}
	return habitRow{
		ID:       h.ID,
		Name:     h.Name,
		Schedule: schedule.String(h.Schedule),
		Target:   targetLabel(h),
		Archived: archived,
	}
}

func targetLabel(h models.Habit) string {
	return fmt.Sprintf("%d/%s", h.Target.Quantity, h.Target.Period)
}
