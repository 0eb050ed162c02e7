package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
	"github.com/julianstephens/habitctl/internal/output"
	"github.com/julianstephens/habitctl/internal/storage"
)

func newTestContext(t *testing.T, format string) (*Context, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	ctx := &Context{
		Store:  storage.NewJSONStore(filepath.Join(t.TempDir(), "db.json")),
		Today:  "2026-01-28", // Wednesday
		Format: format,
		Styler: output.NewStyler(false),
		Out:    buf,
	}
	return ctx, buf
}

func TestAddAndList(t *testing.T) {
	ctx, buf := newTestContext(t, FormatTable)

	add := &AddCmd{Name: "Read", Schedule: "weekdays", Period: "day", Target: 1}
	require.NoError(t, add.Run(ctx))
	assert.Contains(t, buf.String(), "h0001")
	assert.Contains(t, buf.String(), "weekdays")

	add = &AddCmd{Name: "Swim", Schedule: "everyday", Period: "week", Target: 3}
	require.NoError(t, add.Run(ctx))

	buf.Reset()
	list := &ListCmd{}
	require.NoError(t, list.Run(ctx))
	out := buf.String()
	assert.Contains(t, out, "Read")
	assert.Contains(t, out, "Swim")
	assert.Contains(t, out, "3/week")
}

func TestAddJSONOutput(t *testing.T) {
	ctx, buf := newTestContext(t, FormatJSON)

	add := &AddCmd{Name: "Read", Schedule: "everyday", Period: "day", Target: 1}
	require.NoError(t, add.Run(ctx))

	var payload map[string]models.Habit
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	h := payload["habit"]
	assert.Equal(t, "h0001", h.ID)
	assert.Equal(t, "2026-01-28", h.CreatedDate)
}

func TestAddInvalidSchedule(t *testing.T) {
	ctx, _ := newTestContext(t, FormatTable)
	add := &AddCmd{Name: "Read", Schedule: "fortnightly", Period: "day", Target: 1}
	err := add.Run(ctx)
	assert.True(t, errdefs.IsInvalidInput(err))
}

func TestCheckinValidate(t *testing.T) {
	one := 1
	assert.Error(t, (&CheckinCmd{Delete: true, Qty: &one}).Validate())
	assert.Error(t, (&CheckinCmd{Qty: &one, Set: &one}).Validate())
	assert.NoError(t, (&CheckinCmd{Qty: &one}).Validate())
}

func TestCheckinAddSetDelete(t *testing.T) {
	ctx, buf := newTestContext(t, FormatTable)
	require.NoError(t, (&AddCmd{Name: "Read", Schedule: "everyday", Period: "day", Target: 2}).Run(ctx))

	buf.Reset()
	require.NoError(t, (&CheckinCmd{Habit: "h0001"}).Run(ctx))
	assert.Contains(t, buf.String(), "Checked in: Read (h0001) on 2026-01-28 +1 (total 1)")

	buf.Reset()
	five := 5
	require.NoError(t, (&CheckinCmd{Habit: "read", Set: &five}).Run(ctx))
	assert.Contains(t, buf.String(), "Set check-in: Read (h0001) on 2026-01-28 =5")

	buf.Reset()
	require.NoError(t, (&CheckinCmd{Habit: "h0001", Delete: true}).Run(ctx))
	assert.Contains(t, buf.String(), "Deleted check-in: Read (h0001) on 2026-01-28")

	db, err := ctx.Store.Load()
	require.NoError(t, err)
	assert.Empty(t, db.Checkins)
}

func TestCheckinSetZeroDeletes(t *testing.T) {
	ctx, _ := newTestContext(t, FormatTable)
	require.NoError(t, (&AddCmd{Name: "Read", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))
	require.NoError(t, (&CheckinCmd{Habit: "h0001"}).Run(ctx))

	zero := 0
	require.NoError(t, (&CheckinCmd{Habit: "h0001", Set: &zero}).Run(ctx))

	db, err := ctx.Store.Load()
	require.NoError(t, err)
	assert.Empty(t, db.Checkins)
}

func TestCheckinUnknownHabit(t *testing.T) {
	ctx, _ := newTestContext(t, FormatTable)
	err := (&CheckinCmd{Habit: "h0042"}).Run(ctx)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestCheckinAmbiguousSelector(t *testing.T) {
	ctx, _ := newTestContext(t, FormatTable)
	require.NoError(t, (&AddCmd{Name: "Run", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))
	require.NoError(t, (&AddCmd{Name: "Running club", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))

	err := (&CheckinCmd{Habit: "run"}).Run(ctx)
	require.True(t, errdefs.IsAmbiguous(err))
	assert.Contains(t, err.Error(), "h0001 Run")
	assert.Contains(t, err.Error(), "h0002 Running club")
}

func TestStatusTable(t *testing.T) {
	ctx, buf := newTestContext(t, FormatTable)
	require.NoError(t, (&AddCmd{Name: "Read", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))
	require.NoError(t, (&CheckinCmd{Habit: "h0001"}).Run(ctx))

	buf.Reset()
	require.NoError(t, (&StatusCmd{}).Run(ctx))
	out := buf.String()
	assert.Contains(t, out, "Today (2026-01-28)")
	assert.Contains(t, out, "[x] Read 1/1")
	assert.Contains(t, out, "This week (2026-W05)")
	assert.Contains(t, out, "- Read 1/1 scheduled days done")
}

func TestStatusEmpty(t *testing.T) {
	ctx, buf := newTestContext(t, FormatTable)
	require.NoError(t, (&StatusCmd{}).Run(ctx))
	assert.Contains(t, buf.String(), "(no scheduled habits)")
}

func TestArchiveLifecycle(t *testing.T) {
	ctx, buf := newTestContext(t, FormatTable)
	require.NoError(t, (&AddCmd{Name: "Read", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))

	require.NoError(t, (&ArchiveCmd{Habit: "h0001"}).Run(ctx))
	db, err := ctx.Store.Load()
	require.NoError(t, err)
	assert.True(t, db.Habits[0].Archived)
	assert.Equal(t, "2026-01-28", db.Habits[0].ArchivedDate)

	// Archiving again after unarchive keeps the first archive date.
	require.NoError(t, (&UnarchiveCmd{Habit: "h0001"}).Run(ctx))
	require.NoError(t, (&ArchiveCmd{Habit: "h0001"}).Run(ctx))
	db, err = ctx.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, "2026-01-28", db.Habits[0].ArchivedDate)

	buf.Reset()
	require.NoError(t, (&ListCmd{}).Run(ctx))
	assert.NotContains(t, buf.String(), "Read")

	buf.Reset()
	require.NoError(t, (&ListCmd{All: true}).Run(ctx))
	assert.Contains(t, buf.String(), "Read")
}

func TestDueCommand(t *testing.T) {
	ctx, buf := newTestContext(t, FormatTable)
	require.NoError(t, (&AddCmd{Name: "Read", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))
	require.NoError(t, (&AddCmd{Name: "Swim", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))
	require.NoError(t, (&CheckinCmd{Habit: "Swim"}).Run(ctx))

	buf.Reset()
	require.NoError(t, (&DueCmd{}).Run(ctx))
	out := buf.String()
	assert.Contains(t, out, "Read")
	assert.NotContains(t, out, "Swim")
}

func TestStatsCommand(t *testing.T) {
	ctx, buf := newTestContext(t, FormatJSON)
	require.NoError(t, (&AddCmd{Name: "Read", Schedule: "everyday", Period: "day", Target: 1}).Run(ctx))
	require.NoError(t, (&CheckinCmd{Habit: "h0001"}).Run(ctx))

	buf.Reset()
	require.NoError(t, (&StatsCmd{From: "2026-01-28", To: "2026-01-28"}).Run(ctx))

	var payload map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	rows := payload["stats"]
	require.Len(t, rows, 1)
	assert.Equal(t, float64(1), rows[0]["current_streak"])
}
