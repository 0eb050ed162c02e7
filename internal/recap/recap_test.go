package recap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitctl/internal/checkins"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/models"
)

func habit(id, name, created string, days []int, period models.Period, target int) models.Habit {
	return models.Habit{
		ID:          id,
		Name:        name,
		Schedule:    models.Schedule{Type: models.ScheduleDaysOfWeek, Days: days},
		Target:      models.Target{Period: period, Quantity: target},
		CreatedDate: created,
	}
}

func TestDates(t *testing.T) {
	from, to, err := Dates(RangeYTD, "2026-04-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", from)
	assert.Equal(t, "2026-04-15", to)

	from, to, err = Dates(RangeMonth, "2026-04-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-17", from)
	assert.Equal(t, "2026-04-15", to)

	from, to, err = Dates(RangeWeek, "2026-04-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-09", from)
	assert.Equal(t, "2026-04-15", to)

	_, _, err = Dates("year", "2026-04-15")
	assert.True(t, errdefs.IsInvalidInput(err))
}

func TestBuildWeekRange(t *testing.T) {
	db := models.NewDB()
	db.Habits = append(db.Habits,
		habit("h0001", "Read", "2026-01-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodDay, 1),
	)
	// 5 of the trailing 7 days done.
	for _, d := range []string{"2026-01-22", "2026-01-23", "2026-01-24", "2026-01-26", "2026-01-28"} {
		require.NoError(t, checkins.Set(db, "h0001", d, 1))
	}

	rows, err := Build(db, db.Habits, RangeWeek, "2026-01-28")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "1/day", row.TargetLabel)
	assert.Equal(t, 7, row.Eligible)
	assert.Equal(t, 5, row.Successes)
	require.NotNil(t, row.Percent)
	assert.Equal(t, 71, *row.Percent)
	assert.Equal(t, "week", row.Range.Kind)
	assert.Equal(t, "2026-01-22", row.Range.From)
}

func TestBuildSortsByPercentDesc(t *testing.T) {
	db := models.NewDB()
	db.Habits = append(db.Habits,
		habit("h0001", "Low", "2026-01-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodDay, 1),
		habit("h0002", "High", "2026-01-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodDay, 1),
		habit("h0003", "Unborn", "2026-06-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodDay, 1),
	)
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-28", 1))
	for _, d := range []string{"2026-01-26", "2026-01-27", "2026-01-28"} {
		require.NoError(t, checkins.Set(db, "h0002", d, 1))
	}

	rows, err := Build(db, db.Habits, RangeWeek, "2026-01-28")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "High", rows[0].Name)
	assert.Equal(t, "Low", rows[1].Name)
	// No eligible days means no percentage; those habits sort last.
	assert.Equal(t, "Unborn", rows[2].Name)
	assert.Nil(t, rows[2].Percent)
}

func TestBuildWeeklyHabit(t *testing.T) {
	db := models.NewDB()
	db.Habits = append(db.Habits,
		habit("h0001", "Swim", "2026-01-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodWeek, 2),
	)
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-13", 2)) // week of Jan 12
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-20", 1)) // week of Jan 19, missed

	rows, err := Build(db, db.Habits, RangeMonth, "2026-01-28")
	require.NoError(t, err)
	row := rows[0]
	assert.Equal(t, "2/week", row.TargetLabel)
	// Trailing 30 days from Jan 28 reaches back to Dec 30, whose ISO week
	// starts Mon Dec 29: five week starts through the week of Jan 26.
	assert.Equal(t, 5, row.Eligible)
	assert.Equal(t, 1, row.Successes)
}

func TestProgressBar(t *testing.T) {
	p := func(n int) *int { return &n }

	assert.Equal(t, "----------", ProgressBar(nil, 10))
	assert.Equal(t, "██████████", ProgressBar(p(100), 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(p(0), 10))
	assert.Equal(t, "█████░░░░░", ProgressBar(p(50), 10))
	assert.Equal(t, "███████░░░", ProgressBar(p(71), 10))
	assert.Equal(t, "██████████", ProgressBar(p(140), 10))
}
