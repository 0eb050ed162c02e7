package stats

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

func TestStreaks(t *testing.T) {
	tests := []struct {
		ok               []bool
		current, longest int
	}{
		{nil, 0, 0},
		{[]bool{true}, 1, 1},
		{[]bool{false}, 0, 0},
		{[]bool{true, true, false, true, true}, 2, 2},
		{[]bool{true, true, true, false}, 0, 3},
		{[]bool{false, true, true}, 2, 2},
	}
	for _, tc := range tests {
		current, longest := streaks(tc.ok)
		assert.Equal(t, tc.current, current, "%v", tc.ok)
		assert.Equal(t, tc.longest, longest, "%v", tc.ok)
	}
}

func TestBuildDaily(t *testing.T) {
	db := models.NewDB()
	h := habit("h0001", "Stretch", "2026-01-01", []int{1, 2, 3, 4, 5}, models.PeriodDay, 1)
	db.Habits = append(db.Habits, h)

	// Mon 26, Tue 27, Thu 29, Fri 30 done; Wed 28 missed.
	for _, d := range []string{"2026-01-26", "2026-01-27", "2026-01-29", "2026-01-30"} {
		require.NoError(t, checkins.Set(db, "h0001", d, 1))
	}

	rows, err := Build(db, db.Habits, Window{From: "2026-01-26", To: "2026-01-30"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 5, row.SuccessRate.Eligible)
	assert.Equal(t, 4, row.SuccessRate.Successes)
	require.NotNil(t, row.SuccessRate.Rate)
	assert.InDelta(t, 0.8, *row.SuccessRate.Rate, 1e-9)
	assert.Equal(t, 2, row.CurrentStreak)
	assert.Equal(t, 2, row.LongestStreak)
}

func TestBuildDailySkipsUnscheduledDays(t *testing.T) {
	db := models.NewDB()
	h := habit("h0001", "Gym", "2026-01-01", []int{1, 3}, models.PeriodDay, 1) // mon,wed
	db.Habits = append(db.Habits, h)

	// Mon 26 and Wed 28 done; the days between are not eligible and do not
	// break the streak.
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-26", 1))
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-28", 1))

	rows, err := Build(db, db.Habits, Window{From: "2026-01-26", To: "2026-01-30"})
	require.NoError(t, err)
	row := rows[0]
	assert.Equal(t, 2, row.SuccessRate.Eligible)
	assert.Equal(t, 2, row.SuccessRate.Successes)
	assert.Equal(t, 2, row.CurrentStreak)
}

func TestBuildDailyEmptyWindow(t *testing.T) {
	db := models.NewDB()
	// Created after the window: no eligible days.
	h := habit("h0001", "New", "2026-06-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodDay, 1)
	db.Habits = append(db.Habits, h)

	rows, err := Build(db, db.Habits, Window{From: "2026-01-26", To: "2026-01-30"})
	require.NoError(t, err)
	row := rows[0]
	assert.Equal(t, 0, row.SuccessRate.Eligible)
	assert.Nil(t, row.SuccessRate.Rate)
	assert.Equal(t, 0, row.CurrentStreak)
	assert.Equal(t, 0, row.LongestStreak)
}

func TestEligibleWeekStarts(t *testing.T) {
	// Created mid-week Wednesday 2026-01-28: the week of Jan 26 ends Feb 1,
	// after creation, so it is eligible.
	h := habit("h0001", "Swim", "2026-01-28", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodWeek, 3)

	starts := EligibleWeekStarts(h, "2026-01-12", "2026-02-04")
	assert.Equal(t, []string{"2026-01-26", "2026-02-02"}, starts)

	// A window entirely before creation yields nothing.
	assert.Empty(t, EligibleWeekStarts(h, "2026-01-05", "2026-01-18"))
}

func TestBuildWeekly(t *testing.T) {
	db := models.NewDB()
	h := habit("h0001", "Swim", "2026-01-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodWeek, 3)
	db.Habits = append(db.Habits, h)

	// Week of Jan 12: total 3 (met). Week of Jan 19: total 2 (missed).
	// Week of Jan 26: total 4 (met).
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-12", 2))
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-15", 1))
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-20", 2))
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-26", 4))

	rows, err := Build(db, db.Habits, Window{From: "2026-01-12", To: "2026-02-01"})
	require.NoError(t, err)
	row := rows[0]
	assert.Equal(t, 3, row.SuccessRate.Eligible)
	assert.Equal(t, 2, row.SuccessRate.Successes)
	assert.Equal(t, 1, row.CurrentStreak)
	assert.Equal(t, 1, row.LongestStreak)
	assert.Equal(t, models.PeriodWeek, row.Period)
}

func TestBuildSortsRows(t *testing.T) {
	db := models.NewDB()
	db.Habits = append(db.Habits,
		habit("h0002", "zebra", "2026-01-01", []int{1}, models.PeriodDay, 1),
		habit("h0001", "Alpha", "2026-01-01", []int{1}, models.PeriodDay, 1),
	)

	rows, err := Build(db, db.Habits, Window{From: "2026-01-26", To: "2026-01-30"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha", rows[0].Name)
	assert.Equal(t, "zebra", rows[1].Name)
}

func TestBuildIsReadOnly(t *testing.T) {
	db := models.NewDB()
	db.Habits = append(db.Habits,
		habit("h0001", "Read", "2026-01-01", []int{1, 2, 3, 4, 5, 6, 7}, models.PeriodDay, 1),
	)
	require.NoError(t, checkins.Set(db, "h0001", "2026-01-26", 1))

	first, err := Build(db, db.Habits, Window{From: "2026-01-26", To: "2026-01-30"})
	require.NoError(t, err)
	second, err := Build(db, db.Habits, Window{From: "2026-01-26", To: "2026-01-30"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, db.Checkins, 1)
}

func TestBuildInvalidWindow(t *testing.T) {
	db := models.NewDB()
	db.Habits = append(db.Habits,
		habit("h0001", "Read", "2026-01-01", []int{1}, models.PeriodDay, 1),
	)

	_, err := Build(db, db.Habits, Window{From: "2026-02-01", To: "2026-01-01"})
	assert.True(t, errdefs.IsInvalidInput(err))
}
