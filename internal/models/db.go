package models

// Checkin records a quantity for a (habit, date) pair. A quantity of zero is
// never stored; deleting a check-in removes the row.
type Checkin struct {
	HabitID  string `json:"habit_id"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// Meta holds store-level counters.
type Meta struct {
	NextHabitNumber int `json:"next_habit_number"`
}

const SchemaVersion = 1

// DB is the full in-memory aggregate the core computes over. Persistence
// backends hand out a snapshot of this and accept a full replacement back.
type DB struct {
	Version  int       `json:"version"`
	Meta     Meta      `json:"meta"`
	Habits   []Habit   `json:"habits"`
	Checkins []Checkin `json:"checkins"`
}

// NewDB returns an empty store with the counter at its initial value.
func NewDB() *DB {
	return &DB{
		Version:  SchemaVersion,
		Meta:     Meta{NextHabitNumber: 1},
		Habits:   []Habit{},
		Checkins: []Checkin{},
	}
}
