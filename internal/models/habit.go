package models

// Period is the unit a habit's target applies to.
type Period string

const (
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
)

// Schedule is the set of ISO weekdays (Mon=1..Sun=7) a habit is due on.
type Schedule struct {
	Type string `json:"type"`
	Days []int  `json:"days"`
}

const ScheduleDaysOfWeek = "days_of_week"

// Target is how much of a habit counts as done per period.
type Target struct {
	Period   Period `json:"period"`
	Quantity int    `json:"quantity"`
}

// Habit is a recurring practice to track. CreatedDate and ArchivedDate are
// plain YYYY-MM-DD strings; string comparison is date comparison.
type Habit struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Schedule     Schedule `json:"schedule"`
	Target       Target   `json:"target"`
	Notes        string   `json:"notes,omitempty"`
	Archived     bool     `json:"archived"`
	CreatedDate  string   `json:"created_date"`
	ArchivedDate string   `json:"archived_date,omitempty"`
}
