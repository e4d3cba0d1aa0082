package model

import (
	"time"
)

// HabitLog is one day's completion mark for one habit.
// At most one row exists per (habit_id, log_date); unchecking deletes it.
type HabitLog struct {
	ID        string    `db:"id"`
	HabitID   string    `db:"habit_id"`
	LogDate   string    `db:"log_date"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
}

// DayCount is the number of completions recorded on one calendar day.
type DayCount struct {
	Date  string `db:"log_date"`
	Count int    `db:"total"`
}
