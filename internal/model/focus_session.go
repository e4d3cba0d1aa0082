package model

import (
	"time"
)

const (
	SessionTypeFocus      = "focus"
	SessionTypeShortBreak = "shortBreak"
	SessionTypeLongBreak  = "longBreak"
)

func IsValidSessionType(t string) bool {
	switch t {
	case SessionTypeFocus, SessionTypeShortBreak, SessionTypeLongBreak:
		return true
	}
	return false
}

type FocusSession struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	HabitID         *string   `db:"habit_id"`
	DurationMinutes int       `db:"duration_minutes"`
	SessionType     string    `db:"session_type"`
	SessionDate     string    `db:"session_date"`
	CreatedAt       time.Time `db:"created_at"`
}
