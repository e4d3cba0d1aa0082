package model

import (
	"time"
)

const (
	MoodHappy     = "happy"
	MoodNeutral   = "neutral"
	MoodSad       = "sad"
	MoodEnergetic = "energetic"
	MoodRelaxed   = "relaxed"
)

// Moods lists every valid mood in display order.
var Moods = []string{MoodHappy, MoodNeutral, MoodSad, MoodEnergetic, MoodRelaxed}

func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

type JournalEntry struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	EntryDate string    `db:"entry_date"`
	Mood      string    `db:"mood"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
