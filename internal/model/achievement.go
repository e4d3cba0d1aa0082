package model

import (
	"time"
)

// Achievement records that a user earned a badge. The pair
// (user_id, badge_type) is unique in storage.
type Achievement struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	BadgeType string    `db:"badge_type"`
	EarnedAt  time.Time `db:"earned_at"`
}
