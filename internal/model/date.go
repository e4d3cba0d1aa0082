package model

import (
	"time"
)

// DateLayout is the storage format for calendar days.
const DateLayout = "2006-01-02"

// Day formats t as a calendar day in t's location.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From string
	To   string
}

// LastDays returns the n-day range ending on (and including) today.
// Days are stepped from noon so a DST change at midnight cannot widen the range.
func LastDays(today time.Time, n int) DateRange {
	noon := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, today.Location())
	return DateRange{
		From: Day(noon.AddDate(0, 0, -(n - 1))),
		To:   Day(noon),
	}
}

// Contains reports whether day falls inside the range.
func (r DateRange) Contains(day string) bool {
	return day >= r.From && day <= r.To
}
