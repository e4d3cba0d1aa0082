package service

import (
	"time"
)

// Calendar supplies "now" and the zone in which calendar days are counted.
type Calendar struct {
	Now      func() time.Time
	Location *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{Now: time.Now, Location: loc}
}

// Today returns the current instant in the calendar's zone.
func (c Calendar) Today() time.Time {
	return c.Now().In(c.Location)
}
