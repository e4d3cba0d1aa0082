package stats

import (
	"time"

	"github.com/habitloop/habitloop/internal/model"
)

type FocusTotals struct {
	TodayMinutes  int
	WeekMinutes   int
	TotalMinutes  int
	TotalSessions int
	Streak        int
}

// FocusAggregates sums focus-type minutes for today, the trailing 7 days and
// all time. Break sessions are ignored.
func FocusAggregates(sessions []*model.FocusSession, today time.Time) FocusTotals {
	todayKey := model.Day(today)
	week := model.LastDays(midday(today), WeekLength)

	var totals FocusTotals
	dates := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.SessionType != model.SessionTypeFocus {
			continue
		}
		totals.TotalMinutes += s.DurationMinutes
		totals.TotalSessions++
		if week.Contains(s.SessionDate) {
			totals.WeekMinutes += s.DurationMinutes
		}
		if s.SessionDate == todayKey {
			totals.TodayMinutes += s.DurationMinutes
		}
		dates = append(dates, s.SessionDate)
	}

	totals.Streak = FocusStreak(dates, today)
	return totals
}

// FocusStreak counts consecutive calendar days with at least one session,
// walking back from today. No session today means no streak.
func FocusStreak(dates []string, today time.Time) int {
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		seen[d] = true
	}

	streak := 0
	day := midday(today)
	for seen[model.Day(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
