package stats

import (
	"time"

	"github.com/habitloop/habitloop/internal/model"
)

// WeekLength is the number of points in a weekly series.
const WeekLength = 7

type DayPoint struct {
	Date        string
	Weekday     string
	Completions int
}

// WindowDays generates the n calendar days ending on today, ascending.
// The sequence does not depend on which days have data.
func WindowDays(today time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}

	anchor := midday(today)
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = model.Day(anchor.AddDate(0, 0, i-(n-1)))
	}
	return days
}

// WeeklySeries left-joins per-day completion counts onto the 7-day window
// ending today. Days without completions are present with zero; counts outside
// the window are ignored.
func WeeklySeries(today time.Time, counts []model.DayCount) []DayPoint {
	byDay := make(map[string]int, len(counts))
	for _, c := range counts {
		byDay[c.Date] += c.Count
	}

	anchor := midday(today)
	days := WindowDays(anchor, WeekLength)
	series := make([]DayPoint, len(days))
	for i, day := range days {
		series[i] = DayPoint{
			Date:        day,
			Weekday:     anchor.AddDate(0, 0, i-(WeekLength-1)).Weekday().String()[:3],
			Completions: byDay[day],
		}
	}
	return series
}

// SeriesTotal sums the completions across a series.
func SeriesTotal(series []DayPoint) int {
	total := 0
	for _, p := range series {
		total += p.Completions
	}
	return total
}

// midday pins t to noon so calendar arithmetic never crosses a DST boundary.
func midday(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}
