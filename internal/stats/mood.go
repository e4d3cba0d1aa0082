package stats

import (
	"sort"

	"github.com/habitloop/habitloop/internal/model"
)

type MoodAverage struct {
	Mood          string
	AvgCompletion float64
	Entries       int
}

// MoodCorrelation averages the same-day completion count over the journal
// entries recorded with each mood. Moods with no entries are omitted. Known
// moods come first in their canonical order; anything else follows by name.
func MoodCorrelation(entries []*model.JournalEntry, daily []model.DayCount) []MoodAverage {
	byDay := make(map[string]int, len(daily))
	for _, d := range daily {
		byDay[d.Date] += d.Count
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range entries {
		sums[e.Mood] += byDay[e.EntryDate]
		counts[e.Mood]++
	}

	order := make([]string, 0, len(counts))
	for _, mood := range model.Moods {
		if counts[mood] > 0 {
			order = append(order, mood)
		}
	}
	var extra []string
	for mood := range counts {
		if !model.IsValidMood(mood) {
			extra = append(extra, mood)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	result := make([]MoodAverage, 0, len(order))
	for _, mood := range order {
		result = append(result, MoodAverage{
			Mood:          mood,
			AvgCompletion: Round1(float64(sums[mood]) / float64(counts[mood])),
			Entries:       counts[mood],
		})
	}
	return result
}
