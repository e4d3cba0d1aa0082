package stats

import (
	"math"

	"github.com/habitloop/habitloop/internal/model"
)

// HabitTally is the lifetime completion count of one habit.
// User-facing text calls this value the habit's "streak".
type HabitTally struct {
	HabitID         string
	Title           string
	CompletionCount int
}

// CompletionTally pairs every habit with its completion count.
// Habits missing from counts are reported with zero.
func CompletionTally(habits []*model.Habit, counts map[string]int) []HabitTally {
	tallies := make([]HabitTally, 0, len(habits))
	for _, h := range habits {
		tallies = append(tallies, HabitTally{
			HabitID:         h.ID,
			Title:           h.Title,
			CompletionCount: counts[h.ID],
		})
	}
	return tallies
}

func TotalCompletions(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// MaxTally returns the largest per-habit completion count, or 0.
func MaxTally(counts map[string]int) int {
	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	return best
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
