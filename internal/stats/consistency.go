package stats

const (
	ConsistencyExcellent = "Excellent"
	ConsistencyGood      = "Good"
	ConsistencyFair      = "Fair"
	ConsistencyNeedsWork = "Needs Work"
)

// baselineDays is the number of days each habit is expected to be completed.
const baselineDays = 7

// maxScore caps the consistency score.
const maxScore = 10.0

// ConsistencyScore normalizes completion density to 0..10 with one decimal.
// A user without habits scores 0.
func ConsistencyScore(totalCompletions, habitCount int) float64 {
	if habitCount <= 0 || totalCompletions <= 0 {
		return 0
	}

	score := float64(totalCompletions) / float64(habitCount*baselineDays) * maxScore
	if score > maxScore {
		score = maxScore
	}
	return Round1(score)
}

func ConsistencyLabel(score float64) string {
	switch {
	case score >= 7:
		return ConsistencyExcellent
	case score >= 5:
		return ConsistencyGood
	case score >= 3:
		return ConsistencyFair
	default:
		return ConsistencyNeedsWork
	}
}
