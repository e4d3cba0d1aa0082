package badge

import "fmt"

// CatalogVersion changes whenever a definition is added or re-calibrated.
const CatalogVersion = 1

// Streak thresholds are calibrated against the lifetime completion tally.
var definitions = []Definition{
	{Type: "streak_3", Name: "Getting Started", Description: "Complete a habit 3 times", Icon: "🌱", Category: CategoryStreaks, Metric: MetricMaxTally, Threshold: 3},
	{Type: "streak_7", Name: "Week Warrior", Description: "Complete a habit 7 times", Icon: "🔥", Category: CategoryStreaks, Metric: MetricMaxTally, Threshold: 7},
	{Type: "streak_30", Name: "Monthly Master", Description: "Complete a habit 30 times", Icon: "🏆", Category: CategoryStreaks, Metric: MetricMaxTally, Threshold: 30},
	{Type: "streak_100", Name: "Century Club", Description: "Complete a habit 100 times", Icon: "💯", Category: CategoryStreaks, Metric: MetricMaxTally, Threshold: 100},

	{Type: "first_completion", Name: "First Step", Description: "Complete your first habit", Icon: "✅", Category: CategoryCompletions, Metric: MetricTotalCompletions, Threshold: 1},
	{Type: "complete_10", Name: "Perfect Ten", Description: "Complete 10 habits in total", Icon: "🎯", Category: CategoryCompletions, Metric: MetricTotalCompletions, Threshold: 10},
	{Type: "complete_50", Name: "Half Century", Description: "Complete 50 habits in total", Icon: "⭐", Category: CategoryCompletions, Metric: MetricTotalCompletions, Threshold: 50},
	{Type: "complete_100", Name: "Habit Hero", Description: "Complete 100 habits in total", Icon: "🦸", Category: CategoryCompletions, Metric: MetricTotalCompletions, Threshold: 100},

	{Type: "focus_60", Name: "Focused Hour", Description: "Log 60 minutes of focus", Icon: "⏱️", Category: CategoryFocus, Metric: MetricFocusMinutes, Threshold: 60},
	{Type: "focus_600", Name: "Deep Worker", Description: "Log 10 hours of focus", Icon: "🧠", Category: CategoryFocus, Metric: MetricFocusMinutes, Threshold: 600},
	{Type: "focus_3000", Name: "Flow Master", Description: "Log 50 hours of focus", Icon: "🌊", Category: CategoryFocus, Metric: MetricFocusMinutes, Threshold: 3000},

	{Type: "journal_1", Name: "Dear Diary", Description: "Write your first journal entry", Icon: "📝", Category: CategoryJournal, Metric: MetricJournalEntries, Threshold: 1},
	{Type: "journal_7", Name: "Reflective Week", Description: "Write 7 journal entries", Icon: "📔", Category: CategoryJournal, Metric: MetricJournalEntries, Threshold: 7},
	{Type: "journal_30", Name: "Storyteller", Description: "Write 30 journal entries", Icon: "📚", Category: CategoryJournal, Metric: MetricJournalEntries, Threshold: 30},

	{Type: "habits_3", Name: "Habit Builder", Description: "Track 3 habits at once", Icon: "🧱", Category: CategoryChallenges, Metric: MetricHabitCount, Threshold: 3},
	{Type: "habits_10", Name: "Routine Architect", Description: "Track 10 habits at once", Icon: "🏗️", Category: CategoryChallenges, Metric: MetricHabitCount, Threshold: 10},

	{Type: "early_adopter", Name: "Early Adopter", Description: "Joined during the early days", Icon: "🚀", Category: CategorySpecial, Metric: MetricManual},
	{Type: "pro_member", Name: "Pro Member", Description: "Upgraded to Pro", Icon: "👑", Category: CategorySpecial, Metric: MetricProSubscription, Threshold: 1},
}

var byType = indexDefinitions(definitions)

func indexDefinitions(defs []Definition) map[string]Definition {
	index := make(map[string]Definition, len(defs))
	for _, d := range defs {
		if _, dup := index[d.Type]; dup {
			panic(fmt.Sprintf("badge: duplicate badge type %q", d.Type))
		}
		if d.Comparator == "" {
			d.Comparator = AtLeast
		}
		index[d.Type] = d
	}
	return index
}

// All returns every definition in catalog order.
func All() []Definition {
	out := make([]Definition, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, byType[d.Type])
	}
	return out
}

// Lookup returns the definition for a badge type.
func Lookup(badgeType string) (Definition, bool) {
	d, ok := byType[badgeType]
	return d, ok
}

func Len() int {
	return len(definitions)
}
