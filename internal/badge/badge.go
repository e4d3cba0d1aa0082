// Package badge holds the static achievement catalog and the rule that decides
// whether a badge is satisfied by a user's current metrics.
package badge

type Category string

const (
	CategoryStreaks     Category = "streaks"
	CategoryCompletions Category = "completions"
	CategoryFocus       Category = "focus"
	CategoryJournal     Category = "journal"
	CategoryChallenges  Category = "challenges"
	CategorySpecial     Category = "special"
)

// MetricKind selects the metric a badge threshold is compared against.
type MetricKind string

const (
	// MetricMaxTally is the largest lifetime completion count across the user's habits.
	MetricMaxTally         MetricKind = "max_completion_tally"
	MetricTotalCompletions MetricKind = "total_completions"
	MetricFocusMinutes     MetricKind = "focus_minutes"
	MetricJournalEntries   MetricKind = "journal_entries"
	MetricHabitCount       MetricKind = "habit_count"
	// MetricProSubscription is 1 while the user holds the pro entitlement, else 0.
	MetricProSubscription MetricKind = "pro_subscription"
	// MetricManual badges are never awarded by evaluation.
	MetricManual MetricKind = "manual"
)

type Comparator string

const (
	AtLeast Comparator = ">="
)

type Definition struct {
	Type        string
	Name        string
	Description string
	Icon        string
	Category    Category
	Metric      MetricKind
	Comparator  Comparator
	Threshold   int
}

// Snapshot is the set of metric values a user is evaluated against.
type Snapshot struct {
	MaxTally         int
	TotalCompletions int
	FocusMinutes     int
	JournalEntries   int
	HabitCount       int
	IsPro            bool
}

// Value returns the metric selected by kind. ok is false for metrics that
// have no value (manual badges or unknown kinds).
func (s Snapshot) Value(kind MetricKind) (value int, ok bool) {
	switch kind {
	case MetricMaxTally:
		return s.MaxTally, true
	case MetricTotalCompletions:
		return s.TotalCompletions, true
	case MetricFocusMinutes:
		return s.FocusMinutes, true
	case MetricJournalEntries:
		return s.JournalEntries, true
	case MetricHabitCount:
		return s.HabitCount, true
	case MetricProSubscription:
		if s.IsPro {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Automatic reports whether evaluation can ever award the badge.
func (d Definition) Automatic() bool {
	_, ok := Snapshot{}.Value(d.Metric)
	return ok
}

// Satisfied reports whether the snapshot meets the badge rule.
func (d Definition) Satisfied(s Snapshot) bool {
	value, ok := s.Value(d.Metric)
	if !ok {
		return false
	}

	switch d.Comparator {
	case AtLeast, "":
		return value >= d.Threshold
	}
	return false
}

// Progress returns the current metric value capped at the threshold.
func (d Definition) Progress(s Snapshot) int {
	value, ok := s.Value(d.Metric)
	if !ok {
		return 0
	}
	if value > d.Threshold {
		return d.Threshold
	}
	return value
}
