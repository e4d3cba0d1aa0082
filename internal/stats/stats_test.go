package stats

import (
	"testing"
	"time"

	"github.com/habitloop/habitloop/internal/model"
)

var today = time.Date(2024, 1, 7, 9, 30, 0, 0, time.UTC)

func TestCompletionTally(t *testing.T) {
	habits := []*model.Habit{
		{ID: "h1", Title: "Read"},
		{ID: "h2", Title: "Run"},
	}

	t.Run("habit without logs is zero", func(t *testing.T) {
		got := CompletionTally(habits, map[string]int{"h1": 3})
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].CompletionCount != 3 {
			t.Errorf("h1 count = %d, want 3", got[0].CompletionCount)
		}
		if got[1].HabitID != "h2" || got[1].CompletionCount != 0 {
			t.Errorf("h2 = %+v, want zero count", got[1])
		}
	})

	t.Run("no habits", func(t *testing.T) {
		got := CompletionTally(nil, nil)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty non-nil slice", got)
		}
	})
}

func TestTotalsAndMax(t *testing.T) {
	counts := map[string]int{"a": 4, "b": 9, "c": 0}
	if got := TotalCompletions(counts); got != 13 {
		t.Errorf("TotalCompletions = %d, want 13", got)
	}
	if got := MaxTally(counts); got != 9 {
		t.Errorf("MaxTally = %d, want 9", got)
	}
	if got := MaxTally(nil); got != 0 {
		t.Errorf("MaxTally(nil) = %d, want 0", got)
	}
}

func TestConsistencyScore(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		habits    int
		want      float64
		wantLabel string
	}{
		{"no habits", 12, 0, 0, ConsistencyNeedsWork},
		{"no completions", 0, 3, 0, ConsistencyNeedsWork},
		{"perfect week", 14, 2, 10, ConsistencyExcellent},
		{"capped", 40, 2, 10, ConsistencyExcellent},
		{"rounded", 5, 3, 2.4, ConsistencyNeedsWork},
		{"fair", 3, 1, 4.3, ConsistencyFair},
		{"good", 4, 1, 5.7, ConsistencyGood},
		{"excellent boundary", 49, 7, 10, ConsistencyExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsistencyScore(tt.total, tt.habits)
			if got != tt.want {
				t.Errorf("ConsistencyScore(%d, %d) = %v, want %v", tt.total, tt.habits, got, tt.want)
			}
			if got < 0 || got > 10 {
				t.Errorf("score %v out of bounds", got)
			}
			if label := ConsistencyLabel(got); label != tt.wantLabel {
				t.Errorf("ConsistencyLabel(%v) = %q, want %q", got, label, tt.wantLabel)
			}
		})
	}
}

func TestConsistencyLabelThresholds(t *testing.T) {
	tests := map[float64]string{
		7:   ConsistencyExcellent,
		6.9: ConsistencyGood,
		5:   ConsistencyGood,
		4.9: ConsistencyFair,
		3:   ConsistencyFair,
		2.9: ConsistencyNeedsWork,
		0:   ConsistencyNeedsWork,
	}
	for score, want := range tests {
		if got := ConsistencyLabel(score); got != want {
			t.Errorf("ConsistencyLabel(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestWeeklySeries(t *testing.T) {
	t.Run("sparse data is zero filled", func(t *testing.T) {
		counts := []model.DayCount{
			{Date: "2024-01-01", Count: 2},
			{Date: "2024-01-07", Count: 5},
		}
		series := WeeklySeries(today, counts)

		want := []int{2, 0, 0, 0, 0, 0, 5}
		if len(series) != WeekLength {
			t.Fatalf("len = %d, want %d", len(series), WeekLength)
		}
		for i, p := range series {
			if p.Completions != want[i] {
				t.Errorf("point %d = %d, want %d", i, p.Completions, want[i])
			}
		}
		if series[0].Date != "2024-01-01" || series[6].Date != "2024-01-07" {
			t.Errorf("window = %s..%s, want 2024-01-01..2024-01-07", series[0].Date, series[6].Date)
		}
		if series[6].Weekday != "Sun" {
			t.Errorf("last weekday = %q, want Sun", series[6].Weekday)
		}
	})

	t.Run("no data", func(t *testing.T) {
		series := WeeklySeries(today, nil)
		if len(series) != WeekLength {
			t.Fatalf("len = %d, want %d", len(series), WeekLength)
		}
		if SeriesTotal(series) != 0 {
			t.Errorf("total = %d, want 0", SeriesTotal(series))
		}
	})

	t.Run("days outside window ignored", func(t *testing.T) {
		counts := []model.DayCount{
			{Date: "2023-12-31", Count: 9},
			{Date: "2024-01-08", Count: 9},
			{Date: "2024-01-04", Count: 1},
		}
		if got := SeriesTotal(WeeklySeries(today, counts)); got != 1 {
			t.Errorf("total = %d, want 1", got)
		}
	})

	t.Run("consecutive ascending dates across month end", func(t *testing.T) {
		series := WeeklySeries(time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC), nil)
		want := []string{"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
		for i, p := range series {
			if p.Date != want[i] {
				t.Errorf("point %d date = %s, want %s", i, p.Date, want[i])
			}
		}
	})
}

func TestWindowDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	// DST starts 2024-03-10 in New York.
	days := WindowDays(time.Date(2024, 3, 12, 0, 15, 0, 0, loc), 7)
	want := []string{"2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10", "2024-03-11", "2024-03-12"}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("day %d = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestMoodCorrelation(t *testing.T) {
	entries := []*model.JournalEntry{
		{EntryDate: "2024-01-01", Mood: model.MoodHappy},
		{EntryDate: "2024-01-02", Mood: model.MoodHappy},
		{EntryDate: "2024-01-03", Mood: model.MoodSad},
		{EntryDate: "2024-01-04", Mood: model.MoodHappy},
	}
	daily := []model.DayCount{
		{Date: "2024-01-01", Count: 3},
		{Date: "2024-01-02", Count: 2},
		{Date: "2024-01-03", Count: 1},
	}

	got := MoodCorrelation(entries, daily)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (moods without entries omitted): %+v", len(got), got)
	}
	if got[0].Mood != model.MoodHappy || got[0].AvgCompletion != 1.7 || got[0].Entries != 3 {
		t.Errorf("happy = %+v, want avg 1.7 over 3 entries", got[0])
	}
	if got[1].Mood != model.MoodSad || got[1].AvgCompletion != 1 {
		t.Errorf("sad = %+v, want avg 1", got[1])
	}
	for _, m := range got {
		if m.Mood == model.MoodNeutral || m.Mood == model.MoodEnergetic || m.Mood == model.MoodRelaxed {
			t.Errorf("mood %q has no entries but was reported", m.Mood)
		}
	}

	if empty := MoodCorrelation(nil, daily); len(empty) != 0 {
		t.Errorf("no entries = %+v, want empty", empty)
	}
}

func TestFocusAggregates(t *testing.T) {
	t.Run("today and yesterday", func(t *testing.T) {
		sessions := []*model.FocusSession{
			{SessionDate: "2024-01-06", DurationMinutes: 60, SessionType: model.SessionTypeFocus},
			{SessionDate: "2024-01-07", DurationMinutes: 30, SessionType: model.SessionTypeFocus},
			{SessionDate: "2024-01-07", DurationMinutes: 30, SessionType: model.SessionTypeFocus},
			{SessionDate: "2024-01-07", DurationMinutes: 5, SessionType: model.SessionTypeShortBreak},
		}
		got := FocusAggregates(sessions, today)
		want := FocusTotals{TodayMinutes: 60, WeekMinutes: 120, TotalMinutes: 120, TotalSessions: 3, Streak: 2}
		if got != want {
			t.Errorf("FocusAggregates = %+v, want %+v", got, want)
		}
	})

	t.Run("old sessions count only toward total", func(t *testing.T) {
		sessions := []*model.FocusSession{
			{SessionDate: "2023-12-31", DurationMinutes: 25, SessionType: model.SessionTypeFocus},
			{SessionDate: "2024-01-01", DurationMinutes: 25, SessionType: model.SessionTypeFocus},
		}
		got := FocusAggregates(sessions, today)
		if got.TotalMinutes != 50 || got.WeekMinutes != 25 || got.TodayMinutes != 0 || got.Streak != 0 {
			t.Errorf("FocusAggregates = %+v", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := FocusAggregates(nil, today); got != (FocusTotals{}) {
			t.Errorf("FocusAggregates(nil) = %+v, want zero", got)
		}
	})
}

func TestFocusStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"none", nil, 0},
		{"only today", []string{"2024-01-07"}, 1},
		{"gap breaks run", []string{"2024-01-07", "2024-01-06", "2024-01-04"}, 2},
		{"missing today", []string{"2024-01-06", "2024-01-05"}, 0},
		{"duplicates", []string{"2024-01-07", "2024-01-07", "2024-01-06"}, 2},
		{"across year", []string{"2024-01-07", "2024-01-06", "2024-01-05", "2024-01-04", "2024-01-03", "2024-01-02", "2024-01-01", "2023-12-31"}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FocusStreak(tt.dates, today); got != tt.want {
				t.Errorf("FocusStreak = %d, want %d", got, tt.want)
			}
		})
	}
}
