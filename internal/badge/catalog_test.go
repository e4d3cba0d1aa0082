package badge

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	categories := map[Category]bool{
		CategoryStreaks: true, CategoryCompletions: true, CategoryFocus: true,
		CategoryJournal: true, CategoryChallenges: true, CategorySpecial: true,
	}

	all := All()
	if len(all) != Len() {
		t.Fatalf("All() returned %d definitions, Len() = %d", len(all), Len())
	}

	for _, d := range all {
		if d.Type == "" || d.Name == "" || d.Description == "" || d.Icon == "" {
			t.Errorf("definition %+v is missing metadata", d)
		}
		if !categories[d.Category] {
			t.Errorf("definition %q has unknown category %q", d.Type, d.Category)
		}
		if d.Comparator != AtLeast {
			t.Errorf("definition %q comparator = %q, want %q", d.Type, d.Comparator, AtLeast)
		}
		got, ok := Lookup(d.Type)
		if !ok || got.Type != d.Type {
			t.Errorf("Lookup(%q) = %+v, %v", d.Type, got, ok)
		}
		if d.Automatic() && d.Threshold <= 0 {
			t.Errorf("automatic badge %q has non-positive threshold", d.Type)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("not_a_badge"); ok {
		t.Error("Lookup(not_a_badge) ok = true, want false")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if d, _ := Lookup(all[0].Type); d.Name == "mutated" {
		t.Error("mutating All() result changed the catalog")
	}
}

func TestSatisfied(t *testing.T) {
	tests := []struct {
		badge string
		snap  Snapshot
		want  bool
	}{
		{"complete_10", Snapshot{TotalCompletions: 9}, false},
		{"complete_10", Snapshot{TotalCompletions: 10}, true},
		{"streak_7", Snapshot{MaxTally: 7, TotalCompletions: 7}, true},
		{"streak_7", Snapshot{MaxTally: 6, TotalCompletions: 50}, false},
		{"focus_60", Snapshot{FocusMinutes: 60}, true},
		{"journal_1", Snapshot{}, false},
		{"journal_1", Snapshot{JournalEntries: 1}, true},
		{"habits_3", Snapshot{HabitCount: 3}, true},
		{"pro_member", Snapshot{IsPro: false}, false},
		{"pro_member", Snapshot{IsPro: true}, true},
		{"early_adopter", Snapshot{MaxTally: 1000, TotalCompletions: 1000, FocusMinutes: 1000, JournalEntries: 1000, HabitCount: 1000, IsPro: true}, false},
	}

	for _, tt := range tests {
		d, ok := Lookup(tt.badge)
		if !ok {
			t.Fatalf("badge %q missing from catalog", tt.badge)
		}
		if got := d.Satisfied(tt.snap); got != tt.want {
			t.Errorf("%s.Satisfied(%+v) = %v, want %v", tt.badge, tt.snap, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	d, _ := Lookup("complete_50")
	if got := d.Progress(Snapshot{TotalCompletions: 12}); got != 12 {
		t.Errorf("Progress = %d, want 12", got)
	}
	if got := d.Progress(Snapshot{TotalCompletions: 80}); got != 50 {
		t.Errorf("Progress = %d, want capped 50", got)
	}

	manual, _ := Lookup("early_adopter")
	if manual.Automatic() {
		t.Error("early_adopter should not be automatic")
	}
	if got := manual.Progress(Snapshot{}); got != 0 {
		t.Errorf("manual Progress = %d, want 0", got)
	}
}
