package model

import (
	"testing"
	"time"
)

func TestLastDays(t *testing.T) {
	today := time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC)
	got := LastDays(today, 7)
	if got.From != "2024-01-14" || got.To != "2024-01-20" {
		t.Errorf("LastDays = %+v, want 2024-01-14..2024-01-20", got)
	}
	if !got.Contains("2024-01-14") || got.Contains("2024-01-13") || got.Contains("2024-01-21") {
		t.Errorf("Contains disagrees with range %+v", got)
	}
}

func TestLastDaysMidnightDST(t *testing.T) {
	// Chile springs forward at midnight, so 2024-09-08 00:00 never exists.
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	today := time.Date(2024, 9, 14, 0, 5, 0, 0, loc)
	got := LastDays(today, 7)
	if got.From != "2024-09-08" || got.To != "2024-09-14" {
		t.Errorf("LastDays = %+v, want 2024-09-08..2024-09-14", got)
	}
}
