package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid", "Drink water", false},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 101), true},
		{"max length", strings.Repeat("a", 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	today := time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC)

	got, err := ParseDate("2024-01-05", today)
	if err != nil || got != "2024-01-05" {
		t.Errorf("ParseDate = %q, %v", got, err)
	}
	if _, err := ParseDate("2024-01-07", today); err != nil {
		t.Errorf("today rejected: %v", err)
	}
	if _, err := ParseDate("2024-01-08", today); err == nil {
		t.Error("future date accepted")
	}
	if _, err := ParseDate("01/05/2024", today); err == nil {
		t.Error("bad format accepted")
	}
}

func TestValidateMoodAndContent(t *testing.T) {
	if err := ValidateMood("happy"); err != nil {
		t.Errorf("happy rejected: %v", err)
	}
	for _, bad := range []string{"", "angry", "Happy"} {
		if err := ValidateMood(bad); err == nil {
			t.Errorf("ValidateMood(%q) accepted", bad)
		}
	}
	if err := ValidateJournalContent(strings.Repeat("x", 10001)); err == nil {
		t.Error("oversized content accepted")
	}
}

func TestValidateFocus(t *testing.T) {
	for _, minutes := range []int{0, -5, 241} {
		if err := ValidateDuration(minutes); err == nil {
			t.Errorf("ValidateDuration(%d) accepted", minutes)
		}
	}
	if err := ValidateDuration(25); err != nil {
		t.Errorf("ValidateDuration(25) = %v", err)
	}
	if err := ValidateSessionType("nap"); err == nil {
		t.Error("unknown session type accepted")
	}
	for _, st := range []string{"focus", "shortBreak", "longBreak"} {
		if err := ValidateSessionType(st); err != nil {
			t.Errorf("ValidateSessionType(%q) = %v", st, err)
		}
	}
}

func TestValidationErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("log session: %w", ValidateDuration(0))

	var v *Error
	if !errors.As(err, &v) {
		t.Fatal("wrapped validation error not detected")
	}
	if v.Field != "duration_minutes" {
		t.Errorf("Field = %q, want duration_minutes", v.Field)
	}
	if errors.As(errors.New("db down"), &v) {
		t.Error("plain error reported as validation error")
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("ada@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"", "not-an-email", strings.Repeat("a", 250) + "@x.io"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("ValidateEmail(%q) accepted", bad)
		}
	}
}
