package validation

import (
	"github.com/habitloop/habitloop/internal/model"
)

// MaxSessionMinutes bounds a single focus or break interval.
const MaxSessionMinutes = 240

func ValidateDuration(minutes int) error {
	if minutes <= 0 {
		return invalid("duration_minutes", "duration is required and must be positive")
	}
	if minutes > MaxSessionMinutes {
		return invalid("duration_minutes", "duration cannot exceed 240 minutes")
	}
	return nil
}

func ValidateSessionType(sessionType string) error {
	if !model.IsValidSessionType(sessionType) {
		return invalid("session_type", "session type must be focus, shortBreak or longBreak")
	}
	return nil
}
