package validation

import (
	"strings"
	"time"

	"github.com/habitloop/habitloop/internal/model"
)

// ValidateTitle validates a habit title
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return invalid("title", "title is required")
	}

	if len(trimmed) > 100 {
		return invalid("title", "title is too long (max 100 characters)")
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD calendar day. Days after today are rejected.
func ParseDate(value string, today time.Time) (string, error) {
	day, err := time.ParseInLocation(model.DateLayout, value, today.Location())
	if err != nil {
		return "", invalid("date", "date must use the YYYY-MM-DD format")
	}

	key := model.Day(day)
	if key > model.Day(today) {
		return "", invalid("date", "date cannot be in the future")
	}
	return key, nil
}
