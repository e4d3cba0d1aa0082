package validation

import (
	"strings"

	"github.com/habitloop/habitloop/internal/model"
)

const maxJournalContent = 10000

func ValidateMood(mood string) error {
	if mood == "" {
		return invalid("mood", "mood is required")
	}
	if !model.IsValidMood(mood) {
		return invalid("mood", "mood must be one of "+strings.Join(model.Moods, ", "))
	}
	return nil
}

func ValidateJournalContent(content string) error {
	if len(content) > maxJournalContent {
		return invalid("content", "content is too long (max 10000 characters)")
	}
	return nil
}
