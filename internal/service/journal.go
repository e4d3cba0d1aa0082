package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/validation"
)

const (
	defaultJournalLimit = 30
	maxJournalLimit     = 365
)

type JournalService struct {
	repo     repository.JournalRepository
	calendar Calendar
}

func NewJournalService(repo repository.JournalRepository, calendar Calendar) *JournalService {
	return &JournalService{repo: repo, calendar: calendar}
}

// Write records the user's reflection for a day, replacing any earlier one.
func (s *JournalService) Write(ctx context.Context, userID, date, mood, content string) (*model.JournalEntry, error) {
	if err := validation.ValidateMood(mood); err != nil {
		return nil, err
	}
	if err := validation.ValidateJournalContent(content); err != nil {
		return nil, err
	}

	today := s.calendar.Today()
	day := model.Day(today)
	if date != "" {
		var err error
		day, err = validation.ParseDate(date, today)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	entry := &model.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		EntryDate: day,
		Mood:      mood,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to write journal entry: %w", err)
	}

	return s.repo.ByDate(ctx, userID, day)
}

func (s *JournalService) Recent(ctx context.Context, userID string, limit int) ([]*model.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}
	if limit > maxJournalLimit {
		limit = maxJournalLimit
	}
	return s.repo.Recent(ctx, userID, limit)
}

// Today returns today's entry, or nil when none was written yet.
func (s *JournalService) Today(ctx context.Context, userID string) (*model.JournalEntry, error) {
	entry, err := s.repo.ByDate(ctx, userID, model.Day(s.calendar.Today()))
	if errors.Is(err, repository.ErrJournalEntryNotFound) {
		return nil, nil
	}
	return entry, err
}
