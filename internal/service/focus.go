package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/stats"
	"github.com/habitloop/habitloop/internal/validation"
)

type LogSessionInput struct {
	DurationMinutes int
	SessionType     string
	HabitID         string
}

type FocusService struct {
	repo      repository.FocusSessionRepository
	habitRepo repository.HabitRepository
	calendar  Calendar
}

func NewFocusService(repo repository.FocusSessionRepository, habitRepo repository.HabitRepository, calendar Calendar) *FocusService {
	return &FocusService{
		repo:      repo,
		habitRepo: habitRepo,
		calendar:  calendar,
	}
}

// LogSession appends a completed focus or break interval dated today.
func (s *FocusService) LogSession(ctx context.Context, userID string, in LogSessionInput) (*model.FocusSession, error) {
	if err := validation.ValidateDuration(in.DurationMinutes); err != nil {
		return nil, err
	}
	if in.SessionType == "" {
		in.SessionType = model.SessionTypeFocus
	}
	if err := validation.ValidateSessionType(in.SessionType); err != nil {
		return nil, err
	}

	var habitID *string
	if in.HabitID != "" {
		// Verify ownership
		_, err := s.habitRepo.ByID(ctx, userID, in.HabitID)
		if err != nil {
			return nil, err
		}
		habitID = &in.HabitID
	}

	session := &model.FocusSession{
		ID:              uuid.New().String(),
		UserID:          userID,
		HabitID:         habitID,
		DurationMinutes: in.DurationMinutes,
		SessionType:     in.SessionType,
		SessionDate:     model.Day(s.calendar.Today()),
		CreatedAt:       time.Now(),
	}

	err := s.repo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to log focus session: %w", err)
	}

	return session, nil
}

// Stats returns focus minutes for today, the trailing week and all time, plus the focus streak.
func (s *FocusService) Stats(ctx context.Context, userID string) (stats.FocusTotals, error) {
	sessions, err := s.repo.Sessions(ctx, userID, nil, model.SessionTypeFocus)
	if err != nil {
		return stats.FocusTotals{}, err
	}

	return stats.FocusAggregates(sessions, s.calendar.Today()), nil
}
