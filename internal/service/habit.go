package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/validation"
	"golang.org/x/sync/errgroup"
)

// HabitSummary is a habit with its lifetime completion tally.
type HabitSummary struct {
	Habit           *model.Habit
	CompletionTally int
	CompletedToday  bool
}

type HabitService struct {
	repo     repository.HabitRepository
	logRepo  repository.HabitLogRepository
	calendar Calendar
}

func NewHabitService(repo repository.HabitRepository, logRepo repository.HabitLogRepository, calendar Calendar) *HabitService {
	return &HabitService{
		repo:     repo,
		logRepo:  logRepo,
		calendar: calendar,
	}
}

func (s *HabitService) Create(ctx context.Context, userID, title, description string) (*model.Habit, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	habit := &model.Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(ctx, habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) ByID(ctx context.Context, userID, habitID string) (*model.Habit, error) {
	return s.repo.ByID(ctx, userID, habitID)
}

// Habits lists a user's habits with their completion tallies and today's status.
func (s *HabitService) Habits(ctx context.Context, userID string) ([]HabitSummary, error) {
	habits, err := s.repo.Habits(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := habitIDs(habits)
	today := model.Day(s.calendar.Today())

	var tallies, todays map[string]int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tallies, err = s.logRepo.CompletionsByHabit(gctx, ids, nil)
		return err
	})
	g.Go(func() error {
		var err error
		todays, err = s.logRepo.CompletionsByHabit(gctx, ids, &model.DateRange{From: today, To: today})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		summaries = append(summaries, HabitSummary{
			Habit:           h,
			CompletionTally: tallies[h.ID],
			CompletedToday:  todays[h.ID] > 0,
		})
	}
	return summaries, nil
}

func (s *HabitService) Update(ctx context.Context, userID, habitID, title, description string) error {
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	// Verify ownership
	habit, err := s.repo.ByID(ctx, userID, habitID)
	if err != nil {
		return err
	}

	habit.Title = strings.TrimSpace(title)
	habit.Description = strings.TrimSpace(description)

	return s.repo.Update(ctx, habit)
}

// Logs returns a habit's completion history, oldest day first.
func (s *HabitService) Logs(ctx context.Context, userID, habitID string) ([]*model.HabitLog, error) {
	// Verify ownership
	_, err := s.repo.ByID(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	return s.logRepo.Logs(ctx, habitID)
}

func (s *HabitService) Delete(ctx context.Context, userID, habitID string) error {
	return s.repo.Delete(ctx, userID, habitID)
}

// Check marks a habit completed on date (today when empty).
func (s *HabitService) Check(ctx context.Context, userID, habitID, date string) (string, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return "", err
	}

	// Verify ownership
	_, err = s.repo.ByID(ctx, userID, habitID)
	if err != nil {
		return "", err
	}

	err = s.logRepo.Check(ctx, habitID, day)
	if err != nil {
		return "", fmt.Errorf("failed to check habit: %w", err)
	}
	return day, nil
}

// Uncheck removes the completion mark for date (today when empty).
func (s *HabitService) Uncheck(ctx context.Context, userID, habitID, date string) (string, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return "", err
	}

	// Verify ownership
	_, err = s.repo.ByID(ctx, userID, habitID)
	if err != nil {
		return "", err
	}

	return day, s.logRepo.Uncheck(ctx, habitID, day)
}

func (s *HabitService) resolveDay(date string) (string, error) {
	today := s.calendar.Today()
	if date == "" {
		return model.Day(today), nil
	}
	return validation.ParseDate(date, today)
}

func habitIDs(habits []*model.Habit) []string {
	ids := make([]string, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	return ids
}
