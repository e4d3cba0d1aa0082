package service

import (
	"context"
	"errors"

	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/stats"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProRequired = errors.New("pro subscription required")
)

type WeeklyReport struct {
	Days             []stats.DayPoint
	TotalCompletions int
	HabitCount       int
	ConsistencyScore float64
	ConsistencyLabel string
}

// AnalyticsService composes the metric calculators into the analytics views.
// Every method is read-only.
type AnalyticsService struct {
	habitRepo   repository.HabitRepository
	logRepo     repository.HabitLogRepository
	journalRepo repository.JournalRepository
	calendar    Calendar
}

func NewAnalyticsService(
	habitRepo repository.HabitRepository,
	logRepo repository.HabitLogRepository,
	journalRepo repository.JournalRepository,
	calendar Calendar,
) *AnalyticsService {
	return &AnalyticsService{
		habitRepo:   habitRepo,
		logRepo:     logRepo,
		journalRepo: journalRepo,
		calendar:    calendar,
	}
}

// ProgressByHabit returns every habit's lifetime completion count. Always available.
func (s *AnalyticsService) ProgressByHabit(ctx context.Context, userID string) ([]stats.HabitTally, error) {
	habits, err := s.habitRepo.Habits(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.logRepo.CompletionsByHabit(ctx, habitIDs(habits), nil)
	if err != nil {
		return nil, err
	}

	return stats.CompletionTally(habits, counts), nil
}

// WeeklySeries is the pro-gated 7-day completion series.
func (s *AnalyticsService) WeeklySeries(ctx context.Context, userID string, isPro bool) (*WeeklyReport, error) {
	if !isPro {
		return nil, ErrProRequired
	}
	return s.weekly(ctx, userID)
}

// WeeklyProgress is the same 7-day series without the entitlement check.
func (s *AnalyticsService) WeeklyProgress(ctx context.Context, userID string) (*WeeklyReport, error) {
	return s.weekly(ctx, userID)
}

func (s *AnalyticsService) weekly(ctx context.Context, userID string) (*WeeklyReport, error) {
	habits, err := s.habitRepo.Habits(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.calendar.Today()
	window := model.LastDays(today, stats.WeekLength)
	counts, err := s.logRepo.CompletionsByDay(ctx, habitIDs(habits), &window)
	if err != nil {
		return nil, err
	}

	days := stats.WeeklySeries(today, counts)
	total := stats.SeriesTotal(days)
	score := stats.ConsistencyScore(total, len(habits))

	return &WeeklyReport{
		Days:             days,
		TotalCompletions: total,
		HabitCount:       len(habits),
		ConsistencyScore: score,
		ConsistencyLabel: stats.ConsistencyLabel(score),
	}, nil
}

// MoodCorrelation is the pro-gated mood to average-completion table.
func (s *AnalyticsService) MoodCorrelation(ctx context.Context, userID string, isPro bool) ([]stats.MoodAverage, error) {
	if !isPro {
		return nil, ErrProRequired
	}

	var (
		entries []*model.JournalEntry
		daily   []model.DayCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.journalRepo.Entries(gctx, userID, nil)
		return err
	})
	g.Go(func() error {
		habits, err := s.habitRepo.Habits(gctx, userID)
		if err != nil {
			return err
		}
		daily, err = s.logRepo.CompletionsByDay(gctx, habitIDs(habits), nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats.MoodCorrelation(entries, daily), nil
}
