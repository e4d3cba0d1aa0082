package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/habitloop/habitloop/internal/badge"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/stats"
	"golang.org/x/sync/errgroup"
)

type EarnedBadge struct {
	Badge    badge.Definition
	EarnedAt time.Time
}

type AvailableBadge struct {
	Badge    badge.Definition
	Progress int
}

type AchievementOverview struct {
	Earned    []EarnedBadge
	Available []AvailableBadge
}

// AchievementNotifier is told about badges awarded by a check.
type AchievementNotifier interface {
	NotifyAchievements(ctx context.Context, user *model.User, badges []EarnedBadge) error
}

// AchievementService evaluates the badge catalog against a user's metrics
// and records each newly satisfied badge exactly once. It holds no state;
// award-once relies on the (user_id, badge_type) uniqueness in storage.
type AchievementService struct {
	achievementRepo repository.AchievementRepository
	habitRepo       repository.HabitRepository
	logRepo         repository.HabitLogRepository
	journalRepo     repository.JournalRepository
	focusRepo       repository.FocusSessionRepository
	notifier        AchievementNotifier
	calendar        Calendar
}

func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	habitRepo repository.HabitRepository,
	logRepo repository.HabitLogRepository,
	journalRepo repository.JournalRepository,
	focusRepo repository.FocusSessionRepository,
	notifier AchievementNotifier,
	calendar Calendar,
) *AchievementService {
	return &AchievementService{
		achievementRepo: achievementRepo,
		habitRepo:       habitRepo,
		logRepo:         logRepo,
		journalRepo:     journalRepo,
		focusRepo:       focusRepo,
		notifier:        notifier,
		calendar:        calendar,
	}
}

// Snapshot computes the metric values badges are evaluated against.
func (s *AchievementService) Snapshot(ctx context.Context, userID string, isPro bool) (badge.Snapshot, error) {
	habits, err := s.habitRepo.Habits(ctx, userID)
	if err != nil {
		return badge.Snapshot{}, err
	}

	var (
		counts   map[string]int
		sessions []*model.FocusSession
		journals int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.logRepo.CompletionsByHabit(gctx, habitIDs(habits), nil)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.focusRepo.Sessions(gctx, userID, nil, model.SessionTypeFocus)
		return err
	})
	g.Go(func() error {
		var err error
		journals, err = s.journalRepo.CountUserEntries(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return badge.Snapshot{}, err
	}

	return badge.Snapshot{
		MaxTally:         stats.MaxTally(counts),
		TotalCompletions: stats.TotalCompletions(counts),
		FocusMinutes:     stats.FocusAggregates(sessions, s.calendar.Today()).TotalMinutes,
		JournalEntries:   journals,
		HabitCount:       len(habits),
		IsPro:            isPro,
	}, nil
}

// Evaluate awards every catalog badge whose rule currently holds and that the
// user has not earned yet. It returns only the badges awarded by this call.
// A failed insert is logged and the remaining badges are still evaluated.
func (s *AchievementService) Evaluate(ctx context.Context, userID string, isPro bool) ([]EarnedBadge, error) {
	snapshot, err := s.Snapshot(ctx, userID, isPro)
	if err != nil {
		return nil, err
	}

	earned, err := s.earnedTypes(ctx, userID)
	if err != nil {
		return nil, err
	}

	awarded := []EarnedBadge{}
	for _, def := range badge.All() {
		if err := ctx.Err(); err != nil {
			return awarded, err
		}
		if earned[def.Type] || !def.Satisfied(snapshot) {
			continue
		}

		achievement := &model.Achievement{
			ID:        uuid.New().String(),
			UserID:    userID,
			BadgeType: def.Type,
			EarnedAt:  s.calendar.Now(),
		}
		inserted, err := s.achievementRepo.InsertIfAbsent(ctx, achievement)
		if err != nil {
			slog.Error("failed to award badge", "error", err, "user_id", userID, "badge_type", def.Type)
			continue
		}
		if !inserted {
			// Awarded concurrently by another evaluation.
			continue
		}

		slog.Info("badge awarded", "user_id", userID, "badge_type", def.Type)
		awarded = append(awarded, EarnedBadge{Badge: def, EarnedAt: achievement.EarnedAt})
	}

	return awarded, nil
}

// Check evaluates the user and notifies them about any new badges.
// Badges stored by an interrupted evaluation are still notified, since a
// rerun will not award them again. Notification failures never fail the check.
func (s *AchievementService) Check(ctx context.Context, user *model.User, isPro bool) ([]EarnedBadge, error) {
	awarded, err := s.Evaluate(ctx, user.ID, isPro)

	if len(awarded) > 0 && s.notifier != nil {
		notifyErr := s.notifier.NotifyAchievements(context.WithoutCancel(ctx), user, awarded)
		if notifyErr != nil {
			slog.Warn("failed to send achievement notification", "error", notifyErr, "user_id", user.ID)
		}
	}

	return awarded, err
}

// Overview lists earned badges with catalog metadata and the remaining
// catalog with current progress. Stored badge types unknown to the catalog
// are skipped.
func (s *AchievementService) Overview(ctx context.Context, userID string, isPro bool) (*AchievementOverview, error) {
	records, err := s.achievementRepo.Achievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.Snapshot(ctx, userID, isPro)
	if err != nil {
		return nil, err
	}

	overview := &AchievementOverview{
		Earned:    []EarnedBadge{},
		Available: []AvailableBadge{},
	}

	earned := make(map[string]bool, len(records))
	for _, rec := range records {
		def, ok := badge.Lookup(rec.BadgeType)
		if !ok {
			slog.Warn("stored achievement has no catalog entry", "user_id", userID, "badge_type", rec.BadgeType)
			continue
		}
		earned[rec.BadgeType] = true
		overview.Earned = append(overview.Earned, EarnedBadge{Badge: def, EarnedAt: rec.EarnedAt})
	}

	for _, def := range badge.All() {
		if earned[def.Type] {
			continue
		}
		overview.Available = append(overview.Available, AvailableBadge{
			Badge:    def,
			Progress: def.Progress(snapshot),
		})
	}

	return overview, nil
}

func (s *AchievementService) earnedTypes(ctx context.Context, userID string) (map[string]bool, error) {
	records, err := s.achievementRepo.Achievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(records))
	for _, rec := range records {
		earned[rec.BadgeType] = true
	}
	return earned, nil
}
