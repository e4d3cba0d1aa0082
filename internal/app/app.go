package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/habitloop/habitloop/internal/badge"
	"github.com/habitloop/habitloop/internal/config"
	"github.com/habitloop/habitloop/internal/db"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	Calendar            service.Calendar
	AuthService         *service.AuthService
	UserService         *service.UserService
	SubscriptionService *service.SubscriptionService
	EmailService        *service.EmailService
	HabitService        *service.HabitService
	JournalService      *service.JournalService
	FocusService        *service.FocusService
	AnalyticsService    *service.AnalyticsService
	AchievementService  *service.AchievementService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("badge catalog loaded", "version", badge.CatalogVersion, "badges", badge.Len())

	return Build(cfg, database), nil
}

// Build wires repositories and services over an already migrated database.
func Build(cfg *config.Config, database *sqlx.DB) *App {
	calendar := service.NewCalendar(cfg.Location)

	// Repositories
	userRepository := repository.NewUserRepository(database)
	subscriptionRepository := repository.NewSubscriptionRepository(database)
	habitRepository := repository.NewHabitRepository(database)
	habitLogRepository := repository.NewHabitLogRepository(database)
	journalRepository := repository.NewJournalRepository(database)
	focusSessionRepository := repository.NewFocusSessionRepository(database)
	achievementRepository := repository.NewAchievementRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)

	var notifier service.AchievementNotifier
	if cfg.AchievementEmails {
		notifier = emailService
	}

	subscriptionService := service.NewSubscriptionService(subscriptionRepository)
	userService := service.NewUserService(userRepository, subscriptionService)
	authService := service.NewAuthService(userRepository, subscriptionService, cfg.JWTSecret, cfg.JWTExpiry)
	habitService := service.NewHabitService(habitRepository, habitLogRepository, calendar)
	journalService := service.NewJournalService(journalRepository, calendar)
	focusService := service.NewFocusService(focusSessionRepository, habitRepository, calendar)
	analyticsService := service.NewAnalyticsService(habitRepository, habitLogRepository, journalRepository, calendar)
	achievementService := service.NewAchievementService(
		achievementRepository,
		habitRepository,
		habitLogRepository,
		journalRepository,
		focusSessionRepository,
		notifier,
		calendar,
	)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		Calendar:            calendar,
		AuthService:         authService,
		UserService:         userService,
		SubscriptionService: subscriptionService,
		EmailService:        emailService,
		HabitService:        habitService,
		JournalService:      journalService,
		FocusService:        focusService,
		AnalyticsService:    analyticsService,
		AchievementService:  achievementService,
	}
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
