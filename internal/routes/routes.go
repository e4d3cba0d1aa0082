package routes

import (
	"net/http"

	"github.com/habitloop/habitloop/internal/app"
	"github.com/habitloop/habitloop/internal/handler"
	"github.com/habitloop/habitloop/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	habit := handler.NewHabitHandler(app.HabitService)
	journal := handler.NewJournalHandler(app.JournalService)
	focus := handler.NewFocusHandler(app.FocusService)
	analytics := handler.NewAnalyticsHandler(app.AnalyticsService)
	achievement := handler.NewAchievementHandler(app.AchievementService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Habits
	mux.HandleFunc("GET /api/habits", middleware.RequireAuth(habit.List))
	mux.HandleFunc("POST /api/habits", middleware.RequireAuth(habit.Create))
	mux.HandleFunc("PUT /api/habits/{id}", middleware.RequireAuth(habit.Update))
	mux.HandleFunc("DELETE /api/habits/{id}", middleware.RequireAuth(habit.Delete))
	mux.HandleFunc("GET /api/habits/{id}/logs", middleware.RequireAuth(habit.Logs))
	mux.HandleFunc("POST /api/habits/{id}/check", middleware.RequireAuth(habit.Check))
	mux.HandleFunc("DELETE /api/habits/{id}/check", middleware.RequireAuth(habit.Uncheck))

	// Journal
	mux.HandleFunc("GET /api/journal", middleware.RequireAuth(journal.List))
	mux.HandleFunc("GET /api/journal/today", middleware.RequireAuth(journal.Today))
	mux.HandleFunc("PUT /api/journal", middleware.RequireAuth(journal.Write))

	// Focus
	mux.HandleFunc("POST /api/focus/sessions", middleware.RequireAuth(focus.LogSession))
	mux.HandleFunc("GET /api/focus/stats", middleware.RequireAuth(focus.Stats))

	// Analytics (weekly and correlations are pro-gated in the service)
	mux.HandleFunc("GET /api/analytics/progress", middleware.RequireAuth(analytics.Progress))
	mux.HandleFunc("GET /api/analytics/weekly", middleware.RequireAuth(analytics.Weekly))
	mux.HandleFunc("GET /api/analytics/weekly-progress", middleware.RequireAuth(analytics.WeeklyProgress))
	mux.HandleFunc("GET /api/analytics/correlations", middleware.RequireAuth(analytics.Correlations))

	// Achievements (check is rate limited per user)
	checkLimiter := middleware.RateLimit(middleware.NewRateLimiter(app.Cfg.CheckRateLimit, app.Cfg.CheckRateWindow))
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(achievement.List))
	mux.HandleFunc("POST /api/achievements/check", middleware.RequireAuth(checkLimiter(achievement.Check)))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Timeout(app.Cfg.RequestTimeout),
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}
