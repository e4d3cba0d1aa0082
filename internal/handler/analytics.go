package handler

import (
	"net/http"

	"github.com/habitloop/habitloop/internal/ctxkeys"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

type progressResponse struct {
	HabitID         string `json:"habit_id"`
	Title           string `json:"title"`
	CompletionCount int    `json:"completion_count"`
}

type dayPointResponse struct {
	Date        string `json:"date"`
	Day         string `json:"day"`
	Completions int    `json:"completions"`
}

type weeklyResponse struct {
	Days             []dayPointResponse `json:"days"`
	TotalCompletions int                `json:"total_completions"`
	ConsistencyScore float64            `json:"consistency_score"`
	ConsistencyLabel string             `json:"consistency_label"`
}

type moodResponse struct {
	Mood          string  `json:"mood"`
	AvgCompletion float64 `json:"avg_completion"`
	Entries       int     `json:"entries"`
}

func (h *AnalyticsHandler) Progress(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	tallies, err := h.analyticsService.ProgressByHabit(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to compute progress")
		return
	}

	progress := make([]progressResponse, 0, len(tallies))
	for _, t := range tallies {
		progress = append(progress, progressResponse{
			HabitID:         t.HabitID,
			Title:           t.Title,
			CompletionCount: t.CompletionCount,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"progress": progress})
}

// Weekly is the pro-gated weekly series.
func (h *AnalyticsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	report, err := h.analyticsService.WeeklySeries(r.Context(), user.ID, ctxkeys.HasFeature(r.Context(), model.FeatureWeeklyAnalytics))
	if err != nil {
		writeServiceError(w, r, err, "failed to compute weekly series")
		return
	}

	writeJSON(w, http.StatusOK, newWeeklyResponse(report))
}

// WeeklyProgress serves the same series to every tier.
func (h *AnalyticsHandler) WeeklyProgress(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	report, err := h.analyticsService.WeeklyProgress(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to compute weekly progress")
		return
	}

	writeJSON(w, http.StatusOK, newWeeklyResponse(report))
}

func (h *AnalyticsHandler) Correlations(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	averages, err := h.analyticsService.MoodCorrelation(r.Context(), user.ID, ctxkeys.HasFeature(r.Context(), model.FeatureMoodCorrelation))
	if err != nil {
		writeServiceError(w, r, err, "failed to compute mood correlation")
		return
	}

	moods := make([]moodResponse, 0, len(averages))
	for _, a := range averages {
		moods = append(moods, moodResponse{
			Mood:          a.Mood,
			AvgCompletion: a.AvgCompletion,
			Entries:       a.Entries,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"correlations": moods})
}

func newWeeklyResponse(report *service.WeeklyReport) weeklyResponse {
	days := make([]dayPointResponse, 0, len(report.Days))
	for _, d := range report.Days {
		days = append(days, dayPointResponse{
			Date:        d.Date,
			Day:         d.Weekday,
			Completions: d.Completions,
		})
	}

	return weeklyResponse{
		Days:             days,
		TotalCompletions: report.TotalCompletions,
		ConsistencyScore: report.ConsistencyScore,
		ConsistencyLabel: report.ConsistencyLabel,
	}
}
