package handler

import (
	"net/http"

	"github.com/habitloop/habitloop/internal/ctxkeys"
	"github.com/habitloop/habitloop/internal/service"
)

type FocusHandler struct {
	focusService *service.FocusService
}

func NewFocusHandler(focusService *service.FocusService) *FocusHandler {
	return &FocusHandler{
		focusService: focusService,
	}
}

type focusSessionRequest struct {
	DurationMinutes int    `json:"duration_minutes"`
	SessionType     string `json:"session_type"`
	HabitID         string `json:"habit_id"`
}

func (h *FocusHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req focusSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.focusService.LogSession(r.Context(), user.ID, service.LogSessionInput{
		DurationMinutes: req.DurationMinutes,
		SessionType:     req.SessionType,
		HabitID:         req.HabitID,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to log focus session")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":               session.ID,
		"habit_id":         session.HabitID,
		"duration_minutes": session.DurationMinutes,
		"session_type":     session.SessionType,
		"date":             session.SessionDate,
	})
}

func (h *FocusHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	totals, err := h.focusService.Stats(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to compute focus stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"today_minutes":  totals.TodayMinutes,
		"week_minutes":   totals.WeekMinutes,
		"total_minutes":  totals.TotalMinutes,
		"total_sessions": totals.TotalSessions,
		"focus_streak":   totals.Streak,
	})
}
