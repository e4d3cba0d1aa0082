package handler

import (
	"net/http"
	"time"

	"github.com/habitloop/habitloop/internal/ctxkeys"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/service"
)

type HabitHandler struct {
	habitService *service.HabitService
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

type habitResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Streak         int       `json:"streak"`
	CompletedToday bool      `json:"completed_today"`
	CreatedAt      time.Time `json:"created_at"`
}

type habitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type checkRequest struct {
	Date string `json:"date"`
}

func newHabitResponse(h *model.Habit) habitResponse {
	return habitResponse{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
	}
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	summaries, err := h.habitService.Habits(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list habits")
		return
	}

	habits := make([]habitResponse, 0, len(summaries))
	for _, s := range summaries {
		resp := newHabitResponse(s.Habit)
		resp.Streak = s.CompletionTally
		resp.CompletedToday = s.CompletedToday
		habits = append(habits, resp)
	}

	writeJSON(w, http.StatusOK, map[string]any{"habits": habits})
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req habitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	habit, err := h.habitService.Create(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, r, err, "failed to create habit")
		return
	}

	writeJSON(w, http.StatusCreated, newHabitResponse(habit))
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	var req habitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.habitService.Update(r.Context(), user.ID, habitID, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, r, err, "failed to update habit")
		return
	}

	habit, err := h.habitService.ByID(r.Context(), user.ID, habitID)
	if err != nil {
		writeServiceError(w, r, err, "failed to reload habit")
		return
	}

	writeJSON(w, http.StatusOK, newHabitResponse(habit))
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.habitService.Delete(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to delete habit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HabitHandler) Logs(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	logs, err := h.habitService.Logs(r.Context(), user.ID, habitID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list habit logs")
		return
	}

	days := make([]string, 0, len(logs))
	for _, l := range logs {
		if l.Completed {
			days = append(days, l.LogDate)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"habit_id": habitID, "completed_days": days})
}

func (h *HabitHandler) Check(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	var req checkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	day, err := h.habitService.Check(r.Context(), user.ID, habitID, req.Date)
	if err != nil {
		writeServiceError(w, r, err, "failed to check habit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"habit_id": habitID, "date": day, "completed": true})
}

func (h *HabitHandler) Uncheck(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	habitID := r.PathValue("id")

	day, err := h.habitService.Uncheck(r.Context(), user.ID, habitID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err, "failed to uncheck habit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"habit_id": habitID, "date": day, "completed": false})
}
