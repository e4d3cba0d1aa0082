package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/habitloop/habitloop/internal/ctxkeys"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

type journalRequest struct {
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Content string `json:"content"`
}

type journalResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Mood      string    `json:"mood"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newJournalResponse(e *model.JournalEntry) journalResponse {
	return journalResponse{
		ID:        e.ID,
		Date:      e.EntryDate,
		Mood:      e.Mood,
		Content:   e.Content,
		UpdatedAt: e.UpdatedAt,
	}
}

func (h *JournalHandler) Write(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req journalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.journalService.Write(r.Context(), user.ID, req.Date, req.Mood, req.Content)
	if err != nil {
		writeServiceError(w, r, err, "failed to write journal entry")
		return
	}

	writeJSON(w, http.StatusOK, newJournalResponse(entry))
}

// Today returns today's entry, or null when none was written yet.
func (h *JournalHandler) Today(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	entry, err := h.journalService.Today(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "failed to load today's journal entry")
		return
	}

	if entry == nil {
		writeJSON(w, http.StatusOK, map[string]any{"entry": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": newJournalResponse(entry)})
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.journalService.Recent(r.Context(), user.ID, limit)
	if err != nil {
		writeServiceError(w, r, err, "failed to list journal entries")
		return
	}

	resp := make([]journalResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, newJournalResponse(e))
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": resp})
}
