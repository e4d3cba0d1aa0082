package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/habitloop/habitloop/internal/ctxkeys"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/service"
	"github.com/habitloop/habitloop/internal/validation"
)

const maxBodyBytes = 1 << 20

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error apiError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: apiError{Code: code, Message: message}})
}

// writeServiceError maps service and repository errors onto HTTP responses.
// Anything unrecognised is logged and reported as a generic server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var verr *validation.Error

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: apiError{
			Code:    "invalid_input",
			Message: verr.Message,
			Field:   verr.Field,
		}})
	case errors.Is(err, service.ErrProRequired):
		writeError(w, http.StatusForbidden, "pro_required", "This feature requires a Pro subscription")
	case errors.Is(err, repository.ErrHabitNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Habit not found")
	case errors.Is(err, repository.ErrHabitLogNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Habit was not checked on that day")
	case errors.Is(err, repository.ErrJournalEntryNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Journal entry not found")
	default:
		attrs := []any{"error", err, "path", r.URL.Path, "request_id", ctxkeys.RequestID(r.Context())}
		if user := ctxkeys.User(r.Context()); user != nil {
			attrs = append(attrs, "user_id", user.ID)
		}
		slog.Error(msg, attrs...)
		writeError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
	}
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	writeError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
	return false
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not_found", "Route not found")
}
