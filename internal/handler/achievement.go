package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/habitloop/habitloop/internal/badge"
	"github.com/habitloop/habitloop/internal/ctxkeys"
	"github.com/habitloop/habitloop/internal/service"
)

type AchievementHandler struct {
	achievementService *service.AchievementService
}

func NewAchievementHandler(achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
	}
}

type badgeResponse struct {
	BadgeType   string     `json:"badge_type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Category    string     `json:"category"`
	Threshold   int        `json:"threshold,omitempty"`
	Progress    *int       `json:"progress,omitempty"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
}

func newBadgeResponse(def badge.Definition) badgeResponse {
	return badgeResponse{
		BadgeType:   def.Type,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
		Category:    string(def.Category),
		Threshold:   def.Threshold,
	}
}

func earnedResponses(badges []service.EarnedBadge) []badgeResponse {
	resp := make([]badgeResponse, 0, len(badges))
	for _, b := range badges {
		item := newBadgeResponse(b.Badge)
		earnedAt := b.EarnedAt
		item.EarnedAt = &earnedAt
		resp = append(resp, item)
	}
	return resp
}

func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	overview, err := h.achievementService.Overview(r.Context(), user.ID, ctxkeys.IsPro(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "failed to list achievements")
		return
	}

	available := make([]badgeResponse, 0, len(overview.Available))
	for _, b := range overview.Available {
		item := newBadgeResponse(b.Badge)
		if b.Badge.Automatic() && b.Badge.Threshold > 0 {
			progress := b.Progress
			item.Progress = &progress
		}
		available = append(available, item)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"earned":          earnedResponses(overview.Earned),
		"available":       available,
		"total_earned":    len(overview.Earned),
		"total_available": len(overview.Available),
	})
}

// Check evaluates the catalog and returns only badges awarded by this request.
func (h *AchievementHandler) Check(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	awarded, err := h.achievementService.Check(r.Context(), user, ctxkeys.IsPro(r.Context()))
	if err != nil && len(awarded) == 0 {
		writeServiceError(w, r, err, "failed to check achievements")
		return
	}

	message := "No new achievements yet. Keep going!"
	switch n := len(awarded); {
	case n == 1:
		message = fmt.Sprintf("You earned %s!", awarded[0].Badge.Name)
	case n > 1:
		message = fmt.Sprintf("You earned %d new achievements!", n)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"new_achievements": earnedResponses(awarded),
		"message":          message,
	})
}
