package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/habitloop/habitloop/internal/app"
	"github.com/habitloop/habitloop/internal/config"
	"github.com/habitloop/habitloop/internal/db/dbtest"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/routes"
)

type testServer struct {
	app     *app.App
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		AppName:         "Habitloop",
		AppEnv:          "development",
		AppURL:          "http://localhost:8090",
		JWTSecret:       "test-secret",
		JWTExpiry:       time.Hour,
		Location:        time.UTC,
		RequestTimeout:  5 * time.Second,
		CheckRateLimit:  3,
		CheckRateWindow: time.Minute,
	}

	a := app.Build(cfg, dbtest.New(t))
	return &testServer{app: a, handler: routes.SetupRoutes(a)}
}

// token creates the user if needed and returns a bearer token for it.
func (s *testServer) token(t *testing.T, email string, pro bool) string {
	t.Helper()
	ctx := context.Background()

	user, err := s.app.UserService.EnsureUser(ctx, email)
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if pro {
		if _, err := s.app.SubscriptionService.ChangePlan(ctx, user.ID, model.SubscriptionPlanPro); err != nil {
			t.Fatalf("ChangePlan: %v", err)
		}
	}

	token, err := s.app.AuthService.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}

func TestRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/habits", "/api/achievements", "/api/analytics/progress", "/api/focus/stats"} {
		rec := s.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, rec.Code)
		}
	}

	rec := s.do(t, http.MethodGet, "/api/habits", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("invalid token = %d, want 401", rec.Code)
	}
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(t)

	if rec := s.do(t, http.MethodGet, "/healthz", "", nil); rec.Code != http.StatusOK {
		t.Errorf("healthz = %d", rec.Code)
	}
	rec := s.do(t, http.MethodGet, "/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown route = %d, want 404", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestHabitCheckAndAchievementFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "flow@example.com", false)

	rec := s.do(t, http.MethodPost, "/api/habits", token, map[string]string{"title": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank title = %d, want 400", rec.Code)
	}

	rec = s.do(t, http.MethodPost, "/api/habits", token, map[string]string{"title": "Read", "description": "20 pages"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create habit = %d: %s", rec.Code, rec.Body.String())
	}
	var habit struct {
		ID string `json:"id"`
	}
	decode(t, rec, &habit)

	rec = s.do(t, http.MethodPost, "/api/habits/"+habit.ID+"/check", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("check = %d: %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodPost, "/api/habits/"+habit.ID+"/check", token, map[string]string{"date": "2999-01-01"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("future check = %d, want 400", rec.Code)
	}

	rec = s.do(t, http.MethodGet, "/api/habits", token, nil)
	var list struct {
		Habits []struct {
			ID             string `json:"id"`
			Streak         int    `json:"streak"`
			CompletedToday bool   `json:"completed_today"`
		} `json:"habits"`
	}
	decode(t, rec, &list)
	if len(list.Habits) != 1 || list.Habits[0].Streak != 1 || !list.Habits[0].CompletedToday {
		t.Errorf("habits = %+v", list.Habits)
	}

	var check struct {
		NewAchievements []struct {
			BadgeType string `json:"badge_type"`
			Name      string `json:"name"`
		} `json:"new_achievements"`
		Message string `json:"message"`
	}
	rec = s.do(t, http.MethodPost, "/api/achievements/check", token, nil)
	decode(t, rec, &check)
	if len(check.NewAchievements) != 1 || check.NewAchievements[0].BadgeType != "first_completion" {
		t.Errorf("first check = %+v", check)
	}

	rec = s.do(t, http.MethodPost, "/api/achievements/check", token, nil)
	decode(t, rec, &check)
	if len(check.NewAchievements) != 0 {
		t.Errorf("second check awarded %+v", check.NewAchievements)
	}

	var overview struct {
		Earned         []json.RawMessage `json:"earned"`
		Available      []json.RawMessage `json:"available"`
		TotalEarned    int               `json:"total_earned"`
		TotalAvailable int               `json:"total_available"`
	}
	rec = s.do(t, http.MethodGet, "/api/achievements", token, nil)
	decode(t, rec, &overview)
	if overview.TotalEarned != 1 || overview.TotalEarned != len(overview.Earned) {
		t.Errorf("earned = %d (%d items)", overview.TotalEarned, len(overview.Earned))
	}
	if overview.TotalAvailable != len(overview.Available) || overview.TotalAvailable == 0 {
		t.Errorf("available = %d (%d items)", overview.TotalAvailable, len(overview.Available))
	}

	var history struct {
		CompletedDays []string `json:"completed_days"`
	}
	decode(t, s.do(t, http.MethodGet, "/api/habits/"+habit.ID+"/logs", token, nil), &history)
	if len(history.CompletedDays) != 1 {
		t.Errorf("completed days = %v, want today only", history.CompletedDays)
	}

	rec = s.do(t, http.MethodDelete, "/api/habits/"+habit.ID+"/check", token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("uncheck = %d", rec.Code)
	}
	rec = s.do(t, http.MethodDelete, "/api/habits/"+habit.ID+"/check", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second uncheck = %d, want 404", rec.Code)
	}
}

func TestProGating(t *testing.T) {
	s := newTestServer(t)
	free := s.token(t, "free@example.com", false)
	pro := s.token(t, "pro@example.com", true)

	for _, path := range []string{"/api/analytics/weekly", "/api/analytics/correlations"} {
		if rec := s.do(t, http.MethodGet, path, free, nil); rec.Code != http.StatusForbidden {
			t.Errorf("free GET %s = %d, want 403", path, rec.Code)
		}
		if rec := s.do(t, http.MethodGet, path, pro, nil); rec.Code != http.StatusOK {
			t.Errorf("pro GET %s = %d, want 200", path, rec.Code)
		}
	}

	rec := s.do(t, http.MethodGet, "/api/analytics/weekly-progress", free, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("free weekly-progress = %d", rec.Code)
	}
	var weekly struct {
		Days             []map[string]any `json:"days"`
		ConsistencyScore float64          `json:"consistency_score"`
		ConsistencyLabel string           `json:"consistency_label"`
	}
	decode(t, rec, &weekly)
	if len(weekly.Days) != 7 || weekly.ConsistencyScore != 0 || weekly.ConsistencyLabel != "Needs Work" {
		t.Errorf("weekly = %+v", weekly)
	}
}

func TestFocusEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "focus@example.com", false)

	rec := s.do(t, http.MethodPost, "/api/focus/sessions", token, map[string]any{"duration_minutes": 241})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("241 minutes = %d, want 400", rec.Code)
	}
	rec = s.do(t, http.MethodPost, "/api/focus/sessions", token, map[string]any{"duration_minutes": 25, "habit_id": "missing"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown habit = %d, want 404", rec.Code)
	}

	for _, body := range []map[string]any{
		{"duration_minutes": 25},
		{"duration_minutes": 35, "session_type": "focus"},
		{"duration_minutes": 5, "session_type": "shortBreak"},
	} {
		if rec := s.do(t, http.MethodPost, "/api/focus/sessions", token, body); rec.Code != http.StatusCreated {
			t.Fatalf("log session %v = %d: %s", body, rec.Code, rec.Body.String())
		}
	}

	var totals map[string]int
	decode(t, s.do(t, http.MethodGet, "/api/focus/stats", token, nil), &totals)
	want := map[string]int{
		"today_minutes":  60,
		"week_minutes":   60,
		"total_minutes":  60,
		"total_sessions": 2,
		"focus_streak":   1,
	}
	for k, v := range want {
		if totals[k] != v {
			t.Errorf("%s = %d, want %d", k, totals[k], v)
		}
	}
}

func TestJournalEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "journal@example.com", false)

	rec := s.do(t, http.MethodPut, "/api/journal", token, map[string]string{"mood": "grumpy"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown mood = %d, want 400", rec.Code)
	}

	rec = s.do(t, http.MethodPut, "/api/journal", token, map[string]string{"mood": "happy", "content": "good day"})
	if rec.Code != http.StatusOK {
		t.Fatalf("write = %d: %s", rec.Code, rec.Body.String())
	}

	var today struct {
		Entry *struct {
			Mood string `json:"mood"`
		} `json:"entry"`
	}
	decode(t, s.do(t, http.MethodGet, "/api/journal/today", token, nil), &today)
	if today.Entry == nil || today.Entry.Mood != "happy" {
		t.Errorf("today = %+v", today.Entry)
	}

	var list struct {
		Entries []struct {
			Mood string `json:"mood"`
		} `json:"entries"`
	}
	decode(t, s.do(t, http.MethodGet, "/api/journal?limit=5", token, nil), &list)
	if len(list.Entries) != 1 || list.Entries[0].Mood != "happy" {
		t.Errorf("entries = %+v", list.Entries)
	}
}

func TestAchievementCheckRateLimited(t *testing.T) {
	s := newTestServer(t)
	token := s.token(t, "busy@example.com", false)

	for i := range 3 {
		if rec := s.do(t, http.MethodPost, "/api/achievements/check", token, nil); rec.Code != http.StatusOK {
			t.Fatalf("check %d = %d", i, rec.Code)
		}
	}

	rec := s.do(t, http.MethodPost, "/api/achievements/check", token, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("4th check = %d, want 429", rec.Code)
	}

	// Limits are per user.
	other := s.token(t, "calm@example.com", false)
	if rec := s.do(t, http.MethodPost, "/api/achievements/check", other, nil); rec.Code != http.StatusOK {
		t.Errorf("other user check = %d, want 200", rec.Code)
	}
}
