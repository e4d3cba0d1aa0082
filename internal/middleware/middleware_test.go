package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/habitloop/habitloop/internal/model"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/service"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	Chain(final, mark("a"), mark("b"), mark("c")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if got := strings.Join(order, ","); got != "a,b,c,handler" {
		t.Errorf("order = %s", got)
	}
}

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    2,
		window:   time.Minute,
		now:      func() time.Time { return now },
	}

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("first two requests denied")
	}
	if rl.Allow("a") {
		t.Error("third request within window allowed")
	}
	if !rl.Allow("b") {
		t.Error("separate key denied")
	}

	now = now.Add(61 * time.Second)
	if !rl.Allow("a") {
		t.Error("request after window denied")
	}

	now = now.Add(5 * time.Minute)
	rl.sweep(now)
	if len(rl.requests) != 0 {
		t.Errorf("sweep left %d keys", len(rl.requests))
	}
}

func TestRateLimiterSweepsOnAllow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	rl.Allow("b")

	now = now.Add(time.Minute)
	rl.Allow("c")
	if len(rl.requests) != 3 {
		t.Fatalf("keys = %d before the sweep interval, want 3", len(rl.requests))
	}

	now = now.Add(cleanupInterval)
	rl.Allow("d")
	if _, ok := rl.requests["a"]; ok {
		t.Error("stale key a kept after sweep")
	}
	if len(rl.requests) != 1 {
		t.Errorf("keys = %d after sweep, want only d", len(rl.requests))
	}
}

type stubUsers struct {
	err error
}

func (s stubUsers) Create(context.Context, *model.User) error { return s.err }

func (s stubUsers) ByID(context.Context, string) (*model.User, error) { return nil, s.err }

func (s stubUsers) ByEmail(context.Context, string) (*model.User, error) { return nil, s.err }

func TestAuthMiddlewareLookupFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		signed bool
		code   int
	}{
		{"malformed token", nil, false, http.StatusUnauthorized},
		{"unknown user", repository.ErrUserNotFound, true, http.StatusUnauthorized},
		{"store down", errors.New("database is closed"), true, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := service.NewAuthService(stubUsers{err: tt.err}, service.NewSubscriptionService(nil), "test-secret", time.Hour)
			handler := AuthMiddleware(auth)(RequireAuth(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))

			token := "not-a-jwt"
			if tt.signed {
				var err error
				token, err = auth.GenerateJWT(&model.User{ID: "u1", Email: "u@example.com"})
				if err != nil {
					t.Fatalf("GenerateJWT: %v", err)
				}
			}

			req := httptest.NewRequest("GET", "/api/habits", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
		})
	}
}
