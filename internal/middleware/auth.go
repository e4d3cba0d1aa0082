package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/habitloop/habitloop/internal/ctxkeys"
	"github.com/habitloop/habitloop/internal/repository"
	"github.com/habitloop/habitloop/internal/service"
)

const authCookieName = "auth_token"

// AuthMiddleware resolves the bearer token (or auth cookie) and adds user +
// subscription to the context when valid. Requests without a valid token
// continue anonymously; RequireAuth rejects them where needed. A store failure
// while resolving the token is a 500, not an anonymous request.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, subscription, err := authService.Identify(r.Context(), token)
			if isRejectedToken(err) {
				slog.Debug("auth token rejected", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				slog.Error("failed to resolve auth token", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
				return
			}

			ctx := ctxkeys.WithUser(r.Context(), user)
			ctx = ctxkeys.WithSubscription(ctx, subscription)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries an authenticated user.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// isRejectedToken reports whether err means the token does not identify a
// known user, as opposed to a failure looking it up.
func isRejectedToken(err error) bool {
	return errors.Is(err, service.ErrInvalidToken) ||
		errors.Is(err, repository.ErrUserNotFound) ||
		errors.Is(err, repository.ErrSubscriptionNotFound)
}
