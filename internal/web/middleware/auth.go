package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/services/auth"
)

type contextKey string

const userContextKey contextKey = "user"

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// GetUser retrieves the resolved user from the request context.
// Returns nil for anonymous requests.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// Session returns middleware that resolves the session cookie to a user
// and attaches it to the request context. Requests with no cookie, an
// unknown token, or an expired session proceed as anonymous. A session
// backend or storage failure aborts the request with a 500 instead;
// falling back to anonymous there would bounce a signed-in user to the
// denial pages.
func Session(authService *auth.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var user *model.User
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				resolved, err := authService.ResolveSession(r.Context(), cookie.Value)
				switch {
				case err == nil:
					user = resolved
				case errors.Is(err, auth.ErrInvalidSession):
					// Stale cookie; replaced on next login.
				default:
					logger.Error("session resolution failed", slog.String("error", err.Error()))
					writeServerErrorPage(w)
					return
				}
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth gates a route on an authenticated principal. Anonymous
// requests are redirected before any handler code runs.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetUser(r.Context()) == nil {
				http.Redirect(w, r, "/notAuthorized", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates a route on an authenticated admin principal
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUser(r.Context())
			if user == nil || !user.IsAdmin {
				http.Redirect(w, r, "/notAuthorizedAdmin", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
