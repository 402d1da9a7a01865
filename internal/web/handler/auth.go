package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/szabolcsj/weblabor/internal/services/auth"
	"github.com/szabolcsj/weblabor/internal/web/middleware"
)

// AuthHandler handles login, registration and logout. Login and
// registration answer with a JSON success/failure indicator (the pages
// submit them from a modal) and set the session cookie as a side
// effect; logout is a plain redirect.
type AuthHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// authResult is the JSON body for login/register responses
type authResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Login handles the login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeAuthResult(w, http.StatusBadRequest, authResult{Success: false, Message: "Invalid form data"})
		return
	}

	username := strings.TrimSpace(r.FormValue("uname"))
	password := r.FormValue("pw")

	if username == "" || password == "" {
		writeAuthResult(w, http.StatusOK, authResult{Success: false, Message: "Username and password are required"})
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// One message for both unknown user and wrong password
			writeAuthResult(w, http.StatusOK, authResult{Success: false, Message: "Invalid username or password"})
			return
		}
		h.logger.Error("login failed", slog.String("error", err.Error()))
		writeAuthResult(w, http.StatusInternalServerError, authResult{Success: false, Message: "Server error"})
		return
	}

	h.setSessionCookie(w, session.Token)
	writeAuthResult(w, http.StatusOK, authResult{Success: true})
}

// Register handles the registration form submission. Success behaves
// like a login: the new account is authenticated immediately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeAuthResult(w, http.StatusBadRequest, authResult{Success: false, Message: "Invalid form data"})
		return
	}

	username := strings.TrimSpace(r.FormValue("uname"))
	password := r.FormValue("pw")

	if username == "" || password == "" {
		writeAuthResult(w, http.StatusOK, authResult{Success: false, Message: "Username and password are required"})
		return
	}

	session, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			writeAuthResult(w, http.StatusOK, authResult{Success: false, Message: "This username is already taken"})
			return
		}
		h.logger.Error("registration failed", slog.String("error", err.Error()))
		writeAuthResult(w, http.StatusInternalServerError, authResult{Success: false, Message: "Server error"})
		return
	}

	h.setSessionCookie(w, session.Token)
	writeAuthResult(w, http.StatusOK, authResult{Success: true})
}

// Logout destroys the current session and redirects home
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.InvalidateSession(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("session invalidation failed", slog.String("error", err.Error()))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authService.SessionDuration() / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeAuthResult(w http.ResponseWriter, status int, result authResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}
