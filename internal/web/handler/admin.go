package handler

import (
	"log/slog"
	"net/http"

	"github.com/szabolcsj/weblabor/internal/services/auth"
	"github.com/szabolcsj/weblabor/internal/web/middleware"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// AdminHandler serves the administrator-only pages
type AdminHandler struct {
	authService *auth.Service
	views       *views.Renderer
	logger      *slog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(authService *auth.Service, views *views.Renderer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		views:       views,
		logger:      logger,
	}
}

// Admin renders the user overview page
func (h *AdminHandler) Admin(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("user listing failed", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := views.AdminData{
		PageData: views.NewPageData("Admin", middleware.GetUser(r.Context())),
		Users:    users,
	}
	renderPage(w, h.views, http.StatusOK, "admin", data)
}
