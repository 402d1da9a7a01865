package handler

import (
	"log/slog"
	"net/http"

	"github.com/szabolcsj/weblabor/internal/services/contact"
	"github.com/szabolcsj/weblabor/internal/web/middleware"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// MessagesHandler serves the stored contact messages page
type MessagesHandler struct {
	contactService *contact.Service
	views          *views.Renderer
	logger         *slog.Logger
}

// NewMessagesHandler creates a new MessagesHandler
func NewMessagesHandler(contactService *contact.Service, views *views.Renderer, logger *slog.Logger) *MessagesHandler {
	return &MessagesHandler{
		contactService: contactService,
		views:          views,
		logger:         logger,
	}
}

// Messages lists all received contact messages, newest first
func (h *MessagesHandler) Messages(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	data := views.MessagesData{
		PageData: views.NewPageData("Üzenetek", user),
	}

	messages, err := h.contactService.List(r.Context())
	if err != nil {
		h.logger.Error("message listing failed", slog.String("error", err.Error()))
		data.LoadError = "Could not load messages"
		renderPage(w, h.views, http.StatusInternalServerError, "messages", data)
		return
	}

	data.Messages = messages
	renderPage(w, h.views, http.StatusOK, "messages", data)
}

// Protected renders the signed-in-only landing page
func (h *MessagesHandler) Protected(w http.ResponseWriter, r *http.Request) {
	data := views.NewPageData("Védett oldal", middleware.GetUser(r.Context()))
	renderPage(w, h.views, http.StatusOK, "protected", data)
}
