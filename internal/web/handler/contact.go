package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/szabolcsj/weblabor/internal/services/contact"
	"github.com/szabolcsj/weblabor/internal/web/middleware"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// ContactHandler serves the contact page and its form submission
type ContactHandler struct {
	contactService *contact.Service
	views          *views.Renderer
	logger         *slog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contact.Service, views *views.Renderer, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		views:          views,
		logger:         logger,
	}
}

// Contact renders the contact form
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data := views.ContactData{
		PageData: views.NewPageData("Kapcsolat", middleware.GetUser(r.Context())),
	}
	renderPage(w, h.views, http.StatusOK, "contact", data)
}

// SubmitContact handles the contact form POST. Validation failures
// re-render the form with the submitted values preserved.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	if err := r.ParseForm(); err != nil {
		data := views.ContactData{
			PageData:     views.NewPageData("Kapcsolat", user),
			ContactError: true,
			ErrorMessage: "Invalid form data",
		}
		renderPage(w, h.views, http.StatusBadRequest, "contact", data)
		return
	}

	sub := contact.Submission{
		Name:  r.FormValue("nev"),
		Email: r.FormValue("email"),
		Phone: r.FormValue("telefon"),
		Body:  r.FormValue("uzenet"),
	}

	if _, err := h.contactService.Submit(r.Context(), sub); err != nil {
		data := views.ContactData{
			PageData: views.NewPageData("Kapcsolat", user),
			Name:     sub.Name,
			Email:    sub.Email,
			Phone:    sub.Phone,
			Body:     sub.Body,
		}
		status := http.StatusInternalServerError
		if errors.Is(err, contact.ErrMissingFields) {
			data.ContactError = true
			data.ErrorMessage = "Name, email and message are required"
			status = http.StatusOK
		} else {
			h.logger.Error("contact submission failed", slog.String("error", err.Error()))
			data.ContactError = true
			data.ErrorMessage = "Server error, please try again later"
		}
		renderPage(w, h.views, status, "contact", data)
		return
	}

	data := views.ContactData{
		PageData:       views.NewPageData("Kapcsolat", user),
		ContactSuccess: true,
	}
	renderPage(w, h.views, http.StatusOK, "contact", data)
}
