package handler

import (
	"encoding/json"
	"net/http"

	"github.com/szabolcsj/weblabor/internal/api/request"
	"github.com/szabolcsj/weblabor/internal/api/response"
	"github.com/szabolcsj/weblabor/internal/services/contact"
)

// ContactHandler handles contact message endpoints
type ContactHandler struct {
	contactService *contact.Service
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contact.Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST /api/v1/messages
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	msg, err := h.contactService.Submit(r.Context(), contact.Submission{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Body:  req.Body,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MessageFromModel(msg))
}

// List handles GET /api/v1/messages
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessagesFromModel(messages))
}
