package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/szabolcsj/weblabor/internal/api/request"
	"github.com/szabolcsj/weblabor/internal/api/response"
	"github.com/szabolcsj/weblabor/internal/services/auth"
)

// UsersHandler handles the admin user-management endpoints
type UsersHandler struct {
	authService *auth.Service
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(authService *auth.Service) *UsersHandler {
	return &UsersHandler{
		authService: authService,
	}
}

// List handles GET /api/v1/users
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModel(users))
}

// SetAdmin handles PATCH /api/v1/users/{id}/admin
func (h *UsersHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteError(w, NewInvalidRequestError("invalid user id"))
		return
	}

	var req request.SetAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.authService.SetUserAdmin(r.Context(), id, req.IsAdmin); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
