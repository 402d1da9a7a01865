package handler

import (
	"net/http"

	"github.com/szabolcsj/weblabor/internal/web/middleware"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// HomeHandler handles the home page and the authorization denial pages
type HomeHandler struct {
	views *views.Renderer
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(v *views.Renderer) *HomeHandler {
	return &HomeHandler{views: v}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	data := views.HomeData{
		PageData: views.NewPageData("Home", user),
	}
	renderPage(w, h.views, http.StatusOK, "home", data)
}

// NotAuthorized renders the not-logged-in denial page
func (h *HomeHandler) NotAuthorized(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	data := views.HomeData{
		PageData: views.NewPageData("Not authorized", user),
	}
	renderPage(w, h.views, http.StatusOK, "not_authorized", data)
}

// NotAuthorizedAdmin renders the admin-required denial page
func (h *HomeHandler) NotAuthorizedAdmin(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	data := views.HomeData{
		PageData: views.NewPageData("Admin required", user),
	}
	renderPage(w, h.views, http.StatusOK, "not_authorized_admin", data)
}
