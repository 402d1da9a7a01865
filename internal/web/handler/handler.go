package handler

import (
	"net/http"

	"github.com/szabolcsj/weblabor/internal/web/views"
)

// renderPage writes an HTML page with the given status code
func renderPage(w http.ResponseWriter, r *views.Renderer, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.Render(w, page, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
