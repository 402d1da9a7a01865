package handler

import (
	"log/slog"
	"net/http"

	"github.com/szabolcsj/weblabor/internal/services/inventory"
	"github.com/szabolcsj/weblabor/internal/web/middleware"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// DatabaseHandler serves the public machine catalogue page
type DatabaseHandler struct {
	inventoryService *inventory.Service
	views            *views.Renderer
	logger           *slog.Logger
}

// NewDatabaseHandler creates a new DatabaseHandler
func NewDatabaseHandler(inventoryService *inventory.Service, views *views.Renderer, logger *slog.Logger) *DatabaseHandler {
	return &DatabaseHandler{
		inventoryService: inventoryService,
		views:            views,
		logger:           logger,
	}
}

// Database renders the joined machine listing
func (h *DatabaseHandler) Database(w http.ResponseWriter, r *http.Request) {
	machines, err := h.inventoryService.ListMachines(r.Context())
	if err != nil {
		h.logger.Error("machine listing failed", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := views.DatabaseData{
		PageData: views.NewPageData("Adatbázis", middleware.GetUser(r.Context())),
		Machines: machines,
	}
	renderPage(w, h.views, http.StatusOK, "database", data)
}
