package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/services/inventory"
	"github.com/szabolcsj/weblabor/internal/web/middleware"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// CrudHandler serves the processor management pages
type CrudHandler struct {
	inventoryService *inventory.Service
	views            *views.Renderer
	logger           *slog.Logger
}

// NewCrudHandler creates a new CrudHandler
func NewCrudHandler(inventoryService *inventory.Service, views *views.Renderer, logger *slog.Logger) *CrudHandler {
	return &CrudHandler{
		inventoryService: inventoryService,
		views:            views,
		logger:           logger,
	}
}

// List renders the processor table
func (h *CrudHandler) List(w http.ResponseWriter, r *http.Request) {
	data := views.CrudListData{
		PageData: views.NewPageData("Processzorok", middleware.GetUser(r.Context())),
	}

	processors, err := h.inventoryService.ListProcessors(r.Context())
	if err != nil {
		h.logger.Error("processor listing failed", slog.String("error", err.Error()))
		data.LoadError = "Could not load processors"
		renderPage(w, h.views, http.StatusInternalServerError, "crud", data)
		return
	}

	data.Processors = processors
	renderPage(w, h.views, http.StatusOK, "crud", data)
}

// NewForm renders the empty processor form
func (h *CrudHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := views.CrudFormData{
		PageData: views.NewPageData("Új processzor", middleware.GetUser(r.Context())),
	}
	renderPage(w, h.views, http.StatusOK, "crud_new", data)
}

// Create handles the new-processor form POST
func (h *CrudHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	brand := r.FormValue("gyarto")
	modelName := r.FormValue("tipus")

	if _, err := h.inventoryService.CreateProcessor(r.Context(), brand, modelName); err != nil {
		data := views.CrudFormData{
			PageData:  views.NewPageData("Új processzor", middleware.GetUser(r.Context())),
			Processor: &model.Processor{Brand: brand, Model: modelName},
		}
		status := http.StatusInternalServerError
		if errors.Is(err, inventory.ErrMissingFields) {
			data.ErrorMessage = "Brand and model are required"
			status = http.StatusOK
		} else {
			h.logger.Error("processor creation failed", slog.String("error", err.Error()))
			data.ErrorMessage = "Server error, please try again later"
		}
		renderPage(w, h.views, status, "crud_new", data)
		return
	}

	http.Redirect(w, r, "/crud", http.StatusSeeOther)
}

// EditForm renders the edit form pre-filled with the processor
func (h *CrudHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	processor, err := h.inventoryService.GetProcessor(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProcessorNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("processor lookup failed", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := views.CrudFormData{
		PageData:  views.NewPageData("Processzor szerkesztése", middleware.GetUser(r.Context())),
		Processor: processor,
	}
	renderPage(w, h.views, http.StatusOK, "crud_edit", data)
}

// Update handles the edit form POST
func (h *CrudHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	brand := r.FormValue("gyarto")
	modelName := r.FormValue("tipus")

	if _, err := h.inventoryService.UpdateProcessor(r.Context(), id, brand, modelName); err != nil {
		if errors.Is(err, model.ErrProcessorNotFound) {
			http.NotFound(w, r)
			return
		}
		data := views.CrudFormData{
			PageData:  views.NewPageData("Processzor szerkesztése", middleware.GetUser(r.Context())),
			Processor: &model.Processor{ID: id, Brand: brand, Model: modelName},
		}
		status := http.StatusInternalServerError
		if errors.Is(err, inventory.ErrMissingFields) {
			data.ErrorMessage = "Brand and model are required"
			status = http.StatusOK
		} else {
			h.logger.Error("processor update failed", slog.String("error", err.Error()))
			data.ErrorMessage = "Server error, please try again later"
		}
		renderPage(w, h.views, status, "crud_edit", data)
		return
	}

	http.Redirect(w, r, "/crud", http.StatusSeeOther)
}

// Delete handles the delete form POST
func (h *CrudHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.inventoryService.DeleteProcessor(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, model.ErrProcessorNotFound):
			http.NotFound(w, r)
		case errors.Is(err, model.ErrProcessorInUse):
			data := views.CrudListData{
				PageData:  views.NewPageData("Processzorok", middleware.GetUser(r.Context())),
				LoadError: "Processor is referenced by a machine and cannot be deleted",
			}
			if processors, listErr := h.inventoryService.ListProcessors(r.Context()); listErr == nil {
				data.Processors = processors
			}
			renderPage(w, h.views, http.StatusConflict, "crud", data)
		default:
			h.logger.Error("processor deletion failed", slog.String("error", err.Error()))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/crud", http.StatusSeeOther)
}
