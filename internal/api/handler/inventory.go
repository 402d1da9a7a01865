package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/szabolcsj/weblabor/internal/api/request"
	"github.com/szabolcsj/weblabor/internal/api/response"
	"github.com/szabolcsj/weblabor/internal/services/inventory"
)

// InventoryHandler handles machine and processor endpoints
type InventoryHandler struct {
	inventoryService *inventory.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// ListMachines handles GET /api/v1/machines
func (h *InventoryHandler) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.inventoryService.ListMachines(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MachinesFromModel(machines))
}

// ListProcessors handles GET /api/v1/processors
func (h *InventoryHandler) ListProcessors(w http.ResponseWriter, r *http.Request) {
	processors, err := h.inventoryService.ListProcessors(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProcessorsFromModel(processors))
}

// GetProcessor handles GET /api/v1/processors/{id}
func (h *InventoryHandler) GetProcessor(w http.ResponseWriter, r *http.Request) {
	id, err := processorID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	processor, err := h.inventoryService.GetProcessor(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProcessorFromModel(processor))
}

// CreateProcessor handles POST /api/v1/processors
func (h *InventoryHandler) CreateProcessor(w http.ResponseWriter, r *http.Request) {
	var req request.ProcessorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	processor, err := h.inventoryService.CreateProcessor(r.Context(), req.Brand, req.Model)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ProcessorFromModel(processor))
}

// UpdateProcessor handles PUT /api/v1/processors/{id}
func (h *InventoryHandler) UpdateProcessor(w http.ResponseWriter, r *http.Request) {
	id, err := processorID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.ProcessorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	processor, err := h.inventoryService.UpdateProcessor(r.Context(), id, req.Brand, req.Model)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProcessorFromModel(processor))
}

// DeleteProcessor handles DELETE /api/v1/processors/{id}
func (h *InventoryHandler) DeleteProcessor(w http.ResponseWriter, r *http.Request) {
	id, err := processorID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.inventoryService.DeleteProcessor(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func processorID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("invalid processor id")
	}
	return id, nil
}
