package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/szabolcsj/weblabor/internal/api/handler"
	"github.com/szabolcsj/weblabor/internal/api/middleware"
	"github.com/szabolcsj/weblabor/internal/services/auth"
	"github.com/szabolcsj/weblabor/internal/services/contact"
	"github.com/szabolcsj/weblabor/internal/services/inventory"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	ContactService   *contact.Service
	InventoryService *inventory.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	contactHandler := handler.NewContactHandler(cfg.ContactService)
	inventoryHandler := handler.NewInventoryHandler(cfg.InventoryService)
	usersHandler := handler.NewUsersHandler(cfg.AuthService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.RequireAdmin()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for registering/logging in)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Public catalogue and contact submission
	api.HandleFunc("/machines", inventoryHandler.ListMachines).Methods(http.MethodGet)
	api.HandleFunc("/messages", contactHandler.Submit).Methods(http.MethodPost)

	// Message listing requires a signed-in user
	messages := api.PathPrefix("/messages").Subrouter()
	messages.Use(authMiddleware)
	messages.HandleFunc("", contactHandler.List).Methods(http.MethodGet)

	// Processor management requires an administrator
	processors := api.PathPrefix("/processors").Subrouter()
	processors.Use(authMiddleware)
	processors.Use(adminMiddleware)
	processors.HandleFunc("", inventoryHandler.ListProcessors).Methods(http.MethodGet)
	processors.HandleFunc("", inventoryHandler.CreateProcessor).Methods(http.MethodPost)
	processors.HandleFunc("/{id}", inventoryHandler.GetProcessor).Methods(http.MethodGet)
	processors.HandleFunc("/{id}", inventoryHandler.UpdateProcessor).Methods(http.MethodPut)
	processors.HandleFunc("/{id}", inventoryHandler.DeleteProcessor).Methods(http.MethodDelete)

	// User management requires an administrator
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware)
	users.Use(adminMiddleware)
	users.HandleFunc("", usersHandler.List).Methods(http.MethodGet)
	users.HandleFunc("/{id}/admin", usersHandler.SetAdmin).Methods(http.MethodPatch)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
