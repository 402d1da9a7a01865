package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/szabolcsj/weblabor/internal/services/auth"
	"github.com/szabolcsj/weblabor/internal/services/contact"
	"github.com/szabolcsj/weblabor/internal/services/inventory"
	"github.com/szabolcsj/weblabor/internal/web/handler"
	"github.com/szabolcsj/weblabor/internal/web/middleware"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	ContactService   *contact.Service
	InventoryService *inventory.Service
	Views            *views.Renderer
	StaticDir        string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	sessionMiddleware := middleware.Session(cfg.AuthService, cfg.Logger)

	// Apply global middleware to all routes. Session resolution runs
	// everywhere so the nav can reflect the signed-in principal even on
	// public pages.
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(sessionMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.Views)
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Logger)
	contactHandler := handler.NewContactHandler(cfg.ContactService, cfg.Views, cfg.Logger)
	databaseHandler := handler.NewDatabaseHandler(cfg.InventoryService, cfg.Views, cfg.Logger)
	messagesHandler := handler.NewMessagesHandler(cfg.ContactService, cfg.Views, cfg.Logger)
	crudHandler := handler.NewCrudHandler(cfg.InventoryService, cfg.Views, cfg.Logger)
	adminHandler := handler.NewAdminHandler(cfg.AuthService, cfg.Views, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes
	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/home", homeHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/contact", contactHandler.Contact).Methods(http.MethodGet)
	r.HandleFunc("/contact", contactHandler.SubmitContact).Methods(http.MethodPost)
	r.HandleFunc("/database", databaseHandler.Database).Methods(http.MethodGet)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)
	r.HandleFunc("/notAuthorized", homeHandler.NotAuthorized).Methods(http.MethodGet)
	r.HandleFunc("/notAuthorizedAdmin", homeHandler.NotAuthorizedAdmin).Methods(http.MethodGet)

	// Routes requiring a signed-in user
	authed := r.NewRoute().Subrouter()
	authed.Use(middleware.RequireAuth())
	authed.HandleFunc("/messages", messagesHandler.Messages).Methods(http.MethodGet)
	authed.HandleFunc("/protected-route", messagesHandler.Protected).Methods(http.MethodGet)

	// Routes requiring an administrator
	admin := r.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin())
	admin.HandleFunc("/admin", adminHandler.Admin).Methods(http.MethodGet)
	admin.HandleFunc("/admin-route", adminHandler.Admin).Methods(http.MethodGet)
	admin.HandleFunc("/crud", crudHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/crud/new", crudHandler.NewForm).Methods(http.MethodGet)
	admin.HandleFunc("/crud/new", crudHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/crud/edit/{id}", crudHandler.EditForm).Methods(http.MethodGet)
	admin.HandleFunc("/crud/edit/{id}", crudHandler.Update).Methods(http.MethodPost)
	admin.HandleFunc("/crud/delete/{id}", crudHandler.Delete).Methods(http.MethodPost)

	return r
}
