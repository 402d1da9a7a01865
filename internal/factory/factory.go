package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/szabolcsj/weblabor/internal/dependencies/clock"
	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/services/auth"
	"github.com/szabolcsj/weblabor/internal/services/contact"
	"github.com/szabolcsj/weblabor/internal/services/inventory"
	"github.com/szabolcsj/weblabor/internal/session"
	sessionmemory "github.com/szabolcsj/weblabor/internal/session/memory"
	sessionredis "github.com/szabolcsj/weblabor/internal/session/redis"
	"github.com/szabolcsj/weblabor/internal/storage"
	"github.com/szabolcsj/weblabor/internal/storage/memory"
	"github.com/szabolcsj/weblabor/internal/storage/postgres"
	"github.com/szabolcsj/weblabor/internal/web/views"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
)

// Session store type constants
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage  storage.Storage
	Sessions session.Store

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService      *auth.Service
	ContactService   *contact.Service
	InventoryService *inventory.Service

	// Page rendering
	Views *views.Renderer
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// PostgresDSN is the connection string (required if StorageType is "postgres")
	PostgresDSN string
	// SessionStoreType selects the session backend ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionStoreType string
	// RedisConfig holds Redis connection settings (required if SessionStoreType is "redis")
	RedisConfig *sessionredis.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// BcryptCost overrides the password hashing cost (optional)
	BcryptCost int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired. Postgres
// storage has its migrations applied before the app is returned.
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		memStore := memory.New()
		seedCatalogue(ctx, memStore)
		store = memStore
	case StorageTypePostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("PostgresDSN required when StorageType is postgres")
		}
		pgStore, err := postgres.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := pgStore.RunMigrations(ctx); err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'postgres'")
	}

	// Create session store based on type
	var sessions session.Store
	sessionType := cfg.SessionStoreType
	if sessionType == "" {
		sessionType = SessionStoreMemory
	}

	switch sessionType {
	case SessionStoreMemory:
		sessions = sessionmemory.New(clk)
	case SessionStoreRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionStoreType is redis")
		}
		redisSessions, err := sessionredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		sessions = redisSessions
	default:
		return nil, errors.New("invalid SessionStoreType: must be 'memory' or 'redis'")
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	return newWithDependencies(store, sessions, hasher, clk, authCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, sessions session.Store, hasher auth.PasswordHasher, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) (*App, error) {
	v, err := views.New()
	if err != nil {
		return nil, err
	}

	authService := auth.New(store, sessions, hasher, clk, authCfg, logger)
	contactService := contact.New(store, clk, logger)
	inventoryService := inventory.New(store, logger)

	return &App{
		Storage:          store,
		Sessions:         sessions,
		Clock:            clk,
		AuthService:      authService,
		ContactService:   contactService,
		InventoryService: inventoryService,
		Views:            v,
	}, nil
}

// seedCatalogue loads the same starting catalogue the database
// migrations seed, so the in-memory backend isn't empty on boot.
func seedCatalogue(ctx context.Context, store *memory.Storage) {
	procs := []*model.Processor{
		{Brand: "Intel", Model: "Core i5-12400"},
		{Brand: "Intel", Model: "Core i7-13700K"},
		{Brand: "AMD", Model: "Ryzen 5 5600X"},
		{Brand: "AMD", Model: "Ryzen 7 7800X3D"},
	}
	for _, p := range procs {
		_ = store.CreateProcessor(ctx, p)
	}

	machines := []*model.Machine{
		{Brand: "Dell", Model: "OptiPlex 7010", Display: "24\" FHD", MemoryGB: 16, DiskGB: 512, VideoCard: "Intel UHD 730", Price: 289000, ProcessorID: procs[0].ID, OSID: 1, CPUBrand: procs[0].Brand, CPUModel: procs[0].Model, OSName: "Windows 11 Pro"},
		{Brand: "HP", Model: "EliteDesk 805 G8", Display: "27\" QHD", MemoryGB: 32, DiskGB: 1024, VideoCard: "Radeon RX 6600", Price: 412000, ProcessorID: procs[2].ID, OSID: 2, CPUBrand: procs[2].Brand, CPUModel: procs[2].Model, OSName: "Ubuntu 24.04 LTS"},
		{Brand: "Lenovo", Model: "ThinkCentre M90t", Display: "24\" FHD", MemoryGB: 16, DiskGB: 512, VideoCard: "Intel UHD 770", Price: 335000, ProcessorID: procs[1].ID, OSID: 1, CPUBrand: procs[1].Brand, CPUModel: procs[1].Model, OSName: "Windows 11 Pro"},
		{Brand: "Custom", Model: "Lab Workstation 1", Display: "32\" 4K", MemoryGB: 64, DiskGB: 2048, VideoCard: "GeForce RTX 4070", Price: 798000, ProcessorID: procs[3].ID, OSID: 3, CPUBrand: procs[3].Brand, CPUModel: procs[3].Model, OSName: "Debian 12"},
	}
	for _, m := range machines {
		store.SeedMachine(m)
	}
}
