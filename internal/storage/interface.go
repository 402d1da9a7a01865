package storage

import (
	"context"

	"github.com/szabolcsj/weblabor/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations. CreateUser assigns the ID and returns
	// model.ErrUsernameTaken if the username is already present; the
	// implementation's uniqueness guarantee (not any caller-side check)
	// is authoritative.
	CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	SetUserAdmin(ctx context.Context, id int64, isAdmin bool) error
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Contact message operations
	SaveMessage(ctx context.Context, msg *model.Message) error
	ListMessages(ctx context.Context) ([]*model.Message, error)

	// Inventory operations
	ListMachines(ctx context.Context) ([]*model.Machine, error)
	ListProcessors(ctx context.Context) ([]*model.Processor, error)
	GetProcessor(ctx context.Context, id int64) (*model.Processor, error)
	CreateProcessor(ctx context.Context, p *model.Processor) error
	UpdateProcessor(ctx context.Context, p *model.Processor) error
	DeleteProcessor(ctx context.Context, id int64) error
}
