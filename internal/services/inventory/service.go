// Package inventory serves the joined machine listing and the processor
// CRUD operations behind the admin record-management pages.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/storage"
)

// ErrMissingFields is returned when a processor is missing brand or model
var ErrMissingFields = errors.New("brand and model are required")

// Service exposes inventory reads and processor management
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new inventory Service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// ListMachines returns the joined machine/processor/OS rows
func (s *Service) ListMachines(ctx context.Context) ([]*model.Machine, error) {
	machines, err := s.storage.ListMachines(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing machines: %w", err)
	}
	return machines, nil
}

// ListProcessors returns all processors, newest first
func (s *Service) ListProcessors(ctx context.Context) ([]*model.Processor, error) {
	procs, err := s.storage.ListProcessors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing processors: %w", err)
	}
	return procs, nil
}

// GetProcessor returns a single processor by id
func (s *Service) GetProcessor(ctx context.Context, id int64) (*model.Processor, error) {
	return s.storage.GetProcessor(ctx, id)
}

// CreateProcessor validates and inserts a new processor
func (s *Service) CreateProcessor(ctx context.Context, brand, procModel string) (*model.Processor, error) {
	p := &model.Processor{
		Brand: strings.TrimSpace(brand),
		Model: strings.TrimSpace(procModel),
	}
	if p.Brand == "" || p.Model == "" {
		return nil, ErrMissingFields
	}

	if err := s.storage.CreateProcessor(ctx, p); err != nil {
		return nil, fmt.Errorf("creating processor: %w", err)
	}

	s.logger.Info("processor created", slog.Int64("processor_id", p.ID))
	return p, nil
}

// UpdateProcessor validates and updates an existing processor
func (s *Service) UpdateProcessor(ctx context.Context, id int64, brand, procModel string) (*model.Processor, error) {
	p := &model.Processor{
		ID:    id,
		Brand: strings.TrimSpace(brand),
		Model: strings.TrimSpace(procModel),
	}
	if p.Brand == "" || p.Model == "" {
		return nil, ErrMissingFields
	}

	if err := s.storage.UpdateProcessor(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProcessor removes a processor. Deleting one still referenced by
// a machine fails with model.ErrProcessorInUse.
func (s *Service) DeleteProcessor(ctx context.Context, id int64) error {
	return s.storage.DeleteProcessor(ctx, id)
}
