// Package contact handles contact-form submissions: required-field
// validation and persistence, plus listing for the messages page.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/szabolcsj/weblabor/internal/dependencies/clock"
	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/storage"
)

// ErrMissingFields is returned when a required field is empty. It is a
// validation failure, reported back to the form, never a server error.
var ErrMissingFields = errors.New("name, email and message are required")

// Submission carries the raw form fields of a contact submission
type Submission struct {
	Name  string
	Email string
	Phone string
	Body  string
}

// Service validates and persists contact messages
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new contact Service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// Submit validates the submission and saves it. Name, email and body
// are required; phone is optional.
func (s *Service) Submit(ctx context.Context, sub Submission) (*model.Message, error) {
	msg := &model.Message{
		Name:   strings.TrimSpace(sub.Name),
		Email:  strings.TrimSpace(sub.Email),
		Phone:  strings.TrimSpace(sub.Phone),
		Body:   strings.TrimSpace(sub.Body),
		SentAt: s.clock.Now(),
	}

	if msg.Name == "" || msg.Email == "" || msg.Body == "" {
		return nil, ErrMissingFields
	}

	if err := s.storage.SaveMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("saving message: %w", err)
	}

	s.logger.Info("contact message received", slog.Int64("message_id", msg.ID))
	return msg, nil
}

// List returns all messages, newest first
func (s *Service) List(ctx context.Context) ([]*model.Message, error) {
	msgs, err := s.storage.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return msgs, nil
}
