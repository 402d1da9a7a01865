// Package postgres provides the PostgreSQL-backed storage implementation,
// with schema migrations applied via goose from the embedded SQL files.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/storage"
	"github.com/szabolcsj/weblabor/internal/storage/postgres/migrations"
)

// Storage is a PostgreSQL-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens a connection pool for the given DSN. Callers are expected
// to run RunMigrations before serving traffic.
func New(dsn string) (*Storage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return &Storage{db: db}, nil
}

// NewWithDB wraps an existing connection without running migrations (for testing)
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// RunMigrations sets up goose with the embedded migrations and applies them
func (s *Storage) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, s.db, ".")
}

// Close closes the underlying connection pool
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// isUniqueViolation reports whether err is a unique-constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a foreign-key violation
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (*model.User, error) {
	query := `
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}

	err := s.db.QueryRowContext(ctx, query, username, passwordHash, isAdmin).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users
		WHERE username = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, username))
}

func (s *Storage) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (s *Storage) SetUserAdmin(ctx context.Context, id int64, isAdmin bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET is_admin = $2 WHERE id = $1`, id, isAdmin)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT id, username, password_hash, is_admin, created_at
		FROM users
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Contact message operations

func (s *Storage) SaveMessage(ctx context.Context, msg *model.Message) error {
	query := `
		INSERT INTO messages (name, email, phone, body, sent_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query, msg.Name, msg.Email, msg.Phone, msg.Body, msg.SentAt).
		Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Storage) ListMessages(ctx context.Context) ([]*model.Message, error) {
	query := `
		SELECT id, name, email, phone, body, sent_at
		FROM messages
		ORDER BY sent_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var msgs []*model.Message
	for rows.Next() {
		msg := &model.Message{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Phone, &msg.Body, &msg.SentAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}

// Inventory operations

func (s *Storage) ListMachines(ctx context.Context) ([]*model.Machine, error) {
	query := `
		SELECT
			m.id, m.brand, m.model, m.display, m.memory_gb, m.disk_gb,
			m.video_card, m.price, m.processor_id, m.os_id,
			p.brand, p.model, o.name
		FROM machines m
		INNER JOIN processors p ON m.processor_id = p.id
		INNER JOIN operating_systems o ON m.os_id = o.id
		ORDER BY m.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var machines []*model.Machine
	for rows.Next() {
		m := &model.Machine{}
		err := rows.Scan(
			&m.ID, &m.Brand, &m.Model, &m.Display, &m.MemoryGB, &m.DiskGB,
			&m.VideoCard, &m.Price, &m.ProcessorID, &m.OSID,
			&m.CPUBrand, &m.CPUModel, &m.OSName,
		)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		machines = append(machines, m)
	}
	return machines, rows.Err()
}

func (s *Storage) ListProcessors(ctx context.Context) ([]*model.Processor, error) {
	query := `SELECT id, brand, model FROM processors ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var procs []*model.Processor
	for rows.Next() {
		p := &model.Processor{}
		if err := rows.Scan(&p.ID, &p.Brand, &p.Model); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		procs = append(procs, p)
	}
	return procs, rows.Err()
}

func (s *Storage) GetProcessor(ctx context.Context, id int64) (*model.Processor, error) {
	p := &model.Processor{}
	err := s.db.QueryRowContext(ctx, `SELECT id, brand, model FROM processors WHERE id = $1`, id).
		Scan(&p.ID, &p.Brand, &p.Model)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProcessorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (s *Storage) CreateProcessor(ctx context.Context, p *model.Processor) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO processors (brand, model) VALUES ($1, $2) RETURNING id`,
		p.Brand, p.Model).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Storage) UpdateProcessor(ctx context.Context, p *model.Processor) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE processors SET brand = $2, model = $3 WHERE id = $1`,
		p.ID, p.Brand, p.Model)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return model.ErrProcessorNotFound
	}
	return nil
}

func (s *Storage) DeleteProcessor(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM processors WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrProcessorInUse
		}
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return model.ErrProcessorNotFound
	}
	return nil
}
