package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[int64]*model.User
	usernameIndex map[string]int64
	messages      map[int64]*model.Message
	machines      map[int64]*model.Machine
	processors    map[int64]*model.Processor

	nextUserID      int64
	nextMessageID   int64
	nextMachineID   int64
	nextProcessorID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[int64]*model.User),
		usernameIndex: make(map[string]int64),
		messages:      make(map[int64]*model.Message),
		machines:      make(map[int64]*model.Machine),
		processors:    make(map[int64]*model.Processor),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string, isAdmin bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernameIndex[username]; exists {
		return nil, model.ErrUsernameTaken
	}

	s.nextUserID++
	user := &model.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	s.users[user.ID] = user
	s.usernameIndex[username] = user.ID

	copied := *user
	return &copied, nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *s.users[id]
	return &copied, nil
}

func (s *Storage) SetUserAdmin(ctx context.Context, id int64, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	user.IsAdmin = isAdmin
	return nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Contact message operations

func (s *Storage) SaveMessage(ctx context.Context, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextMessageID++
	msg.ID = s.nextMessageID
	copied := *msg
	s.messages[msg.ID] = &copied
	return nil
}

func (s *Storage) ListMessages(ctx context.Context) ([]*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := make([]*model.Message, 0, len(s.messages))
	for _, m := range s.messages {
		copied := *m
		msgs = append(msgs, &copied)
	}
	// Newest first, matching the SQL ORDER BY
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].SentAt.After(msgs[j].SentAt) })
	return msgs, nil
}

// Inventory operations

func (s *Storage) ListMachines(ctx context.Context) ([]*model.Machine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	machines := make([]*model.Machine, 0, len(s.machines))
	for _, m := range s.machines {
		copied := *m
		machines = append(machines, &copied)
	}
	sort.Slice(machines, func(i, j int) bool { return machines[i].ID < machines[j].ID })
	return machines, nil
}

func (s *Storage) ListProcessors(ctx context.Context) ([]*model.Processor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	procs := make([]*model.Processor, 0, len(s.processors))
	for _, p := range s.processors {
		copied := *p
		procs = append(procs, &copied)
	}
	// Newest first, matching the SQL ORDER BY id DESC
	sort.Slice(procs, func(i, j int) bool { return procs[i].ID > procs[j].ID })
	return procs, nil
}

func (s *Storage) GetProcessor(ctx context.Context, id int64) (*model.Processor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.processors[id]
	if !ok {
		return nil, model.ErrProcessorNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *Storage) CreateProcessor(ctx context.Context, p *model.Processor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextProcessorID++
	p.ID = s.nextProcessorID
	copied := *p
	s.processors[p.ID] = &copied
	return nil
}

func (s *Storage) UpdateProcessor(ctx context.Context, p *model.Processor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.processors[p.ID]; !ok {
		return model.ErrProcessorNotFound
	}
	copied := *p
	s.processors[p.ID] = &copied
	return nil
}

func (s *Storage) DeleteProcessor(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.processors[id]; !ok {
		return model.ErrProcessorNotFound
	}
	for _, m := range s.machines {
		if m.ProcessorID == id {
			return model.ErrProcessorInUse
		}
	}
	delete(s.processors, id)
	return nil
}

// SeedMachine adds a machine row directly. Machines have no write path in
// the application, so tests and dev setups seed them here.
func (s *Storage) SeedMachine(m *model.Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextMachineID++
	m.ID = s.nextMachineID
	copied := *m
	s.machines[m.ID] = &copied
}
