package factory

import (
	"context"
	"time"

	"github.com/szabolcsj/weblabor/internal/dependencies/mocks"
	"github.com/szabolcsj/weblabor/internal/services/auth"
	sessionmemory "github.com/szabolcsj/weblabor/internal/session/memory"
	"github.com/szabolcsj/weblabor/internal/storage/memory"
	"github.com/szabolcsj/weblabor/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a mocked clock,
// in-memory stores and the seeded catalogue. Password hashing uses the
// minimum bcrypt cost to keep tests fast.
func NewTestApp() *TestApp {
	store := memory.New()
	seedCatalogue(context.Background(), store)

	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	sessions := sessionmemory.New(mockClock)
	hasher := auth.NewBcryptHasher(4)

	app, err := newWithDependencies(store, sessions, hasher, mockClock, auth.DefaultConfig(), testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
