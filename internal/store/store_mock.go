package store

import (
	"context"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"github.com/stretchr/testify/mock"
)

// MockPlayerStore is a mock implementation of PlayerStore for testing.
type MockPlayerStore struct {
	mock.Mock
}

var _ contract.PlayerStore = &MockPlayerStore{} // Compile-time check

// InsertPlayer implements the PlayerStore interface.
func (m *MockPlayerStore) InsertPlayer(ctx context.Context, player schema.Player) (schema.InsertOutcome, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(schema.InsertOutcome), args.Error(1)
}

// Close implements the PlayerStore interface.
func (m *MockPlayerStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
