package statsapi

import (
	"context"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of StatsClient for testing.
type MockClient struct {
	mock.Mock
}

var _ contract.StatsClient = &MockClient{} // Compile-time check

// FetchCombine implements the CombineFetcher interface.
func (m *MockClient) FetchCombine(ctx context.Context, season string) (schema.ResultSet, error) {
	args := m.Called(ctx, season)
	rs, _ := args.Get(0).(schema.ResultSet)
	return rs, args.Error(1)
}

// LookupTeam implements the TeamLookup interface.
func (m *MockClient) LookupTeam(ctx context.Context, playerID int64) (string, error) {
	args := m.Called(ctx, playerID)
	return args.String(0), args.Error(1)
}
