// Package contract provides interfaces and shared utilities for the combine CLI's internal architecture.
package contract

import (
	"context"

	"github.com/hoopsdata/combine/schema"
)

// CombineFetcher retrieves the combine result set for one draft class.
type CombineFetcher interface {
	FetchCombine(ctx context.Context, season string) (schema.ResultSet, error)
}

// TeamLookup resolves the team abbreviation of a single player.
type TeamLookup interface {
	LookupTeam(ctx context.Context, playerID int64) (string, error)
}

// StatsClient defines the stats API surface used by the pipeline.
// This allows the HTTP client to be mocked for testing.
type StatsClient interface {
	CombineFetcher
	TeamLookup
}

// PlayerStore defines the persistence sink for enriched players.
// This allows mocking the store for testing.
type PlayerStore interface {
	InsertPlayer(ctx context.Context, player schema.Player) (schema.InsertOutcome, error)
	Close() error
}

// TableManager defines the maintenance operations behind the table subcommands.
type TableManager interface {
	EnsureTable(ctx context.Context) error
	Status(ctx context.Context) (schema.TableStatus, error)
	Drop(ctx context.Context) error
	Close() error
}
