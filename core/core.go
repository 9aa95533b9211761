// Package core has the pipeline logic: building, enriching, aggregating,
// scoring and persisting combine players.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
)

// ErrNoPlayers means the run has nothing to score or persist.
var ErrNoPlayers = errors.New("no players available")

// StoreOpener opens the persistence sink. It is only called once players
// exist, so a failed fetch never touches the database.
type StoreOpener func(ctx context.Context) (contract.PlayerStore, error)

// Cohort is a fully built, enriched and scored draft class.
type Cohort struct {
	Season             string
	Players            []schema.Player
	Averages           schema.CohortAverages
	Summary            []schema.MetricSummary
	Scores             schema.ScoreReport
	SkippedRows        int
	TeamLookupFailures int
}

// RunResult is everything a pipeline run produced.
type RunResult struct {
	Cohort  *Cohort
	Summary schema.RunSummary
}

// InitializePlayers fetches the draft class, builds and enriches one player
// per row while accumulating the cohort totals, then scores every player
// against the final averages.
func InitializePlayers(ctx context.Context, client contract.StatsClient, season string) (*Cohort, error) {
	fmt.Printf("🏀 Getting draft combine results for %s ...\n", season)
	rs, err := client.FetchCombine(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPlayers, err)
	}
	if len(rs.RowSet) == 0 {
		return nil, fmt.Errorf("%w: draft class %s has no combine results", ErrNoPlayers, season)
	}

	idx := rs.Index()
	agg := NewCohortAggregator()
	cohort := &Cohort{Season: season, Players: make([]schema.Player, 0, len(rs.RowSet))}

	fmt.Printf("🔎 Iterating through %d players from draft class ...\n", len(rs.RowSet))
	for i, row := range rs.RowSet {
		player, err := BuildPlayer(row, idx)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Skipping combine row %d", i+1), err)
			cohort.SkippedRows++
			continue
		}

		player, err = Enrich(ctx, client, player)
		if err != nil {
			contract.LogWarning(err.Error())
			cohort.TeamLookupFailures++
		}

		cohort.Players = append(cohort.Players, player)
		agg.Observe(player)
	}
	if len(cohort.Players) == 0 {
		return nil, fmt.Errorf("%w: no combine row had a player id", ErrNoPlayers)
	}

	fmt.Println("🧮 Calculating averages ...")
	cohort.Averages = agg.Averages()
	cohort.Summary = agg.Summary()

	fmt.Println("📊 Calculating scores ...")
	cohort.Scores = Normalize(cohort.Players, cohort.Averages)

	return cohort, nil
}

// Persist inserts the players in order, one committed row at a time, and
// tallies the outcomes into summary. Row failures never stop the loop.
func Persist(ctx context.Context, store contract.PlayerStore, players []schema.Player, summary *schema.RunSummary) {
	for _, p := range players {
		outcome, err := store.InsertPlayer(ctx, p)
		summary.Record(p.ID, outcome, err)

		switch outcome {
		case schema.SchemaCreated:
			fmt.Printf("🛠️  Created table %s\n", summary.Table)
		case schema.AlreadyExists:
			fmt.Printf("↩️  Player %d already stored, skipping\n", p.ID)
		case schema.Failed:
			contract.LogWarn(fmt.Sprintf("Failed to insert player %d", p.ID), err)
		}
	}
}

// Run executes the whole pipeline: fetch, enrich and aggregate, score, then
// persist. Only a fetch failure or an unusable store is returned as an error.
func Run(ctx context.Context, cfg *contract.Config, client contract.StatsClient, open StoreOpener) (*RunResult, error) {
	summary := schema.RunSummary{
		RunID:     uuid.NewString(),
		Season:    cfg.Season,
		Backend:   cfg.Backend,
		Table:     cfg.Table,
		StartTime: time.Now(),
		Outcomes:  make(map[schema.InsertOutcome]int),
	}

	cohort, err := InitializePlayers(ctx, client, cfg.Season)
	if err != nil {
		return nil, err
	}
	summary.TotalPlayers = len(cohort.Players)
	summary.SkippedRows = cohort.SkippedRows
	summary.TeamLookupFailures = cohort.TeamLookupFailures
	summary.Averages = cohort.Averages
	summary.Scores = cohort.Scores

	store, err := open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}
	defer func() { _ = store.Close() }()

	fmt.Printf("💾 Writing %d players to %s (%s) ...\n", len(cohort.Players), cfg.Table, cfg.Backend)
	Persist(ctx, store, cohort.Players, &summary)
	summary.EndTime = time.Now()

	return &RunResult{Cohort: cohort, Summary: summary}, nil
}
