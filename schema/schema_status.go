package schema

import "time"

// TableStatus represents the status of the combine stats table.
type TableStatus struct {
	Backend      string `json:"backend"`
	Table        string `json:"table"`
	Connected    bool   `json:"connected"`
	TableExists  bool   `json:"table_exists"`
	TotalRows    int64  `json:"total_rows"`
	TeamlessRows int64  `json:"teamless_rows"`
}

// RowError pairs a player with the reason its insert failed.
type RowError struct {
	PlayerID int64  `json:"player_id"`
	Err      string `json:"error"`
}

// RunSummary aggregates the per-row persistence outcomes and the recoverable
// problems of a single pipeline run.
type RunSummary struct {
	RunID              string                `json:"run_id"`
	Season             string                `json:"season"`
	Backend            DatabaseBackend       `json:"backend"`
	Table              string                `json:"table"`
	StartTime          time.Time             `json:"start_time"`
	EndTime            time.Time             `json:"end_time"`
	TotalPlayers       int                   `json:"total_players"`
	SkippedRows        int                   `json:"skipped_rows"`
	TeamLookupFailures int                   `json:"team_lookup_failures"`
	Averages           CohortAverages        `json:"averages"`
	Scores             ScoreReport           `json:"scores"`
	Outcomes           map[InsertOutcome]int `json:"outcomes"`
	Errors             []RowError            `json:"errors,omitempty"`
}

// Record tallies one persistence outcome.
func (s *RunSummary) Record(playerID int64, outcome InsertOutcome, err error) {
	if s.Outcomes == nil {
		s.Outcomes = make(map[InsertOutcome]int)
	}
	s.Outcomes[outcome]++
	if err != nil && outcome == Failed {
		s.Errors = append(s.Errors, RowError{PlayerID: playerID, Err: err.Error()})
	}
}

// Duration returns how long the run took.
func (s *RunSummary) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
