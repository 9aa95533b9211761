// Package parquet exports scored combine players to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/hoopsdata/combine/schema"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/guregu/null.v3"
)

// PlayerRecord is one scored player as a Parquet row. Measurements that the
// stats API did not report are stored as nulls.
type PlayerRecord struct {
	// RunID ties the row to the run that produced it
	RunID string `parquet:"run_id,snappy"`

	// Season is the draft class, e.g. 2019-20
	Season string `parquet:"season,snappy"`

	// ExportedAt is when the file was written
	ExportedAt time.Time `parquet:"exported_at,snappy"`

	PlayerID  int64   `parquet:"player_id,snappy"`
	FirstName *string `parquet:"first_name,optional,snappy"`
	LastName  *string `parquet:"last_name,optional,snappy"`
	Team      *string `parquet:"team,optional,snappy"`

	Height                 *float64 `parquet:"height,optional,snappy"`
	Weight                 *float64 `parquet:"weight,optional,snappy"`
	Wingspan               *float64 `parquet:"wingspan,optional,snappy"`
	StandingReach          *float64 `parquet:"standing_reach,optional,snappy"`
	VerticalLeap           *float64 `parquet:"vertical_leap,optional,snappy"`
	BenchPressReps         *int64   `parquet:"bench_press_reps,optional,snappy"`
	LaneAgilityTime        *float64 `parquet:"lane_agility_time,optional,snappy"`
	ThreeQuarterSprintTime *float64 `parquet:"three_quarter_sprint_time,optional,snappy"`
	MaxVerticalLeap        *float64 `parquet:"max_vertical_leap,optional,snappy"`
	BMI                    *float64 `parquet:"bmi,optional,snappy"`

	VerticalLeapScore       float64 `parquet:"vertical_leap_score,snappy"`
	ThreeQuarterSprintScore float64 `parquet:"three_quarter_sprint_score,snappy"`
	BenchPressScore         float64 `parquet:"bench_press_score,snappy"`
}

func floatPtr(v null.Float) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v null.Int) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

func stringPtr(v null.String) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// FromPlayers converts players into Parquet rows stamped with the run.
func FromPlayers(players []schema.Player, runID, season string, exportedAt time.Time) []PlayerRecord {
	records := make([]PlayerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, PlayerRecord{
			RunID:                   runID,
			Season:                  season,
			ExportedAt:              exportedAt,
			PlayerID:                p.ID,
			FirstName:               stringPtr(p.FirstName),
			LastName:                stringPtr(p.LastName),
			Team:                    stringPtr(p.Team),
			Height:                  floatPtr(p.Height),
			Weight:                  floatPtr(p.Weight),
			Wingspan:                floatPtr(p.Wingspan),
			StandingReach:           floatPtr(p.StandingReach),
			VerticalLeap:            floatPtr(p.VerticalLeap),
			BenchPressReps:          intPtr(p.BenchPressReps),
			LaneAgilityTime:         floatPtr(p.LaneAgilityTime),
			ThreeQuarterSprintTime:  floatPtr(p.ThreeQuarterSprintTime),
			MaxVerticalLeap:         floatPtr(p.MaxVerticalLeap),
			BMI:                     floatPtr(p.BMI),
			VerticalLeapScore:       p.VerticalLeapScore,
			ThreeQuarterSprintScore: p.ThreeQuarterSprintScore,
			BenchPressScore:         p.BenchPressScore,
		})
	}
	return records
}

// WritePlayersParquet writes a slice of PlayerRecord structs to a Parquet file.
func WritePlayersParquet(data []PlayerRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	// The schema is derived from the PlayerRecord struct tags
	writer := parquet.NewGenericWriter[PlayerRecord](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		_ = file.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close parquet file: %w", err)
	}
	return nil
}
