package parquet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hoopsdata/combine/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestPlayerRecordStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(PlayerRecord))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"run_id", "season", "exported_at", "player_id", "team",
		"vertical_leap", "bench_press_reps", "three_quarter_sprint_time",
		"vertical_leap_score", "three_quarter_sprint_score", "bench_press_score",
	}
	for _, colName := range expectedColumns {
		_, ok := sch.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestFromPlayers(t *testing.T) {
	exported := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	players := []schema.Player{
		{ID: 1, Team: null.StringFrom("NOP"), VerticalLeap: null.FloatFrom(35.5), VerticalLeapScore: 104.2},
		{ID: 2},
	}

	records := FromPlayers(players, "run-1", "2019-20", exported)
	require.Len(t, records, 2)

	assert.Equal(t, "run-1", records[0].RunID)
	assert.Equal(t, "2019-20", records[0].Season)
	require.NotNil(t, records[0].Team)
	assert.Equal(t, "NOP", *records[0].Team)
	require.NotNil(t, records[0].VerticalLeap)
	assert.InDelta(t, 35.5, *records[0].VerticalLeap, 1e-9)
	assert.InDelta(t, 104.2, records[0].VerticalLeapScore, 1e-9)

	assert.Nil(t, records[1].Team)
	assert.Nil(t, records[1].VerticalLeap)
	assert.Nil(t, records[1].BenchPressReps)
}

func TestWritePlayersParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.parquet")
	bench := int64(12)
	now := time.Now().UTC()
	data := []PlayerRecord{
		{RunID: "r", Season: "2019-20", ExportedAt: now, PlayerID: 1, BenchPressReps: &bench, BenchPressScore: 120},
		{RunID: "r", Season: "2019-20", ExportedAt: now, PlayerID: 2},
	}

	require.NoError(t, WritePlayersParquet(data, path))

	rows, err := parquet.ReadFile[PlayerRecord](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].PlayerID)
	require.NotNil(t, rows[0].BenchPressReps)
	assert.Equal(t, int64(12), *rows[0].BenchPressReps)
	assert.Nil(t, rows[1].BenchPressReps)
}

func TestWritePlayersParquetBadPath(t *testing.T) {
	err := WritePlayersParquet(nil, filepath.Join(t.TempDir(), "missing", "players.parquet"))
	assert.Error(t, err)
}
