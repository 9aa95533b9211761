package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func sampleReport() Report {
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return Report{
		Players: []schema.Player{
			{
				ID:                1629627,
				FirstName:         null.StringFrom("Zion"),
				LastName:          null.StringFrom("Williamson"),
				Team:              null.StringFrom("NOP"),
				VerticalLeap:      null.FloatFrom(42),
				VerticalLeapScore: 116.6666,
			},
			{
				ID:                1629630,
				FirstName:         null.StringFrom("Ja"),
				LastName:          null.StringFrom("Morant"),
				VerticalLeap:      null.FloatFrom(30),
				BenchPressReps:    null.IntFrom(10),
				VerticalLeapScore: 83.3333,
				BenchPressScore:   100,
			},
		},
		Cohort: []schema.MetricSummary{
			{Metric: schema.VerticalLeapMetric, Count: 2, Mean: 36, Median: 36, StdDev: 6, Min: 30, Max: 42},
			{Metric: schema.ThreeQuarterSprintMetric},
			{Metric: schema.BenchPressMetric, Count: 1, Mean: 10, Median: 10, Min: 10, Max: 10},
		},
		Summary: schema.RunSummary{
			RunID:        "run-1",
			Season:       "2019-20",
			Backend:      schema.SQLiteBackend,
			Table:        schema.DefaultTable,
			StartTime:    start,
			EndTime:      start.Add(2 * time.Second),
			TotalPlayers: 2,
			Averages:     schema.CohortAverages{VerticalLeap: null.FloatFrom(36), BenchPress: null.FloatFrom(10)},
			Outcomes:     map[schema.InsertOutcome]int{schema.SchemaCreated: 1, schema.Failed: 1},
			Errors:       []schema.RowError{{PlayerID: 1629630, Err: "disk full"}},
		},
	}
}

func TestMain(m *testing.M) {
	summaryWriter = &bytes.Buffer{}
	os.Exit(m.Run())
}

func TestWriteReportText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	cfg := &contract.Config{Output: schema.TextOut, OutputFile: path, Precision: 2}

	require.NoError(t, NewOutWriter().WriteReport(sampleReport(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Zion Williamson")
	assert.Contains(t, out, "116.67 Elite")
	assert.Contains(t, out, "83.33 Below")
	assert.Contains(t, out, "100.00 Average")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "vertical leap")
	assert.Contains(t, out, "schema_created=1 failed=1")
	assert.Contains(t, out, "player 1629630: disk full")
	assert.Contains(t, out, "three quarter sprint n/a")
}

func TestSprintLabelsFavorFasterTimes(t *testing.T) {
	avgs := schema.CohortAverages{ThreeQuarterSprint: null.FloatFrom(3.20)}
	slow := schema.Player{ID: 1, ThreeQuarterSprintTime: null.FloatFrom(3.70), ThreeQuarterSprintScore: 3.70 / 3.20 * 100}
	fast := schema.Player{ID: 2, ThreeQuarterSprintTime: null.FloatFrom(2.70), ThreeQuarterSprintScore: 2.70 / 3.20 * 100}

	assert.Equal(t, contract.BelowValue, plainLabels(&slow, avgs)[schema.ThreeQuarterSprintMetric])
	assert.Equal(t, contract.EliteValue, plainLabels(&fast, avgs)[schema.ThreeQuarterSprintMetric])

	fmtFloat := createFormatters(2)
	assert.True(t, strings.HasSuffix(scoreCell(&slow, schema.ThreeQuarterSprintMetric, avgs, fmtFloat, false), " Below"))
	assert.True(t, strings.HasSuffix(scoreCell(&fast, schema.ThreeQuarterSprintMetric, avgs, fmtFloat, false), " Elite"))
}

func TestWriteReportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path, Precision: 2}

	require.NoError(t, NewOutWriter().WriteReport(sampleReport(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	players := doc["players"].([]any)
	require.Len(t, players, 2)
	first := players[0].(map[string]any)
	assert.Equal(t, "NOP", first["team"])
	assert.Nil(t, first["bench_press_reps"])
	labels := first["labels"].(map[string]any)
	assert.Equal(t, "Elite", labels["vertical_leap"])
	assert.Equal(t, "n/a", labels["three_quarter_sprint"])

	second := players[1].(map[string]any)
	assert.Nil(t, second["team"])

	summary := doc["summary"].(map[string]any)
	assert.Equal(t, "run-1", summary["run_id"])
}

func TestWriteReportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path, Precision: 1}

	require.NoError(t, NewOutWriter().WriteReport(sampleReport(), cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "id,first_name,last_name,team,"))
	assert.Contains(t, lines[1], "1629627,Zion,Williamson,NOP,")
	assert.Contains(t, lines[1], "116.7,Elite")
	// Missing team and missing measurements are empty cells
	assert.Contains(t, lines[2], "1629630,Ja,Morant,,")
}

func TestWriteReportParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path, Precision: 2}

	require.NoError(t, NewOutWriter().WriteReport(sampleReport(), cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteReportParquetNeedsFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 2}
	err := NewOutWriter().WriteReport(sampleReport(), cfg)
	assert.Error(t, err)
}

func TestWriteTableStatus(t *testing.T) {
	var buf bytes.Buffer
	status := schema.TableStatus{Backend: "sqlite", Table: schema.DefaultTable, Connected: true, TableExists: true, TotalRows: 60, TeamlessRows: 4}
	require.NoError(t, writeTableStatus(&buf, status))
	assert.Contains(t, buf.String(), "Total Rows: 60")
	assert.Contains(t, buf.String(), "Rows Without Team: 4")

	buf.Reset()
	require.NoError(t, writeTableStatus(&buf, schema.TableStatus{Backend: "none"}))
	assert.Contains(t, buf.String(), "Connected: false")
	assert.NotContains(t, buf.String(), "Table Exists")
}
