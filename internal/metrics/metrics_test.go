package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hoopsdata/combine/schema"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func sampleSummary() schema.RunSummary {
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return schema.RunSummary{
		Season:             "2019-20",
		StartTime:          start,
		EndTime:            start.Add(90 * time.Second),
		TotalPlayers:       60,
		SkippedRows:        1,
		TeamLookupFailures: 4,
		Averages:           schema.CohortAverages{VerticalLeap: null.FloatFrom(36)},
		Scores:             schema.ScoreReport{Missing: map[schema.Metric]int{schema.BenchPressMetric: 12}},
		Outcomes: map[schema.InsertOutcome]int{
			schema.SchemaCreated: 1,
			schema.Inserted:      57,
			schema.AlreadyExists: 2,
		},
	}
}

func TestRecorderObserve(t *testing.T) {
	r := NewRecorder()
	r.Observe(sampleSummary())

	assert.InDelta(t, 60.0, testutil.ToFloat64(r.playersTotal), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(r.skippedRows), 1e-9)
	assert.InDelta(t, 4.0, testutil.ToFloat64(r.teamLookupFailures), 1e-9)
	assert.InDelta(t, 57.0, testutil.ToFloat64(r.insertOutcomes.WithLabelValues(string(schema.Inserted))), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(r.insertOutcomes.WithLabelValues(string(schema.Failed))), 1e-9)
	assert.InDelta(t, 36.0, testutil.ToFloat64(r.cohortAverage.WithLabelValues(string(schema.VerticalLeapMetric))), 1e-9)
	assert.InDelta(t, 12.0, testutil.ToFloat64(r.missingMetric.WithLabelValues(string(schema.BenchPressMetric))), 1e-9)
	assert.InDelta(t, 90.0, testutil.ToFloat64(r.runDuration), 1e-9)

	// One series per outcome, none for averages that were null
	assert.Equal(t, len(schema.AllInsertOutcomes), testutil.CollectAndCount(r.insertOutcomes))
	assert.Equal(t, 1, testutil.CollectAndCount(r.cohortAverage))
}

func TestRecorderWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe(sampleSummary())

	path := filepath.Join(t.TempDir(), "combine.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `combine_insert_outcomes{outcome="inserted"} 57`)
	assert.Contains(t, string(data), "combine_players 60")
	assert.NotContains(t, string(data), "go_goroutines")
}

func TestRecorderGaugeNamesHaveNoCounterSuffix(t *testing.T) {
	r := NewRecorder()
	r.Observe(sampleSummary())

	families, err := r.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
	for _, mf := range families {
		assert.Equal(t, "GAUGE", mf.GetType().String(), mf.GetName())
		assert.False(t, strings.HasSuffix(mf.GetName(), "_total"), mf.GetName())
	}
}

func TestRecorderWriteTextfileBadPath(t *testing.T) {
	r := NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "combine.prom"))
	assert.Error(t, err)
}
