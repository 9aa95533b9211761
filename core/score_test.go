package core

import (
	"testing"

	"github.com/hoopsdata/combine/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestNormalizedScore(t *testing.T) {
	assert.InDelta(t, 100.0, NormalizedScore(36, 36), 1e-9)
	assert.InDelta(t, 83.333, NormalizedScore(30, 36), 1e-3)
	assert.InDelta(t, 116.667, NormalizedScore(42, 36), 1e-3)
	// Slower sprint times score higher; the ratio is never inverted.
	assert.Greater(t, NormalizedScore(3.5, 3.2), 100.0)
}

func TestScorePlayer(t *testing.T) {
	avgs := schema.CohortAverages{
		VerticalLeap:       null.FloatFrom(36),
		ThreeQuarterSprint: null.FloatFrom(3.2),
		BenchPress:         null.FloatFrom(10),
	}

	p := schema.Player{
		ID:                     7,
		VerticalLeap:           null.FloatFrom(42),
		ThreeQuarterSprintTime: null.FloatFrom(3.2),
	}
	errs := ScorePlayer(&p, avgs)

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrMissingMetric)
	assert.Contains(t, errs[0].Error(), "bench press score for player 7")
	assert.InDelta(t, 116.667, p.VerticalLeapScore, 1e-3)
	assert.InDelta(t, 100.0, p.ThreeQuarterSprintScore, 1e-9)
	assert.Zero(t, p.BenchPressScore)
}

func TestScorePlayerSkipsNullAverage(t *testing.T) {
	p := schema.Player{ID: 1, VerticalLeap: null.FloatFrom(30)}
	errs := ScorePlayer(&p, schema.CohortAverages{VerticalLeap: null.FloatFrom(30)})
	assert.Empty(t, errs)
	assert.InDelta(t, 100.0, p.VerticalLeapScore, 1e-9)
}

func TestNormalize(t *testing.T) {
	players := []schema.Player{
		{ID: 1, VerticalLeap: null.FloatFrom(30)},
		{ID: 2, VerticalLeap: null.FloatFrom(36), BenchPressReps: null.IntFrom(10)},
		{ID: 3, VerticalLeap: null.FloatFrom(42)},
	}
	agg := NewCohortAggregator()
	for _, p := range players {
		agg.Observe(p)
	}

	report := Normalize(players, agg.Averages())

	assert.InDelta(t, 83.33, players[0].VerticalLeapScore, 1e-2)
	assert.InDelta(t, 100.0, players[1].VerticalLeapScore, 1e-9)
	assert.InDelta(t, 116.67, players[2].VerticalLeapScore, 1e-2)

	assert.Zero(t, players[0].BenchPressScore)
	assert.InDelta(t, 100.0, players[1].BenchPressScore, 1e-9)
	assert.Equal(t, 2, report.Missing[schema.BenchPressMetric])

	assert.Equal(t, []schema.Metric{schema.ThreeQuarterSprintMetric}, report.Skipped)
	assert.Zero(t, report.Missing[schema.ThreeQuarterSprintMetric])
	for _, p := range players {
		assert.Zero(t, p.ThreeQuarterSprintScore)
	}
}
