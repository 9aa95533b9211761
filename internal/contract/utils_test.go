package contract

import (
	"testing"

	"github.com/fatih/color"
	"github.com/hoopsdata/combine/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		score   float64
		present bool
		want    string
	}{
		{0, false, MissingValue},
		{130, true, EliteValue},
		{115, true, EliteValue},
		{110, true, AboveValue},
		{100, true, AverageValue},
		{95.5, true, AverageValue},
		{95, true, BelowValue},
		{0, true, BelowValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainLabel(schema.VerticalLeapMetric, tt.score, tt.present), "score=%v present=%v", tt.score, tt.present)
	}
}

func TestGetPlainLabelSprintLowerIsBetter(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		// Against a 3.20s average: 2.70s, 2.95s, average, 3.70s
		{84.375, EliteValue},
		{92.1875, AboveValue},
		{100, AverageValue},
		{115.625, BelowValue},
		{103, AverageValue},
		{105, BelowValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainLabel(schema.ThreeQuarterSprintMetric, tt.score, true), "score=%v", tt.score)
	}
	assert.Equal(t, MissingValue, GetPlainLabel(schema.ThreeQuarterSprintMetric, 0, false))
}

func TestGetColorLabel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	assert.Equal(t, EliteValue, GetColorLabel(schema.BenchPressMetric, 120, true))
	assert.Equal(t, MissingValue, GetColorLabel(schema.BenchPressMetric, 0, false))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
