// Package schema has models, constants and shared types for all parts of combine.
package schema

import (
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Player is a single draft prospect with raw combine measurements, a team
// affiliation and the three scores normalized against the cohort average.
// Every measurement is optional because the stats API reports nulls freely.
type Player struct {
	ID        int64       `db:"id" json:"id"`
	FirstName null.String `db:"first_name" json:"first_name"`
	LastName  null.String `db:"last_name" json:"last_name"`
	Team      null.String `db:"team" json:"team"` // null when the lookup failed

	Height                 null.Float `db:"height" json:"height"`
	Weight                 null.Float `db:"weight" json:"weight"`
	Wingspan               null.Float `db:"wingspan" json:"wingspan"`
	StandingReach          null.Float `db:"standing_reach" json:"standing_reach"`
	VerticalLeap           null.Float `db:"vertical_leap" json:"vertical_leap"`
	BenchPressReps         null.Int   `db:"bench_press_reps" json:"bench_press_reps"`
	LaneAgilityTime        null.Float `db:"lane_agility_time" json:"lane_agility_time"`
	ThreeQuarterSprintTime null.Float `db:"three_quarter_sprint_time" json:"three_quarter_sprint_time"`
	MaxVerticalLeap        null.Float `db:"-" json:"max_vertical_leap"` // read but never scored or persisted
	BMI                    null.Float `db:"bmi" json:"bmi"`             // body fat percentage, named after the column

	VerticalLeapScore       float64 `db:"vertical_leap_score" json:"vertical_leap_score"`
	ThreeQuarterSprintScore float64 `db:"three_quarter_sprint_score" json:"three_quarter_sprint_score"`
	BenchPressScore         float64 `db:"bench_press_score" json:"bench_press_score"`
}

// FullName joins the first and last name, skipping missing parts.
func (p *Player) FullName() string {
	var parts []string
	if p.FirstName.Valid && p.FirstName.String != "" {
		parts = append(parts, p.FirstName.String)
	}
	if p.LastName.Valid && p.LastName.String != "" {
		parts = append(parts, p.LastName.String)
	}
	return strings.Join(parts, " ")
}

// Raw returns the raw measurement behind a scored metric and whether it is present.
func (p *Player) Raw(m Metric) (float64, bool) {
	switch m {
	case VerticalLeapMetric:
		return p.VerticalLeap.Float64, p.VerticalLeap.Valid
	case ThreeQuarterSprintMetric:
		return p.ThreeQuarterSprintTime.Float64, p.ThreeQuarterSprintTime.Valid
	case BenchPressMetric:
		return float64(p.BenchPressReps.Int64), p.BenchPressReps.Valid
	default:
		return 0, false
	}
}

// Score returns the normalized score for a metric.
func (p *Player) Score(m Metric) float64 {
	switch m {
	case VerticalLeapMetric:
		return p.VerticalLeapScore
	case ThreeQuarterSprintMetric:
		return p.ThreeQuarterSprintScore
	case BenchPressMetric:
		return p.BenchPressScore
	default:
		return 0
	}
}

// SetScore stores the normalized score for a metric.
func (p *Player) SetScore(m Metric, score float64) {
	switch m {
	case VerticalLeapMetric:
		p.VerticalLeapScore = score
	case ThreeQuarterSprintMetric:
		p.ThreeQuarterSprintScore = score
	case BenchPressMetric:
		p.BenchPressScore = score
	}
}

// CohortAverages holds the mean of the non-missing observations of each
// scored metric. An average is null when no player reported the metric.
type CohortAverages struct {
	VerticalLeap       null.Float `json:"vertical_leap"`
	ThreeQuarterSprint null.Float `json:"three_quarter_sprint"`
	BenchPress         null.Float `json:"bench_press"`
}

// Get returns the average for a metric.
func (a CohortAverages) Get(m Metric) null.Float {
	switch m {
	case VerticalLeapMetric:
		return a.VerticalLeap
	case ThreeQuarterSprintMetric:
		return a.ThreeQuarterSprint
	case BenchPressMetric:
		return a.BenchPress
	default:
		return null.Float{}
	}
}

// MetricSummary describes the distribution of one metric across the cohort.
type MetricSummary struct {
	Metric Metric  `json:"metric"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ScoreReport records how many players could not be scored per metric and
// which metrics were skipped entirely for lack of any observation.
type ScoreReport struct {
	Missing map[Metric]int `json:"missing"`
	Skipped []Metric       `json:"skipped"`
}
