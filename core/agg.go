package core

import (
	"github.com/hoopsdata/combine/schema"
	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// runningMetric keeps the running total of one metric plus the observations
// themselves for the cohort summary.
type runningMetric struct {
	sum    float64
	values stats.Float64Data
}

func (r *runningMetric) add(v float64) {
	r.sum += v
	r.values = append(r.values, v)
}

func (r *runningMetric) count() int {
	return len(r.values)
}

// CohortAggregator accumulates the scored metrics while players are built.
// Only present, non-zero values count, so a metric missing for some players
// never drags the average toward zero.
type CohortAggregator struct {
	metrics map[schema.Metric]*runningMetric
}

// NewCohortAggregator returns an empty aggregator.
func NewCohortAggregator() *CohortAggregator {
	agg := &CohortAggregator{metrics: make(map[schema.Metric]*runningMetric, len(schema.AllMetrics))}
	for _, m := range schema.AllMetrics {
		agg.metrics[m] = &runningMetric{}
	}
	return agg
}

// Observe adds the player's measurements to the running totals.
func (a *CohortAggregator) Observe(p schema.Player) {
	for _, m := range schema.AllMetrics {
		v, ok := p.Raw(m)
		if !ok || v == 0 {
			continue
		}
		a.metrics[m].add(v)
	}
}

// Count returns how many observations of a metric were accumulated.
func (a *CohortAggregator) Count(m schema.Metric) int {
	r, ok := a.metrics[m]
	if !ok {
		return 0
	}
	return r.count()
}

// Averages returns sum/count per metric. A metric with no observations has
// a null average.
func (a *CohortAggregator) Averages() schema.CohortAverages {
	avg := func(m schema.Metric) null.Float {
		r := a.metrics[m]
		if r.count() == 0 {
			return null.Float{}
		}
		return null.FloatFrom(r.sum / float64(r.count()))
	}
	return schema.CohortAverages{
		VerticalLeap:       avg(schema.VerticalLeapMetric),
		ThreeQuarterSprint: avg(schema.ThreeQuarterSprintMetric),
		BenchPress:         avg(schema.BenchPressMetric),
	}
}

// Summary describes each metric's distribution. Metrics without
// observations are reported with a zero count.
func (a *CohortAggregator) Summary() []schema.MetricSummary {
	out := make([]schema.MetricSummary, 0, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		r := a.metrics[m]
		s := schema.MetricSummary{Metric: m, Count: r.count()}
		if s.Count > 0 {
			s.Mean = r.sum / float64(s.Count)
			s.Median, _ = stats.Median(r.values)
			s.StdDev, _ = stats.StandardDeviation(r.values)
			s.Min, _ = stats.Min(r.values)
			s.Max, _ = stats.Max(r.values)
		}
		out = append(out, s)
	}
	return out
}
