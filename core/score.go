package core

import (
	"errors"
	"fmt"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
)

// ErrMissingMetric marks a player that lacks the raw value for a metric.
var ErrMissingMetric = errors.New("data is missing")

// NormalizedScore scales raw against the cohort average so that 100 is
// average. Time-based metrics are not inverted.
func NormalizedScore(raw, avg float64) float64 {
	return raw / avg * 100
}

// ScorePlayer computes every metric with a valid average. Each absent raw
// value leaves that score at zero and yields one error wrapping
// ErrMissingMetric; other metrics are still scored.
func ScorePlayer(p *schema.Player, avgs schema.CohortAverages) []error {
	var errs []error
	for _, m := range schema.AllMetrics {
		avg := avgs.Get(m)
		if !avg.Valid || avg.Float64 == 0 {
			continue
		}
		raw, ok := p.Raw(m)
		if !ok {
			errs = append(errs, fmt.Errorf("error calculating %s score for player %d: %s %w", schema.MetricLabels[m], p.ID, schema.MetricLabels[m], ErrMissingMetric))
			continue
		}
		p.SetScore(m, NormalizedScore(raw, avg.Float64))
	}
	return errs
}

// Normalize runs the second pass over the fully built cohort. A metric that
// nobody reported is skipped for everyone with a single warning.
func Normalize(players []schema.Player, avgs schema.CohortAverages) schema.ScoreReport {
	report := schema.ScoreReport{Missing: make(map[schema.Metric]int)}
	for _, m := range schema.AllMetrics {
		if !avgs.Get(m).Valid {
			report.Skipped = append(report.Skipped, m)
			contract.LogWarning(fmt.Sprintf("No %s data in this draft class; skipping %s scores", schema.MetricLabels[m], schema.MetricLabels[m]))
		}
	}

	for i := range players {
		for _, err := range ScorePlayer(&players[i], avgs) {
			contract.LogWarning(err.Error())
		}
		for _, m := range schema.AllMetrics {
			if _, ok := players[i].Raw(m); !ok && avgs.Get(m).Valid {
				report.Missing[m]++
			}
		}
	}
	return report
}
