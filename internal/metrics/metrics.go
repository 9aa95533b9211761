// Package metrics exposes the outcome of a pipeline run as Prometheus metrics
// written to a node_exporter textfile.
package metrics

import (
	"fmt"

	"github.com/hoopsdata/combine/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "combine"

// Recorder holds the run metrics in a private registry so the Go runtime
// collectors never end up in the textfile.
type Recorder struct {
	registry *prometheus.Registry

	playersTotal       prometheus.Gauge
	skippedRows        prometheus.Gauge
	teamLookupFailures prometheus.Gauge
	insertOutcomes     *prometheus.GaugeVec
	cohortAverage      *prometheus.GaugeVec
	missingMetric      *prometheus.GaugeVec
	runDuration        prometheus.Gauge
	lastRunUnix        prometheus.Gauge
}

// NewRecorder registers every run metric on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		playersTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players",
			Help:      "Players built from the combine result set.",
		}),
		skippedRows: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_rows",
			Help:      "Combine rows dropped because they had no player id.",
		}),
		teamLookupFailures: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "team_lookup_failures",
			Help:      "Players whose team could not be resolved.",
		}),
		insertOutcomes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "insert_outcomes",
			Help:      "Rows per persistence outcome.",
		}, []string{"outcome"}),
		cohortAverage: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cohort_average",
			Help:      "Cohort average per scored metric.",
		}, []string{"metric"}),
		missingMetric: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "missing_metric_players",
			Help:      "Players that could not be scored for a metric.",
		}, []string{"metric"}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the pipeline run.",
		}),
		lastRunUnix: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
	}
}

// Observe copies a run summary into the metrics. Every outcome is set, even
// at zero, so dashboards see a stable series set.
func (r *Recorder) Observe(summary schema.RunSummary) {
	r.playersTotal.Set(float64(summary.TotalPlayers))
	r.skippedRows.Set(float64(summary.SkippedRows))
	r.teamLookupFailures.Set(float64(summary.TeamLookupFailures))

	for _, outcome := range schema.AllInsertOutcomes {
		r.insertOutcomes.WithLabelValues(string(outcome)).Set(float64(summary.Outcomes[outcome]))
	}
	for _, m := range schema.AllMetrics {
		if avg := summary.Averages.Get(m); avg.Valid {
			r.cohortAverage.WithLabelValues(string(m)).Set(avg.Float64)
		}
		r.missingMetric.WithLabelValues(string(m)).Set(float64(summary.Scores.Missing[m]))
	}

	r.runDuration.Set(summary.Duration().Seconds())
	if !summary.EndTime.IsZero() {
		r.lastRunUnix.Set(float64(summary.EndTime.Unix()))
	}
}

// Registry returns the registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the metrics in the text exposition format. The write
// is atomic, so a scraper never reads a partial file.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
