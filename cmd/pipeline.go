package cmd

import (
	"context"

	"github.com/hoopsdata/combine/core"
	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/internal/metrics"
	"github.com/hoopsdata/combine/internal/outwriter"
	"github.com/hoopsdata/combine/internal/statsapi"
	"github.com/hoopsdata/combine/internal/store"
)

// storeOpener opens the configured player table once players exist.
func storeOpener(c *contract.Config) core.StoreOpener {
	return func(ctx context.Context) (contract.PlayerStore, error) {
		return store.NewPlayerStore(ctx, c.Backend, c.DBConnect, c.Table)
	}
}

// runPipeline fetches, scores and stores the configured draft class, then
// reports the run.
func runPipeline(ctx context.Context) {
	client := statsapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)

	result, err := core.Run(ctx, cfg, client, storeOpener(cfg))
	if err != nil {
		contract.LogFatal("Combine run failed", err)
	}

	report := outwriter.Report{
		Players: result.Cohort.Players,
		Cohort:  result.Cohort.Summary,
		Summary: result.Summary,
	}
	if err := outwriter.NewOutWriter().WriteReport(report, cfg); err != nil {
		contract.LogFatal("Failed to write report", err)
	}

	if cfg.MetricsFile != "" {
		recorder := metrics.NewRecorder()
		recorder.Observe(result.Summary)
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			contract.LogWarn("Failed to write metrics file", err)
		}
	}
}
