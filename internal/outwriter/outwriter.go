// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
)

// Report is everything a pipeline run can print or export.
type Report struct {
	Players []schema.Player
	Cohort  []schema.MetricSummary
	Summary schema.RunSummary
}

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints or exports a run using the configured output format.
func (ow *OutWriter) WriteReport(report Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquet(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeReportText(report, cfg)
	}
	return nil
}

// WriteTableStatus prints the status of the combine table.
func (ow *OutWriter) WriteTableStatus(status schema.TableStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeTableStatus(w, status)
	}, "Wrote status")
}
