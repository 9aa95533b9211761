package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/guregu/null.v3"
)

// writeReportText writes the player table, the cohort table and the run
// summary as human-readable text.
func writeReportText(report Report, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if err := writePlayerTable(w, report.Players, report.Summary.Averages, fmtFloat, cfg.UseColors); err != nil {
			return err
		}
		if err := writeCohortTable(w, report.Cohort, fmtFloat); err != nil {
			return err
		}
		return writeRunSummary(w, report.Summary)
	}, "Wrote table")
}

// scoreCell renders a score with its label. A score is only meaningful when
// the raw value and the cohort average both exist.
func scoreCell(p *schema.Player, m schema.Metric, avgs schema.CohortAverages, fmtFloat func(float64) string, useColors bool) string {
	_, present := p.Raw(m)
	present = present && avgs.Get(m).Valid
	label := contract.GetPlainLabel(m, p.Score(m), present)
	if useColors {
		label = contract.GetColorLabel(m, p.Score(m), present)
	}
	if !present {
		return label
	}
	return fmt.Sprintf("%s %s", fmtFloat(p.Score(m)), label)
}

// writePlayerTable generates and writes the scored player table.
func writePlayerTable(w io.Writer, players []schema.Player, avgs schema.CohortAverages, fmtFloat func(float64) string, useColors bool) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Player", "Team", "Vertical", "Score", "Sprint", "Score", "Bench", "Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(players))
	for i := range players {
		p := &players[i]
		team := "-"
		if p.Team.Valid {
			team = p.Team.String
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			p.FullName(),
			team,
			formatNullFloat(p.VerticalLeap, fmtFloat),
			scoreCell(p, schema.VerticalLeapMetric, avgs, fmtFloat, useColors),
			formatNullFloat(p.ThreeQuarterSprintTime, fmtFloat),
			scoreCell(p, schema.ThreeQuarterSprintMetric, avgs, fmtFloat, useColors),
			formatNullInt(p.BenchPressReps),
			scoreCell(p, schema.BenchPressMetric, avgs, fmtFloat, useColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCohortTable writes the distribution of every scored metric.
func writeCohortTable(w io.Writer, cohort []schema.MetricSummary, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Count", "Mean", "Median", "StdDev", "Min", "Max"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(cohort))
	for _, s := range cohort {
		row := []string{schema.MetricLabels[s.Metric], strconv.Itoa(s.Count)}
		if s.Count == 0 {
			row = append(row, "-", "-", "-", "-", "-")
		} else {
			row = append(row, fmtFloat(s.Mean), fmtFloat(s.Median), fmtFloat(s.StdDev), fmtFloat(s.Min), fmtFloat(s.Max))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeRunSummary writes the run totals and every failed row.
func writeRunSummary(w io.Writer, s schema.RunSummary) error {
	if _, err := fmt.Fprintf(w, "Run %s for draft class %s completed in %v\n", s.RunID, s.Season, s.Duration()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Players: %d (skipped rows: %d, team lookup failures: %d)\n",
		s.TotalPlayers, s.SkippedRows, s.TeamLookupFailures); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Averages: vertical leap %s, three quarter sprint %s, bench press %s\n",
		formatAverage(s.Averages.VerticalLeap), formatAverage(s.Averages.ThreeQuarterSprint), formatAverage(s.Averages.BenchPress)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Table %s (%s):", s.Table, s.Backend); err != nil {
		return err
	}
	for _, outcome := range schema.AllInsertOutcomes {
		if n := s.Outcomes[outcome]; n > 0 {
			if _, err := fmt.Fprintf(w, " %s=%d", outcome, n); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, e := range s.Errors {
		if _, err := fmt.Fprintf(w, "  player %d: %s\n", e.PlayerID, e.Err); err != nil {
			return err
		}
	}
	return nil
}

func formatAverage(v null.Float) string {
	if !v.Valid {
		return "n/a"
	}
	return strconv.FormatFloat(v.Float64, 'f', 2, 64)
}

// writeTableStatus prints table status information.
func writeTableStatus(w io.Writer, status schema.TableStatus) error {
	lines := []string{
		fmt.Sprintf("Backend: %s", status.Backend),
		fmt.Sprintf("Table: %s", status.Table),
		fmt.Sprintf("Connected: %t", status.Connected),
	}
	if status.Connected {
		lines = append(lines, fmt.Sprintf("Table Exists: %t", status.TableExists))
		if status.TableExists {
			lines = append(lines,
				fmt.Sprintf("Total Rows: %d", status.TotalRows),
				fmt.Sprintf("Rows Without Team: %d", status.TeamlessRows),
			)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
