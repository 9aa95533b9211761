package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/internal/parquet"
	"github.com/hoopsdata/combine/schema"
	"gopkg.in/guregu/null.v3"
)

// summaryWriter is where the run summary goes when the report itself is
// machine-readable and may own stdout.
var summaryWriter io.Writer = os.Stderr

// jsonPlayer adds the plain labels to a player.
type jsonPlayer struct {
	schema.Player
	Labels map[schema.Metric]string `json:"labels"`
}

// jsonReport is the JSON document for a run.
type jsonReport struct {
	Summary schema.RunSummary      `json:"summary"`
	Cohort  []schema.MetricSummary `json:"cohort"`
	Players []jsonPlayer           `json:"players"`
}

// csvPlayer is the flat CSV row for a player. Optional values are
// pre-formatted so that a missing measurement is an empty cell.
type csvPlayer struct {
	ID                      int64  `csv:"id"`
	FirstName               string `csv:"first_name"`
	LastName                string `csv:"last_name"`
	Team                    string `csv:"team"`
	Height                  string `csv:"height"`
	Weight                  string `csv:"weight"`
	Wingspan                string `csv:"wingspan"`
	StandingReach           string `csv:"standing_reach"`
	VerticalLeap            string `csv:"vertical_leap"`
	BenchPressReps          string `csv:"bench_press_reps"`
	LaneAgilityTime         string `csv:"lane_agility_time"`
	ThreeQuarterSprintTime  string `csv:"three_quarter_sprint_time"`
	BMI                     string `csv:"bmi"`
	VerticalLeapScore       string `csv:"vertical_leap_score"`
	VerticalLeapLabel       string `csv:"vertical_leap_label"`
	ThreeQuarterSprintScore string `csv:"three_quarter_sprint_score"`
	ThreeQuarterSprintLabel string `csv:"three_quarter_sprint_label"`
	BenchPressScore         string `csv:"bench_press_score"`
	BenchPressLabel         string `csv:"bench_press_label"`
}

// plainLabels returns the plain label of every metric for a player.
func plainLabels(p *schema.Player, avgs schema.CohortAverages) map[schema.Metric]string {
	labels := make(map[schema.Metric]string, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		_, present := p.Raw(m)
		labels[m] = contract.GetPlainLabel(m, p.Score(m), present && avgs.Get(m).Valid)
	}
	return labels
}

func toJSONReport(report Report) jsonReport {
	players := make([]jsonPlayer, 0, len(report.Players))
	for i := range report.Players {
		p := &report.Players[i]
		players = append(players, jsonPlayer{Player: *p, Labels: plainLabels(p, report.Summary.Averages)})
	}
	return jsonReport{Summary: report.Summary, Cohort: report.Cohort, Players: players}
}

func toCSVPlayers(players []schema.Player, avgs schema.CohortAverages, fmtFloat func(float64) string) []csvPlayer {
	cell := func(v null.Float) string {
		if !v.Valid {
			return ""
		}
		return fmtFloat(v.Float64)
	}

	rows := make([]csvPlayer, 0, len(players))
	for i := range players {
		p := &players[i]
		labels := plainLabels(p, avgs)
		bench := ""
		if p.BenchPressReps.Valid {
			bench = formatNullInt(p.BenchPressReps)
		}
		rows = append(rows, csvPlayer{
			ID:                      p.ID,
			FirstName:               p.FirstName.String,
			LastName:                p.LastName.String,
			Team:                    p.Team.String,
			Height:                  cell(p.Height),
			Weight:                  cell(p.Weight),
			Wingspan:                cell(p.Wingspan),
			StandingReach:           cell(p.StandingReach),
			VerticalLeap:            cell(p.VerticalLeap),
			BenchPressReps:          bench,
			LaneAgilityTime:         cell(p.LaneAgilityTime),
			ThreeQuarterSprintTime:  cell(p.ThreeQuarterSprintTime),
			BMI:                     cell(p.BMI),
			VerticalLeapScore:       fmtFloat(p.VerticalLeapScore),
			VerticalLeapLabel:       labels[schema.VerticalLeapMetric],
			ThreeQuarterSprintScore: fmtFloat(p.ThreeQuarterSprintScore),
			ThreeQuarterSprintLabel: labels[schema.ThreeQuarterSprintMetric],
			BenchPressScore:         fmtFloat(p.BenchPressScore),
			BenchPressLabel:         labels[schema.BenchPressMetric],
		})
	}
	return rows
}

// writeReportJSON writes the whole run as one JSON document.
func writeReportJSON(report Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, toJSONReport(report))
	}, "Wrote JSON")
}

// writeReportCSV writes one CSV row per player, then the run summary.
func writeReportCSV(report Report, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)
	err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVPlayers(w, report.Players, report.Summary.Averages, fmtFloat)
	}, "Wrote CSV")
	if err != nil {
		return err
	}
	return writeRunSummary(summaryWriter, report.Summary)
}

func writeCSVPlayers(w io.Writer, players []schema.Player, avgs schema.CohortAverages, fmtFloat func(float64) string) error {
	rows := toCSVPlayers(players, avgs, fmtFloat)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}
	return nil
}

// writeReportParquet exports the players to the configured Parquet file.
func writeReportParquet(report Report, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires an output file")
	}
	records := parquet.FromPlayers(report.Players, report.Summary.RunID, report.Summary.Season, time.Now().UTC())
	if err := parquet.WritePlayersParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return writeRunSummary(summaryWriter, report.Summary)
}
