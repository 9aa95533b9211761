package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/hoopsdata/combine/schema"
)

// Scoring label constants. 100 is the cohort average.
const (
	EliteValue   = "Elite"   // Elite value
	AboveValue   = "Above"   // Above average
	AverageValue = "Average" // Around the cohort average
	BelowValue   = "Below"   // Below average
	MissingValue = "n/a"     // No measurement
)

// Color variables for console output.
var (
	EliteColor   = color.New(color.FgGreen, color.Bold) // EliteColor marks standout results.
	AboveColor   = color.New(color.FgGreen)             // AboveColor marks better than average.
	AverageColor = color.New(color.FgYellow)            // AverageColor marks the middle of the pack.
	BelowColor   = color.New(color.FgRed)               // BelowColor marks results under the cohort.
	MissingColor = color.New(color.FgHiBlack)           // MissingColor marks absent data.
)

// GetPlainLabel returns a plain text label for a normalized score. This is
// the core logic used for CSV, JSON, and table printing. Time metrics score
// above 100 when slower than average, so their score is mirrored around 100
// before the thresholds apply.
func GetPlainLabel(metric schema.Metric, score float64, present bool) string {
	if !present {
		return MissingValue
	}
	if metric.LowerIsBetter() {
		score = 200 - score
	}
	switch {
	case score >= 115:
		return EliteValue
	case score >= 105:
		return AboveValue
	case score > 95:
		return AverageValue
	default:
		return BelowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(metric schema.Metric, score float64, present bool) string {
	text := GetPlainLabel(metric, score, present)

	switch text {
	case EliteValue:
		return EliteColor.Sprint(text)
	case AboveValue:
		return AboveColor.Sprint(text)
	case AverageValue:
		return AverageColor.Sprint(text)
	case BelowValue:
		return BelowColor.Sprint(text)
	default:
		return MissingColor.Sprint(text)
	}
}

// SelectOutputFile returns the file to write output to.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarning logs a recoverable problem to stderr.
func LogWarning(msg string) {
	_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}

// LogWarn logs a warning message with its cause to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the default SQLite DB file.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".combine_db.db"
	}
	return filepath.Join(homeDir, ".combine_db.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
