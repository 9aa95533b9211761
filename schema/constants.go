package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the player export.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string

	// Metric represents one of the scored combine measurements.
	Metric string

	// InsertOutcome represents the result of persisting a single player.
	InsertOutcome string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Scored metrics.
const (
	VerticalLeapMetric       Metric = "vertical_leap"
	ThreeQuarterSprintMetric Metric = "three_quarter_sprint"
	BenchPressMetric         Metric = "bench_press"
)

// Per-row persistence outcomes.
const (
	Inserted      InsertOutcome = "inserted"
	AlreadyExists InsertOutcome = "already_exists"
	SchemaCreated InsertOutcome = "schema_created"
	Failed        InsertOutcome = "failed"
	Discarded     InsertOutcome = "discarded" // none backend
)

// DefaultTable is the table the combine stats are written to.
const DefaultTable = "draft_combine_stats"

// DefaultSeason is used when no season is supplied and no prompt is possible.
const DefaultSeason = "2019-20"

// Column names of the draftcombinestats result set.
const (
	ColPlayerID           = "PLAYER_ID"
	ColFirstName          = "FIRST_NAME"
	ColLastName           = "LAST_NAME"
	ColHeight             = "HEIGHT_WO_SHOES"
	ColWeight             = "WEIGHT"
	ColWingspan           = "WINGSPAN"
	ColStandingReach      = "STANDING_REACH"
	ColStandingVertical   = "STANDING_VERTICAL_LEAP"
	ColBenchPress         = "BENCH_PRESS"
	ColLaneAgility        = "LANE_AGILITY_TIME"
	ColThreeQuarterSprint = "THREE_QUARTER_SPRINT"
	ColMaxVertical        = "MAX_VERTICAL_LEAP"
	ColBodyFatPct         = "BODY_FAT_PCT"
)

// ColTeamAbbreviation is read from the commonplayerinfo result set.
const ColTeamAbbreviation = "TEAM_ABBREVIATION"

// AllMetrics returns the scored metrics in reporting order.
var AllMetrics = []Metric{VerticalLeapMetric, ThreeQuarterSprintMetric, BenchPressMetric}

// AllInsertOutcomes returns the outcomes in reporting order.
var AllInsertOutcomes = []InsertOutcome{Inserted, SchemaCreated, AlreadyExists, Failed, Discarded}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// MetricLabels are the human-readable names used in warnings and tables.
var MetricLabels = map[Metric]string{
	VerticalLeapMetric:       "vertical leap",
	ThreeQuarterSprintMetric: "three quarter sprint",
	BenchPressMetric:         "bench press",
}

// LowerIsBetter reports whether a smaller raw value is the better result.
// Scores are never inverted, so labels read them the other way round.
func (m Metric) LowerIsBetter() bool {
	return m == ThreeQuarterSprintMetric
}
