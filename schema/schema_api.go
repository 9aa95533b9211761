package schema

import "gopkg.in/guregu/null.v3"

// StatsResponse is the envelope returned by every stats.nba.com endpoint.
type StatsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []ResultSet `json:"resultSets"`
}

// ResultSet is a tabular block of an API response. Rows are positional and
// must be read through the header names.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// ColumnIndex maps a header name to its position in every row.
type ColumnIndex map[string]int

// Index builds the header lookup once for the whole result set.
func (rs ResultSet) Index() ColumnIndex {
	idx := make(ColumnIndex, len(rs.Headers))
	for i, h := range rs.Headers {
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	return idx
}

// Value returns the raw cell for a column, or nil when the column is unknown
// or the row is short.
func (ci ColumnIndex) Value(row []any, column string) any {
	i, ok := ci[column]
	if !ok || i >= len(row) {
		return nil
	}
	return row[i]
}

// Float reads a column as an optional float.
func (ci ColumnIndex) Float(row []any, column string) null.Float {
	return toNullFloat(ci.Value(row, column))
}

// Int reads a column as an optional integer.
func (ci ColumnIndex) Int(row []any, column string) null.Int {
	return toNullInt(ci.Value(row, column))
}

// String reads a column as an optional string.
func (ci ColumnIndex) String(row []any, column string) null.String {
	return toNullString(ci.Value(row, column))
}
