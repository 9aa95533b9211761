package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// toNullFloat coerces a decoded JSON cell into an optional float.
// Numbers may arrive as json.Number, float64 or numeric strings (WEIGHT is a
// string upstream); anything else is treated as missing.
func toNullFloat(v any) null.Float {
	switch val := v.(type) {
	case nil:
		return null.Float{}
	case json.Number:
		f, err := val.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return null.Float{}
		}
		return null.FloatFrom(f)
	case float64:
		return null.FloatFrom(val)
	case float32:
		return null.FloatFrom(float64(val))
	case int:
		return null.FloatFrom(float64(val))
	case int64:
		return null.FloatFrom(float64(val))
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return null.Float{}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return null.Float{}
		}
		return null.FloatFrom(f)
	default:
		return null.Float{}
	}
}

// toNullInt coerces a decoded JSON cell into an optional integer, truncating
// fractional values.
func toNullInt(v any) null.Int {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return null.IntFrom(i)
		}
	case int:
		return null.IntFrom(int64(val))
	case int64:
		return null.IntFrom(val)
	}
	f := toNullFloat(v)
	if !f.Valid || math.IsInf(f.Float64, 0) {
		return null.Int{}
	}
	return null.IntFrom(int64(math.Trunc(f.Float64)))
}

// toNullString coerces a decoded JSON cell into an optional string. Empty
// strings are treated as missing.
func toNullString(v any) null.String {
	var s string
	switch val := v.(type) {
	case nil:
		return null.String{}
	case string:
		s = val
	case json.Number:
		s = val.String()
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	default:
		return null.String{}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
