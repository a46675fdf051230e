// Package intents maps resolved intent names onto query plans. Each plan
// turns a loosely-typed parameter bag into store reads and a structured
// result for the formatter.
package intents

import (
	"math"
	"strconv"
	"strings"
)

// Params is the parameter bag attached to an inbound intent event. Values
// arrive as strings, JSON numbers or lists of either, depending on how the
// conversational platform extracted them. Accessors degrade to zero values on
// malformed input instead of failing; it is up to each plan to report
// "not enough input" to the user.
type Params map[string]any

// Text returns the first non-empty textual value among the given keys. Lists
// collapse to their first element; numbers render as plain integers when they
// are integral.
func (p Params) Text(keys ...string) string {
	for _, key := range keys {
		if s := coerceString(p[key]); s != "" {
			return s
		}
	}
	return ""
}

// ProgramIDs collects the program identifiers supplied for a comparison. The
// platform delivers them either as a `programIds` list (or single value) or
// as a `programId1`/`programId2` pair. Each candidate is coerced to an
// integer; non-numeric and non-positive values are discarded.
func (p Params) ProgramIDs() []int64 {
	var candidates []any

	if raw, ok := p["programIds"]; ok {
		if list, ok := raw.([]any); ok {
			candidates = list
		} else {
			candidates = []any{raw}
		}
	} else if p["programId1"] != nil && p["programId2"] != nil {
		candidates = []any{p["programId1"], p["programId2"]}
	}

	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		if id, ok := coerceInt(c); ok && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// coerceString flattens a parameter value to a string.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		// JSON numbers decode as float64; integral values render without a
		// fractional part so "25" round-trips as "25", not "25.000000".
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []any:
		if len(t) > 0 {
			return coerceString(t[0])
		}
	}
	return ""
}

// coerceInt coerces a parameter value to an integer, truncating fractional
// numbers the way the platform's own parsing would.
func coerceInt(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	case []any:
		if len(t) > 0 {
			return coerceInt(t[0])
		}
	}
	return 0, false
}
