package report

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Helpers for pulling typed values out of decoded JSON objects. The API mixes
// numbers, numeric strings ("1.00x" dedup ratios), and absent keys freely, so
// every accessor takes a default and never fails.

func strVal(m map[string]any, key, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

func floatVal(m map[string]any, key string, def float64) float64 {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		// Dedup ratios sometimes arrive as "1.35x".
		if f, err := strconv.ParseFloat(strings.TrimSuffix(v, "x"), 64); err == nil {
			return f
		}
	}
	return def
}

func intVal(m map[string]any, key string, def int64) int64 {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func uintVal(m map[string]any, key string, def uint64) uint64 {
	n := intVal(m, key, int64(def))
	if n < 0 {
		return def
	}
	return uint64(n)
}

func boolVal(m map[string]any, key string, def bool) bool {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return def
}

func mapVal(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]any)
	return sub
}

func sliceVal(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	s, _ := m[key].([]any)
	return s
}
