package application

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// positionalFields declares, per legacy path, the named fields its positional
// payload maps onto. The translation is an explicit table rather than an
// order-inferring heuristic.
var positionalFields = map[string][]string{
	"login":             {"user_id", "password"},
	"camera/login":      {"qr_data"},
	"workpiece/get":     {"id"},
	"workpiece/delete":  {"id"},
	"workpiece/execute": {"id"},
}

// ConvertLegacyData reshapes a legacy payload into the named fields the v2
// request models expect. Unknown shapes are wrapped under a "data" key so the
// handler still receives them.
func ConvertLegacyData(legacyPath string, data any) map[string]any {
	converted := convertLegacyPayload(legacyPath, data)
	if _, ok := converted["timestamp"]; !ok {
		converted["timestamp"] = time.Now().Format(time.RFC3339)
	}
	return converted
}

func convertLegacyPayload(legacyPath string, data any) map[string]any {
	if fields, ok := positionalFields[legacyPath]; ok {
		if positional := asSlice(data); positional != nil {
			out := make(map[string]any, len(fields))
			for i, field := range fields {
				if i < len(positional) {
					out[field] = stringify(positional[i])
				}
			}
			return out
		}
	}

	// Jog parameters ride in the legacy path itself: robot/jog/<axis>/<dir>,
	// with the step size as the raw payload.
	if strings.HasPrefix(legacyPath, "robot/jog/") {
		parts := strings.Split(legacyPath, "/")
		if len(parts) >= 4 {
			direction := "negative"
			if parts[3] == "Plus" {
				direction = "positive"
			}
			step := 1.0
			if v, ok := asFloat(data); ok && v > 0 {
				step = v
			}
			return map[string]any{
				"axis":      parts[2],
				"direction": direction,
				"step_size": step,
			}
		}
	}

	switch d := data.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		out := make(map[string]any, len(d))
		for k, v := range d {
			out[k] = v
		}
		return out
	default:
		return map[string]any{"data": d}
	}
}

// LegacyJogPath reports whether a legacy path is a parameterized jog request,
// which must be truncated to its mapped prefix before registry lookup.
func LegacyJogPath(path string) (string, bool) {
	if strings.HasPrefix(path, "robot/jog/") {
		return "robot/jog", true
	}
	return "", false
}

func asSlice(data any) []any {
	switch d := data.(type) {
	case []any:
		return d
	case []string:
		out := make([]any, len(d))
		for i, s := range d {
			out[i] = s
		}
		return out
	}
	return nil
}

func asFloat(data any) (float64, bool) {
	switch d := data.(type) {
	case float64:
		return d, true
	case float32:
		return float64(d), true
	case int:
		return float64(d), true
	case int64:
		return float64(d), true
	case json.Number:
		f, err := d.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(d, 64)
		return f, err == nil
	}
	return 0, false
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}
