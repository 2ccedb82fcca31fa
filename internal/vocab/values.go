package vocab

import (
	"encoding/json"
	"strconv"
	"strings"
)

// String mirrors the extension canonicalisation rules: scalars become their
// textual form, maps and slices become JSON. Returns false when the value has
// no deterministic representation.
func String(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case interface{ String() string }:
		s := v.String()
		if s == "" {
			return "", false
		}
		return s, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case map[string]any, map[string]string, []any, []string:
		payload, err := json.Marshal(v)
		if err != nil || string(payload) == "{}" || string(payload) == "[]" {
			return "", false
		}
		return string(payload), true
	default:
		return "", false
	}
}

// Bool accepts booleans and their common textual spellings.
func Bool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// StringMap accepts map[string]string and maps whose values canonicalise to
// strings (as decoded from YAML/JSON).
func StringMap(value any) (map[string]string, bool) {
	switch v := value.(type) {
	case nil:
		return map[string]string{}, true
	case map[string]string:
		out := make(map[string]string, len(v))
		for key, val := range v {
			out[key] = val
		}
		return out, true
	case map[string]any:
		out := make(map[string]string, len(v))
		for key, raw := range v {
			val, ok := String(raw)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// Strings accepts a single string or a list of strings.
func Strings(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
