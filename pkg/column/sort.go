package column

import "github.com/goliatone/go-scaffold/internal/vocab"

// SortFunc extracts the in-memory sort key from a record.
type SortFunc func(record any) any

// Sort describes how a column is ordered: by a SQL expression, or by a method
// (a function or the name of a record accessor resolved by the host). Exactly
// one of the three is set.
type Sort struct {
	SQL        string   `json:"sql,omitempty"`
	Method     SortFunc `json:"-"`
	MethodName string   `json:"method,omitempty"`
}

// Sort option keys.
const (
	SortSQL    = "sql"
	SortMethod = "method"
)

// ByMethod reports whether the sort runs in memory.
func (s Sort) ByMethod() bool { return s.Method != nil || s.MethodName != "" }

// SortBy validates a sort option map. It must hold exactly one of "sql" or
// "method"; any other key fails with a *vocab.OptionError naming it.
func SortBy(options map[string]any) (Sort, error) {
	if err := vocab.CheckKeys("sort", options, SortSQL, SortMethod); err != nil {
		return Sort{}, err
	}
	switch len(options) {
	case 0:
		return Sort{}, &vocab.OptionError{Scope: "sort", Reason: "expected one of sql or method"}
	case 1:
	default:
		return Sort{}, &vocab.OptionError{Scope: "sort", Option: SortMethod, Reason: "cannot be combined with sql"}
	}
	if raw, ok := options[SortSQL]; ok {
		sql, ok := raw.(string)
		if !ok || sql == "" {
			return Sort{}, &vocab.OptionError{Scope: "sort", Option: SortSQL, Reason: "expected a non-empty string"}
		}
		return Sort{SQL: sql}, nil
	}
	switch fn := options[SortMethod].(type) {
	case SortFunc:
		if fn != nil {
			return Sort{Method: fn}, nil
		}
	case func(any) any:
		if fn != nil {
			return Sort{Method: fn}, nil
		}
	case string:
		if fn != "" {
			return Sort{MethodName: fn}, nil
		}
	}
	return Sort{}, &vocab.OptionError{Scope: "sort", Option: SortMethod, Reason: "expected a function or method name"}
}

func stringMapToAny(in map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
