package vocab

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidOption is matched by every OptionError.
var ErrInvalidOption = errors.New("invalid option")

// OptionError reports an option key (or value) outside the vocabulary
// accepted by Scope.
type OptionError struct {
	Scope  string
	Option string
	Reason string
}

func (e *OptionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid option %q: %s", e.Scope, e.Option, e.Reason)
	}
	return fmt.Sprintf("%s: invalid option %q", e.Scope, e.Option)
}

func (e *OptionError) Unwrap() error { return ErrInvalidOption }

// CheckKeys fails with an OptionError naming the first key (in sorted order)
// that is not part of allowed.
func CheckKeys[V any](scope string, options map[string]V, allowed ...string) error {
	if len(options) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		set[key] = struct{}{}
	}
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := set[key]; !ok {
			return &OptionError{Scope: scope, Option: key, Reason: "expected one of " + strings.Join(allowed, ", ")}
		}
	}
	return nil
}
