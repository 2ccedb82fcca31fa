package config

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Action names of the built-in sub-configurations.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionShow   = "show"
	ActionList   = "list"
	ActionSearch = "search"
)

// DefaultActions lists the actions enabled when WithActions is not used.
var DefaultActions = []string{ActionCreate, ActionList, ActionSearch, ActionUpdate, ActionDelete, ActionShow}

// DefaultIgnoredColumns are left out of every action's default column list.
var DefaultIgnoredColumns = []string{"created_at", "updated_at", "created_on", "updated_on", "lock_version"}

// Options configures a Core.
type Options struct {
	Logger         zerolog.Logger
	Label          string
	Actions        []string
	IgnoredColumns []string
	PerPage        int
}

// Option mutates Options prior to construction.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Logger:         zerolog.Nop(),
		Actions:        append([]string(nil), DefaultActions...),
		IgnoredColumns: append([]string(nil), DefaultIgnoredColumns...),
		PerPage:        15,
	}
}

// WithLogger routes diagnostics to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLabel overrides the model label shown in headings.
func WithLabel(label string) Option {
	return func(opts *Options) {
		opts.Label = strings.TrimSpace(label)
	}
}

// WithActions restricts the enabled actions. Unknown and repeated names are
// ignored.
func WithActions(actions ...string) Option {
	return func(opts *Options) {
		opts.Actions = opts.Actions[:0]
		for _, action := range actions {
			action = strings.ToLower(strings.TrimSpace(action))
			if slices.Contains(DefaultActions, action) && !slices.Contains(opts.Actions, action) {
				opts.Actions = append(opts.Actions, action)
			}
		}
	}
}

// WithIgnoredColumns replaces the columns excluded from action defaults.
func WithIgnoredColumns(names ...string) Option {
	return func(opts *Options) {
		opts.IgnoredColumns = append([]string(nil), names...)
	}
}

// WithPerPage sets the list page size; values below one are ignored.
func WithPerPage(n int) Option {
	return func(opts *Options) {
		if n > 0 {
			opts.PerPage = n
		}
	}
}
