// Package scaffold wires model descriptors, declarative overrides and
// per-model configurations together.
//
// Most callers start from a Source and a Builder:
//
//	builder := scaffold.New(scaffold.WithOverridesFS(os.DirFS("overrides")))
//	cores, err := builder.Build(ctx, scaffold.OpenAPIFile("api.yaml"))
//
// The individual packages (pkg/column, pkg/config, pkg/actionlink) remain
// usable on their own.
package scaffold

import (
	"github.com/goliatone/go-scaffold/internal/vocab"
	"github.com/goliatone/go-scaffold/pkg/actionlink"
	"github.com/goliatone/go-scaffold/pkg/column"
	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
)

// Model aliases descriptor.Model, the introspection contract.
type Model = descriptor.Model

// Core aliases config.Core.
type Core = config.Core

// Column aliases column.Column.
type Column = column.Column

// ColumnSet aliases column.ColumnSet.
type ColumnSet = column.ColumnSet

// ActionColumns aliases column.ActionColumns.
type ActionColumns = column.ActionColumns

// ActionLink aliases actionlink.ActionLink.
type ActionLink = actionlink.ActionLink

// OptionError reports an unknown or mistyped configuration option.
type OptionError = vocab.OptionError

// ErrInvalidOption is wrapped by every OptionError; match it with errors.Is.
var ErrInvalidOption = vocab.ErrInvalidOption

// NewConfig builds the configuration of model.
func NewConfig(model descriptor.Model, options ...config.Option) *config.Core {
	return config.New(model, options...)
}

// NewColumn builds a standalone column; a nil model yields a virtual column.
func NewColumn(name string, model descriptor.Model) *column.Column {
	return column.New(name, model)
}

// NewLink builds an action link from its crud-type template.
func NewLink(action string, options ...actionlink.Option) *actionlink.ActionLink {
	return actionlink.New(action, options...)
}
