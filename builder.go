package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/descriptor"
	"github.com/goliatone/go-scaffold/pkg/metaapi"
	"github.com/goliatone/go-scaffold/pkg/overrides"
)

// Option customises the Builder.
type Option func(*Builder)

// WithLogger routes diagnostics of the builder and every configuration it
// creates to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithConfigOptions passes options to every config.New call.
func WithConfigOptions(options ...config.Option) Option {
	return func(b *Builder) {
		b.configOptions = append(b.configOptions, options...)
	}
}

// WithOverrides applies store to every configuration.
func WithOverrides(store *overrides.Store) Option {
	return func(b *Builder) {
		b.overrides = store
	}
}

// WithOverridesFS loads the override documents of fsys when the builder is
// created.
func WithOverridesFS(fsys fs.FS) Option {
	return func(b *Builder) {
		store, err := overrides.LoadFS(fsys)
		if err != nil {
			b.initialiseErr = fmt.Errorf("scaffold: load overrides: %w", err)
			return
		}
		b.overrides = store
	}
}

// WithConfigure registers functions run against each configuration after
// overrides were applied.
func WithConfigure(fns ...func(*config.Core)) Option {
	return func(b *Builder) {
		for _, fn := range fns {
			if fn != nil {
				b.configure = append(b.configure, fn)
			}
		}
	}
}

// WithModels restricts the build to the named models.
func WithModels(names ...string) Option {
	return func(b *Builder) {
		b.only = append(b.only, names...)
	}
}

// Builder turns the models of a Source into configurations:
// source -> config.New -> overrides -> configure hooks.
type Builder struct {
	logger        zerolog.Logger
	configOptions []config.Option
	overrides     *overrides.Store
	configure     []func(*config.Core)
	only          []string
	initialiseErr error
}

// New constructs a Builder applying options.
func New(options ...Option) *Builder {
	b := &Builder{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build configures every model of source, in source order.
func (b *Builder) Build(ctx context.Context, source Source) ([]*config.Core, error) {
	if ctx == nil {
		return nil, errors.New("scaffold: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.initialiseErr != nil {
		return nil, b.initialiseErr
	}
	if source == nil {
		return nil, errors.New("scaffold: source is required")
	}

	models, err := source.Models(ctx)
	if err != nil {
		return nil, fmt.Errorf("scaffold: load models: %w", err)
	}

	cores := make([]*config.Core, 0, len(models))
	for _, model := range models {
		if model == nil || !b.selected(model) {
			continue
		}
		core, err := b.Configure(model)
		if err != nil {
			return nil, err
		}
		cores = append(cores, core)
	}
	if missing := b.missing(models); len(missing) > 0 {
		return nil, fmt.Errorf("scaffold: unknown models %v", missing)
	}
	b.logger.Debug().Int("models", len(cores)).Msg("scaffold: built configurations")
	return cores, nil
}

// Configure builds the configuration of a single model.
func (b *Builder) Configure(model descriptor.Model) (*config.Core, error) {
	if b.initialiseErr != nil {
		return nil, b.initialiseErr
	}
	options := append([]config.Option{config.WithLogger(b.logger)}, b.configOptions...)
	core := config.New(model, options...)
	if err := b.overrides.Apply(core); err != nil {
		return nil, err
	}
	for _, fn := range b.configure {
		core.Configure(fn)
	}
	return core, nil
}

// Registry builds source and registers the configurations for the metadata
// API.
func (b *Builder) Registry(ctx context.Context, source Source) (*metaapi.Registry, error) {
	cores, err := b.Build(ctx, source)
	if err != nil {
		return nil, err
	}
	registry := metaapi.NewRegistry()
	for _, core := range cores {
		if err := registry.Register(core); err != nil {
			return nil, fmt.Errorf("scaffold: %w", err)
		}
	}
	return registry, nil
}

func (b *Builder) selected(model descriptor.Model) bool {
	return len(b.only) == 0 || slices.Contains(b.only, model.Name())
}

func (b *Builder) missing(models []descriptor.Model) []string {
	var missing []string
	for _, name := range b.only {
		found := slices.ContainsFunc(models, func(m descriptor.Model) bool {
			return m != nil && m.Name() == name
		})
		if !found {
			missing = append(missing, name)
		}
	}
	return missing
}
