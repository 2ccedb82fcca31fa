package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	scaffold "github.com/goliatone/go-scaffold"
	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/descriptor/sqlite"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	openapiPath  string
	sqliteDSN    string
	overridesDir string
	actions      []string
	perPage      int
	logLevel     string
	logFormat    string

	prompter Prompter
}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit string) error {
	return newRootCommand(version, commit, nil).ExecuteContext(ctx)
}

func newRootCommand(version, commit string, prompter Prompter) *cobra.Command {
	opts := &globalOptions{prompter: prompter}
	if opts.prompter == nil {
		opts.prompter = surveyPrompter{}
	}

	rootCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Inspect and serve scaffold metadata built from model descriptors",
		Long: `scaffold builds column, action and link configurations for every model of
an OpenAPI document or SQLite database, applies override documents and
prints or serves the resolved metadata.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.openapiPath, "openapi", "", "OpenAPI document describing the models")
	flags.StringVar(&opts.sqliteDSN, "sqlite", "", "SQLite database to introspect")
	flags.StringVar(&opts.overridesDir, "overrides", "", "directory of YAML/JSON override documents")
	flags.StringSliceVar(&opts.actions, "actions", nil, "enabled actions (default all)")
	flags.IntVar(&opts.perPage, "per-page", 0, "list page size")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")

	rootCmd.AddCommand(newModelsCommand(opts))
	rootCmd.AddCommand(newInspectCommand(opts))
	rootCmd.AddCommand(newServeCommand(opts))
	return rootCmd
}

// session is the state a command works with once flags were resolved.
type session struct {
	logger  zerolog.Logger
	builder *scaffold.Builder
	source  scaffold.Source
	close   func() error
}

func (o *globalOptions) open(cmd *cobra.Command) (*session, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), o.logLevel, o.logFormat)
	if err != nil {
		return nil, err
	}

	s := &session{logger: logger, close: func() error { return nil }}
	switch {
	case o.openapiPath != "" && o.sqliteDSN != "":
		return nil, errors.New("use either --openapi or --sqlite, not both")
	case o.openapiPath != "":
		s.source = scaffold.OpenAPIFile(o.openapiPath)
	case o.sqliteDSN != "":
		db, err := sqlite.Open(cmd.Context(), o.sqliteDSN)
		if err != nil {
			return nil, err
		}
		s.source = scaffold.SQLite(db, sqlite.WithLogger(logger))
		s.close = db.Close
	default:
		return nil, errors.New("a model source is required: pass --openapi or --sqlite")
	}

	var configOptions []config.Option
	if len(o.actions) > 0 {
		configOptions = append(configOptions, config.WithActions(o.actions...))
	}
	if o.perPage > 0 {
		configOptions = append(configOptions, config.WithPerPage(o.perPage))
	}
	builderOptions := []scaffold.Option{
		scaffold.WithLogger(logger),
		scaffold.WithConfigOptions(configOptions...),
	}
	if o.overridesDir != "" {
		builderOptions = append(builderOptions, scaffold.WithOverridesFS(os.DirFS(o.overridesDir)))
	}
	s.builder = scaffold.New(builderOptions...)
	return s, nil
}
