package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	scaffold "github.com/goliatone/go-scaffold"
	"github.com/goliatone/go-scaffold/pkg/config"
	"github.com/goliatone/go-scaffold/pkg/metaapi"
)

func newInspectCommand(opts *globalOptions) *cobra.Command {
	var (
		action   string
		noPrompt bool
	)
	cmd := &cobra.Command{
		Use:   "inspect [model]",
		Short: "Print the resolved configuration of a model as JSON",
		Long: `inspect prints the actions, links and the resolved columns of one action.
Without a model argument the model is picked interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			cores, err := s.builder.Build(cmd.Context(), s.source)
			if err != nil {
				return err
			}
			if len(cores) == 0 {
				return errors.New("the source declares no models")
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			} else {
				if noPrompt {
					return errors.New("a model name is required with --no-prompt")
				}
				name, err = opts.prompter.Select(cmd.Context(), "Model to inspect", modelNames(cores))
				if err != nil {
					return err
				}
			}

			core := findCore(cores, name)
			if core == nil {
				return fmt.Errorf("unknown model %q", name)
			}
			columns, ok := metaapi.DescribeColumns(core, action)
			if !ok {
				return fmt.Errorf("model %s has no enabled %q action with columns", name, action)
			}

			s.logger.Debug().Str("model", name).Str("action", action).Msg("inspect")
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Model   metaapi.ModelView   `json:"model"`
				Columns metaapi.ColumnsView `json:"columns"`
			}{metaapi.DescribeModel(core), columns})
		},
	}
	cmd.Flags().StringVar(&action, "action", config.ActionList, "action whose columns are resolved")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "fail instead of prompting for a model")
	return cmd
}

func modelNames(cores []*scaffold.Core) []string {
	names := make([]string, 0, len(cores))
	for _, core := range cores {
		names = append(names, core.Model().Name())
	}
	return names
}

func findCore(cores []*scaffold.Core, name string) *scaffold.Core {
	for _, core := range cores {
		if core.Model().Name() == name {
			return core
		}
	}
	return nil
}
