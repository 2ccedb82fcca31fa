package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCommand(opts *globalOptions) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models of the source",
		Args:  cobra.NoArgs,
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

			type item struct {
				Name    string   `json:"name"`
				Table   string   `json:"table"`
				Label   string   `json:"label"`
				Columns []string `json:"columns"`
			}
			items := make([]item, 0, len(cores))
			for _, core := range cores {
				items = append(items, item{
					Name:    core.Model().Name(),
					Table:   core.Model().TableName(),
					Label:   core.Label,
					Columns: core.Columns().Names(),
				})
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			for _, it := range items {
				fmt.Fprintf(out, "%-24s %-24s %d columns\n", it.Name, it.Table, len(it.Columns))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}
