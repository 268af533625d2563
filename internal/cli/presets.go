package cli

import (
	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"pakgov-intel/core/presets"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "presets",
		Short:       "List the canned topics accepted by scan --preset",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"offline": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, p := range presets.List() {
				rows = append(rows, []string{p.ID, p.Label, p.Query})
			}
			md := markdown.NewMarkdown(cmd.OutOrStdout())
			md.Table(markdown.TableSet{
				Header: []string{"ID", "Label", "Query"},
				Rows:   rows,
			})
			return md.Build()
		},
	}
}
