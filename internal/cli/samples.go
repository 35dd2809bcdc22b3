package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbalance/builder"
	"github.com/katalvlaran/lvbalance/graphio"
)

func newSamplesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "samples [NAME]",
		Short: "List built-in samples or print one as a definition file",
		Long: `Without NAME, list the built-in samples. With NAME, print that sample as a
definition document in --format (yaml, json or toml), ready to be edited and
passed back to the other commands.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}
			p := printer{cmd.OutOrStdout()}

			if len(args) == 0 {
				p.graph("Samples")
				for _, s := range builder.Samples() {
					p.field(s.Name, s.Description)
				}
				p.aside("use %sNAME as a graph argument", samplePrefix)
				return nil
			}

			s, err := builder.LookupSample(args[0])
			if err != nil {
				return err
			}
			g, err := s.Graph()
			if err != nil {
				return err
			}
			doc := graphio.FromGraph(s.Name, g)
			doc.Description = s.Description

			return graphio.Encode(cmd.OutOrStdout(), doc, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, json or toml")

	return cmd
}
