package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/camelgraph/internal/presentation/diagram"
	"github.com/aretw0/camelgraph/internal/presentation/tui"
)

func newInspectCmd(a *app) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the routes of a document",
		Long:  `Prints the routes and a node count per shape as Markdown, rendered for the terminal when stdout is one.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.merge(cmd, opts)
			g, err := a.convert(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			md := diagram.Summary(filepath.Base(cfg.Input), g)
			if isTerminal(a.stdout) {
				rendered, err := tui.NewRenderer()(md)
				if err == nil {
					md = rendered
				}
			}
			_, err = fmt.Fprint(a.stdout, md)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.xml, "xml", "", "Camel context XML file")
	cmd.Flags().BoolVar(&opts.beans, "beans", false, "Label bean and process steps with their implementation type")
	return cmd
}
