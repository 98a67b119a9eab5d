package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/camelgraph/internal/validator"
)

func newValidateCmd(a *app) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a route document converts",
		Long:  `Converts the document, checks the integrity of the resulting graph and discards the diagram. Exits with status 1 on the first unknown construct, unresolved reference or missing attribute.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.merge(cmd, opts)
			g, err := a.convert(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := validator.ValidateGraph(g); err != nil {
				return fmt.Errorf("graph integrity: %w", err)
			}
			fmt.Fprintf(a.stdout, "%s is valid: %d nodes in %d routes\n", cfg.Input, g.Len(), len(g.Roots()))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.xml, "xml", "", "Camel context XML file")
	cmd.Flags().BoolVar(&opts.beans, "beans", false, "Resolve bean and process collaborators")
	return cmd
}
