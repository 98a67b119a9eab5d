package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/camelgraph"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of camelgraph",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "camelgraph version %s\n", strings.TrimSpace(camelgraph.Version))
		},
	}
}
