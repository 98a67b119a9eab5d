package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/camelgraph/internal/config"
	"github.com/aretw0/camelgraph/internal/logging"
)

// app carries what every command needs once the persistent flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	debug      bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	convert := &convertOptions{}

	rootCmd := &cobra.Command{
		Use:   "camelgraph",
		Short: "Turns Apache Camel XML routes into EIP diagrams",
		Long: `camelgraph reads Apache Camel routes written in the Spring XML DSL and draws them
as an Enterprise Integration Patterns diagram, ready to import into draw.io.

Without a subcommand it behaves like 'camelgraph convert'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, convert)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Configuration file (YAML or JSON, default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to stderr")
	addConvertFlags(rootCmd, convert)

	rootCmd.AddCommand(
		newConvertCmd(a),
		newValidateCmd(a),
		newInspectCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Debug = true
	}
	a.cfg = cfg
	a.logger = logging.NewWithWriter(a.stderr, logging.Level(cfg.Debug))
	slog.SetDefault(a.logger)
	return nil
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
