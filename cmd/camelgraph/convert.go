package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/camelgraph"
	"github.com/aretw0/camelgraph/internal/config"
	"github.com/aretw0/camelgraph/internal/presentation/diagram"
	"github.com/aretw0/camelgraph/internal/presentation/tui"
	"github.com/aretw0/camelgraph/pkg/domain"
)

var errNoInput = errors.New("no route document: pass --xml or set " + config.InputEnv)

type convertOptions struct {
	xml    string
	beans  bool
	format string
	layout string
	quiet  bool
}

func addConvertFlags(cmd *cobra.Command, opts *convertOptions) {
	cmd.Flags().StringVar(&opts.xml, "xml", "", "Camel context XML file (env "+config.InputEnv+")")
	cmd.Flags().BoolVar(&opts.beans, "beans", false, "Label bean and process steps with their implementation type")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(diagram.FormatDrawIO), "Output format: drawio, mermaid, json or yaml")
	cmd.Flags().StringVar(&opts.layout, "layout", string(diagram.LayoutTree), "draw.io layout: tree or positioned")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the banner")
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a route document into a diagram",
		Long: `Converts the routes of a Camel context XML file and writes the diagram to stdout.
Diagnostics go to stderr. Any unknown construct, unresolved reference or missing
attribute aborts the conversion and nothing is written to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, opts)
		},
	}
	addConvertFlags(cmd, opts)
	return cmd
}

// merge applies explicitly set flags on top of the configuration.
func (a *app) merge(cmd *cobra.Command, opts *convertOptions) config.Config {
	cfg := a.cfg
	if cmd.Flags().Changed("xml") {
		cfg.Input = opts.xml
	}
	if cmd.Flags().Changed("beans") {
		cfg.Beans = opts.beans
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	if cmd.Flags().Changed("layout") {
		cfg.Layout = opts.layout
	}
	return cfg
}

func (a *app) runConvert(cmd *cobra.Command, opts *convertOptions) error {
	cfg := a.merge(cmd, opts)

	format, err := diagram.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	layout, err := diagram.ParseLayout(cfg.Layout)
	if err != nil {
		return err
	}
	styles, err := cfg.Styles()
	if err != nil {
		return err
	}

	if !opts.quiet && isTerminal(a.stderr) {
		tui.PrintBanner(a.stderr, strings.TrimSpace(camelgraph.Version))
	}

	g, err := a.convert(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	// Render fully before writing so a failure leaves stdout empty.
	var buf bytes.Buffer
	if err := diagram.Render(&buf, g, diagram.Options{Format: format, Layout: layout, Styles: styles}); err != nil {
		return err
	}
	_, err = io.Copy(a.stdout, &buf)
	return err
}

// convert reads and converts the configured input, logging failures with their location.
func (a *app) convert(ctx context.Context, cfg config.Config) (*domain.Graph, error) {
	if cfg.Input == "" {
		return nil, errNoInput
	}
	if ctx == nil {
		ctx = context.Background()
	}

	conv := camelgraph.New(
		camelgraph.WithLogger(a.logger),
		camelgraph.WithCollaborators(cfg.Beans),
	)
	g, err := conv.ConvertFile(ctx, cfg.Input)
	if err != nil {
		if tag, line, ok := domain.Locate(err); ok {
			a.logger.Error("Conversion failed", "tag", tag, "line", line, "error", err)
		} else {
			a.logger.Error("Conversion failed", "input", cfg.Input, "error", err)
		}
		return nil, fmt.Errorf("converting %s: %w", cfg.Input, err)
	}
	return g, nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}
