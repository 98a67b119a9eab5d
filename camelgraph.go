package camelgraph

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/camelgraph/internal/compiler"
	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/graph"
)

// Converter is the high-level entry point of the library.
// It holds configuration only; every conversion gets fresh registry and builder
// state, so a Converter may be shared between goroutines.
type Converter struct {
	logger        *slog.Logger
	collaborators bool
	graphOpts     []graph.Option
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLogger sets a custom structured logger for the converter.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithCollaborators enables collaborator-aware labelling: bean and process steps
// are drawn with the implementation type of the referenced bean.
func WithCollaborators(enabled bool) Option {
	return func(c *Converter) {
		c.collaborators = enabled
	}
}

// WithGraphOptions forwards options to the graph builder of every run.
func WithGraphOptions(opts ...graph.Option) Option {
	return func(c *Converter) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}

// New initializes a new Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}

	// Ensure logger is initialized so the compiler never sees nil
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Convert parses a route document and returns its node graph.
// On failure no graph is returned.
func (c *Converter) Convert(ctx context.Context, r io.Reader) (*domain.Graph, error) {
	return c.convert(ctx, r, c.logger)
}

// ConvertFile converts the route document stored at path.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*domain.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open route document: %w", err)
	}
	defer f.Close()

	return c.convert(ctx, f, c.logger.With("document", filepath.Base(path)))
}

// ConvertDocument compiles an already parsed or programmatically built
// route document, such as one produced by the dsl package.
func (c *Converter) ConvertDocument(ctx context.Context, doc *domain.Element) (*domain.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.compile(doc, c.logger)
}

// Collaborators reports whether collaborator-aware labelling is enabled.
func (c *Converter) Collaborators() bool {
	return c.collaborators
}

func (c *Converter) convert(ctx context.Context, r io.Reader, logger *slog.Logger) (*domain.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := compiler.NewParser().ParseReader(r)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.compile(doc, logger)
}

func (c *Converter) compile(doc *domain.Element, logger *slog.Logger) (*domain.Graph, error) {
	g, err := compiler.Compile(doc,
		compiler.WithLogger(logger),
		compiler.WithCollaborators(c.collaborators),
		compiler.WithGraphOptions(c.graphOpts...),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Conversion finished", "nodes", g.Len(), "routes", len(g.Roots()))
	return g, nil
}
