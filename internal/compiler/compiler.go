package compiler

import (
	"io"
	"log/slog"

	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/graph"
	"github.com/aretw0/camelgraph/pkg/registry"
)

// Option configures a single compilation run.
type Option func(*compiler)

// WithLogger sets the structured logger used for per-node diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCollaborators enables collaborator-aware labelling of bean and process steps.
func WithCollaborators(enabled bool) Option {
	return func(c *compiler) {
		c.collaborators = enabled
	}
}

// WithGraphOptions forwards options to the graph builder (e.g. deterministic identities).
func WithGraphOptions(opts ...graph.Option) Option {
	return func(c *compiler) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}

// compiler holds the state of one run. It is discarded afterwards.
type compiler struct {
	logger        *slog.Logger
	collaborators bool
	graphOpts     []graph.Option

	registry *registry.Registry
	builder  *graph.Builder

	// routes counts route roots across the run; it provides synthetic source identities.
	routes int

	// reserved holds the explicit route ids of the document, claimed the
	// source identities already emitted. Synthetic identities avoid both.
	reserved map[string]bool
	claimed  map[string]bool
}

// Compile converts a parsed route document into a graph.
// The first failure aborts the run and no graph is returned.
func Compile(doc *domain.Element, opts ...Option) (*domain.Graph, error) {
	c := &compiler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry: registry.NewRegistry(),
		reserved: make(map[string]bool),
		claimed:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.builder = graph.New(c.graphOpts...)

	if err := c.prepass(doc); err != nil {
		return nil, err
	}
	c.logger.Debug("Symbols registered",
		"endpoints", c.registry.Endpoints(),
		"collaborators", c.registry.Collaborators())

	for _, container := range routeContainers(doc) {
		if id, ok := container.Attr(domain.AttrID); ok {
			c.logger.Debug("processing route container", "tag", container.Tag, "id", id)
		}
		if err := c.visit(container, scope{}); err != nil {
			return nil, err
		}
	}

	c.logger.Debug("Routes compiled", "routes", c.routes, "nodes", c.builder.Len())
	return c.builder.Graph(), nil
}

// routeContainers returns the top-level route containers in document order.
// Containers are not searched for nested containers.
func routeContainers(doc *domain.Element) []*domain.Element {
	var found []*domain.Element
	doc.Walk(func(el *domain.Element) bool {
		switch lookupConstruct(el.Tag) {
		case ConstructCamelContext, ConstructRouteContext, ConstructRoutes:
			found = append(found, el)
			return false
		}
		return true
	})
	return found
}
