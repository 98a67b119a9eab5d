package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/camelgraph"
	"github.com/aretw0/camelgraph/internal/presentation/diagram"
	"github.com/aretw0/camelgraph/internal/validator"
	"github.com/aretw0/camelgraph/pkg/domain"
	"github.com/aretw0/camelgraph/pkg/graph"
	"github.com/aretw0/camelgraph/pkg/observability"
	"github.com/aretw0/camelgraph/pkg/ports"
)

// Request is one conversion request.
type Request struct {
	Document      []byte
	Format        diagram.Format
	Layout        diagram.Layout
	Collaborators bool
}

// Result is the outcome of a successful request.
type Result struct {
	Output      []byte
	ContentType string
	// Cached is true when Output came from the result cache.
	Cached bool
	// Nodes is the node count, unknown (-1) on a cache hit.
	Nodes int
}

// Runner executes conversion requests.
// Safe for concurrent use.
type Runner struct {
	// Cache stores rendered outputs. If nil, every request converts.
	Cache ports.ResultCache

	// Metrics records conversions. If nil, nothing is recorded.
	Metrics *observability.Recorder

	// Logger is used for request diagnostics.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Styles overrides draw.io shape styles.
	Styles map[domain.Shape]string

	// GraphOptions are forwarded to every conversion.
	GraphOptions []graph.Option
}

// NewRunner creates a Runner without cache or metrics.
func NewRunner() *Runner {
	return &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run converts and renders a document, going through the cache when one is set.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	logger := r.logger()

	format, err := diagram.ParseFormat(string(req.Format))
	if err != nil {
		return nil, err
	}
	layout, err := diagram.ParseLayout(string(req.Layout))
	if err != nil {
		return nil, err
	}

	key := ports.CacheKey(string(format), string(layout), req.Collaborators, req.Document)
	if out, ok := r.lookup(ctx, key); ok {
		logger.Debug("Cache hit", "key", key[:12])
		return &Result{Output: out, ContentType: diagram.ContentType(format), Cached: true, Nodes: -1}, nil
	}

	g, err := r.convert(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := diagram.Render(&buf, g, diagram.Options{Format: format, Layout: layout, Styles: r.Styles}); err != nil {
		return nil, err
	}

	if r.Cache != nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes()); err != nil {
			// A broken cache degrades to uncached service.
			logger.Warn("Cache store failed", "error", err)
		}
	}

	return &Result{Output: buf.Bytes(), ContentType: diagram.ContentType(format), Nodes: g.Len()}, nil
}

// Validate converts a document without rendering, checks the structural
// integrity of the result and returns its graph.
func (r *Runner) Validate(ctx context.Context, document []byte, collaborators bool) (*domain.Graph, error) {
	g, err := r.convert(ctx, Request{Document: document, Collaborators: collaborators})
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateGraph(g); err != nil {
		return nil, fmt.Errorf("graph integrity: %w", err)
	}
	return g, nil
}

func (r *Runner) convert(ctx context.Context, req Request) (*domain.Graph, error) {
	conv := camelgraph.New(
		camelgraph.WithLogger(r.logger()),
		camelgraph.WithCollaborators(req.Collaborators),
		camelgraph.WithGraphOptions(r.GraphOptions...),
	)

	start := time.Now()
	g, err := conv.Convert(ctx, bytes.NewReader(req.Document))
	r.Metrics.ObserveConversion(time.Since(start), g, err)
	return g, err
}

func (r *Runner) lookup(ctx context.Context, key string) ([]byte, bool) {
	if r.Cache == nil {
		return nil, false
	}
	out, err := r.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			r.logger().Warn("Cache lookup failed", "error", err)
		}
		r.Metrics.ObserveCache(false)
		return nil, false
	}
	r.Metrics.ObserveCache(true)
	return out, true
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
