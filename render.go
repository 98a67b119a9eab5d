package camelgraph

import (
	"io"

	"github.com/aretw0/camelgraph/internal/presentation/diagram"
	"github.com/aretw0/camelgraph/pkg/domain"
)

// RenderOptions configures Render.
type RenderOptions = diagram.Options

// Format selects the output representation of a graph.
type Format = diagram.Format

// Layout selects how draw.io arranges the imported nodes.
type Layout = diagram.Layout

const (
	FormatDrawIO  = diagram.FormatDrawIO
	FormatMermaid = diagram.FormatMermaid
	FormatJSON    = diagram.FormatJSON
	FormatYAML    = diagram.FormatYAML

	LayoutTree       = diagram.LayoutTree
	LayoutPositioned = diagram.LayoutPositioned
)

// Render writes a converted graph to w.
func Render(w io.Writer, g *domain.Graph, opts RenderOptions) error {
	return diagram.Render(w, g, opts)
}
