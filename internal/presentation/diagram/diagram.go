package diagram

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// Format selects the output representation of a graph.
type Format string

const (
	FormatDrawIO  Format = "drawio"
	FormatMermaid Format = "mermaid"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatDrawIO, FormatMermaid, FormatJSON, FormatYAML}

// Layout selects how draw.io arranges the imported nodes.
type Layout string

const (
	// LayoutTree lets draw.io compute a horizontal tree.
	LayoutTree Layout = "tree"
	// LayoutPositioned pins every node to the slot recorded during conversion.
	LayoutPositioned Layout = "positioned"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrUnknownLayout = errors.New("unknown layout")
)

// Options configures a render.
type Options struct {
	Format Format
	Layout Layout
	// Styles overrides the draw.io style name of a shape.
	Styles map[domain.Shape]string
}

// ParseFormat validates a format name. The empty string selects draw.io.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatDrawIO, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ParseLayout validates a layout name. The empty string selects the tree layout.
func ParseLayout(name string) (Layout, error) {
	switch Layout(strings.ToLower(name)) {
	case "", LayoutTree:
		return LayoutTree, nil
	case LayoutPositioned:
		return LayoutPositioned, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// ContentType returns the media type served for a format.
func ContentType(f Format) string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatDrawIO:
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render writes g to w in the requested format.
func Render(w io.Writer, g *domain.Graph, opts Options) error {
	if g == nil {
		g = &domain.Graph{}
	}

	switch opts.Format {
	case FormatDrawIO, "":
		return DrawIO(w, g, opts.Layout, opts.Styles)
	case FormatMermaid:
		_, err := io.WriteString(w, GenerateMermaid(g))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(graphDocument(g))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(graphDocument(g)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// graphDocument guarantees an empty list rather than null for an empty graph.
func graphDocument(g *domain.Graph) *domain.Graph {
	if g.Nodes != nil {
		return g
	}
	return &domain.Graph{Nodes: []domain.Node{}}
}
