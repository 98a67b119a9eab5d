package diagram

import (
	"fmt"
	"strings"

	"github.com/aretw0/camelgraph/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a graph.
// Shapes map onto the closest Mermaid node form:
// - Source: ([Stadium])
// - Choice: {Rhombus}
// - Filter: {{Hexagon}}
// - Fan-out and split: [/Parallelogram/]
// - Aggregate: [\Parallelogram\]
// - Translator and enricher: [[Subroutine]]
// - Wire tap: >Flag]
// - Default: [Rectangle]
// Each node is linked from its parent.
func GenerateMermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, node := range g.Nodes {
		safeID := sanitizeMermaidID(node.ID)
		opener, closer := mermaidShape(node.Shape)

		label := strings.ReplaceAll(node.Label, `"`, "#quot;")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))
	}

	for _, node := range g.Nodes {
		if node.IsRoot() {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID(node.ParentID), sanitizeMermaidID(node.ID)))
	}

	return sb.String()
}

func mermaidShape(shape domain.Shape) (string, string) {
	switch shape {
	case domain.ShapePollingConsumer:
		return "([", "])"
	case domain.ShapeContentBasedRouter:
		return "{", "}"
	case domain.ShapeMessageFilter:
		return "{{", "}}"
	case domain.ShapeRecipientList, domain.ShapeSplitter, domain.ShapeDynamicRouter:
		return "[/", "/]"
	case domain.ShapeAggregator:
		return "[\\", "\\]"
	case domain.ShapeMessageTranslator, domain.ShapeContentEnricher:
		return "[[", "]]"
	case domain.ShapeWireTap:
		return ">", "]"
	default:
		return "[", "]"
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
